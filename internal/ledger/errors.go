package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/money"
)

var (
	ErrDuplicateCode     = errors.New("account code already registered")
	ErrInvalidType       = errors.New("invalid account type")
	ErrUnknownAsset      = errors.New("asset not enabled on account")
	ErrUnbalancedJournal = errors.New("journal does not balance")
	ErrUnknownAccount    = errors.New("account not found")
	ErrJournalSealed     = errors.New("journal already committed")
	ErrReplayMismatch    = errors.New("replayed balance differs from book")
)

// Imbalance is the debit minus credit difference of one asset in a journal.
type Imbalance struct {
	Asset      string
	Debit      money.Money
	Credit     money.Money
	Difference money.Money
}

// UnbalancedJournalError lists every asset whose debits and credits differ.
// It matches ErrUnbalancedJournal with errors.Is.
type UnbalancedJournalError struct {
	Imbalances []Imbalance
}

func (e *UnbalancedJournalError) Error() string {
	parts := make([]string, 0, len(e.Imbalances))
	for _, im := range e.Imbalances {
		parts = append(parts, fmt.Sprintf("%s debit %s credit %s (off by %s)",
			im.Asset, im.Debit, im.Credit, im.Difference))
	}
	return fmt.Sprintf("%s: %s", ErrUnbalancedJournal, strings.Join(parts, "; "))
}

func (e *UnbalancedJournalError) Is(target error) bool {
	return target == ErrUnbalancedJournal
}

// Assets returns the offending asset symbols in journal order.
func (e *UnbalancedJournalError) Assets() []string {
	assets := make([]string, 0, len(e.Imbalances))
	for _, im := range e.Imbalances {
		assets = append(assets, im.Asset)
	}
	return assets
}
