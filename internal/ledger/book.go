// Package ledger implements the double-entry core: accounts with per-asset
// balances, journals of debit/credit records, and the Book that validates a
// journal completely before applying any of it.
package ledger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hance08/ledger/internal/money"
)

// DefaultCurrencies are enabled on accounts registered without explicit currencies.
var DefaultCurrencies = []string{"EUR"}

// Book owns every registered account and the ordered history of committed journals.
type Book struct {
	mu         sync.RWMutex
	accounts   []*Account
	index      map[string]*Account
	journals   []*Journal
	currencies []string
	logger     *zap.Logger
}

type Option func(*Book)

func WithLogger(logger *zap.Logger) Option {
	return func(b *Book) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithDefaultCurrencies overrides DefaultCurrencies for this book.
func WithDefaultCurrencies(currencies ...string) Option {
	return func(b *Book) {
		if len(currencies) > 0 {
			b.currencies = append([]string(nil), currencies...)
		}
	}
}

func NewBook(opts ...Option) *Book {
	b := &Book{
		index:      make(map[string]*Account),
		currencies: append([]string(nil), DefaultCurrencies...),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddAccount enables currencies (or the book defaults when none are given)
// on the account and registers it under its code.
func (b *Book) AddAccount(account *Account, currencies ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.index[account.Code()]; exists {
		return fmt.Errorf("account '%s': %w", account.Code(), ErrDuplicateCode)
	}

	if len(currencies) == 0 {
		currencies = b.currencies
	}
	for _, c := range currencies {
		account.EnableCurrency(c)
	}

	b.register(account)
	b.logger.Debug("account registered",
		zap.String("code", account.Code()),
		zap.String("type", string(account.Type())),
		zap.Strings("assets", account.Assets()))
	return nil
}

func (b *Book) register(account *Account) {
	b.index[account.Code()] = account
	b.accounts = append(b.accounts, account)
}

func (b *Book) GetAccount(code string) (*Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acc, ok := b.index[code]
	if !ok {
		return nil, fmt.Errorf("account '%s': %w", code, ErrUnknownAccount)
	}
	return acc, nil
}

// Accounts returns the registered accounts in registration order.
func (b *Book) Accounts() []*Account {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]*Account(nil), b.accounts...)
}

// Journals returns the committed history, oldest first.
func (b *Book) Journals() []*Journal {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]*Journal(nil), b.journals...)
}

func (b *Book) Balance(code, asset string) (money.Money, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acc, ok := b.index[code]
	if !ok {
		return money.Money{}, fmt.Errorf("account '%s': %w", code, ErrUnknownAccount)
	}
	return acc.Balance(asset)
}

// validation is the outcome of the first commit phase.
type validation struct {
	records []Record
	totals  []AssetTotals
}

// AddJournal commits journal atomically: every record is checked first and
// only a fully valid journal is applied and appended to the history. A
// rejected journal leaves every balance untouched.
func (b *Book) AddJournal(journal *Journal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, err := b.validate(journal)
	if err != nil {
		b.logger.Warn("journal rejected",
			zap.String("journal", journal.ID()),
			zap.Error(err))
		return err
	}

	if err := b.commit(journal, v); err != nil {
		return err
	}

	b.logger.Debug("journal committed",
		zap.String("journal", journal.ID()),
		zap.Int("records", len(v.records)),
		zap.Int("assets", len(v.totals)))
	return nil
}

// Check runs the validation phase only.
func (b *Book) Check(journal *Journal) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, err := b.validate(journal)
	return err
}

func (b *Book) validate(journal *Journal) (validation, error) {
	if journal.Committed() {
		return validation{}, fmt.Errorf("journal %s: %w", journal.ID(), ErrJournalSealed)
	}

	records := journal.Records()
	for i, r := range records {
		if r.Account == nil {
			return validation{}, fmt.Errorf("record #%d: %w", i+1, ErrUnknownAccount)
		}
		if registered, ok := b.index[r.Account.Code()]; !ok || registered != r.Account {
			return validation{}, fmt.Errorf("record #%d: account '%s': %w", i+1, r.Account.Code(), ErrUnknownAccount)
		}
		if !r.Account.HasAsset(r.Asset) {
			return validation{}, fmt.Errorf("record #%d: account %s, asset %s: %w", i+1, r.Account.Code(), r.Asset, ErrUnknownAsset)
		}
	}

	totals := journal.Totals()
	var imbalances []Imbalance
	for _, t := range totals {
		if !t.Balanced() {
			imbalances = append(imbalances, Imbalance{
				Asset:      t.Asset,
				Debit:      t.Debit,
				Credit:     t.Credit,
				Difference: t.Debit.Sub(t.Credit),
			})
		}
	}
	if len(imbalances) > 0 {
		return validation{}, &UnbalancedJournalError{Imbalances: imbalances}
	}

	return validation{records: records, totals: totals}, nil
}

func (b *Book) commit(journal *Journal, v validation) error {
	for i, r := range v.records {
		if err := r.Account.ApplyPosting(r.Debit, r.Credit, r.Asset, r.Description); err != nil {
			// validate checked every account and asset under the same lock
			return fmt.Errorf("journal %s record #%d applied after validation: %w", journal.ID(), i+1, err)
		}
	}

	journal.seal()
	b.journals = append(b.journals, journal)
	return nil
}
