package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hance08/ledger/internal/money"
)

// AccountType is the closed set of account classes. The letters follow the
// chart-of-accounts convention used throughout the CLI.
type AccountType string

const (
	TypeAsset     AccountType = "A"
	TypeLiability AccountType = "L"
	TypeEquity    AccountType = "C"
	TypeIncome    AccountType = "R"
	TypeExpense   AccountType = "E"
)

// AccountTypes lists every valid type in display order.
var AccountTypes = []AccountType{TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense}

func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense:
		return true
	}
	return false
}

// DebitNormal reports whether a debit increases the balance (asset and expense accounts).
func (t AccountType) DebitNormal() bool {
	return t == TypeAsset || t == TypeExpense
}

func (t AccountType) Name() string {
	switch t {
	case TypeAsset:
		return "Assets"
	case TypeLiability:
		return "Liabilities"
	case TypeEquity:
		return "Equity"
	case TypeIncome:
		return "Revenue"
	case TypeExpense:
		return "Expenses"
	default:
		return "Unknown"
	}
}

// ParseAccountType accepts a type letter (A, L, C, R, E) or an English name.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "asset", "assets":
		return TypeAsset, nil
	case "l", "liability", "liabilities":
		return TypeLiability, nil
	case "c", "equity":
		return TypeEquity, nil
	case "r", "income", "revenue":
		return TypeIncome, nil
	case "e", "expense", "expenses":
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("%w '%s' (must be A, L, C, R, E)", ErrInvalidType, s)
	}
}

// Posting is one applied leg in an account's log.
type Posting struct {
	Debit       money.Money
	Credit      money.Money
	Asset       string
	Description string
}

// Account holds per-asset balances and the log of postings applied to it.
// Once registered, only the owning Book mutates it.
type Account struct {
	code     string
	name     string
	typ      AccountType
	mu       sync.RWMutex
	balances map[string]money.Money
	assets   []string
	postings []Posting
}

func NewAccount(name string, typ AccountType, code string) (*Account, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w '%s' (must be A, L, C, R, E)", ErrInvalidType, typ)
	}

	return &Account{
		code:     code,
		name:     name,
		typ:      typ,
		balances: make(map[string]money.Money),
	}, nil
}

func (a *Account) Code() string      { return a.code }
func (a *Account) Name() string      { return a.name }
func (a *Account) Type() AccountType { return a.typ }

// EnableCurrency creates a zero balance for asset. Enabling twice is a no-op.
func (a *Account) EnableCurrency(asset string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.balances[asset]; ok {
		return
	}
	a.balances[asset] = money.Zero()
	a.assets = append(a.assets, asset)
}

func (a *Account) HasAsset(asset string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, ok := a.balances[asset]
	return ok
}

// Assets returns the enabled assets in the order they were enabled.
func (a *Account) Assets() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]string(nil), a.assets...)
}

func (a *Account) Balance(asset string) (money.Money, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	bal, ok := a.balances[asset]
	if !ok {
		return money.Money{}, fmt.Errorf("account %s, asset %s: %w", a.code, asset, ErrUnknownAsset)
	}
	return bal, nil
}

// ApplyPosting changes the balance of asset by debit-credit for debit-normal
// accounts and by credit-debit otherwise, then appends the posting to the log.
// There is no undo: keeping a journal atomic is the Book's job.
func (a *Account) ApplyPosting(debit, credit money.Money, asset, description string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	bal, ok := a.balances[asset]
	if !ok {
		return fmt.Errorf("account %s, asset %s: %w", a.code, asset, ErrUnknownAsset)
	}

	delta := debit.Sub(credit)
	if !a.typ.DebitNormal() {
		delta = delta.Neg()
	}
	a.balances[asset] = bal.Add(delta)

	a.postings = append(a.postings, Posting{
		Debit:       debit,
		Credit:      credit,
		Asset:       asset,
		Description: description,
	})
	return nil
}

// Postings returns a copy of the applied postings, oldest first.
func (a *Account) Postings() []Posting {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return append([]Posting(nil), a.postings...)
}

// String is the report label: code right-aligned in four columns, then the name.
func (a *Account) String() string {
	return fmt.Sprintf("%4s %-16s", a.code, a.name)
}

// blankCopy returns an account with the same identity and enabled assets
// but zero balances and an empty log.
func (a *Account) blankCopy() *Account {
	c := &Account{
		code:     a.code,
		name:     a.name,
		typ:      a.typ,
		balances: make(map[string]money.Money),
	}
	for _, asset := range a.Assets() {
		c.EnableCurrency(asset)
	}
	return c
}
