package store

import "github.com/hance08/ledger/internal/money"

type Account struct {
	Code       string
	Name       string
	Type       string
	Position   int64
	Currencies []string
}

type Journal struct {
	Seq         int64
	ID          string
	Description string
	CreatedAt   int64 // unix milliseconds
}

type Record struct {
	JournalID   string
	Position    int
	AccountCode string
	Debit       money.Money
	Credit      money.Money
	Asset       string
	Memo        string
}
