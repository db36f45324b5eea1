package service

import (
	"time"

	"github.com/hance08/ledger/internal/money"
)

type JournalType string

const (
	JournalTypeDeposit    JournalType = "Deposit"
	JournalTypeWithdrawal JournalType = "Withdrawal"
	JournalTypeExchange   JournalType = "Exchange"
	JournalTypeTransfer   JournalType = "Transfer"
	JournalTypeOther      JournalType = "Other"
)

// RecordInput is one leg as the user typed it: account code and decimal strings.
type RecordInput struct {
	Account string
	Debit   string
	Credit  string
	Asset   string
	Memo    string
}

type JournalInput struct {
	Description string
	Records     []RecordInput
}

type DepositInput struct {
	Holding     string
	Customer    string
	Amount      string
	Asset       string
	Description string
	// Withdraw reverses the direction.
	Withdraw    bool
}

type ExchangeInput struct {
	Seller      string
	Buyer       string
	FeeAccount  string
	Asset       string
	Amount      string
	PriceAsset  string
	Price       string
	// FeeRate overrides the configured rate when set.
	FeeRate     string
	Description string
}

// JournalSummary is the one-line view of a committed journal.
type JournalSummary struct {
	ID          string
	CreatedAt   time.Time
	Description string
	Type        JournalType
	Amount      money.Money
	Asset       string
	Records     int
}
