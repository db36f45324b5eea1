package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/money"
)

func TestClassify(t *testing.T) {
	mk := func(name string, typ ledger.AccountType, code string) *ledger.Account {
		acc, err := ledger.NewAccount(name, typ, code)
		require.NoError(t, err)
		acc.EnableCurrency("EUR")
		acc.EnableCurrency("BTC")
		return acc
	}
	bank := mk("Bank", ledger.TypeAsset, "1200")
	wallet := mk("Wallet", ledger.TypeAsset, "1201")
	a := mk("Account A", ledger.TypeLiability, "1400")
	c := mk("Account C", ledger.TypeLiability, "1401")
	fees := mk("Fees", ledger.TypeIncome, "8400")
	costs := mk("Costs", ledger.TypeExpense, "6000")

	one := money.FromInt(1)
	zero := money.Zero()

	type leg struct {
		acc           *ledger.Account
		debit, credit money.Money
		asset         string
	}
	tests := []struct {
		name string
		legs []leg
		want JournalType
	}{
		{"empty", nil, JournalTypeOther},
		{"deposit", []leg{{bank, one, zero, "EUR"}, {a, zero, one, "EUR"}}, JournalTypeDeposit},
		{"withdrawal", []leg{{a, one, zero, "EUR"}, {bank, zero, one, "EUR"}}, JournalTypeWithdrawal},
		{"exchange", []leg{
			{c, one, zero, "BTC"}, {c, zero, one, "EUR"},
			{a, one, zero, "EUR"}, {a, zero, one, "BTC"},
			{c, one, zero, "EUR"}, {fees, zero, one, "EUR"},
		}, JournalTypeExchange},
		{"wallet transfer", []leg{{bank, one, zero, "EUR"}, {wallet, zero, one, "EUR"}}, JournalTypeTransfer},
		{"customer transfer", []leg{{a, one, zero, "EUR"}, {c, zero, one, "EUR"}}, JournalTypeTransfer},
		{"expense", []leg{{costs, one, zero, "EUR"}, {bank, zero, one, "EUR"}}, JournalTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := ledger.NewJournal(tt.name)
			for _, l := range tt.legs {
				require.NoError(t, j.AddRecord(l.acc, l.debit, l.credit, l.asset, ""))
			}
			assert.Equal(t, tt.want, Classify(j))
		})
	}
}

func TestSummarize(t *testing.T) {
	bank, err := ledger.NewAccount("Bank", ledger.TypeAsset, "1200")
	require.NoError(t, err)
	a, err := ledger.NewAccount("Account A", ledger.TypeLiability, "1400")
	require.NoError(t, err)

	j := ledger.NewJournal("deposit")
	require.NoError(t, j.AddRecord(bank, money.MustParse("12.5"), money.Zero(), "EUR", ""))
	require.NoError(t, j.AddRecord(a, money.Zero(), money.MustParse("12.5"), "EUR", ""))

	js := &JournalService{}
	s := js.Summarize(j)
	assert.Equal(t, JournalTypeDeposit, s.Type)
	assert.Equal(t, "12.5", s.Amount.String())
	assert.Equal(t, "EUR", s.Asset)
	assert.Equal(t, 2, s.Records)
}
