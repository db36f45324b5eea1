package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ledger/internal/money"
)

func mustAccount(t *testing.T, name string, typ AccountType, code string) *Account {
	t.Helper()

	acc, err := NewAccount(name, typ, code)
	require.NoError(t, err)
	return acc
}

func TestNewAccountRejectsUnknownType(t *testing.T) {
	_, err := NewAccount("Broken", AccountType("X"), "9999")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = NewAccount("Broken", AccountType(""), "9999")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input string
		want  AccountType
	}{
		{"A", TypeAsset},
		{"assets", TypeAsset},
		{"l", TypeLiability},
		{"Equity", TypeEquity},
		{"C", TypeEquity},
		{"income", TypeIncome},
		{"R", TypeIncome},
		{"expense", TypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAccountType("X")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestEnableCurrencyIsIdempotent(t *testing.T) {
	acc := mustAccount(t, "Hotwallet", TypeAsset, "1201")
	acc.EnableCurrency("BTC")
	require.NoError(t, acc.ApplyPosting(money.FromInt(10), money.Zero(), "BTC", "deposit"))

	acc.EnableCurrency("BTC")
	acc.EnableCurrency("EUR")

	bal, err := acc.Balance("BTC")
	require.NoError(t, err)
	assert.Equal(t, "10", bal.String())
	assert.Equal(t, []string{"BTC", "EUR"}, acc.Assets())
}

func TestApplyPostingSignConvention(t *testing.T) {
	tests := []struct {
		typ  AccountType
		want string
	}{
		{TypeAsset, "70"},
		{TypeExpense, "70"},
		{TypeLiability, "-70"},
		{TypeEquity, "-70"},
		{TypeIncome, "-70"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.Name(), func(t *testing.T) {
			acc := mustAccount(t, "Test", tt.typ, "1000")
			acc.EnableCurrency("EUR")

			require.NoError(t, acc.ApplyPosting(money.FromInt(100), money.FromInt(30), "EUR", "mixed"))

			bal, err := acc.Balance("EUR")
			require.NoError(t, err)
			assert.Equal(t, tt.want, bal.String())
		})
	}
}

func TestApplyPostingUnknownAsset(t *testing.T) {
	acc := mustAccount(t, "Account A", TypeLiability, "1400")
	acc.EnableCurrency("EUR")

	err := acc.ApplyPosting(money.FromInt(1), money.Zero(), "BTC", "oops")
	assert.ErrorIs(t, err, ErrUnknownAsset)
	assert.Empty(t, acc.Postings())

	_, err = acc.Balance("BTC")
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestPostingsLogIsAppendOnlyCopy(t *testing.T) {
	acc := mustAccount(t, "Bank", TypeAsset, "1200")
	acc.EnableCurrency("EUR")
	require.NoError(t, acc.ApplyPosting(money.FromInt(5), money.Zero(), "EUR", "first"))
	require.NoError(t, acc.ApplyPosting(money.Zero(), money.FromInt(2), "EUR", "second"))

	postings := acc.Postings()
	require.Len(t, postings, 2)
	assert.Equal(t, "first", postings[0].Description)
	assert.Equal(t, "second", postings[1].Description)

	postings[0].Description = "changed"
	assert.Equal(t, "first", acc.Postings()[0].Description)
}

func TestAccountLabel(t *testing.T) {
	acc := mustAccount(t, "Hotwallet", TypeAsset, "12")
	assert.Equal(t, "  12 Hotwallet       ", acc.String())
}
