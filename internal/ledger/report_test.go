package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFollowsRegistrationOrder(t *testing.T) {
	fx := newFixture(t)

	dep, err := BuildDeposit(Deposit{Holding: fx.b, Customer: fx.a, Amount: d("500"), Asset: "EUR"})
	require.NoError(t, err)
	require.NoError(t, fx.book.AddJournal(dep))

	lines := Report(fx.book, []string{"EUR", "BTC"})

	var eur, btc []string
	for _, l := range lines {
		switch l.Asset {
		case "EUR":
			eur = append(eur, l.Code)
		case "BTC":
			btc = append(btc, l.Code)
		}
	}
	// The bank has no BTC and the hot wallet no EUR.
	assert.Equal(t, []string{"1400", "1200", "1401", "8400"}, eur)
	assert.Equal(t, []string{"1400", "1401", "1201", "8400"}, btc)

	assert.Equal(t, "EUR", lines[0].Asset)
	assert.Equal(t, "1400 Account A       ", lines[0].Label)
	assert.Equal(t, "  500.0000", lines[0].Formatted)
	assert.Equal(t, TypeLiability, lines[0].Type)
}

func TestReportUnknownAssetIsEmpty(t *testing.T) {
	fx := newFixture(t)
	assert.Empty(t, Report(fx.book, []string{"USD"}))
	assert.Empty(t, Report(fx.book, nil))
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "   -0.0270", FormatBalance(d("-0.027")))
	assert.Equal(t, "12345678.1235", FormatBalance(d("12345678.12345")))
}

func TestTrialBalance(t *testing.T) {
	fx := newFixture(t)

	dep, err := BuildDeposit(Deposit{Holding: fx.w, Customer: fx.c, Amount: d("10"), Asset: "BTC"})
	require.NoError(t, err)
	require.NoError(t, fx.book.AddJournal(dep))

	totals := TrialBalance(fx.book, []string{"BTC"})
	require.Len(t, totals, 1)
	assert.True(t, totals[0].Balanced())
	assert.Equal(t, "10", totals[0].DebitNormal.String())
}
