package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ledger/internal/id"
)

func TestJournalIterationIsRestartable(t *testing.T) {
	bank := mustAccount(t, "Bank", TypeAsset, "1200")
	j := NewJournal("two legs")
	require.NoError(t, j.AddRecord(bank, d("1"), zero, "EUR", "first"))
	require.NoError(t, j.AddRecord(bank, zero, d("1"), "EUR", "second"))

	collect := func() []string {
		var out []string
		for _, r := range j.All() {
			out = append(out, r.Description)
		}
		return out
	}

	assert.Equal(t, []string{"first", "second"}, collect())
	assert.Equal(t, collect(), collect())

	for i := range j.All() {
		assert.Equal(t, 0, i)
		break
	}
}

func TestJournalAllowsUnbalancedWhileBuilding(t *testing.T) {
	bank := mustAccount(t, "Bank", TypeAsset, "1200")
	j := NewJournal("partial")
	require.NoError(t, j.AddRecord(bank, d("10"), zero, "EUR", "only a debit"))

	totals := j.Totals()
	require.Len(t, totals, 1)
	assert.False(t, totals[0].Balanced())
	assert.Equal(t, 1, j.Len())
}

func TestJournalTotalsPerAsset(t *testing.T) {
	bank := mustAccount(t, "Bank", TypeAsset, "1200")
	j := NewJournal("mixed")
	require.NoError(t, j.AddRecord(bank, d("1.5"), zero, "BTC", ""))
	require.NoError(t, j.AddRecord(bank, d("2"), d("0.5"), "EUR", ""))
	require.NoError(t, j.AddRecord(bank, zero, d("1.5"), "BTC", ""))

	totals := j.Totals()
	require.Len(t, totals, 2)
	assert.Equal(t, "BTC", totals[0].Asset)
	assert.True(t, totals[0].Balanced())
	assert.Equal(t, "EUR", totals[1].Asset)
	assert.Equal(t, "2", totals[1].Debit.String())
	assert.Equal(t, "0.5", totals[1].Credit.String())
}

func TestJournalIdentity(t *testing.T) {
	j := NewJournal("x")
	assert.True(t, id.Valid(j.ID()))
	assert.Equal(t, "x", j.Description())
	assert.False(t, j.CreatedAt().IsZero())

	restored := RestoreJournal(j.ID(), "x", j.CreatedAt())
	assert.Equal(t, j.ID(), restored.ID())
	assert.False(t, restored.Committed())
}
