package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ledger/internal/money"
)

func TestReplayReproducesBalances(t *testing.T) {
	fx := newFixture(t)
	rate, err := money.ParseRate("0.006")
	require.NoError(t, err)

	dep, err := BuildDeposit(Deposit{Holding: fx.b, Customer: fx.a, Amount: d("500"), Asset: "EUR"})
	require.NoError(t, err)
	require.NoError(t, fx.book.AddJournal(dep))

	dep, err = BuildDeposit(Deposit{Holding: fx.w, Customer: fx.c, Amount: d("10"), Asset: "BTC"})
	require.NoError(t, err)
	require.NoError(t, fx.book.AddJournal(dep))

	x, err := BuildExchange(Exchange{Seller: fx.c, Buyer: fx.a, FeeAccount: fx.f,
		Asset: "BTC", Amount: d("4.5"), PriceAsset: "EUR", Price: d("320.85"), FeeRate: rate})
	require.NoError(t, err)
	require.NoError(t, fx.book.AddJournal(x))

	// A rejected journal never reaches the history.
	bad := NewJournal("bad")
	require.NoError(t, bad.AddRecord(fx.b, d("1"), zero, "EUR", "x"))
	require.Error(t, fx.book.AddJournal(bad))

	replayed, err := fx.book.Replay()
	require.NoError(t, err)

	assert.Equal(t, snapshot(t, fx.book), snapshot(t, replayed))
	assert.Len(t, replayed.Journals(), 3)

	for i, j := range replayed.Journals() {
		assert.Equal(t, fx.book.Journals()[i].ID(), j.ID())
		assert.Equal(t, fx.book.Journals()[i].Len(), j.Len())
	}

	// The replayed accounts are independent copies.
	copied, err := replayed.GetAccount("1200")
	require.NoError(t, err)
	assert.NotSame(t, fx.b, copied)
	assert.Len(t, copied.Postings(), len(fx.b.Postings()))

	assert.NoError(t, fx.book.Verify())
}

func TestReplayOfEmptyBook(t *testing.T) {
	fx := newFixture(t)

	replayed, err := fx.book.Replay()
	require.NoError(t, err)
	assert.Equal(t, snapshot(t, fx.book), snapshot(t, replayed))
	assert.Len(t, replayed.Accounts(), 5)
}

func TestVerifyDetectsOutOfBandMutation(t *testing.T) {
	fx := newFixture(t)

	dep, err := BuildDeposit(Deposit{Holding: fx.b, Customer: fx.a, Amount: d("20"), Asset: "EUR"})
	require.NoError(t, err)
	require.NoError(t, fx.book.AddJournal(dep))

	// Bypassing the book breaks the history invariant.
	require.NoError(t, fx.b.ApplyPosting(d("1"), zero, "EUR", "tampered"))

	err = fx.book.Verify()
	assert.ErrorIs(t, err, ErrReplayMismatch)
	assert.Contains(t, err.Error(), "1200/EUR")
}
