package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/scenario"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/migrations"
)

type env struct {
	dbPath string
	cfg    *config.Config
	repo   *store.Store
	svc    *Service
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		dbPath: filepath.Join(t.TempDir(), "ledger.db"),
		cfg:    config.NewDefault(),
	}
	e.reopen(t)
	return e
}

// reopen closes the store and rebuilds the service from disk.
func (e *env) reopen(t *testing.T) {
	t.Helper()

	if e.repo != nil {
		require.NoError(t, e.repo.Close())
	}

	repo, err := store.NewStore(e.dbPath, migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	svc, err := Open(repo, e.cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	e.repo = repo
	e.svc = svc
}

func (e *env) balance(t *testing.T, code, asset string) string {
	t.Helper()

	bal, err := e.svc.Book().Balance(code, asset)
	require.NoError(t, err)
	return bal.String()
}

func (e *env) seed(t *testing.T) {
	t.Helper()

	accounts := []struct {
		code, name string
		typ        ledger.AccountType
		currencies []string
	}{
		{"1400", "Account A", ledger.TypeLiability, []string{"EUR", "BTC"}},
		{"1200", "ING7197307", ledger.TypeAsset, nil},
		{"1401", "Account C", ledger.TypeLiability, []string{"eur", "btc"}},
		{"1201", "Hotwallet", ledger.TypeAsset, []string{"BTC"}},
		{"8400", "Exchange fees", ledger.TypeIncome, []string{"EUR", "BTC"}},
	}
	for _, a := range accounts {
		_, err := e.svc.Account.CreateAccount(a.code, a.name, a.typ, a.currencies)
		require.NoError(t, err)
	}
}

func TestCreateAccountUsesDefaults(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	bank, err := e.svc.Account.GetAccount("1200")
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR"}, bank.Assets())

	c, err := e.svc.Account.GetAccount("1401")
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "BTC"}, c.Assets())

	_, err = e.svc.Account.CreateAccount("1200", "Again", ledger.TypeAsset, nil)
	assert.ErrorIs(t, err, ledger.ErrDuplicateCode)

	_, err = e.svc.Account.CreateAccount("1300", "Bad", ledger.TypeAsset, []string{"X"})
	assert.Error(t, err)

	exists, err := e.repo.AccountExists("1300")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEnableCurrencyPersists(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	require.NoError(t, e.svc.Account.EnableCurrency("1201", "eth"))
	require.NoError(t, e.svc.Account.EnableCurrency("1201", "ETH"))
	assert.ErrorIs(t, e.svc.Account.EnableCurrency("9999", "ETH"), ledger.ErrUnknownAccount)

	e.reopen(t)
	w, err := e.svc.Account.GetAccount("1201")
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC", "ETH"}, w.Assets())
}

func TestDepositAndExchangeSurviveRestart(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	_, err := e.svc.Journal.Deposit(DepositInput{Holding: "1200", Customer: "1400", Amount: "500", Asset: "EUR"})
	require.NoError(t, err)
	_, err = e.svc.Journal.Deposit(DepositInput{Holding: "1201", Customer: "1401", Amount: "10", Asset: "btc"})
	require.NoError(t, err)

	x, err := e.svc.Journal.Exchange(ExchangeInput{
		Seller: "1401", Buyer: "1400", FeeAccount: "8400",
		Asset: "BTC", Amount: "4.5", PriceAsset: "EUR", Price: "320.85",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, x.Len())

	want := map[string]string{
		"1400/EUR": "179.15", "1400/BTC": "4.473",
		"1401/EUR": "318.9249", "1401/BTC": "5.5",
		"8400/EUR": "1.9251", "8400/BTC": "0.027",
		"1200/EUR": "500", "1201/BTC": "10",
	}
	check := func() {
		for key, v := range want {
			code, asset := key[:4], key[5:]
			assert.Equal(t, v, e.balance(t, code, asset), key)
		}
	}
	check()

	e.reopen(t)
	check()
	assert.Len(t, e.svc.Book().Journals(), 3)
	assert.NoError(t, e.svc.Report.Verify())
}

func TestExchangeFeeRateOverride(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	_, err := e.svc.Journal.Exchange(ExchangeInput{
		Seller: "1401", Buyer: "1400", Asset: "BTC", Amount: "1",
		PriceAsset: "EUR", Price: "100", FeeRate: "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", e.balance(t, "8400", "EUR"))
	assert.Equal(t, "100", e.balance(t, "1401", "EUR"))

	_, err = e.svc.Journal.Exchange(ExchangeInput{
		Seller: "1401", Buyer: "1400", Asset: "BTC", Amount: "1",
		PriceAsset: "EUR", Price: "100", FeeRate: "abc",
	})
	assert.Error(t, err)
}

func TestExchangeFeesRoundToWholeUnits(t *testing.T) {
	e := newEnv(t)
	e.cfg.Fees.Places = 0
	e.reopen(t)
	e.seed(t)

	_, err := e.svc.Journal.Deposit(DepositInput{Holding: "1200", Customer: "1400", Amount: "500", Asset: "EUR"})
	require.NoError(t, err)
	_, err = e.svc.Journal.Deposit(DepositInput{Holding: "1201", Customer: "1401", Amount: "10", Asset: "BTC"})
	require.NoError(t, err)

	_, err = e.svc.Journal.Exchange(ExchangeInput{
		Seller: "1401", Buyer: "1400", FeeAccount: "8400",
		Asset: "BTC", Amount: "4.5", PriceAsset: "EUR", Price: "320.85",
	})
	require.NoError(t, err)

	assert.Equal(t, "2", e.balance(t, "8400", "EUR"))
	assert.Equal(t, "0", e.balance(t, "8400", "BTC"))
	assert.Equal(t, "318.85", e.balance(t, "1401", "EUR"))
	assert.Equal(t, "4.5", e.balance(t, "1400", "BTC"))
}

func TestPostRejectsWithoutSideEffects(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	_, err := e.svc.Journal.Post(JournalInput{
		Description: "unbalanced",
		Records: []RecordInput{
			{Account: "1200", Debit: "10", Asset: "EUR"},
			{Account: "1400", Credit: "9", Asset: "EUR"},
		},
	})
	var unbalanced *ledger.UnbalancedJournalError
	require.ErrorAs(t, err, &unbalanced)
	assert.Equal(t, []string{"EUR"}, unbalanced.Assets())

	_, err = e.svc.Journal.Post(JournalInput{
		Records: []RecordInput{
			{Account: "1200", Debit: "10", Asset: "BTC"},
			{Account: "1400", Credit: "10", Asset: "BTC"},
		},
	})
	assert.ErrorIs(t, err, ledger.ErrUnknownAsset)

	_, err = e.svc.Journal.Post(JournalInput{
		Records: []RecordInput{{Account: "0000", Debit: "1", Asset: "EUR"}},
	})
	assert.ErrorIs(t, err, ledger.ErrUnknownAccount)

	_, err = e.svc.Journal.Post(JournalInput{
		Records: []RecordInput{{Account: "1200", Debit: "1,5", Asset: "EUR"}},
	})
	assert.Error(t, err)

	assert.Equal(t, "0", e.balance(t, "1200", "EUR"))
	persisted, err := e.repo.GetAllJournals()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestPostMultiLeg(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	j, err := e.svc.Journal.Post(JournalInput{
		Description: "split",
		Records: []RecordInput{
			{Account: "1200", Debit: "30", Asset: "eur"},
			{Account: "1400", Credit: "10", Asset: "EUR"},
			{Account: "1401", Credit: "20", Asset: "EUR", Memo: "c part"},
		},
	})
	require.NoError(t, err)

	got, err := e.svc.Journal.GetJournal(j.ID())
	require.NoError(t, err)
	assert.Same(t, j, got)

	_, err = e.svc.Journal.GetJournal("nope")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	e.reopen(t)
	assert.Equal(t, "20", e.balance(t, "1401", "EUR"))
	restored, err := e.svc.Journal.GetJournal(j.ID())
	require.NoError(t, err)
	assert.Equal(t, "c part", restored.Records()[2].Description)
}

func TestRecentJournals(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	first, err := e.svc.Journal.Deposit(DepositInput{Holding: "1200", Customer: "1400", Amount: "5", Asset: "EUR"})
	require.NoError(t, err)
	second, err := e.svc.Journal.Deposit(DepositInput{Holding: "1200", Customer: "1401", Amount: "7", Asset: "EUR"})
	require.NoError(t, err)

	all, err := e.svc.Journal.GetRecentJournals("", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID(), all[0].ID())

	forA, err := e.svc.Journal.GetRecentJournals("1400", 10)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, first.ID(), forA[0].ID())
	assert.Equal(t, "Deposit 5 EUR to Account A", forA[0].Description())

	_, err = e.svc.Journal.GetRecentJournals("9999", 10)
	assert.ErrorIs(t, err, ledger.ErrUnknownAccount)
}

func TestReportBalances(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	_, err := e.svc.Journal.Deposit(DepositInput{Holding: "1200", Customer: "1400", Amount: "500", Asset: "EUR"})
	require.NoError(t, err)

	assert.Equal(t, []string{"EUR", "BTC"}, e.svc.Report.Assets())

	lines := e.svc.Report.Balances([]string{"EUR"})
	require.Len(t, lines, 4)
	assert.Equal(t, "1400", lines[0].Code)
	assert.Equal(t, "500", lines[0].Balance.String())

	assert.Len(t, e.svc.Report.Balances(nil), 8)

	for _, total := range e.svc.Report.TrialBalance(nil) {
		assert.True(t, total.Balanced(), total.Asset)
	}
}

func TestLoadScenario(t *testing.T) {
	e := newEnv(t)

	doc, err := scenario.LoadFile("../scenario/testdata/exchange.yaml")
	require.NoError(t, err)

	res, err := e.svc.Load(doc)
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Accounts: 5, Journals: 3}, res)

	e.reopen(t)
	assert.Equal(t, "179.15", e.balance(t, "1400", "EUR"))
	assert.Equal(t, "0.027", e.balance(t, "8400", "BTC"))

	_, err = e.svc.Load(doc)
	assert.ErrorIs(t, err, ledger.ErrDuplicateCode)
}

func TestOpenRejectsBadFeeRate(t *testing.T) {
	repo, err := store.NewStore(filepath.Join(t.TempDir(), "ledger.db"), migrations.FS)
	require.NoError(t, err)
	defer repo.Close()

	cfg := config.NewDefault()
	cfg.Fees.Rate = "lots"
	_, err = Open(repo, cfg, nil)
	assert.Error(t, err)
}
