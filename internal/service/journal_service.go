package service

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/id"
	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/money"
	"github.com/hance08/ledger/internal/store"
)

type JournalService struct {
	repo   store.Repository
	book   *ledger.Book
	fees   FeeConfig
	logger *zap.Logger

	// serializes check, persist and commit
	mu sync.Mutex
}

func NewJournalService(repo store.Repository, book *ledger.Book, fees FeeConfig, logger *zap.Logger) *JournalService {
	return &JournalService{repo: repo, book: book, fees: fees, logger: logger}
}

// Post resolves the input against the book and commits it.
func (js *JournalService) Post(input JournalInput) (*ledger.Journal, error) {
	journal := ledger.NewJournal(strings.TrimSpace(input.Description))

	for i, r := range input.Records {
		acc, err := js.book.GetAccount(strings.TrimSpace(r.Account))
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i+1, err)
		}
		debit, err := money.Parse(r.Debit)
		if err != nil {
			return nil, fmt.Errorf("record #%d debit: %w", i+1, err)
		}
		credit, err := money.Parse(r.Credit)
		if err != nil {
			return nil, fmt.Errorf("record #%d credit: %w", i+1, err)
		}
		asset := strings.ToUpper(strings.TrimSpace(r.Asset))
		if err := journal.AddRecord(acc, debit, credit, asset, r.Memo); err != nil {
			return nil, err
		}
	}

	if err := js.Commit(journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// Deposit books money coming in (or going out with Withdraw) between a
// holding account and a customer account.
func (js *JournalService) Deposit(in DepositInput) (*ledger.Journal, error) {
	holding, err := js.book.GetAccount(in.Holding)
	if err != nil {
		return nil, err
	}
	customer, err := js.book.GetAccount(in.Customer)
	if err != nil {
		return nil, err
	}
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, err
	}

	asset := strings.ToUpper(strings.TrimSpace(in.Asset))
	desc := in.Description
	if desc == "" {
		verb := "Deposit"
		if in.Withdraw {
			verb = "Withdraw"
		}
		desc = fmt.Sprintf("%s %s %s %s %s", verb, amount, asset, direction(in.Withdraw), customer.Name())
	}

	d := ledger.Deposit{Holding: holding, Customer: customer, Amount: amount, Asset: asset, Description: desc}
	build := ledger.BuildDeposit
	if in.Withdraw {
		build = ledger.BuildWithdrawal
	}

	journal, err := build(d)
	if err != nil {
		return nil, err
	}
	if err := js.Commit(journal); err != nil {
		return nil, err
	}
	return journal, nil
}

func direction(withdraw bool) string {
	if withdraw {
		return "from"
	}
	return "to"
}

// Exchange swaps Amount of Asset held by the seller against Price of
// PriceAsset held by the buyer, charging both sides the fee rate.
func (js *JournalService) Exchange(in ExchangeInput) (*ledger.Journal, error) {
	seller, err := js.book.GetAccount(in.Seller)
	if err != nil {
		return nil, fmt.Errorf("seller: %w", err)
	}
	buyer, err := js.book.GetAccount(in.Buyer)
	if err != nil {
		return nil, fmt.Errorf("buyer: %w", err)
	}

	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, err
	}
	price, err := money.Parse(in.Price)
	if err != nil {
		return nil, err
	}

	rate := js.fees.Rate
	if strings.TrimSpace(in.FeeRate) != "" {
		if rate, err = money.ParseRate(in.FeeRate); err != nil {
			return nil, err
		}
	}

	var feeAccount *ledger.Account
	if in.FeeAccount != "" {
		if feeAccount, err = js.book.GetAccount(in.FeeAccount); err != nil {
			return nil, fmt.Errorf("fee account: %w", err)
		}
	}

	journal, err := ledger.BuildExchange(ledger.Exchange{
		Seller:      seller,
		Buyer:       buyer,
		FeeAccount:  feeAccount,
		Asset:       strings.ToUpper(strings.TrimSpace(in.Asset)),
		Amount:      amount,
		PriceAsset:  strings.ToUpper(strings.TrimSpace(in.PriceAsset)),
		Price:       price,
		FeeRate:     rate,
		FeePlaces:   &js.fees.Places,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if err := js.Commit(journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// Commit validates the journal against the book, persists it and applies it.
// Nothing is written when validation fails.
func (js *JournalService) Commit(journal *ledger.Journal) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if err := js.book.Check(journal); err != nil {
		return err
	}

	header := store.Journal{
		ID:          journal.ID(),
		Description: journal.Description(),
		CreatedAt:   journal.CreatedAt().UnixMilli(),
	}
	records := make([]store.Record, 0, journal.Len())
	for _, r := range journal.All() {
		records = append(records, store.Record{
			AccountCode: r.Account.Code(),
			Debit:       r.Debit,
			Credit:      r.Credit,
			Asset:       r.Asset,
			Memo:        r.Description,
		})
	}

	err := js.repo.ExecTx(func(repo store.Repository) error {
		_, err := repo.CreateJournal(header, records)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}

	if err := js.book.AddJournal(journal); err != nil {
		return err
	}

	js.logger.Info("journal posted",
		zap.String("id", journal.ID()),
		zap.String("description", journal.Description()),
		zap.Int("records", journal.Len()))
	return nil
}

// GetJournal looks up a committed journal by id.
func (js *JournalService) GetJournal(journalID string) (*ledger.Journal, error) {
	journalID = strings.ToUpper(strings.TrimSpace(journalID))
	if !id.Valid(journalID) {
		return nil, fmt.Errorf("'%s' is not a journal id: %w", journalID, store.ErrRecordNotFound)
	}
	for _, j := range js.book.Journals() {
		if j.ID() == journalID {
			return j, nil
		}
	}
	return nil, fmt.Errorf("journal %s: %w", journalID, store.ErrRecordNotFound)
}

// GetRecentJournals returns the newest journals first, optionally only those
// touching account.
func (js *JournalService) GetRecentJournals(account string, limit int) ([]*ledger.Journal, error) {
	if limit <= 0 {
		limit = constants.DefaultJournalLimit
	}

	var (
		rows []*store.Journal
		err  error
	)
	if account != "" {
		if _, err := js.book.GetAccount(account); err != nil {
			return nil, err
		}
		rows, err = js.repo.GetJournalsByAccount(account, limit)
	} else {
		rows, err = js.repo.GetRecentJournals(limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal history: %w", err)
	}

	index := make(map[string]*ledger.Journal)
	for _, j := range js.book.Journals() {
		index[j.ID()] = j
	}

	out := make([]*ledger.Journal, 0, len(rows))
	for _, row := range rows {
		if j, ok := index[row.ID]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

// Summarize classifies the journal and picks its headline amount: the largest
// debit, in its asset.
func (js *JournalService) Summarize(journal *ledger.Journal) JournalSummary {
	summary := JournalSummary{
		ID:          journal.ID(),
		CreatedAt:   journal.CreatedAt(),
		Description: journal.Description(),
		Type:        Classify(journal),
		Amount:      money.Zero(),
		Records:     journal.Len(),
	}

	for _, r := range journal.All() {
		if r.Debit.Cmp(summary.Amount) > 0 {
			summary.Amount = r.Debit
			summary.Asset = r.Asset
		}
	}
	return summary
}
