package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/money"
	"github.com/hance08/ledger/internal/store"
)

type Service struct {
	Account *AccountService
	Journal *JournalService
	Report  *ReportService

	book *ledger.Book
}

// Open rebuilds the in-memory book from the persisted history and wires the
// services around it.
func Open(repo store.Repository, cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	feeRate, err := money.ParseRate(cfg.Fees.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid fee rate: %w", err)
	}

	book := ledger.NewBook(
		ledger.WithLogger(logger.Named("book")),
		ledger.WithDefaultCurrencies(cfg.Currencies()...),
	)

	start := time.Now()
	if err := load(book, repo); err != nil {
		return nil, err
	}
	logger.Debug("book loaded",
		zap.Int("accounts", len(book.Accounts())),
		zap.Int("journals", len(book.Journals())),
		zap.Duration("took", time.Since(start)))

	return &Service{
		Account: NewAccountService(repo, book, cfg, logger),
		Journal: NewJournalService(repo, book, FeeConfig{Rate: feeRate, Places: cfg.Fees.Places}, logger),
		Report:  NewReportService(repo, book),
		book:    book,
	}, nil
}

func (s *Service) Book() *ledger.Book {
	return s.book
}

// FeeConfig is the exchange fee applied when a request doesn't override it.
type FeeConfig struct {
	Rate   decimal.Decimal
	Places int32
}

func load(book *ledger.Book, repo store.Repository) error {
	accounts, err := repo.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, acc := range accounts {
		typ, err := ledger.ParseAccountType(acc.Type)
		if err != nil {
			return fmt.Errorf("account '%s': %w", acc.Code, err)
		}
		account, err := ledger.NewAccount(acc.Name, typ, acc.Code)
		if err != nil {
			return err
		}
		if err := book.AddAccount(account, acc.Currencies...); err != nil {
			return err
		}
	}

	journals, err := repo.GetAllJournals()
	if err != nil {
		return fmt.Errorf("failed to load journals: %w", err)
	}
	for _, j := range journals {
		records, err := repo.GetRecordsByJournal(j.ID)
		if err != nil {
			return err
		}

		journal := ledger.RestoreJournal(j.ID, j.Description, time.UnixMilli(j.CreatedAt).UTC())
		for _, r := range records {
			acc, err := book.GetAccount(r.AccountCode)
			if err != nil {
				return fmt.Errorf("journal %s: %w", j.ID, err)
			}
			if err := journal.AddRecord(acc, r.Debit, r.Credit, r.Asset, r.Memo); err != nil {
				return err
			}
		}
		if err := book.AddJournal(journal); err != nil {
			return fmt.Errorf("replay of journal %s failed: %w", j.ID, err)
		}
	}
	return nil
}
