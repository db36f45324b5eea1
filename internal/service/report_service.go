package service

import (
	"fmt"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/store"
)

type ReportService struct {
	repo store.Repository
	book *ledger.Book
}

func NewReportService(repo store.Repository, book *ledger.Book) *ReportService {
	return &ReportService{repo: repo, book: book}
}

// Balances reports every account holding one of assets. No assets means every
// asset enabled anywhere, in first-enabled order.
func (rs *ReportService) Balances(assets []string) []ledger.BalanceLine {
	if len(assets) == 0 {
		assets = rs.Assets()
	}
	return ledger.Report(rs.book, assets)
}

func (rs *ReportService) TrialBalance(assets []string) []ledger.AssetTotal {
	if len(assets) == 0 {
		assets = rs.Assets()
	}
	return ledger.TrialBalance(rs.book, assets)
}

// Assets lists every asset enabled on at least one account.
func (rs *ReportService) Assets() []string {
	var out []string
	seen := make(map[string]bool)
	for _, acc := range rs.book.Accounts() {
		for _, asset := range acc.Assets() {
			if !seen[asset] {
				seen[asset] = true
				out = append(out, asset)
			}
		}
	}
	return out
}

// Verify replays the in-memory history and checks it against the database.
func (rs *ReportService) Verify() error {
	if err := rs.book.Verify(); err != nil {
		return err
	}

	persisted, err := rs.repo.GetAllJournals()
	if err != nil {
		return fmt.Errorf("failed to load journals: %w", err)
	}

	journals := rs.book.Journals()
	if len(persisted) != len(journals) {
		return fmt.Errorf("%w: book has %d journals, database %d",
			ledger.ErrReplayMismatch, len(journals), len(persisted))
	}
	for i, j := range journals {
		if persisted[i].ID != j.ID() {
			return fmt.Errorf("%w: journal #%d is %s in book, %s in database",
				ledger.ErrReplayMismatch, i+1, j.ID(), persisted[i].ID)
		}
	}
	return nil
}
