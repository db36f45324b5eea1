package service

import (
	"fmt"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/scenario"
)

// LoadResult counts what a scenario load created.
type LoadResult struct {
	Accounts int
	Journals int
}

// Load creates the scenario's accounts and posts its journals through the
// regular services, so everything is persisted. It stops at the first error;
// what was created before it stays.
func (s *Service) Load(doc *scenario.Document) (LoadResult, error) {
	var res LoadResult

	for _, acc := range doc.Accounts {
		typ, err := ledger.ParseAccountType(acc.Type)
		if err != nil {
			return res, fmt.Errorf("account '%s': %w", acc.Code, err)
		}
		if _, err := s.Account.CreateAccount(acc.Code, acc.Name, typ, acc.Currencies); err != nil {
			return res, err
		}
		res.Accounts++
	}

	for i, j := range doc.Journals {
		input := JournalInput{Description: j.Description}
		for _, r := range j.Records {
			input.Records = append(input.Records, RecordInput{
				Account: r.Account,
				Debit:   r.Debit,
				Credit:  r.Credit,
				Asset:   r.Asset,
				Memo:    r.Memo,
			})
		}
		if _, err := s.Journal.Post(input); err != nil {
			return res, fmt.Errorf("journal #%d (%s): %w", i+1, j.Description, err)
		}
		res.Journals++
	}
	return res, nil
}
