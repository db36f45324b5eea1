package ledger

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/hance08/ledger/internal/id"
	"github.com/hance08/ledger/internal/money"
)

// Record is one proposed leg of a journal.
type Record struct {
	Account     *Account
	Debit       money.Money
	Credit      money.Money
	Asset       string
	Description string
}

// AssetTotals holds the debit and credit sums of one asset.
type AssetTotals struct {
	Asset  string
	Debit  money.Money
	Credit money.Money
}

func (t AssetTotals) Balanced() bool {
	return t.Debit.Equal(t.Credit)
}

// Journal is an ordered batch of records committed as one unit. Records may be
// unbalanced while the journal is being built; balance is checked on commit.
type Journal struct {
	id          string
	description string
	createdAt   time.Time

	mu        sync.RWMutex
	records   []Record
	committed bool
}

func NewJournal(description string) *Journal {
	now := time.Now().UTC()
	return &Journal{
		id:          id.NewAt(now),
		description: description,
		createdAt:   now,
	}
}

// RestoreJournal rebuilds a journal with a known identity, e.g. when loading
// history from storage.
func RestoreJournal(journalID, description string, createdAt time.Time) *Journal {
	return &Journal{
		id:          journalID,
		description: description,
		createdAt:   createdAt,
	}
}

func (j *Journal) ID() string           { return j.id }
func (j *Journal) Description() string  { return j.description }
func (j *Journal) CreatedAt() time.Time { return j.createdAt }

// AddRecord appends a record. It does not validate balances.
func (j *Journal) AddRecord(account *Account, debit, credit money.Money, asset, description string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.committed {
		return fmt.Errorf("journal %s: %w", j.id, ErrJournalSealed)
	}

	j.records = append(j.records, Record{
		Account:     account,
		Debit:       debit,
		Credit:      credit,
		Asset:       asset,
		Description: description,
	})
	return nil
}

// Records returns a copy of the records in insertion order.
func (j *Journal) Records() []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return append([]Record(nil), j.records...)
}

// All iterates the records in insertion order. Each call starts over.
func (j *Journal) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range j.Records() {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.records)
}

func (j *Journal) Committed() bool {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.committed
}

// Totals sums debits and credits per asset in a single scan. Assets appear in
// the order they are first seen.
func (j *Journal) Totals() []AssetTotals {
	var totals []AssetTotals
	index := make(map[string]int)

	for _, r := range j.All() {
		i, ok := index[r.Asset]
		if !ok {
			i = len(totals)
			index[r.Asset] = i
			totals = append(totals, AssetTotals{Asset: r.Asset, Debit: money.Zero(), Credit: money.Zero()})
		}
		totals[i].Debit = totals[i].Debit.Add(r.Debit)
		totals[i].Credit = totals[i].Credit.Add(r.Credit)
	}
	return totals
}

func (j *Journal) seal() {
	j.mu.Lock()
	j.committed = true
	j.mu.Unlock()
}
