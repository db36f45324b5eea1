package ledger

import (
	"fmt"
	"strings"
)

// Replay rebuilds the ledger from scratch: every account is copied with zero
// balances and its enabled assets, then the committed history is re-applied
// in order. The receiver is not modified.
func (b *Book) Replay() (*Book, error) {
	b.mu.RLock()
	accounts := append([]*Account(nil), b.accounts...)
	history := append([]*Journal(nil), b.journals...)
	fresh := &Book{
		index:      make(map[string]*Account, len(accounts)),
		currencies: append([]string(nil), b.currencies...),
		logger:     b.logger,
	}
	b.mu.RUnlock()

	for _, acc := range accounts {
		fresh.register(acc.blankCopy())
	}

	for _, j := range history {
		copied := RestoreJournal(j.ID(), j.Description(), j.CreatedAt())
		for _, r := range j.All() {
			target, ok := fresh.index[r.Account.Code()]
			if !ok {
				return nil, fmt.Errorf("replay journal %s: account '%s': %w", j.ID(), r.Account.Code(), ErrUnknownAccount)
			}
			if err := copied.AddRecord(target, r.Debit, r.Credit, r.Asset, r.Description); err != nil {
				return nil, err
			}
		}

		if err := fresh.AddJournal(copied); err != nil {
			return nil, fmt.Errorf("replay journal %s: %w", j.ID(), err)
		}
	}

	return fresh, nil
}

// Verify replays the history and compares every balance with the live state.
func (b *Book) Verify() error {
	replayed, err := b.Replay()
	if err != nil {
		return err
	}

	var diffs []string
	for _, acc := range b.Accounts() {
		copied, err := replayed.GetAccount(acc.Code())
		if err != nil {
			return err
		}
		for _, asset := range acc.Assets() {
			want, _ := acc.Balance(asset)
			got, err := copied.Balance(asset)
			if err != nil || !got.Equal(want) {
				diffs = append(diffs, fmt.Sprintf("%s/%s book %s replay %s", acc.Code(), asset, want, got))
			}
		}
	}

	if len(diffs) > 0 {
		return fmt.Errorf("%w: %s", ErrReplayMismatch, strings.Join(diffs, "; "))
	}
	return nil
}
