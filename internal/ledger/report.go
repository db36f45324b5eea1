package ledger

import (
	"fmt"

	"github.com/hance08/ledger/internal/money"
)

// ReportPlaces is the number of decimals shown in balance reports.
const ReportPlaces int32 = 4

// BalanceLine is one row of a balance report.
type BalanceLine struct {
	Label     string
	Code      string
	Name      string
	Type      AccountType
	Asset     string
	Balance   money.Money
	Formatted string
}

// Report lists, for each requested asset, every account that has the asset
// enabled, in registration order. It never mutates the book and reads the
// whole report under one lock so no commit is observed halfway.
func Report(book *Book, assets []string) []BalanceLine {
	book.mu.RLock()
	defer book.mu.RUnlock()

	var lines []BalanceLine
	for _, asset := range assets {
		for _, acc := range book.accounts {
			bal, err := acc.Balance(asset)
			if err != nil {
				continue
			}
			lines = append(lines, BalanceLine{
				Label:     acc.String(),
				Code:      acc.Code(),
				Name:      acc.Name(),
				Type:      acc.Type(),
				Asset:     asset,
				Balance:   bal,
				Formatted: FormatBalance(bal),
			})
		}
	}
	return lines
}

// FormatBalance renders a balance right-aligned in ten columns with four decimals.
func FormatBalance(m money.Money) string {
	return fmt.Sprintf("%10s", m.StringFixed(ReportPlaces))
}

// AssetTotal is the sum of debit-normal and credit-normal balances of one asset.
type AssetTotal struct {
	Asset        string
	DebitNormal  money.Money
	CreditNormal money.Money
}

// Balanced reports whether the two sides of the trial balance agree.
func (t AssetTotal) Balanced() bool {
	return t.DebitNormal.Equal(t.CreditNormal)
}

// TrialBalance sums balances per asset on each side of the accounting
// equation. With only balanced journals committed both sides are equal.
func TrialBalance(book *Book, assets []string) []AssetTotal {
	lines := Report(book, assets)

	totals := make([]AssetTotal, 0, len(assets))
	for _, asset := range assets {
		t := AssetTotal{Asset: asset, DebitNormal: money.Zero(), CreditNormal: money.Zero()}
		for _, l := range lines {
			if l.Asset != asset {
				continue
			}
			if l.Type.DebitNormal() {
				t.DebitNormal = t.DebitNormal.Add(l.Balance)
			} else {
				t.CreditNormal = t.CreditNormal.Add(l.Balance)
			}
		}
		totals = append(totals, t)
	}
	return totals
}
