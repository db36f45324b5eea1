package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/ui"
)

// RenderBalanceReport prints one section per asset, each line as
// "code name  balance" with four decimals, then the trial balance check.
func RenderBalanceReport(lines []ledger.BalanceLine, totals []ledger.AssetTotal) error {
	if len(lines) == 0 {
		pterm.Warning.Println("No balances to report")
		return nil
	}

	current := ""
	var tableData pterm.TableData
	flush := func() error {
		if len(tableData) == 0 {
			return nil
		}
		err := pterm.DefaultTable.WithData(tableData).WithRightAlignment().Render()
		tableData = nil
		return err
	}

	for _, l := range lines {
		if l.Asset != current {
			if err := flush(); err != nil {
				return err
			}
			current = l.Asset
			pterm.Println()
			ui.PrintL2Title("%s", current)
		}
		tableData = append(tableData, []string{
			ui.ColorByType(l.Type, l.Label),
			ui.ColorByType(l.Type, l.Formatted),
		})
	}
	if err := flush(); err != nil {
		return err
	}

	pterm.Println()
	for _, t := range totals {
		if t.Balanced() {
			pterm.Success.Printf("%s balanced (%s)\n", t.Asset, t.DebitNormal.StringFixed(ledger.ReportPlaces))
		} else {
			pterm.Warning.Printf("%s out of balance: debit-normal %s, credit-normal %s\n",
				t.Asset, t.DebitNormal.StringFixed(ledger.ReportPlaces), t.CreditNormal.StringFixed(ledger.ReportPlaces))
		}
	}
	return nil
}
