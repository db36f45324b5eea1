package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui"
)

func RenderJournalDetail(summary service.JournalSummary, journal *ledger.Journal) error {
	pterm.Println()
	ui.PrintL2Title("Journal Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", summary.ID},
		{"Date", summary.CreatedAt.Local().Format(constants.DateFormat)},
		{"Description", summary.Description},
		{"Type", string(summary.Type)},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Records")
	return renderRecords(journal)
}

// RenderJournalPreview shows an uncommitted journal and its per-asset totals.
func RenderJournalPreview(journal *ledger.Journal) error {
	pterm.DefaultSection.Println("Journal Summary")
	pterm.Printfln("Description: %s", journal.Description())

	if err := renderRecords(journal); err != nil {
		return err
	}

	for _, t := range journal.Totals() {
		if t.Balanced() {
			pterm.Success.Printf("%s balanced (debit = credit = %s)\n", t.Asset, t.Debit)
		} else {
			pterm.Warning.Printf("%s does not balance (debit %s, credit %s)\n", t.Asset, t.Debit, t.Credit)
		}
	}
	return nil
}

func renderRecords(journal *ledger.Journal) error {
	recordsData := pterm.TableData{
		{"Account", "Debit", "Credit", "Asset", "Memo"},
	}

	for _, r := range journal.All() {
		memo := r.Description
		if memo == "" {
			memo = "-"
		}

		debit, credit := "", ""
		if !r.Debit.IsZero() {
			debit = r.Debit.String()
		}
		if !r.Credit.IsZero() {
			credit = r.Credit.String()
		}

		recordsData = append(recordsData, []string{
			ui.ColorByType(r.Account.Type(), r.Account.Code()+" "+r.Account.Name()),
			debit,
			credit,
			r.Asset,
			memo,
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(recordsData).
		Render()
}
