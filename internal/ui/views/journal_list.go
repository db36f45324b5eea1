package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
)

type JournalListView struct{}

func NewJournalListView() *JournalListView {
	return &JournalListView{}
}

func (v *JournalListView) Render(items []service.JournalSummary, limit int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No journals found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent journals (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Description", "Amount", "Legs"},
	}

	for _, item := range items {
		amount := item.Amount.String() + " " + item.Asset

		var coloredType, coloredAmount string
		switch item.Type {
		case service.JournalTypeDeposit:
			coloredType = pterm.Green(string(item.Type))
			coloredAmount = pterm.Green(amount)
		case service.JournalTypeWithdrawal:
			coloredType = pterm.Red(string(item.Type))
			coloredAmount = pterm.Red(amount)
		case service.JournalTypeExchange, service.JournalTypeTransfer:
			coloredType = pterm.Blue(string(item.Type))
			coloredAmount = pterm.Blue(amount)
		default:
			coloredType = string(item.Type)
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			item.ID,
			item.CreatedAt.Local().Format(constants.DateFormat),
			coloredType,
			item.Description,
			coloredAmount,
			pterm.Sprint(item.Records),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d journals\n", len(items))
	return nil
}
