package views

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/hance08/ledger/internal/ui"
)

type AccountSummaryItem struct {
	Code       string
	Name       string
	Type       string
	Currencies []string
}

func RenderAccountSummary(data AccountSummaryItem) error {
	ui.Separator()

	currencies := strings.Join(data.Currencies, ", ")
	if currencies == "" {
		currencies = "(defaults)"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Code"), data.Code},
		{pterm.Blue("Name"), data.Name},
		{pterm.Blue("Type"), data.Type},
		{pterm.Blue("Currencies"), currencies},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(label string, assets []string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account"), label},
		{pterm.Blue("Assets"), strings.Join(assets, ", ")},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
