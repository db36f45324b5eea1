package views

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/ui"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

// Render prints one row per account and enabled asset.
func (v *AccountListView) Render(accounts []*ledger.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"Code", "Name", "Type", "Asset", "Balance"}}

	for _, acc := range accounts {
		assets := acc.Assets()
		if len(assets) == 0 {
			tableData = append(tableData, []string{
				ui.ColorByType(acc.Type(), acc.Code()),
				ui.ColorByType(acc.Type(), acc.Name()),
				ui.ColorByType(acc.Type(), string(acc.Type())),
				"-", "-",
			})
			continue
		}

		for i, asset := range assets {
			bal, err := acc.Balance(asset)
			if err != nil {
				return err
			}

			code, name, typ := "", "", ""
			if i == 0 {
				code = ui.ColorByType(acc.Type(), acc.Code())
				name = ui.ColorByType(acc.Type(), acc.Name())
				typ = ui.ColorByType(acc.Type(), string(acc.Type()))
			}
			tableData = append(tableData, []string{
				code, name, typ, asset,
				ui.ColorByType(acc.Type(), strings.TrimSpace(ledger.FormatBalance(bal))),
			})
		}
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
