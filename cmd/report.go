package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/views"
)

func NewReportCmd(application *app.App) *cobra.Command {
	var assets []string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print balances per asset",
		Long: `Print, for each asset, every account holding it with its balance to four
decimals, followed by a debit/credit check per asset.`,
		Example: `  ledger report --asset EUR --asset BTC`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := range assets {
				assets[i] = strings.ToUpper(strings.TrimSpace(assets[i]))
			}

			svc := application.Service.Report
			ui.PrintL1Title("Balances")
			return views.RenderBalanceReport(svc.Balances(assets), svc.TrialBalance(assets))
		},
	}

	cmd.Flags().StringSliceVarP(&assets, "asset", "a", nil, "Assets to report (default: all)")

	return cmd
}
