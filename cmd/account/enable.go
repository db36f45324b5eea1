package account

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
)

func NewEnableCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "enable <code> <asset>...",
		Short:   "Let an account hold more assets",
		Example: `  ledger account enable 1201 BTC ETH`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			for _, asset := range args[1:] {
				if err := application.Service.Account.EnableCurrency(code, asset); err != nil {
					return err
				}
			}

			acc, err := application.Service.Account.GetAccount(code)
			if err != nil {
				return err
			}
			pterm.Success.Printf("%s now holds %s\n", strings.TrimSpace(acc.String()), strings.Join(acc.Assets(), ", "))
			return nil
		},
	}
}
