package account

import (
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create accounts, enable assets on them and list balances.",
		Long:  `Create accounts, enable assets on them and list balances.`,
	}

	accountCmd.AddCommand(NewCreateCmd(application))
	accountCmd.AddCommand(NewListCmd(application))
	accountCmd.AddCommand(NewEnableCmd(application))

	return accountCmd
}
