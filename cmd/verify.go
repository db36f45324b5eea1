package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
)

func NewVerifyCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Replay the journal history and compare balances",
		Long: `Replay every committed journal into fresh accounts and check the result
matches the current balances and the stored history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Service.Report.Verify(); err != nil {
				return err
			}

			pterm.Success.Printf("%d journals replayed, balances match\n", len(application.Service.Book().Journals()))
			return nil
		},
	}
}
