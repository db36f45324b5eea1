package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/scenario"
)

func NewLoadCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "load <scenario.yaml>",
		Short: "Create accounts and post journals from a scenario file",
		Long: `Load a YAML scenario: its accounts are created and its journals posted in
order. Loading stops at the first rejected journal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}

			res, err := application.Service.Load(doc)
			pterm.Info.Printf("Created %d accounts, posted %d journals\n", res.Accounts, res.Journals)
			if err != nil {
				return err
			}

			pterm.Success.Println("Scenario loaded")
			return nil
		},
	}
}
