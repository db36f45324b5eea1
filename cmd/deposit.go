package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
)

type depositFlags struct {
	Holding     string
	Customer    string
	Amount      string
	Asset       string
	Description string
	Withdraw    bool
}

type depositRunner struct {
	app   *app.App
	flags *depositFlags
}

func NewDepositCmd(application *app.App) *cobra.Command {
	flags := &depositFlags{}

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Book a deposit (or withdrawal) for a customer",
		Long: `Book value arriving at a holding account (bank, wallet) for a customer:
the holding account is debited and the customer account credited.
With --withdraw the direction is reversed.

Missing flags are asked for interactively.`,
		Example: `  ledger deposit --holding 1200 --customer 1400 --amount 500 --asset EUR
  ledger deposit --holding 1201 --customer 1401 --amount 2 --asset BTC --withdraw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{app: application, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Holding, "holding", "", "Holding account code (bank or wallet)")
	cmd.Flags().StringVar(&flags.Customer, "customer", "", "Customer account code")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Amount, e.g. 500 or 0.125")
	cmd.Flags().StringVar(&flags.Asset, "asset", "", "Asset, e.g. EUR (defaults to the first configured currency)")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Journal description")
	cmd.Flags().BoolVar(&flags.Withdraw, "withdraw", false, "Book a withdrawal instead")

	return cmd
}

func (r *depositRunner) Run() error {
	f := r.flags
	if f.Asset == "" {
		f.Asset = r.app.Config.Defaults.Currencies[0]
	}
	f.Asset = strings.ToUpper(f.Asset)

	accounts := r.app.Service.Account.GetAllAccounts()
	var err error
	if f.Holding == "" {
		if f.Holding, err = prompts.PromptAccount("Holding account:", accounts, f.Asset); err != nil {
			return err
		}
	}
	if f.Customer == "" {
		if f.Customer, err = prompts.PromptAccount("Customer account:", accounts, f.Asset); err != nil {
			return err
		}
	}
	if f.Amount == "" {
		if f.Amount, err = prompts.PromptAmount("Amount:", f.Asset); err != nil {
			return err
		}
	}

	journal, err := r.app.Service.Journal.Deposit(service.DepositInput{
		Holding:     f.Holding,
		Customer:    f.Customer,
		Amount:      f.Amount,
		Asset:       f.Asset,
		Description: f.Description,
		Withdraw:    f.Withdraw,
	})
	if err != nil {
		return err
	}

	if err := views.RenderJournalPreview(journal); err != nil {
		return err
	}
	pterm.Success.Printf("Journal %s posted\n", journal.ID())
	return nil
}
