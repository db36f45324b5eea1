package account

import (
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/ui/views"
)

type listFlags struct {
	Type string
}

type ListCommandRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long: `List all accounts in registration order with the balance of every
enabled asset. You can filter by account type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type (A, L, C, R, E)")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	accounts := r.app.Service.Account.GetAllAccounts()

	if r.flags.Type != "" {
		typ, err := ledger.ParseAccountType(r.flags.Type)
		if err != nil {
			return err
		}
		accounts = filterByType(accounts, typ)
	}

	return views.NewAccountListView().Render(accounts)
}

func filterByType(accounts []*ledger.Account, typ ledger.AccountType) []*ledger.Account {
	var filtered []*ledger.Account
	for _, acc := range accounts {
		if acc.Type() == typ {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
