package journal

import (
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
)

type listFlags struct {
	Account string
	Limit   int
}

type ListCommandRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent journals",
		Long: `List recent journals, newest first, with their type, headline amount and
number of records.`,
		Example: `  # List recent journals
  ledger journal list

  # Journals touching account 1400
  ledger journal list --account 1400 --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{app: application, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Only journals touching this account code")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultJournalLimit, "Maximum number of journals to show")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	journals, err := r.app.Service.Journal.GetRecentJournals(r.flags.Account, r.flags.Limit)
	if err != nil {
		return err
	}

	items := make([]service.JournalSummary, 0, len(journals))
	for _, j := range journals {
		items = append(items, r.app.Service.Journal.Summarize(j))
	}

	return views.NewJournalListView().Render(items, r.flags.Limit)
}
