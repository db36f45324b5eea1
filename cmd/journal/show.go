package journal

import (
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ui/views"
)

type ShowCommandRunner struct {
	app *app.App
}

func NewShowCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <journal-id>",
		Short: "Show journal details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{app: application}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	j, err := r.app.Service.Journal.GetJournal(args[0])
	if err != nil {
		return err
	}

	return views.RenderJournalDetail(r.app.Service.Journal.Summarize(j), j)
}
