package journal

import (
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
)

func NewJournalCmd(application *app.App) *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Post and inspect journals",
		Long:  "Post journals from YAML files, view their details or list recent ones.",
	}

	journalCmd.AddCommand(NewPostCmd(application))
	journalCmd.AddCommand(NewShowCmd(application))
	journalCmd.AddCommand(NewListCmd(application))

	return journalCmd
}
