package journal

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/scenario"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/views"
)

type postFlags struct {
	File string
	Yes  bool
}

type PostCommandRunner struct {
	app   *app.App
	flags *postFlags
}

func NewPostCmd(application *app.App) *cobra.Command {
	flags := &postFlags{}

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a journal from a YAML file",
		Long: `Post a journal described in a YAML file. The journal is committed only if
every account and asset is known and debits equal credits per asset.`,
		Example: `  ledger journal post -f deposit.yaml

  # deposit.yaml
  description: Deposit 500 EUR to A
  records:
    - {account: "1200", debit: "500", asset: EUR}
    - {account: "1400", credit: "500", asset: EUR}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &PostCommandRunner{app: application, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "YAML file with the journal ('-' reads stdin)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Post without asking for confirmation")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (r *PostCommandRunner) Run() error {
	var (
		entry *scenario.Journal
		err   error
	)
	if r.flags.File == "-" {
		entry, err = scenario.ParseJournal(os.Stdin)
	} else {
		entry, err = scenario.LoadJournalFile(r.flags.File)
	}
	if err != nil {
		return err
	}

	book := r.app.Service.Book()
	preview, err := entry.Build(book)
	if err != nil {
		return err
	}
	if err := views.RenderJournalPreview(preview); err != nil {
		return err
	}
	if err := book.Check(preview); err != nil {
		return err
	}

	if !r.flags.Yes {
		confirmed, err := ui.Confirm("Post this journal?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("journal posting cancelled")
		}
	}

	if err := r.app.Service.Journal.Commit(preview); err != nil {
		return err
	}

	pterm.Success.Printf("Journal %s posted\n", preview.ID())
	return nil
}
