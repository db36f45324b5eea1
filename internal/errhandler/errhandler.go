package errhandler

import (
	"errors"
	"os"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/hance08/ledger/internal/ledger"
)

// IsInterrupt reports whether err comes from the user aborting a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// HandleError prints err for the terminal user and returns the exit code.
func HandleError(err error) int {
	var unbalanced *ledger.UnbalancedJournalError
	if errors.As(err, &unbalanced) {
		pterm.Error.Println("Journal rejected: debits and credits differ")
		tableData := pterm.TableData{{"Asset", "Debit", "Credit", "Difference"}}
		for _, imb := range unbalanced.Imbalances {
			tableData = append(tableData, []string{
				imb.Asset, imb.Debit.String(), imb.Credit.String(), imb.Difference.String(),
			})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		return 1
	}

	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	pterm.Error.Println(capitalize(err.Error()))
	return 1
}

// Exit handles err and terminates the process.
func Exit(err error) {
	os.Exit(HandleError(err))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
