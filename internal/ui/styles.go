package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/ledger/internal/ledger"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green separator line.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// ColorByType paints s the way account lists show the account's type:
// assets and revenue green, liabilities and expenses red, equity gray.
func ColorByType(typ ledger.AccountType, s string) string {
	switch typ {
	case ledger.TypeAsset, ledger.TypeIncome:
		return pterm.Green(s)
	case ledger.TypeLiability, ledger.TypeExpense:
		return pterm.Red(s)
	case ledger.TypeEquity:
		return pterm.Gray(s)
	default:
		return s
	}
}
