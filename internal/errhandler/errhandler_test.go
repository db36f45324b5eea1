package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/money"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	m.Run()
}

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(fmt.Errorf("input cancelled: %w", huh.ErrUserAborted)))
	assert.False(t, IsInterrupt(errors.New("disk full")))
	assert.False(t, IsInterrupt(errors.New("journal #2 (interrupted wire refund): rejected")))
}

func TestHandleErrorExitCodes(t *testing.T) {
	assert.Equal(t, 0, HandleError(terminal.InterruptErr))
	assert.Equal(t, 1, HandleError(errors.New("boom")))

	unbalanced := &ledger.UnbalancedJournalError{Imbalances: []ledger.Imbalance{{
		Asset:      "EUR",
		Debit:      money.FromInt(10),
		Credit:     money.FromInt(9),
		Difference: money.FromInt(1),
	}}}
	assert.Equal(t, 1, HandleError(fmt.Errorf("post: %w", unbalanced)))

	// A description mentioning an interrupt is still a failure.
	assert.Equal(t, 1, HandleError(fmt.Errorf("journal #1 (interrupted wire refund): %w", unbalanced)))
	assert.Equal(t, 1, HandleError(fmt.Errorf("journal #1 (interrupted wire refund): %w", ledger.ErrUnknownAsset)))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Account '1' exists", capitalize("account '1' exists"))
	assert.Equal(t, "", capitalize(""))
}
