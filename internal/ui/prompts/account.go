package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/validation"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (ledger.AccountType, error) {
	options := make([]huh.Option[ledger.AccountType], 0, len(ledger.AccountTypes))
	for _, typ := range ledger.AccountTypes {
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", typ, typ.Name()), typ))
	}

	selected := ledger.TypeAsset
	err := huh.NewSelect[ledger.AccountType]().
		Title("Account Types:").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptAccountCode prompts for a new, unused account code
func PromptAccountCode(validator func(string) error) (string, error) {
	return PromptInput("Account Code (e.g. 1400):", "", validator)
}

// PromptAccountName prompts for account name with validation
func PromptAccountName() (string, error) {
	return PromptInput("Account Name:", "", func(s string) error {
		return validation.ValidateAccountName(s)
	})
}

// PromptCurrencies asks which assets the account may hold, as a comma
// separated list. Enter keeps the defaults.
func PromptCurrencies(defaults []string) ([]string, error) {
	def := strings.Join(defaults, ",")
	input, err := PromptInput(
		fmt.Sprintf("Currencies (default: %s):", def),
		def,
		func(s string) error { return validation.ValidateCurrencyList(s) },
	)
	if err != nil {
		return nil, fmt.Errorf("input cancelled: %w", err)
	}
	return validation.SplitCurrencies(input), nil
}

// PromptAccount picks one of accounts, optionally only those holding asset.
func PromptAccount(title string, accounts []*ledger.Account, asset string) (string, error) {
	var options []huh.Option[string]
	for _, acc := range accounts {
		if asset != "" && !acc.HasAsset(asset) {
			continue
		}
		options = append(options, huh.NewOption(strings.TrimSpace(acc.String()), acc.Code()))
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no account holds %s", asset)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}
