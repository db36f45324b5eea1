package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hance08/ledger/internal/validation"
)

// PromptInitCurrencies runs on first start and asks for the assets new
// accounts get when none are given.
func PromptInitCurrencies(current []string) ([]string, error) {
	selection := current
	if len(selection) == 0 {
		selection = []string{"EUR"}
	}

	err := huh.NewMultiSelect[string]().
		Title("Welcome to ledger! Please pick the default currencies:").
		Description("New accounts can hold these assets unless you list others.").
		Options(
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("USD", "USD"),
			huh.NewOption("BTC", "BTC"),
			huh.NewOption("ETH", "ETH"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()
	if err != nil {
		return nil, err
	}

	var out []string
	other := false
	for _, s := range selection {
		if s == "Other" {
			other = true
			continue
		}
		out = append(out, s)
	}

	if other {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency codes:").
			Description("Comma separated, e.g. GBP,XRP").
			Value(&customInput).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("currency code is required")
				}
				return validation.ValidateCurrencyList(s)
			}).
			Run()
		if err != nil {
			return nil, err
		}
		out = append(out, validation.SplitCurrencies(customInput)...)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("at least one currency is required")
	}
	return validation.SplitCurrencies(strings.Join(out, ",")), nil
}
