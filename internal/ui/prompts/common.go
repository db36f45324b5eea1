package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hance08/ledger/internal/validation"
)

// PromptAmount asks for a positive decimal amount of asset.
func PromptAmount(title, asset string) (string, error) {
	var amount string

	err := huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("Decimal amount in %s, e.g. 320.85", asset)).
		Value(&amount).
		Validate(func(s string) error { return validation.ValidateAmount(s) }).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(amount), nil
}

func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptInput asks for one line of text. An empty answer falls back to
// fallback, which is also shown as the placeholder.
func PromptInput(title, fallback string, validator func(string) error) (string, error) {
	var value string

	input := huh.NewInput().
		Title(title).
		Placeholder(fallback).
		Value(&value)
	if validator != nil {
		input.Validate(withFallback(fallback, validator))
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return value, nil
}

// withFallback accepts a blank answer when there is a fallback to use instead.
func withFallback(fallback string, validator func(string) error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" && fallback != "" {
			return nil
		}
		return validator(s)
	}
}
