package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hance08/ledger/internal/validation"
)

func TestWithFallback(t *testing.T) {
	currencies := func(s string) error { return validation.ValidateCurrencyList(s) }

	withDefault := withFallback("EUR,BTC", currencies)
	assert.NoError(t, withDefault(""))
	assert.NoError(t, withDefault("  "))
	assert.NoError(t, withDefault("eth"))
	assert.Error(t, withDefault("E"))

	required := withFallback("", func(s string) error { return validation.ValidateAccountName(s) })
	assert.Error(t, required(""))
	assert.NoError(t, required("Hotwallet"))
}
