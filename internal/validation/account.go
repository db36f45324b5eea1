package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/money"
)

// AccountStore is the slice of the repository the validator needs.
type AccountStore interface {
	AccountExists(code string) (bool, error)
}

// AccountValidator handles account validation logic
type AccountValidator struct {
	store AccountStore
}

func NewAccountValidator(store AccountStore) *AccountValidator {
	return &AccountValidator{store: store}
}

// ValidateAccountName validates a display name (without checking existence).
// Accepts any so it can be handed to prompt libraries directly.
func ValidateAccountName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("account name must be a string")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}
	if constants.ReservedNames[strings.ToLower(name)] {
		return fmt.Errorf("'%s' is a reserved section name", name)
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAccountCode checks the code format: letters, digits, '-' and '.'.
func ValidateAccountCode(val any) error {
	code, ok := val.(string)
	if !ok {
		return fmt.Errorf("account code must be a string")
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("account code can't be empty")
	}
	if len(code) > constants.MaxCodeLen {
		return fmt.Errorf("account code too long (max %d characters)", constants.MaxCodeLen)
	}
	for _, r := range code {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '.' {
			return fmt.Errorf("account code '%s' contains invalid character %q", code, r)
		}
	}
	return nil
}

// ValidateNewCode validates the format and makes sure the code is unused.
func (v *AccountValidator) ValidateNewCode(val any) error {
	if err := ValidateAccountCode(val); err != nil {
		return err
	}

	code := strings.TrimSpace(val.(string))
	exists, err := v.store.AccountExists(code)
	if err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if exists {
		return fmt.Errorf("account '%s' already exists", code)
	}
	return nil
}

// ValidateCurrencyList checks a comma separated list of asset codes.
// Empty is allowed (the configured defaults apply).
func ValidateCurrencyList(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("currency list must be a string")
	}

	for _, cur := range SplitCurrencies(input) {
		if err := config.ValidateCurrency(cur); err != nil {
			return err
		}
	}
	return nil
}

// SplitCurrencies turns "eur, btc" into [EUR BTC], dropping blanks and repeats.
func SplitCurrencies(input string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(input, ",") {
		cur := strings.ToUpper(strings.TrimSpace(part))
		if cur == "" || seen[cur] {
			continue
		}
		seen[cur] = true
		out = append(out, cur)
	}
	return out
}

// ValidateAmount validates a positive decimal amount.
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("amount can't be empty")
	}

	amount, err := money.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if amount.IsNegative() || amount.IsZero() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
