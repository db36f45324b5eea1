package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStore map[string]bool

func (f fakeStore) AccountExists(code string) (bool, error) {
	if code == "boom" {
		return false, errors.New("db down")
	}
	return f[code], nil
}

func TestValidateAccountName(t *testing.T) {
	assert.NoError(t, ValidateAccountName("Account A"))
	assert.Error(t, ValidateAccountName("   "))
	assert.Error(t, ValidateAccountName("Assets"))
	assert.Error(t, ValidateAccountName(42))
}

func TestValidateAccountCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"1400", false},
		{"cust-1.a", false},
		{"", true},
		{"14 00", true},
		{"1400/1", true},
		{"12345678901234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := ValidateAccountCode(tt.code)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNewCode(t *testing.T) {
	v := NewAccountValidator(fakeStore{"1200": true})

	assert.NoError(t, v.ValidateNewCode("1400"))
	assert.ErrorContains(t, v.ValidateNewCode("1200"), "already exists")
	assert.ErrorContains(t, v.ValidateNewCode("boom"), "db down")
}

func TestCurrencies(t *testing.T) {
	assert.Equal(t, []string{"EUR", "BTC"}, SplitCurrencies(" eur, btc ,EUR,"))
	assert.Empty(t, SplitCurrencies(""))

	assert.NoError(t, ValidateCurrencyList("EUR, BTC"))
	assert.NoError(t, ValidateCurrencyList(""))
	assert.Error(t, ValidateCurrencyList("EUR, B"))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("320.85"))
	assert.Error(t, ValidateAmount(""))
	assert.Error(t, ValidateAmount("abc"))
	assert.Error(t, ValidateAmount("0"))
	assert.Error(t, ValidateAmount("-1"))
}
