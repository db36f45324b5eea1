package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hance08/ledger/internal/money"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Fees       FeesConfig     `mapstructure:"fees"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currencies []string `mapstructure:"currencies"`
}

type FeesConfig struct {
	Rate   string `mapstructure:"rate"`
	Places int32  `mapstructure:"places"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currencies: []string{"EUR"}},
		Fees:     FeesConfig{Rate: "0.006", Places: money.DefaultPlaces},
		Log:      LogConfig{Level: "warn"},
	}
}

// Validate checks the values that cannot be fixed up with a default.
func (c *Config) Validate() error {
	if len(c.Defaults.Currencies) == 0 {
		return errors.New("defaults.currencies must list at least one currency")
	}
	for _, cur := range c.Defaults.Currencies {
		if err := ValidateCurrency(cur); err != nil {
			return fmt.Errorf("defaults.currencies: %w", err)
		}
	}

	rate, err := money.ParseRate(c.Fees.Rate)
	if err != nil {
		return fmt.Errorf("fees.rate: %w", err)
	}
	if rate.IsNegative() {
		return errors.New("fees.rate can't be negative")
	}
	if c.Fees.Places < 0 {
		return errors.New("fees.places can't be negative")
	}
	return nil
}

// Currencies returns the default currencies upper-cased.
func (c *Config) Currencies() []string {
	out := make([]string, 0, len(c.Defaults.Currencies))
	for _, cur := range c.Defaults.Currencies {
		out = append(out, strings.ToUpper(strings.TrimSpace(cur)))
	}
	return out
}

// LoadDotEnv loads a .env file so LEDGER_* variables can live next to the
// data. A missing default file is not an error; a missing explicit one is.
func LoadDotEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
		return nil
	}

	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// ValidateCurrency checks an asset symbol such as EUR or BTC.
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(currency)

	if currency == "" {
		return errors.New("currency code can't be empty")
	}
	if len(currency) < 2 || len(currency) > 10 {
		return fmt.Errorf("currency code '%s' must be 2 to 10 characters", currency)
	}
	for _, c := range currency {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return fmt.Errorf("currency code '%s' must contain only upper-case letters and digits", currency)
		}
	}
	return nil
}
