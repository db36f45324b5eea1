package account

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/validation"
)

type createFlags struct {
	Code       string
	Name       string
	Type       string
	Currencies []string
}

// AccountCreator manages the state and logic for creating an account
type AccountCreator struct {
	code        string
	name        string
	accountType ledger.AccountType
	currencies  []string

	app       *app.App
	validator *validation.AccountValidator
}

func NewCreateCmd(application *app.App) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create an account identified by a unique code. Every account has one of the
types A (Assets), L (Liabilities), C (Equity), R (Revenue) or E (Expenses)
and holds a balance per enabled asset.

Without flags an interactive wizard asks for each field.`,
		Example: `  ledger account create --code 1400 --name "Account A" --type L --currency EUR,BTC
  ledger account create -k 1200 -n ING7197307 -t A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator := &AccountCreator{
				app:       application,
				validator: validation.NewAccountValidator(application.Store),
			}

			hasFlags := cmd.Flags().Changed("code") ||
				cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("type")
			if hasFlags {
				return creator.FlagsMode(flags)
			}
			return creator.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Code, "code", "k", "", "Unique account code, e.g. 1400")
	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: A (Assets), L (Liabilities), C (Equity), R (Revenue), E (Expenses)")
	cmd.Flags().StringSliceVar(&flags.Currencies, "currency", nil, "Assets the account holds (defaults to the configured currencies)")

	return cmd
}

// FlagsMode builds an account from command-line flags
func (ac *AccountCreator) FlagsMode(flags *createFlags) error {
	if flags.Code == "" || flags.Name == "" || flags.Type == "" {
		return fmt.Errorf("--code, --name and --type are all required")
	}

	typ, err := ledger.ParseAccountType(flags.Type)
	if err != nil {
		return err
	}
	if err := validation.ValidateCurrencyList(strings.Join(flags.Currencies, ",")); err != nil {
		return err
	}

	ac.code = flags.Code
	ac.name = flags.Name
	ac.accountType = typ
	ac.currencies = validation.SplitCurrencies(strings.Join(flags.Currencies, ","))

	return ac.Save()
}

// InteractiveMode builds an account through interactive prompts
func (ac *AccountCreator) InteractiveMode() error {
	// Step 1: Select account type
	typ, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}
	ac.accountType = typ

	// Step 2: Code and name
	if ac.code, err = prompts.PromptAccountCode(func(s string) error { return ac.validator.ValidateNewCode(s) }); err != nil {
		return err
	}
	if ac.name, err = prompts.PromptAccountName(); err != nil {
		return err
	}

	// Step 3: Currencies
	if ac.currencies, err = prompts.PromptCurrencies(ac.app.Config.Defaults.Currencies); err != nil {
		return err
	}

	if err := ac.displaySummary(); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account creation cancelled")
	}

	return ac.Save()
}

func (ac *AccountCreator) displaySummary() error {
	return views.RenderAccountSummary(views.AccountSummaryItem{
		Code:       ac.code,
		Name:       ac.name,
		Type:       string(ac.accountType) + " - " + ac.accountType.Name(),
		Currencies: ac.currencies,
	})
}

// Save persists the account and registers it in the book
func (ac *AccountCreator) Save() error {
	acc, err := ac.app.Service.Account.CreateAccount(ac.code, ac.name, ac.accountType, ac.currencies)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return views.RenderAccountSuccess(acc.String(), acc.Assets())
}
