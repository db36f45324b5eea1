package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/internal/validation"
)

type AccountService struct {
	repo   store.Repository
	book   *ledger.Book
	config *config.Config
	logger *zap.Logger
}

func NewAccountService(repo store.Repository, book *ledger.Book, cfg *config.Config, logger *zap.Logger) *AccountService {
	return &AccountService{repo: repo, book: book, config: cfg, logger: logger}
}

// CreateAccount persists the account and registers it in the book. Without
// currencies the configured defaults are enabled.
func (as *AccountService) CreateAccount(code, name string, typ ledger.AccountType, currencies []string) (*ledger.Account, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if err := validation.ValidateAccountCode(code); err != nil {
		return nil, err
	}
	if err := validation.ValidateAccountName(name); err != nil {
		return nil, err
	}

	currencies, err := as.normalizeCurrencies(currencies)
	if err != nil {
		return nil, err
	}

	account, err := ledger.NewAccount(name, typ, code)
	if err != nil {
		return nil, err
	}
	if _, err := as.book.GetAccount(code); err == nil {
		return nil, fmt.Errorf("account '%s': %w", code, ledger.ErrDuplicateCode)
	}

	err = as.repo.ExecTx(func(repo store.Repository) error {
		return repo.CreateAccount(store.Account{
			Code:       code,
			Name:       name,
			Type:       string(typ),
			Currencies: currencies,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := as.book.AddAccount(account, currencies...); err != nil {
		return nil, err
	}

	as.logger.Info("account created",
		zap.String("code", code),
		zap.String("type", string(typ)),
		zap.Strings("assets", currencies))
	return account, nil
}

// EnableCurrency lets the account hold asset. Enabling twice is a no-op.
func (as *AccountService) EnableCurrency(code, asset string) error {
	asset = strings.ToUpper(strings.TrimSpace(asset))
	if err := config.ValidateCurrency(asset); err != nil {
		return err
	}

	account, err := as.book.GetAccount(code)
	if err != nil {
		return err
	}
	if account.HasAsset(asset) {
		return nil
	}

	if err := as.repo.EnableCurrency(code, asset); err != nil {
		return err
	}
	account.EnableCurrency(asset)

	as.logger.Info("currency enabled", zap.String("code", code), zap.String("asset", asset))
	return nil
}

func (as *AccountService) GetAllAccounts() []*ledger.Account {
	return as.book.Accounts()
}

func (as *AccountService) GetAccount(code string) (*ledger.Account, error) {
	return as.book.GetAccount(code)
}

func (as *AccountService) normalizeCurrencies(currencies []string) ([]string, error) {
	out := validation.SplitCurrencies(strings.Join(currencies, ","))
	if len(out) == 0 {
		return as.config.Currencies(), nil
	}
	for _, cur := range out {
		if err := config.ValidateCurrency(cur); err != nil {
			return nil, err
		}
	}
	return out, nil
}
