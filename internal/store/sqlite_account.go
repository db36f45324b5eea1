package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// CreateAccount inserts the account and its currencies. Position follows
// insertion order, which is also the order the ledger reports in.
func (s *Store) CreateAccount(acc Account) error {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (code, name, type, position)
        VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM accounts));
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	if _, err = stmt.Exec(acc.Code, acc.Name, acc.Type); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create account '%s': %w", acc.Code, ErrAccountExists)
		}
		if isConstraintViolation(err) {
			return fmt.Errorf("failed to create account '%s': %w", acc.Code, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	for _, asset := range acc.Currencies {
		if err := s.EnableCurrency(acc.Code, asset); err != nil {
			return err
		}
	}

	return nil
}

// EnableCurrency adds asset to the account. Enabling an asset twice is a no-op.
func (s *Store) EnableCurrency(code, asset string) error {
	_, err := s.db.Exec(`
        INSERT OR IGNORE INTO account_currencies (account_code, asset, position)
        VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM account_currencies WHERE account_code = ?));
    `, code, asset, code)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("failed to enable %s on account '%s': %w", asset, code, ErrRecordNotFound)
		}
		return fmt.Errorf("failed to enable currency: %w", err)
	}
	return nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT code, name, type, position
        FROM accounts
        ORDER BY position
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}

	accounts, err := s.scanAccounts(rows)
	_ = rows.Close()
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if acc.Currencies, err = s.getCurrencies(acc.Code); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

func (s *Store) GetAccountByCode(code string) (*Account, error) {
	row := s.db.QueryRow("SELECT code, name, type, position FROM accounts WHERE code = ?", code)

	acc := &Account{}
	err := row.Scan(&acc.Code, &acc.Name, &acc.Type, &acc.Position)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s' doesn't exist: %w", code, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", code, err)
	}

	if acc.Currencies, err = s.getCurrencies(code); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Store) AccountExists(code string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE code = ?)", code)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (s *Store) getCurrencies(code string) ([]string, error) {
	rows, err := s.db.Query(`
        SELECT asset
        FROM account_currencies
        WHERE account_code = ?
        ORDER BY position
    `, code)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var assets []string
	for rows.Next() {
		var asset string
		if err := rows.Scan(&asset); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*Account, error) {
	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		if err := rows.Scan(&acc.Code, &acc.Name, &acc.Type, &acc.Position); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
