// Package scenario reads ledger fixtures from YAML: a set of accounts and the
// journals to post against them. Amounts are decimal strings so no float ever
// touches a balance.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hance08/ledger/internal/ledger"
	"github.com/hance08/ledger/internal/money"
)

type Document struct {
	Accounts []Account `yaml:"accounts"`
	Journals []Journal `yaml:"journals"`
}

type Account struct {
	Code       string   `yaml:"code"`
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Currencies []string `yaml:"currencies,omitempty"`
}

type Journal struct {
	Description string   `yaml:"description"`
	Records     []Record `yaml:"records"`
}

type Record struct {
	Account string `yaml:"account"`
	Debit   string `yaml:"debit,omitempty"`
	Credit  string `yaml:"credit,omitempty"`
	Asset   string `yaml:"asset"`
	Memo    string `yaml:"memo,omitempty"`
}

// Amounts parses the debit and credit strings. Blank means zero.
func (r Record) Amounts() (debit, credit money.Money, err error) {
	if debit, err = money.Parse(r.Debit); err != nil {
		return money.Money{}, money.Money{}, fmt.Errorf("debit: %w", err)
	}
	if credit, err = money.Parse(r.Credit); err != nil {
		return money.Money{}, money.Money{}, fmt.Errorf("credit: %w", err)
	}
	return debit, credit, nil
}

func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(bytes.NewReader(data))
}

// ParseJournal reads a single journal document, the format of `journal post`.
func ParseJournal(r io.Reader) (*Journal, error) {
	var j Journal
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("failed to decode journal: %w", err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

func LoadJournalFile(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseJournal(bytes.NewReader(data))
}

// Validate checks the document shape. Balance and asset checks are left to
// the book.
func (d *Document) Validate() error {
	seen := make(map[string]bool)
	for i, acc := range d.Accounts {
		if strings.TrimSpace(acc.Code) == "" {
			return fmt.Errorf("account #%d: code is required", i+1)
		}
		if seen[acc.Code] {
			return fmt.Errorf("account '%s': %w", acc.Code, ledger.ErrDuplicateCode)
		}
		seen[acc.Code] = true
		if _, err := ledger.ParseAccountType(acc.Type); err != nil {
			return fmt.Errorf("account '%s': %w", acc.Code, err)
		}
	}
	for i, j := range d.Journals {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("journal #%d: %w", i+1, err)
		}
	}
	return nil
}

func (j *Journal) Validate() error {
	for i, r := range j.Records {
		if strings.TrimSpace(r.Account) == "" {
			return fmt.Errorf("record #%d: account is required", i+1)
		}
		if strings.TrimSpace(r.Asset) == "" {
			return fmt.Errorf("record #%d: asset is required", i+1)
		}
		if _, _, err := r.Amounts(); err != nil {
			return fmt.Errorf("record #%d: %w", i+1, err)
		}
	}
	return nil
}

// Build resolves the records against book and returns an uncommitted journal.
func (j *Journal) Build(book *ledger.Book) (*ledger.Journal, error) {
	journal := ledger.NewJournal(strings.TrimSpace(j.Description))
	for i, r := range j.Records {
		acc, err := book.GetAccount(strings.TrimSpace(r.Account))
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i+1, err)
		}
		debit, credit, err := r.Amounts()
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i+1, err)
		}
		asset := strings.ToUpper(strings.TrimSpace(r.Asset))
		if err := journal.AddRecord(acc, debit, credit, asset, r.Memo); err != nil {
			return nil, err
		}
	}
	return journal, nil
}
