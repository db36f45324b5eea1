package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hance08/ledger/internal/money"
)

var errNonPositive = errors.New("amount must be positive")

// Deposit moves value into the ledger: the holding account (a bank or wallet)
// is debited and the customer account credited by the same amount.
type Deposit struct {
	Holding     *Account
	Customer    *Account
	Amount      money.Money
	Asset       string
	Description string
}

func BuildDeposit(d Deposit) (*Journal, error) {
	if d.Holding == nil || d.Customer == nil {
		return nil, fmt.Errorf("deposit: %w", ErrUnknownAccount)
	}
	if d.Amount.IsNegative() || d.Amount.IsZero() {
		return nil, fmt.Errorf("deposit: %w", errNonPositive)
	}

	j := NewJournal(d.Description)
	_ = j.AddRecord(d.Holding, d.Amount, money.Zero(), d.Asset, d.Description)
	_ = j.AddRecord(d.Customer, money.Zero(), d.Amount, d.Asset, d.Description)
	return j, nil
}

// BuildWithdrawal is the reverse of BuildDeposit.
func BuildWithdrawal(d Deposit) (*Journal, error) {
	if d.Holding == nil || d.Customer == nil {
		return nil, fmt.Errorf("withdrawal: %w", ErrUnknownAccount)
	}
	if d.Amount.IsNegative() || d.Amount.IsZero() {
		return nil, fmt.Errorf("withdrawal: %w", errNonPositive)
	}

	j := NewJournal(d.Description)
	_ = j.AddRecord(d.Customer, d.Amount, money.Zero(), d.Asset, d.Description)
	_ = j.AddRecord(d.Holding, money.Zero(), d.Amount, d.Asset, d.Description)
	return j, nil
}

// Exchange swaps Amount of Asset from Seller against Price of PriceAsset from
// Buyer. Each side pays a fee of FeeRate on the asset it receives, credited to
// FeeAccount. Fees are rounded half-to-even to FeePlaces decimals; a nil
// FeePlaces means money.DefaultPlaces.
type Exchange struct {
	Seller      *Account
	Buyer       *Account
	FeeAccount  *Account
	Asset       string
	Amount      money.Money
	PriceAsset  string
	Price       money.Money
	FeeRate     decimal.Decimal
	FeePlaces   *int32
	Description string
}

// Fees returns the fee charged on each leg: the seller's fee in PriceAsset and
// the buyer's fee in Asset.
func (x Exchange) Fees() (sellerFee, buyerFee money.Money) {
	places := money.DefaultPlaces
	if x.FeePlaces != nil {
		places = *x.FeePlaces
	}
	return x.Price.ScaleTo(x.FeeRate, places), x.Amount.ScaleTo(x.FeeRate, places)
}

func BuildExchange(x Exchange) (*Journal, error) {
	if x.Seller == nil || x.Buyer == nil {
		return nil, fmt.Errorf("exchange: %w", ErrUnknownAccount)
	}
	if x.Asset == x.PriceAsset {
		return nil, fmt.Errorf("exchange: both legs use %s", x.Asset)
	}
	if x.Amount.IsNegative() || x.Amount.IsZero() || x.Price.IsNegative() || x.Price.IsZero() {
		return nil, fmt.Errorf("exchange: %w", errNonPositive)
	}
	if x.FeeRate.IsNegative() {
		return nil, fmt.Errorf("exchange: fee rate %s is negative", x.FeeRate)
	}

	desc := x.Description
	if desc == "" {
		desc = fmt.Sprintf("exchange %s %s", x.Amount, x.Asset)
	}

	zero := money.Zero()
	j := NewJournal(desc)
	_ = j.AddRecord(x.Seller, x.Amount, zero, x.Asset, desc)
	_ = j.AddRecord(x.Seller, zero, x.Price, x.PriceAsset, desc)
	_ = j.AddRecord(x.Buyer, x.Price, zero, x.PriceAsset, desc)
	_ = j.AddRecord(x.Buyer, zero, x.Amount, x.Asset, desc)

	if x.FeeRate.IsZero() {
		return j, nil
	}
	if x.FeeAccount == nil {
		return nil, fmt.Errorf("exchange fee account: %w", ErrUnknownAccount)
	}

	sellerFee, buyerFee := x.Fees()
	feeDesc := "fee: " + desc
	_ = j.AddRecord(x.Seller, sellerFee, zero, x.PriceAsset, feeDesc)
	_ = j.AddRecord(x.FeeAccount, zero, sellerFee, x.PriceAsset, feeDesc)
	_ = j.AddRecord(x.Buyer, buyerFee, zero, x.Asset, feeDesc)
	_ = j.AddRecord(x.FeeAccount, zero, buyerFee, x.Asset, feeDesc)
	return j, nil
}
