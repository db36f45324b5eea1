package service

import (
	"github.com/hance08/ledger/internal/ledger"
)

// Classify names the shape of a journal for list views. It looks at account
// types and assets only, never at descriptions.
func Classify(journal *ledger.Journal) JournalType {
	if journal.Len() == 0 {
		return JournalTypeOther
	}

	assets := make(map[string]bool)
	var (
		hasHolding       bool
		hasCustomer      bool
		holdingIncrease  bool
		assetOrLiabCnt   int
		incomeOrExpenses int
	)

	for _, r := range journal.All() {
		assets[r.Asset] = true

		switch r.Account.Type() {
		case ledger.TypeAsset:
			hasHolding = true
			assetOrLiabCnt++
			if r.Debit.Cmp(r.Credit) > 0 {
				holdingIncrease = true
			}
		case ledger.TypeLiability, ledger.TypeEquity:
			hasCustomer = true
			assetOrLiabCnt++
		case ledger.TypeIncome, ledger.TypeExpense:
			incomeOrExpenses++
		}
	}

	if len(assets) >= 2 && hasCustomer {
		return JournalTypeExchange
	}

	if hasHolding && hasCustomer && incomeOrExpenses == 0 {
		if holdingIncrease {
			return JournalTypeDeposit
		}
		return JournalTypeWithdrawal
	}

	if assetOrLiabCnt >= 2 && incomeOrExpenses == 0 {
		return JournalTypeTransfer
	}

	return JournalTypeOther
}
