package account

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/domain"
)

// DefaultOverdraftLimit is how far below zero a checking withdrawal may take the balance
const DefaultOverdraftLimit = 100.0

// CheckingAccount allows overdraft up to a fixed limit
type CheckingAccount struct {
	ledger
}

var _ domain.Account = (*CheckingAccount)(nil)

// NewCheckingAccount creates a CheckingAccount. The opening balance is not validated.
func NewCheckingAccount(balance decimal.Decimal) *CheckingAccount {
	a := &CheckingAccount{}
	a.open(domain.Checking, NewOverdraftRule(DefaultOverdraftLimit), balance)
	return a
}
