package account

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/domain"
)

// DefaultInterestRate is the fraction of the balance credited by ApplyInterest
const DefaultInterestRate = 0.02

// SavingAccount earns interest and never overdraws
type SavingAccount struct {
	ledger
	interestRate decimal.Decimal
}

var _ domain.InterestBearing = (*SavingAccount)(nil)

// NewSavingAccount creates a SavingAccount. The opening balance is not validated.
func NewSavingAccount(balance decimal.Decimal) *SavingAccount {
	a := &SavingAccount{interestRate: decimal.NewFromFloat(DefaultInterestRate)}
	a.open(domain.Saving, NewBalanceRule(), balance)
	return a
}

func (s *SavingAccount) InterestRate() decimal.Decimal {
	return s.interestRate
}

// ApplyInterest credits balance * rate and logs the interest amount, not the new balance.
// It always succeeds, whatever the sign of the balance.
func (s *SavingAccount) ApplyInterest() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	interest := s.balance.Mul(s.interestRate)
	s.balance = s.balance.Add(interest)
	s.record(domain.Interest, interest)
	return interest
}
