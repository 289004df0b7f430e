package account

import (
	"github.com/shopspring/decimal"
)

// OverdraftRule allows the balance to go negative down to -Limit
type OverdraftRule struct {
	Limit decimal.Decimal
}

// NewOverdraftRule creates a new OverdraftRule with the given limit
func NewOverdraftRule(limit float64) *OverdraftRule {
	return &OverdraftRule{
		Limit: decimal.NewFromFloat(limit),
	}
}

// CanWithdraw implements the domain.WithdrawalRule interface
func (r *OverdraftRule) CanWithdraw(balance, amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	return balance.Add(r.Limit).GreaterThanOrEqual(amount)
}

// BalanceRule only pays out what the account actually holds
type BalanceRule struct{}

// NewBalanceRule creates a new BalanceRule
func NewBalanceRule() *BalanceRule {
	return &BalanceRule{}
}

// CanWithdraw implements the domain.WithdrawalRule interface
func (r *BalanceRule) CanWithdraw(balance, amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	return balance.GreaterThanOrEqual(amount)
}
