package account_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/account"
)

func TestOverdraftRule(t *testing.T) {
	rule := account.NewOverdraftRule(100.0)

	tests := []struct {
		name    string
		balance float64
		amount  float64
		want    bool
	}{
		{"within balance", 500, 100, true},
		{"exactly at overdraft limit", 500, 600, true},
		{"beyond overdraft limit", 500, 700, false},
		{"already overdrawn within limit", -50, 50, true},
		{"already overdrawn beyond limit", -50, 50.01, false},
		{"zero amount", 500, 0, false},
		{"negative amount", 500, -10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.CanWithdraw(decimal.NewFromFloat(tt.balance), decimal.NewFromFloat(tt.amount))
			if got != tt.want {
				t.Errorf("Expected CanWithdraw(%v, %v) to be %v, got %v", tt.balance, tt.amount, tt.want, got)
			}
		})
	}
}

func TestBalanceRule(t *testing.T) {
	rule := account.NewBalanceRule()

	tests := []struct {
		name    string
		balance float64
		amount  float64
		want    bool
	}{
		{"within balance", 1000, 50, true},
		{"whole balance", 1000, 1000, true},
		{"one cent over", 1000, 1000.01, false},
		{"negative balance", -1, 1, false},
		{"zero amount", 1000, 0, false},
		{"negative amount", 1000, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.CanWithdraw(decimal.NewFromFloat(tt.balance), decimal.NewFromFloat(tt.amount))
			if got != tt.want {
				t.Errorf("Expected CanWithdraw(%v, %v) to be %v, got %v", tt.balance, tt.amount, tt.want, got)
			}
		})
	}
}
