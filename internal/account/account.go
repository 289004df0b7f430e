// Package account implements the account variants and their withdrawal rules.
package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/domain"
)

// ErrUnknownAccountType is returned when an account type label names no variant
var ErrUnknownAccountType = errors.New("unknown account type")

// ledger holds the state every variant shares: one lock over balance and log
type ledger struct {
	id          uuid.UUID
	accountType domain.AccountType
	rule        domain.WithdrawalRule

	mu           deadlock.Mutex
	balance      decimal.Decimal
	transactions []domain.Transaction
}

func (l *ledger) open(accountType domain.AccountType, rule domain.WithdrawalRule, balance decimal.Decimal) {
	l.id = uuid.New()
	l.accountType = accountType
	l.rule = rule
	l.balance = balance
}

func (l *ledger) ID() uuid.UUID {
	return l.id
}

func (l *ledger) AccountType() domain.AccountType {
	return l.accountType
}

func (l *ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

func (l *ledger) Transactions() []domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	txns := make([]domain.Transaction, len(l.transactions))
	copy(txns, l.transactions)
	return txns
}

func (l *ledger) Deposit(amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.depositLocked(amount, domain.Deposit)
}

func (l *ledger) Withdraw(amount decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.withdrawLocked(amount, domain.Withdraw)
}

func (l *ledger) Lock() {
	l.mu.Lock()
}

func (l *ledger) Unlock() {
	l.mu.Unlock()
}

func (l *ledger) TransferOutLocked(amount decimal.Decimal) bool {
	return l.withdrawLocked(amount, domain.TransferSent)
}

func (l *ledger) TransferInLocked(amount decimal.Decimal) {
	l.depositLocked(amount, domain.TransferReceived)
}

// depositLocked adds amount when it is positive and logs it as txType.
// Non-positive amounts are a no-op.
func (l *ledger) depositLocked(amount decimal.Decimal, txType domain.TransactionType) {
	if !amount.IsPositive() {
		return
	}

	l.balance = l.balance.Add(amount)
	l.record(txType, amount)
}

// withdrawLocked subtracts amount if the withdrawal rule allows it and logs it
// as txType. A refused withdrawal leaves balance and log untouched.
func (l *ledger) withdrawLocked(amount decimal.Decimal, txType domain.TransactionType) bool {
	if !l.rule.CanWithdraw(l.balance, amount) {
		return false
	}

	l.balance = l.balance.Sub(amount)
	l.record(txType, amount)
	return true
}

func (l *ledger) record(txType domain.TransactionType, amount decimal.Decimal) {
	l.transactions = append(l.transactions, domain.NewTransaction(txType, amount))
}

// ParseType maps a label such as "checking" or "Saving" to its account type
func ParseType(label string) (domain.AccountType, error) {
	for _, t := range []domain.AccountType{domain.Checking, domain.Saving} {
		if strings.EqualFold(strings.TrimSpace(label), string(t)) {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAccountType, label)
}

// New creates an account of the given type with the given opening balance
func New(accountType domain.AccountType, balance decimal.Decimal) (domain.Account, error) {
	switch accountType {
	case domain.Checking:
		return NewCheckingAccount(balance), nil
	case domain.Saving:
		return NewSavingAccount(balance), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, accountType)
	}
}
