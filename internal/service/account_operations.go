package service

import (
	"bytes"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/atm-ledger/internal/domain"
)

// AccountOperations orchestrates deposits, withdrawals and transfers. It holds
// no state; the user arguments are accepted for symmetry and reporting.
type AccountOperations struct {
	now func() time.Time
}

// NewAccountOperations creates a new AccountOperations
func NewAccountOperations() *AccountOperations {
	return &AccountOperations{
		now: time.Now,
	}
}

// Withdraw delegates to the account and returns its success flag unchanged
func (s *AccountOperations) Withdraw(user *domain.User, account domain.Account, amount decimal.Decimal) bool {
	return account.Withdraw(amount)
}

// Deposit delegates to the account
func (s *AccountOperations) Deposit(user *domain.User, account domain.Account, amount decimal.Decimal) {
	account.Deposit(amount)
}

// ApplyInterest credits interest on an interest-bearing account and returns the amount credited
func (s *AccountOperations) ApplyInterest(user *domain.User, account domain.InterestBearing) decimal.Decimal {
	return account.ApplyInterest()
}

// Transfer moves amount from sender to receiver.
//
// The sender is debited without a generic WITHDRAW entry and gets a
// TRANSFER_SENT entry instead; the receiver is credited without a DEPOSIT
// entry and gets a TRANSFER_RECEIVED entry. If the sender's withdrawal rule
// refuses the amount nothing changes on either side. Both accounts stay
// locked for the whole operation.
func (s *AccountOperations) Transfer(
	senderUser *domain.User,
	sender domain.Account,
	receiverUser *domain.User,
	receiver domain.Account,
	amount decimal.Decimal,
) bool {
	unlock := lockPair(sender, receiver)
	defer unlock()

	if !sender.TransferOutLocked(amount) {
		return false
	}

	// A receiver cannot refuse a positive credit, so no compensation step exists
	receiver.TransferInLocked(amount)

	return true
}

// Statement returns the balance and history of account as seen by its owner
func (s *AccountOperations) Statement(user *domain.User, account domain.Account) domain.Statement {
	return domain.Statement{
		Owner:        user.Name(),
		AccountID:    account.ID(),
		AccountType:  account.AccountType(),
		Balance:      account.Balance(),
		Transactions: account.Transactions(),
	}
}

// Summary builds a report covering every account of every given user
func (s *AccountOperations) Summary(users ...*domain.User) domain.Report {
	report := domain.Report{
		GeneratedAt: s.now(),
		Users:       make([]domain.UserSummary, 0, len(users)),
	}

	for _, user := range users {
		summary := domain.UserSummary{
			Name:  user.Name(),
			Total: decimal.Zero,
		}

		for _, account := range user.Accounts() {
			statement := s.Statement(user, account)
			summary.Total = summary.Total.Add(statement.Balance)
			summary.Accounts = append(summary.Accounts, statement)
		}

		report.Users = append(report.Users, summary)
	}

	return report
}

// lockPair locks both accounts in id order so that concurrent transfers in
// opposite directions cannot deadlock
func lockPair(a, b domain.Account) func() {
	if a.ID() == b.ID() {
		a.Lock()
		return a.Unlock
	}

	aID, bID := a.ID(), b.ID()
	first, second := a, b
	if bytes.Compare(bID[:], aID[:]) < 0 {
		first, second = b, a
	}

	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
