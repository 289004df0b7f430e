package domain

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType is the fixed label of an account variant
type AccountType string

// Account types
const (
	Checking AccountType = "Checking"
	Saving   AccountType = "Saving"
)

// WithdrawalRule decides whether an account holding balance may pay out amount
type WithdrawalRule interface {
	CanWithdraw(balance, amount decimal.Decimal) bool
}

// Account defines the capability set shared by every account variant.
//
// Lock and Unlock guard the balance and the transaction log as one unit.
// The transfer methods expect the caller to hold the lock so that a transfer
// can keep both of its accounts locked. Only the account itself appends to
// its log, and every entry is backed by a balance change.
type Account interface {
	ID() uuid.UUID
	AccountType() AccountType
	Balance() decimal.Decimal

	// Transactions returns a snapshot of the log in insertion order
	Transactions() []Transaction

	// Deposit adds a positive amount and logs it; non-positive amounts are ignored
	Deposit(amount decimal.Decimal)

	// Withdraw pays out amount if the variant's rule allows it and reports success
	Withdraw(amount decimal.Decimal) bool

	sync.Locker

	// TransferOutLocked debits amount if the withdrawal rule allows it and
	// logs TRANSFER_SENT; a refused amount changes nothing
	TransferOutLocked(amount decimal.Decimal) bool

	// TransferInLocked credits a positive amount and logs TRANSFER_RECEIVED;
	// non-positive amounts are ignored
	TransferInLocked(amount decimal.Decimal)
}

// InterestBearing is implemented by accounts that accrue interest
type InterestBearing interface {
	Account

	// ApplyInterest credits interest on the current balance and returns the amount credited
	ApplyInterest() decimal.Decimal

	InterestRate() decimal.Decimal
}
