package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the semantic cause of a balance change
type TransactionType string

// Transaction types
const (
	Deposit          TransactionType = "DEPOSIT"
	Withdraw         TransactionType = "WITHDRAW"
	Interest         TransactionType = "INTEREST"
	TransferSent     TransactionType = "TRANSFER_SENT"
	TransferReceived TransactionType = "TRANSFER_RECEIVED"
)

// Timestamp layouts for an ISO-8601 local date-time. Seconds are omitted when
// they and the fraction are zero; the fraction is printed in groups of three
// digits, as many as needed.
const (
	minuteLayout = "2006-01-02T15:04"
	secondLayout = minuteLayout + ":05"
	milliLayout  = secondLayout + ".000"
	microLayout  = secondLayout + ".000000"
	nanoLayout   = secondLayout + ".000000000"
)

var now = time.Now

// Transaction is an immutable record of one ledger event
type Transaction struct {
	txType    TransactionType
	amount    decimal.Decimal
	timestamp time.Time
}

// NewTransaction creates a Transaction stamped with the current wall-clock time
func NewTransaction(txType TransactionType, amount decimal.Decimal) Transaction {
	return Transaction{
		txType:    txType,
		amount:    amount,
		timestamp: now(),
	}
}

func (t Transaction) Type() TransactionType {
	return t.txType
}

func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t Transaction) Timestamp() time.Time {
	return t.timestamp
}

// String formats the transaction as "<timestamp> | <TYPE>: $<amount>"
func (t Transaction) String() string {
	return fmt.Sprintf("%s | %s: $%s", FormatTimestamp(t.timestamp), t.txType, t.amount.StringFixed(2))
}

// FormatTimestamp renders ts as a local date-time such as 2025-01-15T14:30,
// 2025-01-15T14:30:05 or 2025-01-15T14:30:05.120
func FormatTimestamp(ts time.Time) string {
	nanos := ts.Nanosecond()
	switch {
	case nanos == 0 && ts.Second() == 0:
		return ts.Format(minuteLayout)
	case nanos == 0:
		return ts.Format(secondLayout)
	case nanos%int(time.Millisecond) == 0:
		return ts.Format(milliLayout)
	case nanos%int(time.Microsecond) == 0:
		return ts.Format(microLayout)
	default:
		return ts.Format(nanoLayout)
	}
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      TransactionType `json:"type"`
		Amount    decimal.Decimal `json:"amount"`
		Timestamp time.Time       `json:"timestamp"`
	}{
		Type:      t.txType,
		Amount:    t.amount,
		Timestamp: t.timestamp,
	})
}
