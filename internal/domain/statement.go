package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statement is a read-only view of one account for display
type Statement struct {
	Owner        string          `json:"owner"`
	AccountID    uuid.UUID       `json:"account_id"`
	AccountType  AccountType     `json:"account_type"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}

// UserSummary groups the statements of one user with their combined balance
type UserSummary struct {
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	Accounts []Statement     `json:"accounts"`
}

// InterestNote records one interest credit: Balance is the balance it was computed on
type InterestNote struct {
	Owner       string          `json:"owner"`
	AccountID   uuid.UUID       `json:"account_id"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Rate        decimal.Decimal `json:"rate"`
	Interest    decimal.Decimal `json:"interest"`
}

// Report contains the balances and histories of a set of users.
// Opening holds the account balances before any operation ran, and Interest
// the interest credits applied in between; both are optional.
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Opening     []Statement    `json:"opening,omitempty"`
	Interest    []InterestNote `json:"interest,omitempty"`
	Users       []UserSummary  `json:"users"`
}

// Statements returns every account statement of the report in user order
func (r Report) Statements() []Statement {
	var statements []Statement
	for _, user := range r.Users {
		statements = append(statements, user.Accounts...)
	}
	return statements
}
