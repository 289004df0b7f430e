package domain

import "strings"

// User owns an ordered collection of accounts
type User struct {
	name     string
	pin      int
	accounts []Account
}

// NewUser creates a User with no accounts. The PIN is stored but never checked.
func NewUser(name string, pin int) *User {
	return &User{
		name: name,
		pin:  pin,
	}
}

func (u *User) Name() string {
	return u.name
}

func (u *User) PIN() int {
	return u.pin
}

// AddAccount appends an account; several accounts of the same type are allowed
func (u *User) AddAccount(account Account) {
	u.accounts = append(u.accounts, account)
}

// Accounts returns the user's accounts in the order they were added
func (u *User) Accounts() []Account {
	accounts := make([]Account, len(u.accounts))
	copy(accounts, u.accounts)
	return accounts
}

// AccountByType returns the first account whose type matches accountType, ignoring case
func (u *User) AccountByType(accountType string) (Account, bool) {
	for _, account := range u.accounts {
		if strings.EqualFold(string(account.AccountType()), accountType) {
			return account, true
		}
	}

	return nil, false
}
