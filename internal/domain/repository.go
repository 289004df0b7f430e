package domain

// UserRepository defines the interface for loading users together with their accounts
type UserRepository interface {
	// GetUsers returns users in the order they first appear in the source
	GetUsers() ([]*User, error)
}
