package entity

import "time"

// Account is the aggregate root for the account domain
// PasswordHash holds a bcrypt hash; the plaintext is never stored.
//
// Username and Email are unique and immutable once created.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
