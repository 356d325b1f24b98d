package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/go-account-service/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no account matches a lookup.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateKey is returned when an insert violates the username or email uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)

// DuplicateKeyError names the unique field that rejected an insert.
// Field is "username", "email" or empty when the store could not tell.
type DuplicateKeyError struct {
	Field string
}

func (e DuplicateKeyError) Error() string {
	if e.Field == "" {
		return ErrDuplicateKey.Error()
	}
	return fmt.Sprintf("%v: %s", ErrDuplicateKey, e.Field)
}

func (e DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	// Insert assigns ID and CreatedAt and persists the account.
	// Both uniqueness checks and the write are atomic: on ErrDuplicateKey nothing is stored.
	Insert(ctx context.Context, a *entity.Account) error
	// FindByEmail returns the account with exactly this email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}
