// Package memory holds an in-process AccountRepository used when no database is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-account-service/internal/domain/entity"
	"github.com/oksasatya/go-account-service/internal/domain/repository"
)

// AccountRepository keeps accounts in maps keyed by username and email.
// Records are copied in and out so callers never share state with the store.
type AccountRepository struct {
	mu         sync.Mutex
	byUsername map[string]*entity.Account
	byEmail    map[string]*entity.Account
	now        func() time.Time
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byUsername: make(map[string]*entity.Account),
		byEmail:    make(map[string]*entity.Account),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *AccountRepository) Insert(ctx context.Context, a *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[a.Username]; ok {
		return repository.DuplicateKeyError{Field: "username"}
	}
	if _, ok := r.byEmail[a.Email]; ok {
		return repository.DuplicateKeyError{Field: "email"}
	}

	a.ID = uuid.NewString()
	a.CreatedAt = r.now()

	stored := *a
	r.byUsername[stored.Username] = &stored
	r.byEmail[stored.Email] = &stored
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *a
	return &out, nil
}

// Ping always succeeds for the in-memory store.
func (r *AccountRepository) Ping(context.Context) error { return nil }

// Len returns the number of stored accounts.
func (r *AccountRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEmail)
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
