package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-account-service/internal/domain/entity"
	"github.com/oksasatya/go-account-service/internal/domain/repository"
)

const pgUniqueViolation = "23505"

// DB is the subset of *pgxpool.Pool used by the repository
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Insert(ctx context.Context, a *entity.Account) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, a.Username, a.Email, a.PasswordHash)

	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if field, ok := classifyUniqueViolation(err); ok {
			return repository.DuplicateKeyError{Field: field}
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a := &entity.Account{}

	row := r.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE email = $1
	`, email)

	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *AccountRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// classifyUniqueViolation maps a unique_violation to the logical field it protects.
// Constraint names come from db/migrations; unknown names still count as a violation.
func classifyUniqueViolation(err error) (field string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return "", false
	}

	c := strings.ToLower(pgErr.ConstraintName)
	switch {
	case c == "uq_accounts_username", strings.Contains(c, "username"):
		return "username", true
	case c == "uq_accounts_email", strings.Contains(c, "email"):
		return "email", true
	default:
		return "", true
	}
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
