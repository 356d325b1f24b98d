package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-account-service/internal/domain/entity"
	"github.com/oksasatya/go-account-service/internal/domain/repository"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakeDB struct {
	row     fakeRow
	pingErr error

	gotSQL  string
	gotArgs []any
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.gotSQL = sql
	f.gotArgs = args
	return f.row
}

func (f *fakeDB) Ping(context.Context) error { return f.pingErr }

func errRow(err error) fakeRow {
	return fakeRow{scan: func(...any) error { return err }}
}

func TestInsert_AssignsIDAndCreatedAt(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{scan: func(dest ...any) error {
		*dest[0].(*string) = "0b9c5a52-54d1-4d2c-9a0b-3f7e0d1c2b3a"
		*dest[1].(*time.Time) = created
		return nil
	}}}
	repo := NewAccountRepository(db)

	a := &entity.Account{Username: "alice", Email: "a@x.com", PasswordHash: "$2a$hash"}
	require.NoError(t, repo.Insert(context.Background(), a))

	assert.Equal(t, "0b9c5a52-54d1-4d2c-9a0b-3f7e0d1c2b3a", a.ID)
	assert.Equal(t, created, a.CreatedAt)
	assert.Contains(t, db.gotSQL, "INSERT INTO accounts")
	assert.Equal(t, []any{"alice", "a@x.com", "$2a$hash"}, db.gotArgs)
}

func TestInsert_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantField  string
	}{
		{name: "username", constraint: "uq_accounts_username", wantField: "username"},
		{name: "email", constraint: "uq_accounts_email", wantField: "email"},
		{name: "legacy index name", constraint: "accounts_email_key", wantField: "email"},
		{name: "unknown constraint", constraint: "accounts_pkey", wantField: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tt.constraint}
			repo := NewAccountRepository(&fakeDB{row: errRow(pgErr)})

			err := repo.Insert(context.Background(), &entity.Account{Username: "alice", Email: "a@x.com"})

			require.ErrorIs(t, err, repository.ErrDuplicateKey)
			var dup repository.DuplicateKeyError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, tt.wantField, dup.Field)
		})
	}
}

func TestInsert_OtherErrorsAreWrapped(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", ColumnName: "email"}
	repo := NewAccountRepository(&fakeDB{row: errRow(pgErr)})

	err := repo.Insert(context.Background(), &entity.Account{Username: "alice"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "db error")
}

func TestFindByEmail_Found(t *testing.T) {
	created := time.Now().UTC()
	db := &fakeDB{row: fakeRow{scan: func(dest ...any) error {
		*dest[0].(*string) = "id-1"
		*dest[1].(*string) = "alice"
		*dest[2].(*string) = "a@x.com"
		*dest[3].(*string) = "$2a$hash"
		*dest[4].(*time.Time) = created
		return nil
	}}}
	repo := NewAccountRepository(db)

	a, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, &entity.Account{ID: "id-1", Username: "alice", Email: "a@x.com", PasswordHash: "$2a$hash", CreatedAt: created}, a)
	assert.Equal(t, []any{"a@x.com"}, db.gotArgs)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo := NewAccountRepository(&fakeDB{row: errRow(pgx.ErrNoRows)})

	a, err := repo.FindByEmail(context.Background(), "ghost@x.com")

	assert.Nil(t, a)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFindByEmail_DBError(t *testing.T) {
	repo := NewAccountRepository(&fakeDB{row: errRow(errors.New("conn reset"))})

	_, err := repo.FindByEmail(context.Background(), "a@x.com")

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Regexp(t, `db error: .*conn reset`, err.Error())
}

func TestPing(t *testing.T) {
	down := errors.New("down")
	assert.NoError(t, NewAccountRepository(&fakeDB{}).Ping(context.Background()))
	assert.ErrorIs(t, NewAccountRepository(&fakeDB{pingErr: down}).Ping(context.Background()), down)
}
