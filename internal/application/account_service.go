package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-account-service/internal/domain/entity"
	repo "github.com/oksasatya/go-account-service/internal/domain/repository"
	"github.com/oksasatya/go-account-service/pkg/helpers"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrAccountExists      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password too long")
)

// PlaceholderToken is returned on login in place of a real credential.
// Nothing verifies it; issuing signed tokens belongs to a separate component.
const PlaceholderToken = "some_jwt_token"

type Service struct {
	Repo   repo.AccountRepository
	Hasher helpers.PasswordHasher
	Logger *logrus.Logger
}

func NewService(repo repo.AccountRepository, hasher helpers.PasswordHasher, logger *logrus.Logger) *Service {
	return &Service{
		Repo:   repo,
		Hasher: hasher,
		Logger: logger,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AccountView is the caller-safe projection of an Account.
type AccountView struct {
	ID       string
	Username string
	Email    string
}

type LoginResult struct {
	Username string
	Email    string
	Token    string
}

// Register hashes the password and stores a new account.
// Exactly one row is written on success and none on any error.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AccountView, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingField
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, helpers.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &entity.Account{Username: in.Username, Email: in.Email, PasswordHash: hash}
	if err := s.Repo.Insert(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			metricRegisterConflicts.Add(1)
			if s.Logger != nil {
				var dup repo.DuplicateKeyError
				field := ""
				if errors.As(err, &dup) {
					field = dup.Field
				}
				s.Logger.WithField("field", field).Info("registration rejected: duplicate account")
			}
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	metricRegistered.Add(1)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"account_id": a.ID, "username": a.Username}).Info("account registered")
	}
	return &AccountView{ID: a.ID, Username: a.Username, Email: a.Email}, nil
}

// Authenticate validates email/password and returns the account's public fields.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	a, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			metricLoginsFailed.Add(1)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	if !s.Hasher.Compare(a.PasswordHash, password) {
		metricLoginsFailed.Add(1)
		return nil, ErrInvalidCredentials
	}

	metricLoginsSucceeded.Add(1)
	if s.Logger != nil {
		s.Logger.WithField("account_id", a.ID).Debug("login succeeded")
	}
	return &LoginResult{Username: a.Username, Email: a.Email, Token: PlaceholderToken}, nil
}

// Ready reports whether the backing store answers.
func (s *Service) Ready(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}
