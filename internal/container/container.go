package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-account-service/config"
	"github.com/oksasatya/go-account-service/internal/domain/repository"
	"github.com/oksasatya/go-account-service/pkg/helpers"
)

// Container carries the process-wide components built in main.
// It is passed explicitly to the router; nothing here is global.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Accounts repository.AccountRepository
	Hasher   helpers.PasswordHasher
}

func New(cfg *config.Config, logger *logrus.Logger, accounts repository.AccountRepository, hasher helpers.PasswordHasher) *Container {
	return &Container{Config: cfg, Logger: logger, Accounts: accounts, Hasher: hasher}
}
