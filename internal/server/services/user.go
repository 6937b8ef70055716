// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, API token issuing, and the
// bootstrap account seeding.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pokedex/internal/common"
	"pokedex/internal/cryptox"
	"pokedex/internal/logging"
	"pokedex/internal/server/auth"
	"pokedex/internal/server/config"
	"pokedex/internal/server/models"
	"pokedex/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create accounts with hashed passwords
// - Login: verify credentials
// - GenerateAPIToken: mint bearer tokens for the JSON API
// - SeedAccounts: ensure the two bootstrap accounts exist
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	logger                      logging.Logger
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	seedAdminPassword           string
	seedUserPassword            string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		logger:                      l.With("module", "user_service"),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		seedAdminPassword:           cfg.SeedAdminPassword,
		seedUserPassword:            cfg.SeedUserPassword,
	}
}

// Register creates a new account with the given username and password. The
// password is hashed before it reaches storage; a taken username yields
// common.ErrorLoginAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorLoginAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns the account. An unknown
// username yields common.ErrorUserNotFound; a wrong password yields
// common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUserNotFound
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}

// GenerateAPIToken mints a bearer token for the JSON API bound to the
// account id.
func (s *UserService) GenerateAPIToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
}

// SeedAccounts ensures the two bootstrap accounts exist, skipping any
// username already present. Passwords come from config and are hashed
// before storage.
func (s *UserService) SeedAccounts(ctx context.Context) error {
	seeds := []struct {
		username string
		password string
		role     string
	}{
		{"admin", s.seedAdminPassword, models.RoleAdmin},
		{"user", s.seedUserPassword, models.RoleUser},
	}

	repo := s.repomanager.Users(s.db)

	for _, seed := range seeds {
		_, err := repo.GetByUsername(ctx, seed.username)
		if err == nil {
			s.logger.Info(ctx, "seed account already exists, skipping", "username", seed.username)
			continue
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking seed account %s: %w", seed.username, err)
		}

		hash, err := cryptox.HashPassword(seed.password)
		if err != nil {
			return fmt.Errorf("error hashing seed password: %w", err)
		}

		if _, err := repo.Create(ctx, &models.User{
			Username:     seed.username,
			PasswordHash: hash,
			Role:         seed.role,
		}); err != nil {
			// A concurrent boot may have inserted it between check and insert.
			if errors.Is(err, common.ErrorAlreadyExists) {
				s.logger.Info(ctx, "seed account already exists, skipping", "username", seed.username)
				continue
			}
			return fmt.Errorf("error creating seed account %s: %w", seed.username, err)
		}
		s.logger.Info(ctx, "seed account added", "username", seed.username, "role", seed.role)
	}

	return nil
}
