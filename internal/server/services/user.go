// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login plus issuing the session
// JWT.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/critterkeep/internal/common"
	"github.com/dmitrijs2005/critterkeep/internal/cryptox"
	"github.com/dmitrijs2005/critterkeep/internal/logging"
	"github.com/dmitrijs2005/critterkeep/internal/server/auth"
	"github.com/dmitrijs2005/critterkeep/internal/server/config"
	"github.com/dmitrijs2005/critterkeep/internal/server/models"
	"github.com/dmitrijs2005/critterkeep/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
//   - Register: create accounts
//   - Login: verify credentials and mint a session token
type UserService struct {
	users                       users.Repository
	logger                      logging.Logger
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using the users repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		users:                       repo,
		logger:                      logger.With("module", "user_service"),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a new user with the given email and password. The raw
// password only ever exists in memory here; the repository stores the bcrypt
// hash. A duplicate email comes back as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email string, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash}
	u, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies the email/password pair and, on success, returns a signed
// session token. An unknown email yields common.ErrorNotFound and a wrong
// password common.ErrorInvalidCredentials; callers map the two to different
// responses.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorValidation
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return "", common.ErrorInternal
	}

	if err := cryptox.CheckPassword(user.PasswordHash, password); err != nil {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return "", common.ErrorInternal
	}

	return token, nil
}
