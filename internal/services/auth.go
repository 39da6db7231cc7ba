package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserCredentialsReader fetches a user with the stored password hash.
type UserCredentialsReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string, isAdmin bool) (string, error)
}

// AuthService handles login.
type AuthService struct {
	reader UserCredentialsReader
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserCredentialsReader, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates a user and returns a JWT token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return "", apperrors.Unauthorized("Invalid login credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", apperrors.Unauthorized("Invalid login credentials")
	}

	token, err := svc.jwt.Generate(ctx, user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
