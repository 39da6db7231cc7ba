package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository reads and writes users.
type UserRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
	Update(ctx context.Context, username string, fields map[string]any) (*models.UserProfile, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// ApplicationLister lists a user's applications.
type ApplicationLister interface {
	ListByUser(ctx context.Context, username string) ([]models.UserApplication, error)
}

// UserTechnologySetter replaces the technologies of a user.
type UserTechnologySetter interface {
	SetUserTechnologies(ctx context.Context, username string, names []string) error
}

// UserService is the access layer for users.
type UserService struct {
	users        UserRepository
	applications ApplicationLister
	technologies UserTechnologySetter
	jwt          TokenGenerator
	bcryptCost   int
}

// NewUserService creates a new UserService. A cost outside bcrypt's range uses bcrypt.DefaultCost.
func NewUserService(
	users UserRepository,
	applications ApplicationLister,
	technologies UserTechnologySetter,
	jwt TokenGenerator,
	bcryptCost int,
) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		users:        users,
		applications: applications,
		technologies: technologies,
		jwt:          jwt,
		bcryptCost:   bcryptCost,
	}
}

// List returns the users matching filter.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Get returns a user with all of their applications.
func (s *UserService) Get(ctx context.Context, username string) (*models.UserDetail, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("No user found with username %s", username)
	}

	apps, err := s.applications.ListByUser(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list applications", "username", username, "error", err)
		return nil, err
	}

	return &models.UserDetail{UserProfile: profile(user), Applications: apps}, nil
}

// Register creates a user and returns a token for them.
// The admin flag is kept only when the caller is an admin.
func (s *UserService) Register(ctx context.Context, req models.CreateUserRequest, callerIsAdmin bool) (string, error) {
	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", req.Username, "error", err)
		return "", err
	}
	if exists {
		return "", apperrors.Conflict("A username must be unique")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return "", err
	}

	user := req.User()
	user.Password = string(hash)
	user.IsAdmin = req.IsAdmin && callerIsAdmin

	created, err := s.users.Create(ctx, user)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return "", apperrors.Conflict("A username must be unique")
	}
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", req.Username, "error", err)
		return "", err
	}

	if len(req.Technologies) > 0 {
		if err := s.technologies.SetUserTechnologies(ctx, created.Username, req.Technologies); err != nil {
			logger.Log.Errorw("failed to link user technologies", "username", created.Username, "error", err)
			return "", err
		}
	}

	token, err := s.jwt.Generate(ctx, created.Username, created.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return "", err
	}
	return token, nil
}

// Update changes the supplied fields of a user. A new password is hashed first.
// Technologies, when present, replace the user's current ones.
func (s *UserService) Update(ctx context.Context, username string, req models.UpdateUserRequest) (*models.UserProfile, error) {
	fields := req.Fields()
	if len(fields) == 0 && req.Technologies == nil {
		return nil, apperrors.Validation("no fields to update")
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		fields["password"] = string(hash)
	}

	var updated *models.UserProfile
	if len(fields) > 0 {
		var err error
		updated, err = s.users.Update(ctx, username, fields)
		if err != nil {
			logger.Log.Errorw("failed to update user", "username", username, "error", err)
			return nil, err
		}
	} else {
		user, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to get user", "username", username, "error", err)
			return nil, err
		}
		if user != nil {
			p := profile(user)
			updated = &p
		}
	}
	if updated == nil {
		return nil, apperrors.NotFound("No user found with username %s", username)
	}

	if req.Technologies != nil {
		if err := s.technologies.SetUserTechnologies(ctx, username, req.Technologies); err != nil {
			logger.Log.Errorw("failed to link user technologies", "username", username, "error", err)
			return nil, err
		}
	}

	return updated, nil
}

// Delete removes a user and their applications.
func (s *UserService) Delete(ctx context.Context, username string) error {
	deleted, err := s.users.Delete(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "username", username, "error", err)
		return err
	}
	if !deleted {
		return apperrors.NotFound("No user found with username %s", username)
	}
	return nil
}

func profile(u *models.User) models.UserProfile {
	return models.UserProfile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
	}
}
