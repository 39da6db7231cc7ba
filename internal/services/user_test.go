package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/repositories"
	"github.com/sbilibin2017/jobly/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(v string) *string { return &v }

type userMocks struct {
	users *services.MockUserRepository
	apps  *services.MockApplicationLister
	techs *services.MockUserTechnologySetter
	jwt   *services.MockTokenGenerator
}

func newUserService(ctrl *gomock.Controller) (*services.UserService, userMocks) {
	m := userMocks{
		users: services.NewMockUserRepository(ctrl),
		apps:  services.NewMockApplicationLister(ctrl),
		techs: services.NewMockUserTechnologySetter(ctrl),
		jwt:   services.NewMockTokenGenerator(ctrl),
	}
	return services.NewUserService(m.users, m.apps, m.techs, m.jwt, bcrypt.MinCost), m
}

func TestUserService_Register(t *testing.T) {
	req := models.CreateUserRequest{
		Username:  "alice",
		Password:  "pass123",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		IsAdmin:   true,
	}

	tests := []struct {
		name          string
		callerIsAdmin bool
		exists        bool
		createErr     error
		technologies  []string
		wantAdmin     bool
		wantErr       error
	}{
		{name: "anonymous caller cannot grant admin", wantAdmin: false},
		{name: "admin caller grants admin", callerIsAdmin: true, wantAdmin: true},
		{name: "with technologies", technologies: []string{"go"}},
		{name: "duplicate username", exists: true, wantErr: apperrors.ErrConflict},
		{name: "duplicate raced at insert", createErr: repositories.ErrUniqueViolation, wantErr: apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newUserService(ctrl)
			in := req
			in.Technologies = tt.technologies

			m.users.EXPECT().Exists(gomock.Any(), "alice").Return(tt.exists, nil)
			if !tt.exists {
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u models.User) (*models.User, error) {
						if tt.createErr != nil {
							return nil, tt.createErr
						}
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pass123")))
						assert.Equal(t, tt.wantAdmin, u.IsAdmin)
						u.Password = ""
						return &u, nil
					})
			}
			if tt.wantErr == nil {
				if len(tt.technologies) > 0 {
					m.techs.EXPECT().SetUserTechnologies(gomock.Any(), "alice", tt.technologies).Return(nil)
				}
				m.jwt.EXPECT().Generate(gomock.Any(), "alice", tt.wantAdmin).Return("token", nil)
			}

			token, err := svc.Register(context.Background(), in, tt.callerIsAdmin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, "A username must be unique")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", token)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newUserService(ctrl)

	t.Run("profile with applications and no password", func(t *testing.T) {
		m.users.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.User{Username: "alice", Password: "hash", FirstName: "A", LastName: "S", Email: "a@x.io", IsAdmin: true}, nil)
		apps := []models.UserApplication{{State: models.StateApplied, Job: models.Job{ID: 1}}}
		m.apps.EXPECT().ListByUser(gomock.Any(), "alice").Return(apps, nil)

		got, err := svc.Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, apps, got.Applications)
	})

	t.Run("not found", func(t *testing.T) {
		m.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		_, err := svc.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.EqualError(t, err, "No user found with username ghost")
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newUserService(ctrl)

	t.Run("empty update", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "alice", models.UpdateUserRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("password is hashed", func(t *testing.T) {
		m.users.EXPECT().Update(gomock.Any(), "alice", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields map[string]any) (*models.UserProfile, error) {
				assert.Equal(t, "New", fields["first_name"])
				hash, ok := fields["password"].(string)
				require.True(t, ok)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
				return &models.UserProfile{Username: "alice", FirstName: "New"}, nil
			})

		got, err := svc.Update(context.Background(), "alice", models.UpdateUserRequest{
			Password:  strPtr("secret"),
			FirstName: strPtr("New"),
		})
		require.NoError(t, err)
		assert.Equal(t, "New", got.FirstName)
	})

	t.Run("technologies only", func(t *testing.T) {
		m.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.User{Username: "alice"}, nil)
		m.techs.EXPECT().SetUserTechnologies(gomock.Any(), "alice", []string{}).Return(nil)

		got, err := svc.Update(context.Background(), "alice", models.UpdateUserRequest{Technologies: []string{}})
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("not found", func(t *testing.T) {
		m.users.EXPECT().Update(gomock.Any(), "ghost", gomock.Any()).Return(nil, nil)

		_, err := svc.Update(context.Background(), "ghost", models.UpdateUserRequest{Email: strPtr("g@x.io")})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		m.users.EXPECT().Update(gomock.Any(), "alice", gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.Update(context.Background(), "alice", models.UpdateUserRequest{Email: strPtr("a@x.io")})
		assert.EqualError(t, err, "db error")
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newUserService(ctrl)

	m.users.EXPECT().Delete(gomock.Any(), "alice").Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), "alice"))

	m.users.EXPECT().Delete(gomock.Any(), "alice").Return(false, nil)
	err := svc.Delete(context.Background(), "alice")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.EqualError(t, err, "No user found with username alice")
}
