package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/jobly/internal/jwt"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/response"
)

// UserServicer defines the user operations the handlers need.
type UserServicer interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error)
	Get(ctx context.Context, username string) (*models.UserDetail, error)
	Register(ctx context.Context, req models.CreateUserRequest, callerIsAdmin bool) (string, error)
	Update(ctx context.Context, username string, req models.UpdateUserRequest) (*models.UserProfile, error)
	Delete(ctx context.Context, username string) error
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Param username query string false "Case-insensitive username substring"
// @Param first_name query string false "Case-insensitive first name substring"
// @Param last_name query string false "Case-insensitive last name substring"
// @Success 200 {object} models.UsersResponse
// @Router /users [get]
func NewListUsersHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := models.UserFilter{
			Username:  q.Get("username"),
			FirstName: q.Get("first_name"),
			LastName:  q.Get("last_name"),
		}

		users, err := svc.List(r.Context(), filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.UsersResponse{Users: users})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register user
// @Description Creates a user and returns a token for them. is_admin is honoured only for admin callers.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User"
// @Success 201 {object} models.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request body"
// @Failure 401 {object} response.ErrorResponse "Username already taken"
// @Router /users [post]
func NewRegisterHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		claims, _ := jwt.ClaimsFromContext(r.Context())
		callerIsAdmin := claims != nil && claims.IsAdmin

		token, err := svc.Register(r.Context(), req, callerIsAdmin)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusCreated, models.TokenResponse{Token: token})
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user with their applications.
// @Summary Get user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.UserDetailResponse
// @Failure 404 {object} response.ErrorResponse "No such user"
// @Router /users/{username} [get]
func NewGetUserHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.UserDetailResponse{User: user})
	}
}

// NewUpdateUserHandler returns an HTTP handler partially updating the caller's own user.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param user body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request body or nothing to update"
// @Failure 403 {object} response.ErrorResponse "Not this user"
// @Failure 404 {object} response.ErrorResponse "No such user"
// @Security BearerAuth
// @Router /users/{username} [patch]
func NewUpdateUserHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		user, err := svc.Update(r.Context(), chi.URLParam(r, "username"), req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.UserResponse{User: user})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting the caller's own user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not this user"
// @Failure 404 {object} response.ErrorResponse "No such user"
// @Security BearerAuth
// @Router /users/{username} [delete]
func NewDeleteUserHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "username")); err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, response.MessageResponse{Message: "User deleted"})
	}
}
