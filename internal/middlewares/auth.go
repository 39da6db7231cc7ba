package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/jwt"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/response"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Authenticate resolves the caller's identity from the request token.
// Requests without a token continue anonymously; a token that cannot be
// verified ends the request with 401.
func Authenticate(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if errors.Is(err, jwt.ErrNoToken) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				logger.Log.Infow("authentication failed", "err", err)
				response.Error(w, apperrors.Unauthorized("Invalid authorization header"))
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authentication failed", "err", err)
				response.Error(w, apperrors.Unauthorized("Invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}
