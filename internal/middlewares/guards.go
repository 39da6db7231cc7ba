package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/jwt"
	"github.com/sbilibin2017/jobly/internal/response"
)

// UsernameParam is the route parameter RequireCorrectUser compares against.
const UsernameParam = "username"

// IsLoggedIn reports whether claims identify anyone.
func IsLoggedIn(claims *jwt.Claims) bool {
	return claims != nil && claims.Username != ""
}

// IsCorrectUser reports whether claims identify username.
func IsCorrectUser(claims *jwt.Claims, username string) bool {
	return IsLoggedIn(claims) && claims.Username == username
}

// IsAdmin reports whether claims carry the admin flag.
func IsAdmin(claims *jwt.Claims) bool {
	return IsLoggedIn(claims) && claims.IsAdmin
}

func guard(allow func(r *http.Request, claims *jwt.Claims) bool, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := jwt.ClaimsFromContext(r.Context())
			if !allow(r, claims) {
				response.Error(w, apperrors.Forbidden("%s", message))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin lets through any authenticated caller.
var RequireLogin = guard(func(_ *http.Request, c *jwt.Claims) bool {
	return IsLoggedIn(c)
}, "User must be logged in")

// RequireCorrectUser lets through only the user named by the {username} route parameter.
var RequireCorrectUser = guard(func(r *http.Request, c *jwt.Claims) bool {
	return IsCorrectUser(c, chi.URLParam(r, UsernameParam))
}, "Unauthorized")

// RequireAdmin lets through only admins.
var RequireAdmin = guard(func(_ *http.Request, c *jwt.Claims) bool {
	return IsAdmin(c)
}, "Unauthorized")
