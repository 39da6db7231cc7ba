package jwt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenField is the body field and query parameter that may carry a token.
const TokenField = "_token"

// maxBodyPeek bounds how much of a request body is inspected for TokenField.
const maxBodyPeek = 1 << 20

var (
	// ErrNoToken is returned by GetTokenFromRequest when the request carries no token at all.
	ErrNoToken = errors.New("token not found in request")
	// ErrInvalidAuthorizationHeader is returned for an Authorization header that is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header format")
)

// Claims is the token payload.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWT signs and verifies HS256 tokens with a process-wide secret.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime, zero means tokens never expire
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.SecretKey = secret
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.Exp = exp
	}
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a token identifying username and carrying its admin flag.
func (j *JWT) Generate(ctx context.Context, username string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if j.Exp != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.Exp))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies tokenString and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Username == "" {
		return nil, errors.New("username not found in token")
	}
	return claims, nil
}

// Validate reports whether tokenString verifies against the secret.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token from, in order, the Authorization header,
// the _token query parameter and the _token field of a JSON body.
// The body is restored so handlers can decode it again.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", ErrInvalidAuthorizationHeader
		}
		return parts[1], nil
	}

	if token := r.URL.Query().Get(TokenField); token != "" {
		return token, nil
	}

	token, err := tokenFromBody(r)
	if err != nil {
		return "", fmt.Errorf("read request body: %w", err)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func tokenFromBody(r *http.Request) (string, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	peeked, err := io.ReadAll(io.LimitReader(r.Body, maxBodyPeek))
	if err != nil {
		return "", err
	}
	r.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(peeked), r.Body),
		Closer: r.Body,
	}

	var payload struct {
		Token string `json:"_token"`
	}
	if err := json.Unmarshal(peeked, &payload); err != nil {
		return "", nil
	}
	return payload.Token, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

type claimsContextKey struct{}

// WithClaims returns a copy of ctx carrying the verified identity.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext returns the identity attached by the authentication middleware.
// The second result is false for anonymous requests.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*Claims)
	return claims, ok && claims != nil
}
