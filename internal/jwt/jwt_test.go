package jwt

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "u1", true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWT_NoExpiration(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, "u2", false)
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.False(t, claims.IsAdmin)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "u1", false)
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, "u1", true)
	require.NoError(t, err)

	assert.Error(t, j2.Validate(ctx, token))
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	j := New(WithSecretKey("secret"))

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS512, Claims{Username: "u1"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Error(t, j.Validate(context.Background(), signed))
}

func TestJWT_RejectsMissingUsername(t *testing.T) {
	j := New(WithSecretKey("secret"))

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{IsAdmin: true})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Error(t, j.Validate(context.Background(), signed))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		target        string
		header        string
		body          string
		expectedToken string
		expectedErr   error
	}{
		{name: "ValidBearer", target: "/", header: "Bearer mytoken123", expectedToken: "mytoken123"},
		{name: "LowercaseBearer", target: "/", header: "bearer mytoken123", expectedToken: "mytoken123"},
		{name: "InvalidFormat", target: "/", header: "Token mytoken123", expectedErr: ErrInvalidAuthorizationHeader},
		{name: "TooManyParts", target: "/", header: "Bearer a b c", expectedErr: ErrInvalidAuthorizationHeader},
		{name: "QueryParam", target: "/companies?_token=fromquery", expectedToken: "fromquery"},
		{name: "JSONBody", target: "/companies", body: `{"handle":"h","_token":"frombody"}`, expectedToken: "frombody"},
		{name: "HeaderWinsOverQuery", target: "/?_token=fromquery", header: "Bearer fromheader", expectedToken: "fromheader"},
		{name: "NoToken", target: "/", expectedErr: ErrNoToken},
		{name: "BodyWithoutToken", target: "/", body: `{"handle":"h"}`, expectedErr: ErrNoToken},
		{name: "NonJSONBody", target: "/", body: `handle=h`, expectedErr: ErrNoToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, tt.target, body)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}

			if tt.body != "" {
				restored, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(restored))
			}
		})
	}
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()

	_, ok := ClaimsFromContext(ctx)
	assert.False(t, ok)

	ctx = WithClaims(ctx, &Claims{Username: "u1", IsAdmin: true})
	claims, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", claims.Username)
	assert.True(t, claims.IsAdmin)
}
