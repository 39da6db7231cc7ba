package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	tests := []struct {
		query string
		want  *int
	}{
		{"n=5", intPtr(5)},
		{"n=-3", intPtr(-3)},
		{"n=", nil},
		{"n=abc", nil},
		{"n=1.5", nil},
		{"n=2147483647", intPtr(2147483647)},
		{"n=99999999999", nil},
		{"n=-2147483649", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			assert.Equal(t, tt.want, queryInt(r, "n"))
		})
	}
}

func TestQueryFloat(t *testing.T) {
	tests := []struct {
		query string
		want  *float64
	}{
		{"n=0.5", floatPtr(0.5)},
		{"n=100", floatPtr(100)},
		{"n=NaN", nil},
		{"n=Inf", nil},
		{"n=x", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			assert.Equal(t, tt.want, queryFloat(r, "n"))
		})
	}
}

func TestDecodeOptionalJSON(t *testing.T) {
	var req models.ApplyRequest
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, decodeOptionalJSON(r, &req))
	assert.Empty(t, req.State)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"state":"accepted","_token":"x"}`))
	require.NoError(t, decodeOptionalJSON(r, &req))
	assert.Equal(t, "accepted", req.State)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.ErrorIs(t, decodeOptionalJSON(r, &req), apperrors.ErrValidation)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
