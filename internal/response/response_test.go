package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/jobly/internal/apperrors"
)

func TestError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"validation", apperrors.Validation("min_employees must be less than max_employees"), http.StatusBadRequest, "min_employees must be less than max_employees"},
		{"unauthorized", apperrors.Unauthorized("Invalid login credentials"), http.StatusUnauthorized, "Invalid login credentials"},
		{"conflict keeps 401", apperrors.Conflict("A username must be unique"), http.StatusUnauthorized, "A username must be unique"},
		{"forbidden", apperrors.Forbidden("Unauthorized"), http.StatusForbidden, "Unauthorized"},
		{"wrapped not found", fmt.Errorf("get job: %w", apperrors.NotFound("No job found with id 3")), http.StatusNotFound, "No job found with id 3"},
		{"internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
		{"bare sentinel", apperrors.ErrNotFound, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Error(rr, tt.err)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, tt.expectedMessage, body.Message)
		})
	}
}

func TestNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":404,"message":"Not Found"}`, rr.Body.String())
}

func TestJSON_NilBody(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
