package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/handlers"
	"github.com/sbilibin2017/jobly/internal/jwt"
	"github.com/sbilibin2017/jobly/internal/middlewares"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/response"
	"github.com/sbilibin2017/jobly/internal/services"
)

type routerFixture struct {
	router    http.Handler
	companies *handlers.MockCompanyServicer
	jobs      *handlers.MockJobServicer
	users     *handlers.MockUserServicer
	auth      *handlers.MockLoginer
	tokens    *jwt.JWT
	dbMock    sqlmock.Sqlmock
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &routerFixture{
		companies: handlers.NewMockCompanyServicer(ctrl),
		jobs:      handlers.NewMockJobServicer(ctrl),
		users:     handlers.NewMockUserServicer(ctrl),
		auth:      handlers.NewMockLoginer(ctrl),
		tokens:    jwt.New(jwt.WithSecretKey("router-test")),
		dbMock:    dbMock,
	}
	f.router = newRouter(routes{
		companies:  f.companies,
		jobs:       f.jobs,
		users:      f.users,
		auth:       f.auth,
		tokener:    f.tokens,
		db:         sqlx.NewDb(db, "sqlmock"),
		swaggerURL: "http://localhost:8080/swagger/doc.json",
	})
	return f
}

func (f *routerFixture) token(t *testing.T, username string, isAdmin bool) string {
	t.Helper()
	tok, err := f.tokens.Generate(context.Background(), username, isAdmin)
	require.NoError(t, err)
	return tok
}

func (f *routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, response.ErrorResponse{Status: http.StatusNotFound, Message: "Not Found"}, decodeError(t, rr))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.do(http.MethodPut, "/login", "", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_InvalidToken(t *testing.T) {
	f := newRouterFixture(t)

	rr := f.do(http.MethodGet, "/users", "garbage", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_Companies(t *testing.T) {
	t.Run("anonymous list is forbidden", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodGet, "/companies", "", "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "User must be logged in", decodeError(t, rr).Message)
	})

	t.Run("logged in user lists", func(t *testing.T) {
		f := newRouterFixture(t)
		f.companies.EXPECT().
			List(gomock.Any(), models.CompanyFilter{}).
			Return([]models.CompanySummary{{Handle: "acme", Name: "Acme"}}, nil)

		rr := f.do(http.MethodGet, "/companies", f.token(t, "alice", false), "")

		require.Equal(t, http.StatusOK, rr.Code)
		var body models.CompaniesResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, []models.CompanySummary{{Handle: "acme", Name: "Acme"}}, body.Companies)
	})

	t.Run("non admin cannot delete", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodDelete, "/companies/acme", f.token(t, "alice", false), "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin deletes", func(t *testing.T) {
		f := newRouterFixture(t)
		f.companies.EXPECT().Delete(gomock.Any(), "acme").Return(nil)

		rr := f.do(http.MethodDelete, "/companies/acme", f.token(t, "root", true), "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouter_Jobs(t *testing.T) {
	t.Run("relevant is not routed as an id", func(t *testing.T) {
		f := newRouterFixture(t)
		f.jobs.EXPECT().Relevant(gomock.Any(), "alice").Return([]models.RelevantJob{}, nil)

		rr := f.do(http.MethodGet, "/jobs/relevant", f.token(t, "alice", false), "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("create commits its transaction", func(t *testing.T) {
		f := newRouterFixture(t)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()
		f.jobs.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.Job{ID: 1, Title: "Engineer", CompanyHandle: "acme"}, nil)

		rr := f.do(http.MethodPost, "/jobs", f.token(t, "root", true),
			`{"title":"Engineer","salary":100,"equity":0.1,"company_handle":"acme"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("failed apply rolls back", func(t *testing.T) {
		f := newRouterFixture(t)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()
		f.jobs.EXPECT().
			Apply(gomock.Any(), "alice", int64(7), "").
			Return(nil, apperrors.NotFound("No job found with id %d", 7))

		rr := f.do(http.MethodPost, "/jobs/7/apply", f.token(t, "alice", false), "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "No job found with id 7", decodeError(t, rr).Message)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})
}

func TestRouter_Users(t *testing.T) {
	t.Run("anonymous list is allowed", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.EXPECT().List(gomock.Any(), models.UserFilter{}).Return([]models.UserSummary{}, nil)

		rr := f.do(http.MethodGet, "/users", "", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("patch by another user is refused before any transaction", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodPatch, "/users/bob", f.token(t, "alice", false), `{"first_name":"Eve"}`)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Unauthorized", decodeError(t, rr).Message)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("admin is not the correct user", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodDelete, "/users/bob", f.token(t, "root", true), "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestRouter_Login(t *testing.T) {
	f := newRouterFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), "alice", "secret").Return("tok", nil)

	rr := f.do(http.MethodPost, "/login", "", `{"username":"alice","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.TokenResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "tok", body.Token)
}

func TestRouter_ApplyPublishesOnlyCommittedWrites(t *testing.T) {
	tests := []struct {
		name      string
		commitErr error
		wantCode  int
		publishes bool
	}{
		{name: "commit succeeds", wantCode: http.StatusCreated, publishes: true},
		{name: "commit fails", commitErr: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			db, dbMock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			jobs := services.NewMockJobRepository(ctrl)
			users := services.NewMockUserExistenceChecker(ctrl)
			apps := services.NewMockApplicationWriter(ctrl)
			writer := services.NewMockKafkaWriter(ctrl)

			users.EXPECT().Exists(gomock.Any(), "alice").Return(true, nil)
			jobs.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Job{ID: 1, CompanyHandle: "acme"}, nil)
			apps.EXPECT().Upsert(gomock.Any(), "alice", int64(1), models.StateApplied).
				Return(&models.Application{Username: "alice", JobID: 1, State: models.StateApplied}, nil)
			if tt.publishes {
				writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			dbMock.ExpectBegin()
			if tt.commitErr != nil {
				dbMock.ExpectCommit().WillReturnError(tt.commitErr)
			} else {
				dbMock.ExpectCommit()
			}

			jobService := services.NewJobService(jobs, services.NewMockJobCompanyReader(ctrl),
				services.NewMockJobTechnologyRepository(ctrl), apps, users, nil, writer,
				services.WithAfterCommit(middlewares.AfterCommit),
			)
			tokens := jwt.New(jwt.WithSecretKey("router-test"))
			router := newRouter(routes{
				companies: handlers.NewMockCompanyServicer(ctrl),
				jobs:      jobService,
				users:     handlers.NewMockUserServicer(ctrl),
				auth:      handlers.NewMockLoginer(ctrl),
				tokener:   tokens,
				db:        sqlx.NewDb(db, "sqlmock"),
			})

			token, err := tokens.Generate(context.Background(), "alice", false)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/jobs/1/apply", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.NoError(t, dbMock.ExpectationsWereMet())
		})
	}
}
