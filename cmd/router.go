package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/jobly/internal/handlers"
	"github.com/sbilibin2017/jobly/internal/middlewares"
	"github.com/sbilibin2017/jobly/internal/response"
)

// routes carries the dependencies newRouter mounts.
type routes struct {
	companies  handlers.CompanyServicer
	jobs       handlers.JobServicer
	users      handlers.UserServicer
	auth       handlers.Loginer
	tokener    middlewares.Tokener
	db         *sqlx.DB
	swaggerURL string
}

// newRouter builds the HTTP API. Every request passes through Authenticate;
// guards then decide per route who may reach the handler.
func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.Authenticate(rt.tokener))

	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.MethodNotAllowed)

	tx := middlewares.TxMiddleware(rt.db)

	r.Route("/companies", func(r chi.Router) {
		r.With(middlewares.RequireLogin).Get("/", handlers.NewListCompaniesHandler(rt.companies))
		r.With(middlewares.RequireAdmin).Post("/", handlers.NewCreateCompanyHandler(rt.companies))
		r.With(middlewares.RequireLogin).Get("/{handle}", handlers.NewGetCompanyHandler(rt.companies))
		r.With(middlewares.RequireAdmin).Patch("/{handle}", handlers.NewUpdateCompanyHandler(rt.companies))
		r.With(middlewares.RequireAdmin).Delete("/{handle}", handlers.NewDeleteCompanyHandler(rt.companies))
	})

	r.Route("/jobs", func(r chi.Router) {
		r.With(middlewares.RequireLogin).Get("/", handlers.NewListJobsHandler(rt.jobs))
		r.With(middlewares.RequireAdmin, tx).Post("/", handlers.NewCreateJobHandler(rt.jobs))
		r.With(middlewares.RequireLogin).Get("/relevant", handlers.NewRelevantJobsHandler(rt.jobs))
		r.With(middlewares.RequireLogin).Get("/{id}", handlers.NewGetJobHandler(rt.jobs))
		r.With(middlewares.RequireAdmin).Patch("/{id}", handlers.NewUpdateJobHandler(rt.jobs))
		r.With(middlewares.RequireAdmin).Delete("/{id}", handlers.NewDeleteJobHandler(rt.jobs))
		r.With(middlewares.RequireLogin, tx).Post("/{id}/apply", handlers.NewApplyHandler(rt.jobs))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", handlers.NewListUsersHandler(rt.users))
		r.With(tx).Post("/", handlers.NewRegisterHandler(rt.users))
		r.Get("/{username}", handlers.NewGetUserHandler(rt.users))
		r.With(middlewares.RequireCorrectUser, tx).Patch("/{username}", handlers.NewUpdateUserHandler(rt.users))
		r.With(middlewares.RequireCorrectUser).Delete("/{username}", handlers.NewDeleteUserHandler(rt.users))
	})

	r.Post("/login", handlers.NewLoginHandler(rt.auth))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(rt.swaggerURL)))

	return r
}
