package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/learnhub-api/internal/application/account"
	"github.com/learnhub-api/internal/application/auth"
	"github.com/learnhub-api/internal/application/document"
	"github.com/learnhub-api/internal/config"
	"github.com/learnhub-api/internal/transport/http/handler"
	appmiddleware "github.com/learnhub-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.PlatformErrors)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	accountSvc := account.NewService(deps.AccountRepo)
	authSvc := auth.NewService(auth.ServiceDeps{
		AccountRepo:   deps.AccountRepo,
		Mailer:        deps.Mailer,
		SMSSender:     deps.SMSSender,
		TokenProvider: deps.TokenProvider,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	documentSvc := document.NewService(deps.ObjectStore, deps.DocumentRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, accountSvc)
	accountH := handler.NewAccountHandler(accountSvc)
	documentH := handler.NewDocumentHandler(documentSvc)

	authMw := appmiddleware.Auth(authSvc)

	// 5 requests/second, burst of 10 — applied to credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/signup", authH.Signup)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)
		r.With(sensitiveRL.Limit).Post("/auth/request-reset", authH.RequestReset)
		r.With(sensitiveRL.Limit).Post("/auth/reset-password", authH.ResetPassword)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/auth/me", authH.Me)

			r.Get("/accounts/{id}", accountH.Get)
			r.Put("/accounts/{id}", accountH.Update)
			r.Post("/accounts/{id}/password", accountH.ChangePassword)

			r.Post("/documents", documentH.Upload)
			r.Get("/documents", documentH.List)
			r.Get("/documents/{id}", documentH.Download)
			r.Delete("/documents/{id}", documentH.Delete)
		})
	})

	return r
}
