package app

import (
	"fmt"
	"forumaccount/internal/app/deps"
	"forumaccount/internal/app/services"
	"forumaccount/internal/config"
	tokenissuance "forumaccount/internal/core/services/token_issuance"
	issuetoken "forumaccount/internal/http/handlers/account/issue_token"
	"forumaccount/internal/metrics"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps.Config, metrics.Handler(deps.Registry), s)
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}

func NewRouter(config *config.Config, metricsHandler http.Handler, s *services.Services) chi.Router {
	isTestMode := config.IsTestMode

	accountRouter := chi.NewRouter()
	accountRouter.Method(
		http.MethodPost,
		"/reset",
		issuetoken.New(s.IssuePasswordResetToken, tokenissuance.PasswordReset, isTestMode),
	)
	accountRouter.Method(
		http.MethodPost,
		"/reactivate",
		issuetoken.New(s.IssueReactivationToken, tokenissuance.Reactivation, isTestMode),
	)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{issuetoken.TestTokenHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/account", accountRouter)
	router.Method(http.MethodGet, "/metrics", metricsHandler)

	return router
}
