package app

import (
	"context"
	"forumaccount/internal/app/services"
	"forumaccount/internal/config"
	tokenissuance "forumaccount/internal/core/services/token_issuance"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	outcome tokenissuance.Outcome
	calls   int
}

func (s *stubService) Run(ctx context.Context, input tokenissuance.Input) (tokenissuance.Result, error) {
	s.calls++
	return tokenissuance.Result{Outcome: s.outcome}, nil
}

func TestRoutes(t *testing.T) {
	assert := require.New(t)
	reset := &stubService{outcome: tokenissuance.OutcomeOK}
	reactivate := &stubService{outcome: tokenissuance.OutcomeNoUser}
	metricsHandler := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Write([]byte("metrics"))
	})
	router := NewRouter(
		&config.Config{AllowedOrigins: []string{"https://forum.test"}},
		metricsHandler,
		&services.Services{IssuePasswordResetToken: reset, IssueReactivationToken: reactivate},
	)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/account/reset", strings.NewReader(`{"username":"alice"}`)))
	assert.Equal(http.StatusOK, rr.Code)
	assert.Equal(1, reset.calls)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/account/reactivate", strings.NewReader(`{"username":"bob"}`)))
	assert.Equal(http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(1, reactivate.calls)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/account/reset", nil))
	assert.Equal(http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(http.StatusOK, rr.Code)
	assert.Equal("metrics", rr.Body.String())
}

func TestCORS(t *testing.T) {
	router := NewRouter(
		&config.Config{AllowedOrigins: []string{"https://forum.test"}},
		http.NotFoundHandler(),
		&services.Services{
			IssuePasswordResetToken: &stubService{},
			IssueReactivationToken:  &stubService{},
		},
	)
	req := httptest.NewRequest(http.MethodOptions, "/account/reset", nil)
	req.Header.Set("Origin", "https://forum.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, "https://forum.test", rr.Header().Get("Access-Control-Allow-Origin"))
}
