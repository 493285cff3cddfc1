package services

import (
	"forumaccount/internal/app/deps"
	drl "forumaccount/internal/core/domain/rate_limiter"
	"forumaccount/internal/core/services"
	ratelimiting "forumaccount/internal/core/services/rate_limiting"
	tokenissuance "forumaccount/internal/core/services/token_issuance"
)

type Services struct {
	IssuePasswordResetToken services.Service[tokenissuance.Input, tokenissuance.Result]
	IssueReactivationToken  services.Service[tokenissuance.Input, tokenissuance.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	rateLimit := drl.Limit{Interval: drl.Hour, Value: deps.Config.RateLimitPerHour}

	s.IssuePasswordResetToken = tokenissuance.NewWithMetrics(
		tokenissuance.PasswordReset,
		deps.OutcomeRecorder,
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			rateLimit,
			tokenissuance.NewPasswordReset(
				deps.Logger,
				deps.UserRepository,
				deps.TokenGenerator,
				deps.Notifier,
				deps.Now,
			),
		),
	)
	s.IssueReactivationToken = tokenissuance.NewWithMetrics(
		tokenissuance.Reactivation,
		deps.OutcomeRecorder,
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			rateLimit,
			tokenissuance.NewReactivation(
				deps.Logger,
				deps.UserRepository,
				deps.TokenGenerator,
				deps.Notifier,
				deps.Now,
			),
		),
	)

	return s
}
