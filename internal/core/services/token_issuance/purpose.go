package tokenissuance

import (
	"forumaccount/internal/core/domain/content"
	"forumaccount/internal/core/domain/link"
	"forumaccount/internal/core/domain/user"
)

type Purpose struct {
	Name           string
	Title          string
	RequiredStatus user.Status
	TemplateKey    content.Key
	Route          link.Route
	generate       func(u *user.User, generator user.TokenGenerator) user.Token
}

var (
	PasswordReset = Purpose{
		Name:           "password_reset",
		Title:          "password reset",
		RequiredStatus: user.StatusActive,
		TemplateKey:    content.EmailPasswordReset,
		Route:          link.RoutePasswordReset,
		generate:       (*user.User).GeneratePasswordResetToken,
	}
	Reactivation = Purpose{
		Name:           "reactivation",
		Title:          "account activation",
		RequiredStatus: user.StatusRegistered,
		TemplateKey:    content.EmailReactivation,
		Route:          link.RouteActivation,
		generate:       (*user.User).GenerateActivationToken,
	}
)

func (p Purpose) String() string {
	return p.Name
}
