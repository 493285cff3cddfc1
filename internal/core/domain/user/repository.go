package user

import (
	"context"
)

type UserRepository interface {
	// FindByKeyfield returns the user whose username or email equals keyfield
	// and whose status equals status.
	FindByKeyfield(ctx context.Context, keyfield string, status Status) (User, error)
	// SaveTokens overwrites both token columns of the user with the given values.
	SaveTokens(ctx context.Context, u User) (User, error)
}

type TokenGenerator interface {
	GenerateToken() Token
}
