package user

import (
	"fmt"
	c "forumaccount/internal/core/domain/common"
	e "forumaccount/internal/core/domain/errors"
	"strings"
	"time"
)

type ID int64

type Username string

type Status int

const (
	StatusRegistered Status = 0
	StatusBanned     Status = 9
	StatusActive     Status = 10
)

func (s Status) String() string {
	switch s {
	case StatusRegistered:
		return "registered"
	case StatusBanned:
		return "banned"
	case StatusActive:
		return "active"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Token is an opaque single-use secret. It is placed into a URL query as is,
// so generators must only produce URL-safe characters.
type Token string

func (t Token) String() string {
	return "***"
}

type User struct {
	ID                 ID
	Username           c.Optional[Username]
	Email              c.Optional[c.Email]
	Status             Status
	PasswordResetToken c.Optional[Token]
	ActivationToken    c.Optional[Token]
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (u *User) HasEmail() bool {
	return u.Email.IsPresent && !u.Email.Value.IsEmpty()
}

func (u *User) GeneratePasswordResetToken(generator TokenGenerator) Token {
	token := generator.GenerateToken()
	u.PasswordResetToken = c.NewOptional(token, true)
	return token
}

func (u *User) GenerateActivationToken(generator TokenGenerator) Token {
	token := generator.GenerateToken()
	u.ActivationToken = c.NewOptional(token, true)
	return token
}

func (u *User) Validate() error {
	hasUsername := u.Username.IsPresent && strings.TrimSpace(string(u.Username.Value)) != ""
	if !hasUsername && !u.HasEmail() {
		return fmt.Errorf("user %d: %w", u.ID, ErrUsernameOrEmailRequired)
	}
	if u.PasswordResetToken.IsPresent && u.PasswordResetToken.Value == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password reset token is empty for user %d", u.ID))
	}
	if u.ActivationToken.IsPresent && u.ActivationToken.Value == "" {
		return e.NewInvalidStateError(fmt.Sprintf("activation token is empty for user %d", u.ID))
	}
	return nil
}
