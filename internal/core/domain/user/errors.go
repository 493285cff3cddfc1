package user

import (
	"errors"
)

var (
	ErrUserDoesNotExist         = errors.New("user does not exist")
	ErrUsernameOrEmailRequired = errors.New("username or email is required")
)
