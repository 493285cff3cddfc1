package tokenissuance

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var ErrInvalidInput = errors.New("invalid input")

type Input struct {
	// Identifier is a username or an email address.
	Identifier string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Identifier, validation.Required, validation.Length(1, 255)),
	)
}

func (i Input) GetRateLimitKey() string {
	return "token_issuance::" + strings.ToLower(strings.TrimSpace(i.Identifier))
}

func (i Input) normalized() Input {
	return Input{Identifier: strings.TrimSpace(i.Identifier)}
}
