package issuetoken

import (
	"encoding/json"
	"errors"
	e "forumaccount/internal/core/domain/errors"
	ratelimiter "forumaccount/internal/core/domain/rate_limiter"
	"forumaccount/internal/core/services"
	service "forumaccount/internal/core/services/token_issuance"
	"forumaccount/internal/http/handlers/response"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

const TestTokenHeader = "x-test-token"

// Handler issues a password reset or a reactivation token depending on the
// purpose of the wrapped service.
type Handler struct {
	service    services.Service[service.Input, service.Result]
	purpose    service.Purpose
	isTestMode bool
}

func New(
	s services.Service[service.Input, service.Result],
	purpose service.Purpose,
	isTestMode bool,
) *Handler {
	if s == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: s, purpose: purpose, isTestMode: isTestMode}
}

type Input struct {
	Username string `json:"username"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(0, 255)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Identifier: input.Username})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			response.RenderInvalidRequest(rw)
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	if h.isTestMode && result.Token.IsPresent {
		rw.Header().Set(TestTokenHeader, string(result.Token.Value))
	}
	response.Render(rw, response.Outcome{
		Outcome: result.Outcome.String(),
		Code:    int(result.Outcome),
		Message: result.Outcome.Message(h.purpose),
	}, StatusFor(result.Outcome))
}

func StatusFor(outcome service.Outcome) int {
	switch outcome {
	case service.OutcomeOK:
		return http.StatusOK
	case service.OutcomeNoUser, service.OutcomeNoEmail, service.OutcomeEmailSendErr:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
