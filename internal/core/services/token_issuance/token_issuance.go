package tokenissuance

import (
	"context"
	"errors"
	"fmt"
	c "forumaccount/internal/core/domain/common"
	e "forumaccount/internal/core/domain/errors"
	"forumaccount/internal/core/domain/logging"
	"forumaccount/internal/core/domain/user"
	"forumaccount/internal/core/services"
	"time"
)

type Result struct {
	Outcome Outcome
	UserID  c.Optional[user.ID]
	// Token is set once the generated token has been persisted.
	Token c.Optional[user.Token]
}

type service struct {
	log            logging.Logger
	purpose        Purpose
	userRepository user.UserRepository
	tokenGenerator user.TokenGenerator
	notifier       Notifier
	now            func() time.Time
}

func New(
	log logging.Logger,
	purpose Purpose,
	userRepository user.UserRepository,
	tokenGenerator user.TokenGenerator,
	notifier Notifier,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if purpose.generate == nil {
		panic(e.NewNilArgumentError("purpose"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		purpose:        purpose,
		userRepository: userRepository,
		tokenGenerator: tokenGenerator,
		notifier:       notifier,
		now:            now,
	}
}

func NewPasswordReset(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenGenerator user.TokenGenerator,
	notifier Notifier,
	now func() time.Time,
) services.Service[Input, Result] {
	return New(log, PasswordReset, userRepository, tokenGenerator, notifier, now)
}

func NewReactivation(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenGenerator user.TokenGenerator,
	notifier Notifier,
	now func() time.Time,
) services.Service[Input, Result] {
	return New(log, Reactivation, userRepository, tokenGenerator, notifier, now)
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	u, err := s.userRepository.FindByKeyfield(ctx, input.Identifier, s.purpose.RequiredStatus)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"User not found for token issuance.",
			logging.Entry("purpose", s.purpose.Name),
			logging.Entry("identifier", input.Identifier),
			logging.Entry("status", s.purpose.RequiredStatus),
		)
		return Result{Outcome: OutcomeNoUser}, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for token issuance.",
			logging.Entry("purpose", s.purpose.Name),
			logging.Entry("identifier", input.Identifier),
			logging.Entry("err", err),
		)
		return Result{Outcome: OutcomeErr}, nil
	}
	result.UserID = c.NewOptional(u.ID, true)

	token := s.purpose.generate(&u, s.tokenGenerator)
	u.UpdatedAt = s.now()
	if err := u.Validate(); err != nil {
		s.log.Error(
			ctx,
			"User is not valid, token will not be saved.",
			logging.Entry("purpose", s.purpose.Name),
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		result.Outcome = OutcomeErr
		return result, nil
	}
	u, err = s.userRepository.SaveTokens(ctx, u)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save user token.",
			logging.Entry("purpose", s.purpose.Name),
			logging.Entry("userID", result.UserID.Value),
			logging.Entry("err", err),
		)
		result.Outcome = OutcomeErr
		return result, nil
	}
	result.Token = c.NewOptional(token, true)

	if !u.HasEmail() {
		s.log.Warning(
			ctx,
			"Token has been saved but user has no email.",
			logging.Entry("purpose", s.purpose.Name),
			logging.Entry("userID", u.ID),
		)
		result.Outcome = OutcomeNoEmail
		return result, nil
	}

	if err := s.notifier.Notify(ctx, s.purpose, u, token); err != nil {
		s.log.Error(
			ctx,
			"Could not send token email.",
			logging.Entry("purpose", s.purpose.Name),
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		result.Outcome = OutcomeEmailSendErr
		return result, nil
	}

	s.log.Info(
		ctx,
		"Token has been issued and queued for sending.",
		logging.Entry("purpose", s.purpose.Name),
		logging.Entry("userID", u.ID),
	)
	result.Outcome = OutcomeOK
	return result, nil
}
