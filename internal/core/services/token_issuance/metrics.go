package tokenissuance

import (
	"context"
	"errors"
	e "forumaccount/internal/core/domain/errors"
	"forumaccount/internal/core/services"
)

type OutcomeRecorder interface {
	RecordOutcome(purpose string, outcome string)
}

type serviceWithMetrics struct {
	purpose  Purpose
	recorder OutcomeRecorder
	inner    services.Service[Input, Result]
}

func NewWithMetrics(
	purpose Purpose,
	recorder OutcomeRecorder,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if recorder == nil {
		panic(e.NewNilArgumentError("recorder"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithMetrics{purpose: purpose, recorder: recorder, inner: inner}
}

func (s *serviceWithMetrics) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	switch {
	case errors.Is(err, ErrInvalidInput):
		s.recorder.RecordOutcome(s.purpose.Name, "INVALID_INPUT")
	case err != nil:
		s.recorder.RecordOutcome(s.purpose.Name, "REJECTED")
	default:
		s.recorder.RecordOutcome(s.purpose.Name, result.Outcome.String())
	}
	return result, err
}
