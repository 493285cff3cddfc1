package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts token issuance outcomes per purpose.
type Recorder struct {
	outcomes *prometheus.CounterVec
}

// NewRecorder registers the outcome counter in registerer. When the counter is
// already registered the existing one is reused.
func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forumaccount",
		Name:      "token_issuance_outcomes_total",
		Help:      "Number of token issuance requests by purpose and outcome.",
	}, []string{"purpose", "outcome"})

	err := registerer.Register(outcomes)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		outcomes = existing
	} else if err != nil {
		return nil, err
	}
	return &Recorder{outcomes: outcomes}, nil
}

func (r *Recorder) RecordOutcome(purpose string, outcome string) {
	r.outcomes.WithLabelValues(purpose, outcome).Inc()
}

// Handler exposes the metrics gathered by gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
