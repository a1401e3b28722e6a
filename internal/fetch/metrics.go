package fetch

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts controller outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	attempts *prometheus.CounterVec
	retries  *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	attempts, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "fetch_attempts_total",
		Help: "Request controller calls by operation and outcome.",
	}, []string{"operation", "outcome"})
	if err != nil {
		return nil, err
	}

	retries, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "fetch_retries_total",
		Help: "Retries issued after an upstream 401, by operation.",
	}, []string{"operation"})
	if err != nil {
		return nil, err
	}

	return &Metrics{attempts: attempts, retries: retries}, nil
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels []string) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(opts, labels)
	if reg == nil {
		return vec, nil
	}

	if err := reg.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("fetch: failed to register %s: %w", opts.Name, err)
	}
	return vec, nil
}

func (m *Metrics) outcome(operation, outcome string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) retry(operation string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(operation).Inc()
}
