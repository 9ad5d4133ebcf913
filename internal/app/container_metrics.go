package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"workout-api/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
}

func provideMetrics() (metricsOut, error) {
	rl, err := registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{RateLimitExceededTotal: rl}, nil
}

// registerCounter registers fresh in the default registry; when a collector
// with the same descriptor already exists, the existing one is returned.
func registerCounter(name string, fresh prometheus.Counter) (prometheus.Counter, error) {
	err := prometheus.DefaultRegisterer.Register(fresh)
	if err == nil {
		return fresh, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("register %s: %w", name, err)
}
