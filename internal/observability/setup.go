// Package observability starts tracing, profiling and the pprof endpoint for a process.
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/royale-stats/internal/config"
	"github.com/riskibarqy/royale-stats/internal/platform/logging"
)

// stopFunc releases one started component.
type stopFunc func(context.Context) error

// starter returns a nil stopFunc when its component is disabled.
type starter struct {
	name  string
	start func(config.Config, *logging.Logger) (stopFunc, error)
}

var starters = []starter{
	{name: "uptrace", start: startTracing},
	{name: "pyroscope", start: startProfiler},
	{name: "pprof", start: startPprof},
}

// Setup starts every enabled component. If one fails, those already started
// are stopped before returning. The returned shutdown stops them in reverse
// order and joins their errors.
func Setup(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	type running struct {
		name string
		stop stopFunc
	}
	var started []running

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(started) - 1; i >= 0; i-- {
			if err := started[i].stop(ctx); err != nil {
				errs = append(errs, fmt.Errorf("stop %s: %w", started[i].name, err))
			}
		}
		return errors.Join(errs...)
	}

	for _, s := range starters {
		stop, err := s.start(cfg, logger)
		if err != nil {
			_ = shutdown(context.Background())
			return nil, fmt.Errorf("start %s: %w", s.name, err)
		}
		if stop == nil {
			logger.Debug("observability component disabled", "component", s.name)
			continue
		}
		started = append(started, running{name: s.name, stop: stop})
	}
	return shutdown, nil
}
