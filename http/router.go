package http

import (
	"log/slog"
	"net/http"
)

// NewRouter mounts the consórcio endpoints behind rate limiting and access
// logging.
func NewRouter(
	simulations *SimulationHandler,
	scenarios *ScenarioHandler,
	limiter *RateLimiter,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux.Handle("/consorcio/simulate", limited(simulations.Simulate))
	mux.Handle("/consorcio/simulations/{id}", limited(simulations.GetSimulation))
	mux.Handle("/consorcio/simulations/{id}/report", limited(simulations.Report))
	mux.Handle("/consorcio/scenarios", limited(scenarios.CompareContemplation))

	return LoggingMiddleware(logger, mux)
}
