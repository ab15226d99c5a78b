package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// SwapRequestsCreated counts swap requests created.
	SwapRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_swap_requests_created_total",
		Help: "Total number of swap requests created",
	})

	// SwapActions counts terminal actions applied to swap requests.
	SwapActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_actions_total",
		Help: "Total number of swap request actions by type",
	}, []string{"action"})
)

// InitMetrics creates the Prometheus HTTP middleware with the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a Fiber handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
