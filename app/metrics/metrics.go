// Package metrics exposes request counters and the /metrics handler.
package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "school_http_requests_total",
		Help: "HTTP requests by route and status code.",
	},
	[]string{"method", "route", "status"},
)

// Middleware counts every handled request by route pattern and status.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		route := c.Route().Path
		requestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler serves the prometheus registry in fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
