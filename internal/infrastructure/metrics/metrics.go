// Package metrics expone métricas Prometheus del motor de inventario y de la API HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
)

var _ inventory.Observer = (*Metrics)(nil)

// Resultados posibles de una unidad de trabajo del motor.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics registry propio con los contadores del motor y de HTTP.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	movements       *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New inicializa el registry y registra las métricas.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	movements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_movements_total",
		Help: "Unidades de trabajo del motor de inventario por tipo, operación y resultado.",
	}, []string{"kind", "op", "outcome"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_http_requests_total",
		Help: "Peticiones HTTP por ruta, método y status.",
	}, []string{"route", "method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "estoque_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP por ruta.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	registry.MustRegister(movements, requests, duration)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		movements:       movements,
		requestsTotal:   requests,
		requestDuration: duration,
	}
}

// MovementApplied cuenta una unidad de trabajo confirmada.
func (m *Metrics) MovementApplied(kind inventory.MovementKind, op inventory.Operation) {
	m.movements.WithLabelValues(string(kind), string(op), OutcomeApplied).Inc()
}

// MovementRejected separa rechazos de negocio de fallos del almacén.
func (m *Metrics) MovementRejected(kind inventory.MovementKind, op inventory.Operation, err error) {
	outcome := OutcomeFailed
	if inventory.IsBusinessRejection(err) {
		outcome = OutcomeRejected
	}
	m.movements.WithLabelValues(string(kind), string(op), outcome).Inc()
}

// Handler http.Handler para /metrics.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Middleware registra conteo y duración de cada petición usando el patrón de ruta de Fiber.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := "unknown"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		m.requestsTotal.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}
