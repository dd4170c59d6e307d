// Package metrics registra las métricas Prometheus de la consola.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry crea un registro propio con los collectors de runtime y proceso.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// BackendMetrics llamadas al backend REST por operación y resultado.
type BackendMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewBackendMetrics registra las métricas en reg.
func NewBackendMetrics(reg prometheus.Registerer, service, env string) *BackendMetrics {
	constLabels := prometheus.Labels{"service": service, "env": env}
	m := &BackendMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "memberflow_backend_requests_total",
			Help:        "Llamadas al backend de MemberFlow por operación y resultado.",
			ConstLabels: constLabels,
		}, []string{"op", "outcome", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "memberflow_backend_request_duration_seconds",
			Help:        "Latencia de las llamadas al backend de MemberFlow.",
			Buckets:     []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			ConstLabels: constLabels,
		}, []string{"op"}),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

// Observe registra una llamada. status 0 = error de red. Receptor nil no hace nada.
func (m *BackendMetrics) Observe(op string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(op, Outcome(status), strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Outcome clasifica el estado HTTP con baja cardinalidad.
func Outcome(status int) string {
	switch {
	case status == 0:
		return "network_error"
	case status >= 200 && status < 300:
		return "ok"
	case status >= 400 && status < 500:
		return "client_error"
	case status >= 500:
		return "server_error"
	default:
		return "unexpected"
	}
}
