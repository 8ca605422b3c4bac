package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores Prometheus de la aplicación. Un registry propio evita
// chocar con el registry global en tests.
type Metrics struct {
	registry *prometheus.Registry

	TransfersCreated   *prometheus.CounterVec
	TransfersValidated *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
}

// New crea el registry y registra los contadores.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		TransfersCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warehouse_transfers_created_total",
			Help: "Traslados creados, por tipo.",
		}, []string{"type"}),
		TransfersValidated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warehouse_transfers_validated_total",
			Help: "Traslados validados (DONE), por tipo.",
		}, []string{"type"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warehouse_http_requests_total",
			Help: "Peticiones HTTP atendidas, por método y código.",
		}, []string{"method", "status"}),
	}
}

// Handler devuelve el handler HTTP estándar para exponer /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
