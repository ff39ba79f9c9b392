// Package prometheus counts order lifecycle events and exposes them for scraping.
package prometheus

import (
	"context"
	"net/http"

	"grocery/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "grocery"

// Recorder implements ports.EventPublisher on top of a private registry, so
// several recorders (one per test) never collide on metric names.
type Recorder struct {
	registry    *prometheus.Registry
	created     prometheus.Counter
	transitions *prometheus.CounterVec
	claims      *prometheus.CounterVec
	backlog     *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders placed by shoppers.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Committed order status changes by edge.",
		}, []string{"from", "to"}),
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_claims_total",
			Help:      "Orders claimed for delivery by deliverer.",
		}, []string{"deliverer"}),
		backlog: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "order_backlog",
			Help:      "Orders waiting in a work queue at the last backlog report.",
		}, []string{"view"}),
	}

	registry.MustRegister(
		r.created,
		r.transitions,
		r.claims,
		r.backlog,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Publish implements ports.EventPublisher. It never fails.
func (r *Recorder) Publish(_ context.Context, events ...order.StatusChanged) error {
	for _, event := range events {
		if event.IsCreation() {
			r.created.Inc()
			continue
		}
		r.transitions.WithLabelValues(event.From.String(), event.To.String()).Inc()
		if event.To == order.OutForDelivery {
			r.claims.WithLabelValues(event.DelivererID).Inc()
		}
	}
	return nil
}

// SetBacklog records how many orders a work queue view held at the last report.
func (r *Recorder) SetBacklog(view string, count int) {
	r.backlog.WithLabelValues(view).Set(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry to extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
