// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the lead-qualification pipeline.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "leadfilter"

// Metrics holds all pipeline Prometheus metrics.
type Metrics struct {
	LeadsProcessed *prometheus.CounterVec
	LeadsExcluded  *prometheus.CounterVec
	ScoreDuration  prometheus.Histogram
	BatchSize      prometheus.Histogram
	BatchDuration  prometheus.Histogram
}

// Provider wraps the telemetry backends.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics registered on
// the default registry. Create at most one per process.
func NewProvider() *Provider {
	return NewProviderWithRegistry(prometheus.DefaultRegisterer)
}

// NewProviderWithRegistry registers metrics on a caller-owned registry.
// Tests use this to avoid duplicate registration on the global registry.
func NewProviderWithRegistry(reg prometheus.Registerer) *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(reg),
	}
}

// Handler returns the Prometheus HTTP handler for a /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LeadsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadfilter_leads_processed_total",
			Help: "Total leads scored, labelled by priority tier",
		}, []string{"priority"}),
		LeadsExcluded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadfilter_leads_excluded_total",
			Help: "Total leads hard-excluded, labelled by category",
		}, []string{"category"}),
		ScoreDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadfilter_score_duration_seconds",
			Help:    "Time to classify and score a single lead",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadfilter_batch_size",
			Help:    "Number of leads per batch",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadfilter_batch_duration_seconds",
			Help:    "End-to-end batch processing time",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}),
	}
}

// RecordScored records one scored lead.
func (p *Provider) RecordScored(priority string, duration time.Duration) {
	p.Metrics.LeadsProcessed.WithLabelValues(priority).Inc()
	p.Metrics.ScoreDuration.Observe(duration.Seconds())
}

// RecordExcluded records one hard-excluded lead.
func (p *Provider) RecordExcluded(category string) {
	p.Metrics.LeadsExcluded.WithLabelValues(category).Inc()
}

// RecordBatch records batch-level metrics.
func (p *Provider) RecordBatch(size int, duration time.Duration) {
	p.Metrics.BatchSize.Observe(float64(size))
	p.Metrics.BatchDuration.Observe(duration.Seconds())
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
