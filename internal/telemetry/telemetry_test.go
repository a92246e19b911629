package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestRecordScored(t *testing.T) {
	provider := NewProviderWithRegistry(prometheus.NewRegistry())

	provider.RecordScored("HIGH", 2*time.Millisecond)
	provider.RecordScored("HIGH", time.Millisecond)
	provider.RecordScored("LOW", time.Millisecond)

	high := provider.Metrics.LeadsProcessed.WithLabelValues("HIGH")
	assert.Equal(t, 2.0, testutil.ToFloat64(high))
	low := provider.Metrics.LeadsProcessed.WithLabelValues("LOW")
	assert.Equal(t, 1.0, testutil.ToFloat64(low))
}

func TestRecordExcluded(t *testing.T) {
	provider := NewProviderWithRegistry(prometheus.NewRegistry())

	provider.RecordExcluded("role-prefix")
	provider.RecordExcluded("role-prefix")

	counter := provider.Metrics.LeadsExcluded.WithLabelValues("role-prefix")
	assert.Equal(t, 2.0, testutil.ToFloat64(counter))
}

func TestRecordBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	provider := NewProviderWithRegistry(reg)

	provider.RecordBatch(100, 50*time.Millisecond)

	count, err := testutil.GatherAndCount(reg,
		"leadfilter_batch_size", "leadfilter_batch_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStartSpan(t *testing.T) {
	provider := NewProviderWithRegistry(prometheus.NewRegistry())

	ctx, span := provider.StartSpan(context.Background(), "test.op",
		attribute.Int("batch_size", 3))
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()
}

func TestHandler(t *testing.T) {
	provider := NewProviderWithRegistry(prometheus.NewRegistry())
	assert.NotNil(t, provider.Handler())
}
