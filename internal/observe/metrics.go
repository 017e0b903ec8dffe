// Package observe provides OpenTelemetry metrics and tracing for the
// couplet service, plus the HTTP middleware that records them.
//
// Metrics go through the OpenTelemetry Metrics API. InitProvider bridges
// them to Prometheus so they can be scraped from /metrics. Tests should
// build their own Metrics with NewMetrics and a ManualReader.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/heartmarshall/padagalu-backend"

// Status attribute values.
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusEmpty = "empty"
)

// Metrics holds the metric instruments of the application.
type Metrics struct {
	// GenerationDuration tracks couplet generation latency.
	GenerationDuration metric.Float64Histogram

	// GenerationRequests counts generation calls by status (ok, empty, error).
	GenerationRequests metric.Int64Counter

	// CoupletsGenerated counts couplets returned to callers.
	CoupletsGenerated metric.Int64Counter

	// CoupletsSaved counts couplets persisted by users.
	CoupletsSaved metric.Int64Counter

	// WordLookups counts lookups by resulting status.
	WordLookups metric.Int64Counter

	// WordsAdded counts words added to the store, by source (api, seeder).
	WordsAdded metric.Int64Counter

	// HTTPRequestDuration tracks request latency by method, route and status.
	HTTPRequestDuration metric.Float64Histogram
}

// generationBuckets are tuned for a beam search that runs in milliseconds
// for small pools and up to a few seconds for large ones.
var generationBuckets = []float64{
	0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.GenerationDuration, err = m.Float64Histogram("padagalu.generation.duration",
		metric.WithDescription("Latency of couplet generation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(generationBuckets...),
	); err != nil {
		return nil, err
	}
	if met.GenerationRequests, err = m.Int64Counter("padagalu.generation.requests",
		metric.WithDescription("Couplet generation calls by status."),
	); err != nil {
		return nil, err
	}
	if met.CoupletsGenerated, err = m.Int64Counter("padagalu.couplets.generated",
		metric.WithDescription("Couplets returned by generation."),
	); err != nil {
		return nil, err
	}
	if met.CoupletsSaved, err = m.Int64Counter("padagalu.couplets.saved",
		metric.WithDescription("Couplets saved."),
	); err != nil {
		return nil, err
	}
	if met.WordLookups, err = m.Int64Counter("padagalu.words.lookups",
		metric.WithDescription("Word lookups by resulting status."),
	); err != nil {
		return nil, err
	}
	if met.WordsAdded, err = m.Int64Counter("padagalu.words.added",
		metric.WithDescription("Words added to the store by source."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("padagalu.http.request.duration",
		metric.WithDescription("HTTP request latency by method, route and status."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordGeneration records one generation call.
func (m *Metrics) RecordGeneration(ctx context.Context, elapsed time.Duration, produced int, err error) {
	status := StatusOK
	switch {
	case err != nil:
		status = StatusError
	case produced == 0:
		status = StatusEmpty
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.GenerationDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.GenerationRequests.Add(ctx, 1, attrs)
	if produced > 0 {
		m.CoupletsGenerated.Add(ctx, int64(produced))
	}
}

// RecordLookup counts a word lookup with its outcome.
func (m *Metrics) RecordLookup(ctx context.Context, status string) {
	m.WordLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordWordsAdded counts n new words from source.
func (m *Metrics) RecordWordsAdded(ctx context.Context, source string, n int) {
	if n <= 0 {
		return
	}
	m.WordsAdded.Add(ctx, int64(n), metric.WithAttributes(attribute.String("source", source)))
}

// RecordCoupletSaved counts one saved couplet.
func (m *Metrics) RecordCoupletSaved(ctx context.Context) {
	m.CoupletsSaved.Add(ctx, 1)
}
