package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/marcelsud/booklend/library"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter exports catalog gauges and lending outcome counts in Prometheus format
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	meter             metric.Meter
	booksGauge        metric.Int64ObservableGauge
	stockGauge        metric.Int64ObservableGauge
	membersGauge      metric.Int64ObservableGauge
	activeLoansGauge  metric.Int64ObservableGauge
	operationsCounter metric.Int64Counter
}

var _ library.OutcomeRecorder = (*OTelExporter)(nil)

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"booklend",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.booksGauge, err = oe.meter.Int64ObservableGauge(
		"library.books.count",
		metric.WithDescription("Number of entries in the catalog"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observe(func(m Metrics) int64 { return m.Books })),
	)
	if err != nil {
		return fmt.Errorf("creating books gauge: %w", err)
	}

	oe.stockGauge, err = oe.meter.Int64ObservableGauge(
		"library.books.stock",
		metric.WithDescription("Copies on the shelf across the catalog"),
		metric.WithUnit("{copies}"),
		metric.WithInt64Callback(oe.observe(func(m Metrics) int64 { return m.Stock })),
	)
	if err != nil {
		return fmt.Errorf("creating stock gauge: %w", err)
	}

	oe.membersGauge, err = oe.meter.Int64ObservableGauge(
		"library.members.count",
		metric.WithDescription("Number of registered members"),
		metric.WithUnit("{members}"),
		metric.WithInt64Callback(oe.observe(func(m Metrics) int64 { return m.Members })),
	)
	if err != nil {
		return fmt.Errorf("creating members gauge: %w", err)
	}

	oe.activeLoansGauge, err = oe.meter.Int64ObservableGauge(
		"library.loans.active",
		metric.WithDescription("Copies currently held by members"),
		metric.WithUnit("{copies}"),
		metric.WithInt64Callback(oe.observe(func(m Metrics) int64 { return m.ActiveLoans })),
	)
	if err != nil {
		return fmt.Errorf("creating active loans gauge: %w", err)
	}

	oe.operationsCounter, err = oe.meter.Int64Counter(
		"library.operations",
		metric.WithDescription("Lending operations by name and outcome"),
		metric.WithUnit("{operations}"),
	)
	if err != nil {
		return fmt.Errorf("creating operations counter: %w", err)
	}

	return nil
}

// observe builds a gauge callback reading one field of a fresh collection
func (oe *OTelExporter) observe(field func(Metrics) int64) metric.Int64Callback {
	return func(ctx context.Context, observer metric.Int64Observer) error {
		m, err := oe.collector.Collect(ctx)
		if err != nil {
			return err
		}
		observer.Observe(field(m))
		return nil
	}
}

// RecordOutcome counts one lending operation
func (oe *OTelExporter) RecordOutcome(ctx context.Context, operation string, outcome library.Outcome) {
	oe.operationsCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome.Kind.String()),
	))
}

// Handler serves Prometheus-formatted metrics
func (oe *OTelExporter) Handler() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
