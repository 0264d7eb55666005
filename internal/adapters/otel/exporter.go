// Package otel exports submission metrics to an OTEL Collector.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/haakusi/momentum/internal/ports"
)

const (
	serviceName    = "momentum"
	serviceVersion = "1.0.0"
)

// Exporter exports submission metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	meter            metric.Meter
	submissionsTotal metric.Int64Counter
	minutesTotal     metric.Int64Counter
	readingTotal     metric.Int64Counter
	streakHist       metric.Int64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	submissionsTotal, err := meter.Int64Counter(
		"momentum_submissions_total",
		metric.WithDescription("Total habit submissions processed"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating submissions counter: %w", err)
	}

	minutesTotal, err := meter.Int64Counter(
		"momentum_activity_minutes_total",
		metric.WithDescription("Total activity minutes recorded, by category"),
		metric.WithUnit("min"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating minutes counter: %w", err)
	}

	readingTotal, err := meter.Int64Counter(
		"momentum_reading_logs_total",
		metric.WithDescription("Total submissions carrying a reading line"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reading counter: %w", err)
	}

	streakHist, err := meter.Int64Histogram(
		"momentum_streak_days",
		metric.WithDescription("Current streak length observed after each submission"),
		metric.WithUnit("d"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating streak histogram: %w", err)
	}

	return &Exporter{
		provider:         provider,
		meter:            meter,
		submissionsTotal: submissionsTotal,
		minutesTotal:     minutesTotal,
		readingTotal:     readingTotal,
		streakHist:       streakHist,
	}, nil
}

// ExportSubmission exports metrics for one processed submission.
func (e *Exporter) ExportSubmission(ctx context.Context, m *ports.SubmissionMetrics) error {
	attrs := []attribute.KeyValue{
		attribute.String("run_id", m.RunID),
		attribute.String("date", m.Date),
	}
	opt := metric.WithAttributes(attrs...)

	e.submissionsTotal.Add(ctx, 1, opt)

	byCategory := []struct {
		name    string
		minutes int64
	}{
		{"fitness", m.FitnessMinutes},
		{"english", m.EnglishMinutes},
		{"research", m.ResearchMinutes},
	}
	for _, c := range byCategory {
		if c.minutes > 0 {
			e.minutesTotal.Add(ctx, c.minutes,
				metric.WithAttributes(append(attrs, attribute.String("category", c.name))...))
		}
	}

	if m.ReadingLogged {
		e.readingTotal.Add(ctx, 1, opt)
	}

	e.streakHist.Record(ctx, m.StreakCurrent, opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
