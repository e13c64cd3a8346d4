// Package observability wires logging, tracing, and metrics into the fx
// graph.
package observability

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"

	"github.com/edcviet/invoicegen/internal/config"
	"github.com/edcviet/invoicegen/internal/observability/metrics"
	"github.com/edcviet/invoicegen/internal/observability/tracing"
)

const serviceName = "invoicegen"

var version = "dev"

var Module = fx.Module("observability",
	fx.Provide(func(cfg config.Config) tracing.Config {
		return tracing.Config{
			Enabled:          cfg.Tracing.Enabled,
			ServiceName:      serviceName,
			ServiceVersion:   version,
			Environment:      cfg.Environment,
			ExporterEndpoint: cfg.Tracing.ExporterEndpoint,
			ExporterProtocol: cfg.Tracing.ExporterProtocol,
			SamplingRatio:    cfg.Tracing.SamplingRatio,
		}
	}),
	fx.Provide(tracing.NewProvider),
	fx.Provide(func(cfg config.Config) *metrics.ServiceMetrics {
		return metrics.ServiceWithConfig(metrics.Config{
			ServiceName: serviceName,
			Environment: cfg.Environment,
		})
	}),
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)
