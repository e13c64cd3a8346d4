package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

// Config carries every runtime knob, loaded from the environment with
// working defaults so a bare `invoicegen` starts locally.
type Config struct {
	Addr        string
	Environment string

	// DraftTTL bounds how long an idle drafting session is kept in memory.
	DraftTTL time.Duration

	Tracing TracingConfig
}

type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Addr:        envString("INVOICEGEN_ADDR", ":8080"),
		Environment: envString("INVOICEGEN_ENVIRONMENT", "development"),
		DraftTTL:    envDuration("INVOICEGEN_DRAFT_TTL", 24*time.Hour),
		Tracing: TracingConfig{
			Enabled:          envBool("OTEL_TRACES_ENABLED", false),
			ExporterEndpoint: envString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ExporterProtocol: envString("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			SamplingRatio:    envFloat("OTEL_TRACES_SAMPLER_RATIO", 0.1),
		},
	}
}

var Module = fx.Module("config",
	fx.Provide(Load),
)

func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
