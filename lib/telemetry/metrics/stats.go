package metrics

import (
	"log/slog"
	"slices"

	"github.com/artie-labs/ingest/lib/config"
	"github.com/artie-labs/ingest/lib/config/constants"
	"github.com/artie-labs/ingest/lib/telemetry/metrics/base"
	"github.com/artie-labs/ingest/lib/telemetry/metrics/datadog"
)

var supportedExporterKinds = []constants.ExporterKind{constants.Datadog}

func exporterKindValid(kind constants.ExporterKind) bool {
	return slices.Contains(supportedExporterKinds, kind)
}

// LoadExporter returns the configured metrics client, falling back to [NullMetricsProvider] so a broken or missing
// exporter never stops an ingestion.
func LoadExporter(cfg config.Config) base.Client {
	kind := cfg.Telemetry.Metrics.Provider
	if kind == "" {
		slog.Debug("No metrics exporter configured")
		return NullMetricsProvider{}
	}

	if !exporterKindValid(kind) {
		slog.Warn("Unsupported metrics exporter, skipping...", slog.Any("exporterKind", kind))
		return NullMetricsProvider{}
	}

	statsClient, err := datadog.NewDatadogClient(cfg.Telemetry.Metrics.Settings)
	if err != nil {
		slog.Error("Metrics client error", slog.Any("err", err), slog.Any("provider", kind))
		return NullMetricsProvider{}
	}

	slog.Info("Metrics client loaded", slog.Any("provider", kind))
	return statsClient
}
