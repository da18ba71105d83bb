package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/artie-labs/ingest/clients/bigquery"
	"github.com/artie-labs/ingest/lib/config"
	"github.com/artie-labs/ingest/lib/destination"
	"github.com/artie-labs/ingest/lib/logger"
	"github.com/artie-labs/ingest/lib/telemetry/metrics"
	"github.com/artie-labs/ingest/processes/ingest"
)

func main() {
	// Parse args into settings.
	settings, err := config.LoadSettings(os.Args[1:])
	if err != nil {
		logger.Fatal("Failed to load settings", slog.Any("err", err))
	}

	// Initialize default logger
	log, loggingToSentry := logger.NewLogger(settings)
	slog.SetDefault(log)

	metricsClient := metrics.LoadExporter(settings.Config)

	ctx := context.Background()
	var store *bigquery.Store
	connect := func(ctx context.Context) (destination.Warehouse, error) {
		bqStore, loadErr := bigquery.LoadStore(ctx, settings.Config)
		if loadErr != nil {
			return nil, loadErr
		}
		store = bqStore
		return store, nil
	}

	rowCount, err := ingest.Ingest(ctx, settings.Config, connect, metricsClient)
	if store != nil {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close BigQuery client", slog.Any("err", closeErr))
		}
	}

	if flushErr := metricsClient.Flush(); flushErr != nil {
		slog.Warn("Failed to flush metrics", slog.Any("err", flushErr))
	}

	if err != nil {
		slog.Error("Ingestion failed", slog.Any("err", err))
		if loggingToSentry {
			sentry.Flush(2 * time.Second)
		}
		os.Exit(1)
	}

	slog.Info("Done", slog.String("table", ingest.TableRefFromConfig(settings.Config).String()), slog.Int64("rowCount", rowCount))
}
