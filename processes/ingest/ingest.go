package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/artie-labs/ingest/lib/config"
	"github.com/artie-labs/ingest/lib/destination"
	"github.com/artie-labs/ingest/lib/ingesterr"
	"github.com/artie-labs/ingest/lib/telemetry/metrics/base"
	"github.com/artie-labs/ingest/lib/tsv"
)

// Connector opens a connection to the warehouse. It is only called once the source file has been parsed.
type Connector func(ctx context.Context) (destination.Warehouse, error)

func TableRefFromConfig(cfg config.Config) destination.TableRef {
	return destination.TableRef{
		ProjectID: cfg.BigQuery.ProjectID,
		Dataset:   cfg.Destination.Dataset,
		Table:     cfg.Destination.Table,
	}
}

// Ingest replaces the destination table with the contents of the source file and returns the table's row count
// afterwards. Exactly one load job is submitted, it is not retried.
func Ingest(ctx context.Context, cfg config.Config, connect Connector, metricsClient base.Client) (rowCount int64, err error) {
	ref := TableRefFromConfig(cfg)
	tags := map[string]string{"table": ref.String()}
	defer func() {
		if err != nil {
			tags["status"] = "failure"
		} else {
			tags["status"] = "success"
		}
		metricsClient.Incr("result", tags)
	}()

	slog.Info("Starting ingestion", slog.String("source", cfg.Source.Path), slog.String("table", ref.String()))
	rows, err := tsv.ReadFile(cfg.Source.Path, tsv.Options{Encoding: cfg.Source.Encoding, LazyQuotes: cfg.Source.LazyQuotes})
	if err != nil {
		return 0, err
	}

	slog.Info("Read source file",
		slog.String("source", cfg.Source.Path),
		slog.Int("rows", rows.Len()),
		slog.Int("columns", len(rows.Header)),
	)
	metricsClient.Count("rows_parsed", int64(rows.Len()), tags)

	warehouse, err := connect(ctx)
	if err != nil {
		return 0, &ingesterr.AuthenticationOrConnectivityError{ProjectID: ref.ProjectID, Err: err}
	}

	start := time.Now()
	slog.Info("Loading rows into table", slog.String("table", ref.String()))
	job, err := warehouse.SubmitFullReplaceLoad(ctx, rows, ref)
	if err != nil {
		if ingesterr.IsStaging(err) {
			// Nothing was submitted.
			return 0, err
		}
		return 0, &ingesterr.RemoteJobFailureError{Table: ref.String(), Err: err}
	}

	slog.Debug("Submitted load job, waiting for it to finish", slog.String("jobID", job.ID), slog.String("location", job.Location))
	if err = warehouse.AwaitTerminal(ctx, job); err != nil {
		return 0, &ingesterr.RemoteJobFailureError{JobID: job.ID, Table: ref.String(), Err: err}
	}
	metricsClient.Timing("load.duration", time.Since(start), tags)

	rowCount, err = warehouse.RowCount(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("failed to get row count for %s: %w", ref.String(), err)
	}

	slog.Info("Ingestion completed", slog.String("table", ref.String()), slog.Int64("rowCount", rowCount))
	return rowCount, nil
}
