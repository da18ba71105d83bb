package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/artie-labs/ingest/clients/bigquery"
	"github.com/artie-labs/ingest/lib/config"
	"github.com/artie-labs/ingest/lib/destination"
	"github.com/artie-labs/ingest/lib/logger"
	"github.com/artie-labs/ingest/lib/telemetry/metrics"
	"github.com/artie-labs/ingest/processes/ingest"
)

// FullReplaceTest ingests two different files into the same table and checks that only the second one remains.
type FullReplaceTest struct {
	ctx   context.Context
	cfg   config.Config
	store *bigquery.Store
	dir   string
}

func (f *FullReplaceTest) writeSource(name string, numRows int) (string, error) {
	var sb strings.Builder
	sb.WriteString("id\tname\tincome\tcomplain\n")
	for i := range numRows {
		sb.WriteString(fmt.Sprintf("%d\tname_%d\t%d.25\t%v\n", i, i, i*100, i%2 == 0))
	}

	fp := filepath.Join(f.dir, name)
	if err := os.WriteFile(fp, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write source file: %w", err)
	}

	return fp, nil
}

func (f *FullReplaceTest) ingest(name string, numRows int) error {
	fp, err := f.writeSource(name, numRows)
	if err != nil {
		return err
	}

	cfg := f.cfg
	cfg.Source.Path = fp
	connect := func(_ context.Context) (destination.Warehouse, error) { return f.store, nil }
	rowCount, err := ingest.Ingest(f.ctx, cfg, connect, metrics.NullMetricsProvider{})
	if err != nil {
		return fmt.Errorf("failed to ingest %q: %w", name, err)
	}

	if rowCount != int64(numRows) {
		return fmt.Errorf("expected %d rows after ingesting %q, got %d", numRows, name, rowCount)
	}

	return nil
}

func (f *FullReplaceTest) Run() error {
	tableRef := ingest.TableRefFromConfig(f.cfg)
	if err := f.store.DropTable(f.ctx, tableRef); err != nil {
		return fmt.Errorf("failed to cleanup table: %w", err)
	}

	if err := f.ingest("first.tsv", 200); err != nil {
		return err
	}

	if err := f.ingest("second.tsv", 50); err != nil {
		return err
	}

	// Header only, the table should end up empty.
	if err := f.ingest("empty.tsv", 0); err != nil {
		return err
	}

	return f.store.DropTable(f.ctx, tableRef)
}

func main() {
	ctx := context.Background()
	settings, err := config.LoadSettings(append(os.Args[1:], "--source", "unused.tsv"))
	if err != nil {
		logger.Fatal("Failed to load settings", slog.Any("err", err))
	}

	store, err := bigquery.LoadStore(ctx, settings.Config)
	if err != nil {
		logger.Fatal("Failed to load store", slog.Any("err", err))
	}
	defer store.Close()

	dir, err := os.MkdirTemp("", "ingest_full_replace")
	if err != nil {
		logger.Fatal("Failed to create temp dir", slog.Any("err", err))
	}
	defer os.RemoveAll(dir)

	test := &FullReplaceTest{ctx: ctx, cfg: settings.Config, store: store, dir: dir}
	if err = test.Run(); err != nil {
		logger.Fatal("Test failed", slog.Any("err", err))
	}

	slog.Info(fmt.Sprintf("Integration test for full replace into %q completed successfully", ingest.TableRefFromConfig(settings.Config).String()))
}
