package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/artie-labs/ingest/lib/config"
	"github.com/artie-labs/ingest/lib/config/constants"
	"github.com/artie-labs/ingest/lib/destination"
	"github.com/artie-labs/ingest/lib/mocks"
	"github.com/artie-labs/ingest/lib/tsv"
)

type recordingMetrics struct {
	incrs   map[string][]map[string]string
	counts  map[string]int64
	timings map[string]time.Duration
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		incrs:   map[string][]map[string]string{},
		counts:  map[string]int64{},
		timings: map[string]time.Duration{},
	}
}

func (r *recordingMetrics) Timing(name string, value time.Duration, _ map[string]string) {
	r.timings[name] = value
}

func (r *recordingMetrics) Incr(name string, tags map[string]string) {
	copied := make(map[string]string, len(tags))
	for key, value := range tags {
		copied[key] = value
	}
	r.incrs[name] = append(r.incrs[name], copied)
}

func (r *recordingMetrics) Count(name string, value int64, _ map[string]string) {
	r.counts[name] += value
}

func (r *recordingMetrics) Flush() error {
	return nil
}

type IngestTestSuite struct {
	suite.Suite
	ctx context.Context
	cfg config.Config

	fakeWarehouse  *mocks.FakeWarehouse
	connectorCalls int
	metrics        *recordingMetrics

	// tables is what the fake warehouse holds, keyed by fully qualified name.
	tables map[string][][]string
}

func (i *IngestTestSuite) SetupTest() {
	i.ctx = context.Background()
	i.cfg = config.Config{
		BigQuery:    config.BigQuery{ProjectID: "project"},
		Destination: config.Destination{Dataset: "dataset", Table: "table"},
		Source:      config.Source{Path: filepath.Join(i.T().TempDir(), "source.tsv"), Encoding: constants.UTF8},
	}

	i.connectorCalls = 0
	i.metrics = newRecordingMetrics()
	i.tables = map[string][][]string{}
	i.fakeWarehouse = &mocks.FakeWarehouse{}
	i.fakeWarehouse.SubmitFullReplaceLoadCalls(func(_ context.Context, rows *tsv.RowSet, ref destination.TableRef) (destination.LoadJob, error) {
		// Truncate and load.
		i.tables[ref.String()] = rows.Rows
		return destination.LoadJob{ID: "job-id", Location: "US"}, nil
	})
	i.fakeWarehouse.RowCountCalls(func(_ context.Context, ref destination.TableRef) (int64, error) {
		return int64(len(i.tables[ref.String()])), nil
	})
}

func (i *IngestTestSuite) connector(_ context.Context) (destination.Warehouse, error) {
	i.connectorCalls++
	return i.fakeWarehouse, nil
}

func (i *IngestTestSuite) writeSource(contents string) {
	i.Require().NoError(os.WriteFile(i.cfg.Source.Path, []byte(contents), 0o644))
}

func TestIngestTestSuite(t *testing.T) {
	suite.Run(t, new(IngestTestSuite))
}
