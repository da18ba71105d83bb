package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/artie-labs/ingest/lib/destination"
	"github.com/artie-labs/ingest/lib/ingesterr"
)

func (i *IngestTestSuite) TestIngest() {
	i.writeSource("A\tB\n1\t2\n3\t4\n")

	rowCount, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.NoError(err)
	i.Equal(int64(2), rowCount)
	i.Equal(1, i.connectorCalls)
	i.Equal(1, i.fakeWarehouse.SubmitFullReplaceLoadCallCount())
	i.Equal(1, i.fakeWarehouse.AwaitTerminalCallCount())
	i.Equal(1, i.fakeWarehouse.RowCountCallCount())

	_, rows, ref := i.fakeWarehouse.SubmitFullReplaceLoadArgsForCall(0)
	i.Equal(destination.TableRef{ProjectID: "project", Dataset: "dataset", Table: "table"}, ref)
	i.Equal([]string{"A", "B"}, rows.Header)
	i.Equal([][]string{{"1", "2"}, {"3", "4"}}, rows.Rows)

	_, job := i.fakeWarehouse.AwaitTerminalArgsForCall(0)
	i.Equal("job-id", job.ID)

	i.Equal(int64(2), i.metrics.counts["rows_parsed"])
	i.Contains(i.metrics.timings, "load.duration")
	i.Equal([]map[string]string{{"table": "project.dataset.table", "status": "success"}}, i.metrics.incrs["result"])
}

func (i *IngestTestSuite) TestIngest_RowCountMatchesDataRows() {
	for _, numRows := range []int{0, 1, 17, 250} {
		var sb strings.Builder
		sb.WriteString("id\tname\tscore\n")
		for idx := range numRows {
			sb.WriteString(fmt.Sprintf("%d\tname_%d\t%d.5\n", idx, idx, idx))
		}
		i.writeSource(sb.String())

		rowCount, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
		i.NoError(err)
		i.Equal(int64(numRows), rowCount, numRows)
	}
}

func (i *IngestTestSuite) TestIngest_SourceNotFound() {
	i.cfg.Source.Path = filepath.Join(i.T().TempDir(), "does_not_exist.tsv")

	rowCount, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.True(ingesterr.IsSourceNotFound(err))
	i.Zero(rowCount)

	// No remote calls at all.
	i.Equal(0, i.connectorCalls)
	i.Empty(i.fakeWarehouse.Invocations())
	i.Equal([]map[string]string{{"table": "project.dataset.table", "status": "failure"}}, i.metrics.incrs["result"])
}

func (i *IngestTestSuite) TestIngest_MalformedSource() {
	i.writeSource("A\tB\n1\t2\n3\n")

	_, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.True(ingesterr.IsParseError(err))
	i.ErrorIs(err, csv.ErrFieldCount)
	i.Equal(0, i.connectorCalls)
	i.Equal(0, i.fakeWarehouse.SubmitFullReplaceLoadCallCount())
}

func (i *IngestTestSuite) TestIngest_FullReplace() {
	i.writeSource("A\tB\n1\t2\n3\t4\n5\t6\n")
	rowCount, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.NoError(err)
	i.Equal(int64(3), rowCount)

	i.writeSource("A\tB\n7\t8\n")
	rowCount, err = Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.NoError(err)
	i.Equal(int64(1), rowCount)

	// Only the second run's rows remain.
	i.Equal([][]string{{"7", "8"}}, i.tables["project.dataset.table"])
	i.Equal(2, i.fakeWarehouse.SubmitFullReplaceLoadCallCount())
}

func (i *IngestTestSuite) TestIngest_SingleJobForLargeInput() {
	var sb strings.Builder
	sb.WriteString("id\tvalue\n")
	for idx := range 50_000 {
		sb.WriteString(fmt.Sprintf("%d\tvalue_%d\n", idx, idx))
	}
	i.writeSource(sb.String())

	rowCount, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.NoError(err)
	i.Equal(int64(50_000), rowCount)
	i.Equal(1, i.fakeWarehouse.SubmitFullReplaceLoadCallCount())
	i.Equal(1, i.fakeWarehouse.AwaitTerminalCallCount())
}

func (i *IngestTestSuite) TestIngest_ConnectFailure() {
	i.writeSource("A\tB\n1\t2\n")

	connector := func(_ context.Context) (destination.Warehouse, error) {
		return nil, fmt.Errorf("could not find default credentials")
	}

	_, err := Ingest(i.ctx, i.cfg, connector, i.metrics)
	i.True(ingesterr.IsAuthenticationOrConnectivity(err))
	i.ErrorContains(err, "could not find default credentials")
	i.Empty(i.fakeWarehouse.Invocations())
}

func (i *IngestTestSuite) TestIngest_SubmitFailure() {
	i.writeSource("A\tB\n1\t2\n")
	i.fakeWarehouse.SubmitFullReplaceLoadReturns(destination.LoadJob{}, fmt.Errorf("permission denied"))

	_, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.True(ingesterr.IsRemoteJobFailure(err))
	i.ErrorContains(err, "permission denied")
	i.Equal(0, i.fakeWarehouse.AwaitTerminalCallCount())
	i.Equal(0, i.fakeWarehouse.RowCountCallCount())
}

func (i *IngestTestSuite) TestIngest_StagingFailure() {
	i.writeSource("A\tB\n1\t2\n")
	i.fakeWarehouse.SubmitFullReplaceLoadReturns(destination.LoadJob{}, &ingesterr.StagingError{Table: "project.dataset.table", Err: fmt.Errorf("no space left on device")})

	_, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.True(ingesterr.IsStaging(err))
	i.False(ingesterr.IsRemoteJobFailure(err))
	i.ErrorContains(err, "no space left on device")
	i.Equal(0, i.fakeWarehouse.AwaitTerminalCallCount())
	i.Equal("failure", i.metrics.incrs["result"][0]["status"])
}

func (i *IngestTestSuite) TestIngest_JobFailure() {
	i.writeSource("A\tB\n1\t2\n")
	i.fakeWarehouse.AwaitTerminalReturns(fmt.Errorf("quota exceeded"))

	_, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.True(ingesterr.IsRemoteJobFailure(err))
	i.ErrorContains(err, "load job job-id into project.dataset.table failed: quota exceeded")

	// No retries.
	i.Equal(1, i.fakeWarehouse.SubmitFullReplaceLoadCallCount())
	i.Equal(1, i.fakeWarehouse.AwaitTerminalCallCount())
	i.Equal(0, i.fakeWarehouse.RowCountCallCount())
	i.NotContains(i.metrics.timings, "load.duration")
	i.Equal("failure", i.metrics.incrs["result"][0]["status"])
}

func (i *IngestTestSuite) TestIngest_RowCountFailure() {
	i.writeSource("A\tB\n1\t2\n")
	i.fakeWarehouse.RowCountReturns(0, fmt.Errorf("table not found"))

	_, err := Ingest(i.ctx, i.cfg, i.connector, i.metrics)
	i.ErrorContains(err, "failed to get row count for project.dataset.table: table not found")
	i.False(ingesterr.IsRemoteJobFailure(err))
}

func (i *IngestTestSuite) TestTableRefFromConfig() {
	i.Equal("project.dataset.table", TableRefFromConfig(i.cfg).String())
}
