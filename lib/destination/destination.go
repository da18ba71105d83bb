package destination

import (
	"context"
	"fmt"

	"github.com/artie-labs/ingest/lib/tsv"
)

// TableRef is the fully qualified name of a warehouse table.
type TableRef struct {
	ProjectID string
	Dataset   string
	Table     string
}

func (t TableRef) String() string {
	return fmt.Sprintf("%s.%s.%s", t.ProjectID, t.Dataset, t.Table)
}

// LoadJob is the handle of a submitted load job. It only lives for the duration of a single ingestion.
type LoadJob struct {
	ID       string
	Location string
}

// Warehouse is everything the ingestor needs from a warehouse.
type Warehouse interface {
	// SubmitFullReplaceLoad starts a load job that replaces the contents and schema of [ref] with [rows].
	SubmitFullReplaceLoad(ctx context.Context, rows *tsv.RowSet, ref TableRef) (LoadJob, error)
	// AwaitTerminal blocks until the job has succeeded or failed, returning the job's error if it failed.
	AwaitTerminal(ctx context.Context, job LoadJob) error
	RowCount(ctx context.Context, ref TableRef) (int64, error)
}
