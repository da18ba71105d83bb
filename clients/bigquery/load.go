package bigquery

import (
	"compress/gzip"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"

	"github.com/artie-labs/ingest/lib/config/constants"
	"github.com/artie-labs/ingest/lib/csvwriter"
	"github.com/artie-labs/ingest/lib/destination"
	"github.com/artie-labs/ingest/lib/gcslib"
	"github.com/artie-labs/ingest/lib/ingesterr"
	"github.com/artie-labs/ingest/lib/tsv"
)

var invalidJobIDChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// newJobID returns a job ID that is unique per submission, BigQuery only allows letters, numbers, dashes and
// underscores.
func newJobID(table string) string {
	return fmt.Sprintf("%s_%s_%s", constants.JobIDPrefix, invalidJobIDChars.ReplaceAllString(table, "_"), uuid.NewString())
}

// writeStagingFile writes the rows (without the header) to a gzip TSV file, empty fields are written as the NULL marker.
func writeStagingFile(fp string, rows *tsv.RowSet) error {
	writer, err := csvwriter.NewGzipWriter(fp)
	if err != nil {
		return err
	}

	record := make([]string, len(rows.Header))
	for _, row := range rows.Rows {
		for idx, value := range row {
			if value == "" {
				value = constants.NullMarker
			}
			record[idx] = value
		}

		if err = writer.Write(record); err != nil {
			_ = writer.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return writer.Close()
}

func fileConfig(schema bigquery.Schema) bigquery.FileConfig {
	return bigquery.FileConfig{
		SourceFormat: bigquery.CSV,
		Schema:       schema,
		CSVOptions: bigquery.CSVOptions{
			FieldDelimiter:      "\t",
			Quote:               `"`,
			AllowQuotedNewlines: true,
			Encoding:            bigquery.UTF_8,
			NullMarker:          constants.NullMarker,
		},
	}
}

// configureFullReplace sets up [loader] to drop the table's existing rows and schema in favour of the new ones.
func configureFullReplace(loader *bigquery.Loader, jobID, location string) {
	loader.WriteDisposition = bigquery.WriteTruncate
	loader.CreateDisposition = bigquery.CreateIfNeeded
	loader.JobID = jobID
	loader.Location = location
}

func (s *Store) SubmitFullReplaceLoad(ctx context.Context, rows *tsv.RowSet, ref destination.TableRef) (destination.LoadJob, error) {
	schema, err := buildSchema(rows)
	if err != nil {
		return destination.LoadJob{}, &ingesterr.StagingError{Table: ref.String(), Err: err}
	}

	jobID := newJobID(ref.Table)
	fp := filepath.Join(os.TempDir(), jobID+".tsv.gz")
	if err = writeStagingFile(fp, rows); err != nil {
		return destination.LoadJob{}, &ingesterr.StagingError{Table: ref.String(), Err: fmt.Errorf("failed to write staging file: %w", err)}
	}

	defer func() {
		if removeErr := os.Remove(fp); removeErr != nil {
			slog.Warn("Failed to delete staging file", slog.String("filePath", fp), slog.Any("err", removeErr))
		}
	}()

	var source bigquery.LoadSource
	var stagingFolder string
	if s.gcs != nil {
		stagingFolder = gcslib.ObjectKey(s.cfg.StagingPrefix, jobID)
		uri, err := s.gcs.UploadLocalFileToGCS(ctx, s.cfg.StagingBucket, stagingFolder, fp)
		if err != nil {
			return destination.LoadJob{}, fmt.Errorf("failed to upload staging file: %w", err)
		}

		slog.Debug("Uploaded staging file", slog.String("uri", uri))
		gcsRef := bigquery.NewGCSReference(uri)
		gcsRef.FileConfig = fileConfig(schema)
		gcsRef.Compression = bigquery.Gzip
		source = gcsRef
	} else {
		file, err := os.Open(fp)
		if err != nil {
			return destination.LoadJob{}, &ingesterr.StagingError{Table: ref.String(), Err: fmt.Errorf("failed to open staging file: %w", err)}
		}
		// Rows are uploaded while the job is being created, so the file can be closed once [Run] returns.
		defer file.Close()

		// Media uploads have no compression setting, send the rows uncompressed.
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			return destination.LoadJob{}, &ingesterr.StagingError{Table: ref.String(), Err: fmt.Errorf("failed to read staging file: %w", err)}
		}
		defer gzipReader.Close()

		readerSource := bigquery.NewReaderSource(gzipReader)
		readerSource.FileConfig = fileConfig(schema)
		source = readerSource
	}

	loader := s.client.DatasetInProject(ref.ProjectID, ref.Dataset).Table(ref.Table).LoaderFrom(source)
	configureFullReplace(loader, jobID, s.cfg.Location)

	job, err := loader.Run(ctx)
	if err != nil {
		s.deleteStagingFolder(ctx, stagingFolder)
		return destination.LoadJob{}, fmt.Errorf("failed to submit load job: %w", err)
	}

	s.pending[job.ID()] = pendingLoad{job: job, stagingFolder: stagingFolder}
	return destination.LoadJob{ID: job.ID(), Location: job.Location()}, nil
}

func (s *Store) AwaitTerminal(ctx context.Context, loadJob destination.LoadJob) error {
	pending, ok := s.pending[loadJob.ID]
	if ok {
		delete(s.pending, loadJob.ID)
		defer s.deleteStagingFolder(ctx, pending.stagingFolder)
	} else {
		job, err := s.client.JobFromIDLocation(ctx, loadJob.ID, loadJob.Location)
		if err != nil {
			return fmt.Errorf("failed to get job %q: %w", loadJob.ID, err)
		}
		pending.job = job
	}

	status, err := pending.job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for load job: %w", err)
	}

	if err = status.Err(); err != nil {
		for _, jobErr := range status.Errors {
			slog.Error("Load job error", slog.String("jobID", loadJob.ID), slog.String("reason", jobErr.Reason), slog.String("message", jobErr.Message))
		}
		return err
	}

	if status.Statistics != nil {
		if stats, ok := status.Statistics.Details.(*bigquery.LoadStatistics); ok {
			slog.Info("Load job finished",
				slog.String("jobID", loadJob.ID),
				slog.Int64("outputRows", stats.OutputRows),
				slog.Int64("inputFileBytes", stats.InputFileBytes),
				slog.Duration("elapsed", status.Statistics.EndTime.Sub(status.Statistics.StartTime)),
			)
		}
	}

	return nil
}

func (s *Store) RowCount(ctx context.Context, ref destination.TableRef) (int64, error) {
	metadata, err := s.client.DatasetInProject(ref.ProjectID, ref.Dataset).Table(ref.Table).Metadata(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get table metadata: %w", err)
	}

	return int64(metadata.NumRows), nil
}

func (s *Store) deleteStagingFolder(ctx context.Context, folder string) {
	if s.gcs == nil || folder == "" {
		return
	}

	if err := s.gcs.DeleteFolder(ctx, s.cfg.StagingBucket, folder+"/"); err != nil {
		slog.Warn("Failed to delete staging folder", slog.String("bucket", s.cfg.StagingBucket), slog.String("folder", folder), slog.Any("err", err))
	}
}

// DropTable deletes the table if it exists.
func (s *Store) DropTable(ctx context.Context, ref destination.TableRef) error {
	if err := s.client.DatasetInProject(ref.ProjectID, ref.Dataset).Table(ref.Table).Delete(ctx); err != nil && !isNotFoundErr(err) {
		return fmt.Errorf("failed to drop table %s: %w", ref.String(), err)
	}

	return nil
}
