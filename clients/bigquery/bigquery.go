package bigquery

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/artie-labs/ingest/lib/config"
	"github.com/artie-labs/ingest/lib/destination"
	"github.com/artie-labs/ingest/lib/gcslib"
)

// Store loads row sets into BigQuery. It is meant to be used for a single ingestion and is not safe for concurrent use.
type Store struct {
	client *bigquery.Client
	cfg    config.BigQuery

	// gcs is only set when a staging bucket is configured.
	gcs           *gcslib.GCSClient
	storageClient *storage.Client

	pending map[string]pendingLoad
}

type pendingLoad struct {
	job *bigquery.Job
	// stagingFolder is the GCS folder holding the staged file, empty when the rows were sent with the request.
	stagingFolder string
}

func clientOptions(cfg config.BigQuery) []option.ClientOption {
	if cfg.PathToCredentials == "" {
		// Application Default Credentials.
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(cfg.PathToCredentials)}
}

// LoadStore connects to BigQuery and makes sure the destination dataset is reachable with the current credentials.
// [extraOpts] are appended to the options derived from [cfg].
func LoadStore(ctx context.Context, cfg config.Config, extraOpts ...option.ClientOption) (*Store, error) {
	opts := append(clientOptions(cfg.BigQuery), extraOpts...)
	client, err := bigquery.NewClient(ctx, cfg.BigQuery.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}

	if _, err = client.Dataset(cfg.Destination.Dataset).Metadata(ctx); err != nil {
		client.Close()
		if isNotFoundErr(err) {
			return nil, fmt.Errorf("dataset %q does not exist in project %q: %w", cfg.Destination.Dataset, cfg.BigQuery.ProjectID, err)
		}
		return nil, fmt.Errorf("failed to get dataset %q: %w", cfg.Destination.Dataset, err)
	}

	store := &Store{
		client:  client,
		cfg:     cfg.BigQuery,
		pending: make(map[string]pendingLoad),
	}

	if cfg.BigQuery.StagingBucket != "" {
		storageClient, err := storage.NewClient(ctx, opts...)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}

		gcsClient := gcslib.NewGCSClient(storageClient)
		store.gcs = &gcsClient
		store.storageClient = storageClient
	}

	slog.Info("Connected to BigQuery", slog.String("config", cfg.BigQuery.String()))
	return store, nil
}

func (s *Store) Close() error {
	if s.storageClient != nil {
		if err := s.storageClient.Close(); err != nil {
			slog.Warn("Failed to close storage client", slog.Any("err", err))
		}
	}

	return s.client.Close()
}

var _ destination.Warehouse = (*Store)(nil)
