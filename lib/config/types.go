package config

import (
	"fmt"

	"github.com/artie-labs/ingest/lib/config/constants"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type Reporting struct {
	Sentry *Sentry `yaml:"sentry"`
}

type BigQuery struct {
	// PathToCredentials is _optional_ if you have GOOGLE_APPLICATION_CREDENTIALS set as an env var
	// Links to credentials: https://cloud.google.com/docs/authentication/application-default-credentials#GAC
	PathToCredentials string `yaml:"pathToCredentials"`
	ProjectID         string `yaml:"projectID"`
	// Location is where the load job runs, BigQuery picks the dataset's location when it's empty.
	Location string `yaml:"location"`
	// [StagingBucket] - If set, rows are uploaded to this GCS bucket and loaded from there instead of being sent
	// with the load request.
	StagingBucket string `yaml:"stagingBucket,omitempty"`
	StagingPrefix string `yaml:"stagingPrefix,omitempty"`
}

func (b BigQuery) String() string {
	// Don't log the credentials path.
	return fmt.Sprintf("projectID=%s, location=%s, credentials_set=%v, stagingBucket=%s",
		b.ProjectID, b.Location, b.PathToCredentials != "", b.StagingBucket)
}

type Destination struct {
	Dataset string `yaml:"dataset"`
	Table   string `yaml:"table"`
}

type Source struct {
	Path       string             `yaml:"path"`
	Encoding   constants.Encoding `yaml:"encoding,omitempty"`
	LazyQuotes bool               `yaml:"lazyQuotes,omitempty"`
}

type Config struct {
	BigQuery    BigQuery    `yaml:"bigquery"`
	Destination Destination `yaml:"destination"`
	Source      Source      `yaml:"source"`

	Reporting Reporting `yaml:"reporting"`
	Telemetry struct {
		Metrics struct {
			Provider constants.ExporterKind `yaml:"provider"`
			Settings map[string]any         `yaml:"settings,omitempty"`
		}
	}
}
