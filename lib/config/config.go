package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/ingest/lib/config/constants"
	"github.com/artie-labs/ingest/lib/stringutil"
)

func readFileToConfig(pathToConfig string) (*Config, error) {
	bytes, err := os.ReadFile(pathToConfig)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) loadDefaultValues() {
	if c.Source.Encoding == "" {
		c.Source.Encoding = constants.UTF8
	}
}

// Validate checks that the destination table is fully qualified and the source is usable.
// Whether the source file exists is checked when ingesting, not here.
func (c Config) Validate() error {
	if stringutil.Empty(c.BigQuery.ProjectID, c.Destination.Dataset, c.Destination.Table) {
		return fmt.Errorf("project, dataset and table are required, bigquery: %s, dataset: %q, table: %q",
			c.BigQuery.String(), c.Destination.Dataset, c.Destination.Table)
	}

	if c.Source.Path == "" {
		return fmt.Errorf("source path is required")
	}

	if !constants.IsValidEncoding(c.Source.Encoding) {
		return fmt.Errorf("source encoding %q is not supported", c.Source.Encoding)
	}

	if c.BigQuery.StagingPrefix != "" && c.BigQuery.StagingBucket == "" {
		return fmt.Errorf("stagingPrefix is set but stagingBucket is empty")
	}

	return nil
}
