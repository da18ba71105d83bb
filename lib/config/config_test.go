package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artie-labs/ingest/lib/config/constants"
)

const validConfig = `
bigquery:
  projectID: datascience
  location: US
  stagingBucket: bucket
  stagingPrefix: ingest
destination:
  dataset: brz_crm
  table: raw_customers
source:
  path: ./marketing_campaign.csv
  encoding: latin1
telemetry:
  metrics:
    provider: datadog
    settings:
      namespace: "ingest."
      tags:
        - env:test
`

func writeConfig(t *testing.T, contents string) string {
	fp := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fp, []byte(contents), 0o644))
	return fp
}

func TestReadNonExistentFile(t *testing.T) {
	_, err := readFileToConfig(filepath.Join(t.TempDir(), "213213231312"))
	assert.ErrorContains(t, err, "no such file or directory")
}

func TestReadFileToConfig(t *testing.T) {
	cfg, err := readFileToConfig(writeConfig(t, validConfig))
	assert.NoError(t, err)

	assert.Equal(t, "datascience", cfg.BigQuery.ProjectID)
	assert.Equal(t, "US", cfg.BigQuery.Location)
	assert.Equal(t, "bucket", cfg.BigQuery.StagingBucket)
	assert.Equal(t, "ingest", cfg.BigQuery.StagingPrefix)
	assert.Equal(t, "brz_crm", cfg.Destination.Dataset)
	assert.Equal(t, "raw_customers", cfg.Destination.Table)
	assert.Equal(t, "./marketing_campaign.csv", cfg.Source.Path)
	assert.Equal(t, constants.Latin1, cfg.Source.Encoding)
	assert.Equal(t, constants.Datadog, cfg.Telemetry.Metrics.Provider)
	assert.Equal(t, "ingest.", cfg.Telemetry.Metrics.Settings["namespace"])
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		BigQuery:    BigQuery{ProjectID: "project"},
		Destination: Destination{Dataset: "dataset", Table: "table"},
		Source:      Source{Path: "foo.tsv", Encoding: constants.UTF8},
	}
	assert.NoError(t, valid.Validate())
	{
		// Missing table
		cfg := valid
		cfg.Destination.Table = ""
		assert.ErrorContains(t, cfg.Validate(), "project, dataset and table are required")
	}
	{
		// Missing project
		cfg := valid
		cfg.BigQuery.ProjectID = ""
		assert.ErrorContains(t, cfg.Validate(), "project, dataset and table are required")
	}
	{
		// Missing source
		cfg := valid
		cfg.Source.Path = ""
		assert.ErrorContains(t, cfg.Validate(), "source path is required")
	}
	{
		// Unsupported encoding
		cfg := valid
		cfg.Source.Encoding = "ebcdic"
		assert.ErrorContains(t, cfg.Validate(), `source encoding "ebcdic" is not supported`)
	}
	{
		// Prefix without a bucket
		cfg := valid
		cfg.BigQuery.StagingPrefix = "foo"
		assert.ErrorContains(t, cfg.Validate(), "stagingPrefix is set but stagingBucket is empty")
	}
}

func TestBigQuery_String(t *testing.T) {
	b := BigQuery{ProjectID: "project", Location: "EU", PathToCredentials: "/secret/sa.json"}
	assert.Equal(t, "projectID=project, location=EU, credentials_set=true, stagingBucket=", b.String())
	assert.NotContains(t, b.String(), "/secret/sa.json")
}

func TestLoadSettings(t *testing.T) {
	{
		// Flags only
		settings, err := LoadSettings([]string{"--project", "p", "--dataset", "d", "--table", "t", "--source", "foo.tsv", "-v"})
		assert.NoError(t, err)
		assert.True(t, settings.VerboseLogging)
		assert.Equal(t, "p", settings.Config.BigQuery.ProjectID)
		assert.Equal(t, "d", settings.Config.Destination.Dataset)
		assert.Equal(t, "t", settings.Config.Destination.Table)
		assert.Equal(t, "foo.tsv", settings.Config.Source.Path)
		assert.Equal(t, constants.UTF8, settings.Config.Source.Encoding)
	}
	{
		// Flags override the config file
		settings, err := LoadSettings([]string{"-c", writeConfig(t, validConfig), "--table", "other_table"})
		assert.NoError(t, err)
		assert.False(t, settings.VerboseLogging)
		assert.Equal(t, "datascience", settings.Config.BigQuery.ProjectID)
		assert.Equal(t, "other_table", settings.Config.Destination.Table)
		assert.Equal(t, constants.Latin1, settings.Config.Source.Encoding)
	}
	{
		// Incomplete
		_, err := LoadSettings([]string{"--project", "p"})
		assert.ErrorContains(t, err, "failed to validate config")
	}
	{
		// Config file does not exist
		_, err := LoadSettings([]string{"-c", filepath.Join(t.TempDir(), "nope.yaml")})
		assert.ErrorContains(t, err, "failed to parse config file")
	}
	{
		// Unknown flag
		_, err := LoadSettings([]string{"--foo"})
		assert.ErrorContains(t, err, "failed to parse args")
	}
}
