package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/artie-labs/ingest/lib/stringutil"
)

type Settings struct {
	Config         Config
	VerboseLogging bool
}

type options struct {
	ConfigFilePath string `short:"c" long:"config" description:"path to the config file"`
	Verbose        bool   `short:"v" long:"verbose" description:"debug logging" optional:"true"`

	ProjectID  string `long:"project" description:"BigQuery project that owns the destination table"`
	Dataset    string `long:"dataset" description:"destination dataset"`
	Table      string `long:"table" description:"destination table"`
	SourcePath string `long:"source" description:"path to the tab-separated source file"`
}

// apply overrides the config file with whatever was passed in as a flag.
func (o options) apply(cfg *Config) {
	cfg.BigQuery.ProjectID = stringutil.Override(cfg.BigQuery.ProjectID, o.ProjectID)
	cfg.Destination.Dataset = stringutil.Override(cfg.Destination.Dataset, o.Dataset)
	cfg.Destination.Table = stringutil.Override(cfg.Destination.Table, o.Table)
	cfg.Source.Path = stringutil.Override(cfg.Source.Path, o.SourcePath)
}

// LoadSettings will take the flags and then parse. The config file is optional, flags alone are enough as long as
// they fully describe the source and destination.
func LoadSettings(args []string) (*Settings, error) {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	var cfg Config
	if opts.ConfigFilePath != "" {
		fileCfg, err := readFileToConfig(opts.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg = *fileCfg
	}

	opts.apply(&cfg)
	cfg.loadDefaultValues()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &Settings{Config: cfg, VerboseLogging: opts.Verbose}, nil
}
