// Package config provides configuration management for gntaxa.
//
// This package has no I/O dependencies (no file operations, no
// network calls). Validation functions may write user-facing warnings
// via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to
//     modify Config
//   - Invalid options are rejected with gn.Warn() - config remains in a
//     valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//   - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use GNTAXA_ prefix with underscores for nesting:
//
//	GNTAXA_TAXONOMY_DATA_DIR=~/.taxonkit
//	GNTAXA_LINEAGE_FORMAT='{f};{g};{s}'
//	GNTAXA_LOG_LEVEL=info
//	GNTAXA_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gntaxa configuration.
type Config struct {
	// Taxonomy configures where the taxonomy dump lives and how rank
	// ordering is derived.
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`

	// Lineage contains settings specific to lineage formatting.
	Lineage LineageConfig `mapstructure:"lineage" yaml:"lineage"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations. Defaults to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, data and logs directories
	// reside. It must be set by the CLI during init, there is no
	// default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`

	// WithProgress enables progress bars during dump loading. Runtime
	// only, set from the terminal context by the CLI.
	WithProgress bool `mapstructure:"-" yaml:"-"`
}

// TaxonomyConfig locates the taxonomy dump files.
type TaxonomyConfig struct {
	// DataDir is the directory with nodes.dmp, names.dmp and the
	// optional merged.dmp/delnodes.dmp. When empty, DataDir(HomeDir)
	// is used, which matches taxonkit's ~/.taxonkit convention.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// RankFile optionally overrides the built-in canonical rank order
	// with a file of rank names, highest first, one level per line.
	RankFile string `mapstructure:"rank_file" yaml:"rank_file"`
}

// LineageConfig contains settings for lineage projection.
type LineageConfig struct {
	// Format is the default reformat specification, e.g.
	// "{k};{p};{c};{o};{f};{g};{s}".
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be a log file (to default place), STDERR or
	// STDOUT.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values. The returned
// config is always valid and ready to use. Default values can be
// overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Lineage: LineageConfig{
			Format: "{k};{p};{c};{o};{f};{g};{s}",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
