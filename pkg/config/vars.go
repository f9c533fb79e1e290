package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "gntaxa"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gntaxa by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the default location of the taxonomy dump files.
// Returns ~/.taxonkit, the convention taxonkit established, so an
// already downloaded dump is picked up without configuration.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".taxonkit")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gntaxa/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gntaxa/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DumpDir resolves the effective dump directory: the configured one,
// or the default derived from HomeDir.
func (c *Config) DumpDir() string {
	if c.Taxonomy.DataDir != "" {
		return c.Taxonomy.DataDir
	}
	return DataDir(c.HomeDir)
}
