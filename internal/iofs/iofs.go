// Package iofs prepares the application's directories and default
// configuration file on disk.
package iofs

import (
	"os"

	"github.com/gnames/gntaxa/internal/ioconfig"
	"github.com/gnames/gntaxa/pkg/config"
)

// EnsureDirs creates the config and log directories when missing.
// The taxonomy data directory is not created here: a missing dump is
// reported at load time with a pointer to where it was expected.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml on first run. An
// existing file is left untouched.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := ioconfig.Generate(config.New())
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
