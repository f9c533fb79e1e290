package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gntaxa/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gntaxa"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".taxonkit"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gntaxa", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, "{k};{p};{c};{o};{f};{g};{s}", cfg.Lineage.Format)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.HomeDir)
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDataDir("/data/taxdump"),
		config.OptJobsNumber(4),
		config.OptLogLevel("debug"),
	})
	assert.Equal(t, "/data/taxdump", cfg.Taxonomy.DataDir)
	assert.Equal(t, 4, cfg.JobsNumber)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogLevel("noisy"),
		config.OptJobsNumber(-1),
		config.OptLineageFormat(""),
	})
	// invalid values are ignored, defaults remain
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Equal(t, "{k};{p};{c};{o};{f};{g};{s}", cfg.Lineage.Format)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDataDir("/data/taxdump"),
		config.OptLogFormat("text"),
		config.OptHomeDir("/home/u"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Taxonomy, clone.Taxonomy)
	assert.Equal(t, cfg.Log, clone.Log)
	assert.Equal(t, cfg.JobsNumber, clone.JobsNumber)
	assert.Empty(t, clone.HomeDir, "runtime fields are not persisted")
}

func TestDumpDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/u")})
	assert.Equal(t, filepath.Join("/home/u", ".taxonkit"), cfg.DumpDir())

	cfg.Update([]config.Option{config.OptDataDir("/data/taxdump")})
	assert.Equal(t, "/data/taxdump", cfg.DumpDir())
}
