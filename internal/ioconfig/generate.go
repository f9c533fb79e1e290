// Package ioconfig renders the default configuration file.
package ioconfig

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/errcode"
	"gopkg.in/yaml.v3"
)

const header = `# gntaxa configuration.
#
# Values here are overridden by GNTAXA_* environment variables and by
# CLI flags. Delete this file to regenerate it with defaults.
#
# taxonomy.data_dir: directory with nodes.dmp, names.dmp and the
#   optional merged.dmp/delnodes.dmp (default: ~/.taxonkit).
# taxonomy.rank_file: optional override of the built-in rank order.
# lineage.format: default reformat spec, taxonkit placeholders.
# jobs_number: workers for parallel load and batched queries.

`

// Generate renders cfg as a commented YAML document suitable for the
// user's config file.
func Generate(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, GenerateError(err)
	}
	if err := enc.Close(); err != nil {
		return nil, GenerateError(err)
	}
	return buf.Bytes(), nil
}

func GenerateError(err error) error {
	msg := "Cannot generate default configuration"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot render config yaml: %w",
			fn, err),
	}
}
