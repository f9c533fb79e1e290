// Package cmd wires the gntaxa CLI: configuration bootstrap and the
// query subcommands over a shared taxonomy store.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/iofs"
	"github.com/gnames/gntaxa/internal/iologger"
	"github.com/gnames/gntaxa/pkg/config"
	app "github.com/gnames/gntaxa/pkg/gntaxa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "gntaxa",
	Short:   "gntaxa queries a local NCBI-style taxonomy dump",
	Long: `gntaxa loads the NCBI taxonomy dump files (nodes.dmp, names.dmp,
merged.dmp, delnodes.dmp) into memory and answers taxonomy queries:

  lineage     ancestor chains and reformatted lineage strings
  list        subtrees of taxa, streaming or as nested JSON
  name2taxid  taxon identifiers for scientific names and synonyms
  filter      taxa matching rank predicates
  lca         lowest common ancestors of taxon sets

The dump directory defaults to ~/.taxonkit, the location taxonkit
uses, and can be changed with --data-dir, the GNTAXA_TAXONOMY_DATA_DIR
environment variable, or the config file.`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Runtime fields come after the persistent ones.
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})
	flagOpts, err := flagOptions(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	cfg.Update(flagOpts)

	// Reconfigure logging with user's settings, appending now so the
	// bootstrap entries survive.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gntaxa")

	pf := rootCmd.PersistentFlags()
	pf.String("data-dir", "",
		"directory with the taxonomy dump files (default ~/.taxonkit)")
	pf.IntP("jobs", "j", 0,
		"number of workers for load and batched queries")
	pf.StringP("output", "o", "tsv",
		"output format: tsv, csv or json")
	pf.BoolP("quiet", "q", false,
		"suppress progress bars")
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions() - i.e., persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("GNTAXA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Taxonomy configuration
	v.BindEnv("taxonomy.data_dir", "TAXONOMY_DATA_DIR")
	v.BindEnv("taxonomy.rank_file", "TAXONOMY_RANK_FILE")

	// Lineage configuration
	v.BindEnv("lineage.format", "LINEAGE_FORMAT")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}
