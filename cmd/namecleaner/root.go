package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/config"
	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "namecleaner [path]",
	Short: "Normalize file and directory names in one directory",
	Long: `Renames the files and directories directly inside path (default: the
current directory) so that names are lowercase, carry no leading or trailing
whitespace, and use a single underscore for each run of internal spaces.
Extensions are kept as they are. Sub-directories are not descended into.

Without --force the pending renames are counted and you are asked to view
and then apply them.

A directory whose name matches a subcommand (plan, version, help,
completion) must be given with a path prefix, e.g. ./plan.`,
	Example: `  namecleaner
  namecleaner -f
  namecleaner ~/Downloads
  namecleaner ~/Downloads -f
  namecleaner ./plan`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              runClean,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", envOr("NAMECLEANER_LOG_FORMAT", "text"), "Log format: text or json (or set NAMECLEANER_LOG_FORMAT)")
	pf.StringVar(&cfg.Color, "color", envOr("NAMECLEANER_COLOR", config.ColorAuto), "Color output: auto, always or never")
	pf.StringVar(&cfg.ConfigFile, "config", os.Getenv("NAMECLEANER_CONFIG"), "Path to a YAML config file")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every rename")

	rootCmd.Flags().BoolVarP(&cfg.Force, "force", "f", false, "Apply renames without asking for confirmation")
}

// loadConfig merges the optional config file under explicitly set flags and
// validates the result. Argument errors have been reported by now, so later
// failures skip the usage text.
func loadConfig(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if cfg.ConfigFile != "" {
		explicit := make(map[string]bool)
		for _, name := range []string{"force", "verbose", "log-format", "color"} {
			explicit[name] = cmd.Flags().Changed(name)
		}
		if err := cfg.LoadFromFile(cfg.ConfigFile, explicit); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

func runClean(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	if len(args) == 1 {
		cfg.Dir = args[0]
	}

	dir, err := cfg.TargetDir()
	if err != nil {
		log.Error().Err(err).Msg("no target directory")
		os.Exit(exitcode.UsageError)
	}

	if code := newSession(cmd, log).clean(dir, cfg.Force); code != exitcode.Success {
		os.Exit(code)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
