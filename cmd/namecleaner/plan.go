package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Dry-run: list the renames that would be made (no writes)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)
	if len(args) == 1 {
		cfg.Dir = args[0]
	}

	dir, err := cfg.TargetDir()
	if err != nil {
		log.Error().Err(err).Msg("no target directory")
		os.Exit(exitcode.UsageError)
	}

	if code := newSession(cmd, log).plan(dir); code != exitcode.Success {
		os.Exit(code)
	}
	return nil
}
