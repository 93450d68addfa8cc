package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/archibald-tools/archex/internal/config"
	"github.com/archibald-tools/archex/version"
)

var (
	cfgFile  string
	logLevel string
	cfgMgr   *config.Manager
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "archex",
	Short: "Reconstruct records from Archibald's paginated PDF exports",
	Long: `Archex reads the paginated tabular PDF exports produced by the Archibald
back office and reassembles the records whose fields are scattered across
repeating page cycles.

Each export spreads one record over N consecutive pages (one field group
per page). Archex detects the cycle size, aligns rows across the pages of
each cycle, drops placeholder and footer rows, and streams the results as
JSON lines or CSV on stdout. Diagnostics go to stderr.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.archex/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfgMgr, err = config.NewManager(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		level := cfgMgr.Get().Log.Level
		if logLevel != "" {
			level = logLevel
		}
		logger = newLogger(level)
		slog.SetDefault(logger)
		return nil
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(schemasCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

// newLogger builds the stderr logger. Record output owns stdout, so all
// logging stays on the diagnostic stream.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}
