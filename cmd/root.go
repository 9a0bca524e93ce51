package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobbs/internal/config"
	"github.com/alexiusacademia/gobbs/internal/logging"
	"github.com/alexiusacademia/gobbs/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool

	// Loaded before any subcommand runs
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gobbs",
	Short: "Bar Bending Schedule Tool",
	Long: `gobbs - Go Bar Bending Schedule

A CLI tool for preparing bar bending schedules (BBS) of
reinforced concrete members.

This tool helps site and office engineers:
  - Compute cutting lengths of stirrups/ties
  - Compute cutting lengths of beam main bars and column verticals
  - Total the steel length and weight per bar mark
  - Export the schedule to Excel (with templates), CSV, PDF or JSON
  - Serve the same calculations over an HTTP API

Unit weights use the site approximation d²/162 kg/m.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if verbose {
			c.Log.Level = "debug"
		}
		l, err := logging.New(c.Log.Level, c.Log.Format)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		logger.Debug("configuration loaded",
			zap.String("config", configFile),
			zap.String("output_dir", cfg.OutputDir),
			zap.String("template", cfg.Export.Template),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gobbs v%-49s║\n", version.Version)
		fmt.Fprintf(out, "  ║   %-56s║\n", "Go Bar Bending Schedule")
		fmt.Fprintf(out, "  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for bar bending schedules of")
		fmt.Fprintln(out, "  reinforced concrete members.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Stirrup/tie cutting lengths with hooks and bend deductions")
		fmt.Fprintln(out, "    • Beam main bar and column vertical bar cutting lengths")
		fmt.Fprintln(out, "    • Batch schedules from YAML or JSON parameter files")
		fmt.Fprintln(out, "    • Export to xlsx (template aware), csv, pdf and json")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gobbs --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default $HOME/.gobbs.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
