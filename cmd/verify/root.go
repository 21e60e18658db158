package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify - run verification checks against a Laravel project",
		Long: `Verify runs a fixed, prioritized sequence of verification checks against
a Laravel project: dependency audit, code style, static analysis, tests,
migration status, cache builds, and asset builds.

Each check is an external tool invoked as a subprocess; verify captures its
exit status, groups the results by category, and exits non-zero when any
required check fails, making it suitable for CI gating.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newQuickCommand())
	cmd.AddCommand(newFullCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
