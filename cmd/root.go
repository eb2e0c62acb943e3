/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE opens the audit log and initialises extensions lazily.
// Bootstrap commands (config, guide, llm, log, version) skip extension
// initialisation so they work even when the config file is malformed.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/dur/internal/config"
	"github.com/jpl-au/dur/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dur",
	Short: "Parse, format and round Go-style durations",
	Long: `Parse, format, round and truncate elapsed-time durations such as 1h15m30.5s.

Durations are signed 64-bit nanosecond counts with units ns, us (µs), ms, s, m and h.
Output is always in canonical form, so dur also normalises hand-written values.`,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Arguments have been validated by now; runtime failures don't need usage.
		cmd.SilenceUsage = true

		if author == "" {
			author = detectAuthor()
		}

		openLog()

		if !bootstrapCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				return PrintJSONError(fmt.Errorf("initialise extensions: %w", err))
			}
		}
		return nil
	},
}

// openLog starts the audit log unless --no-log or log.enabled=false.
// Failures are reported but never stop the command.
func openLog() {
	if noLog {
		return
	}
	if cfg, err := config.Load(); err == nil && !cfg.LogEnabled() {
		return
	}
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		return
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "dur round 1h", returns "round".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Registers extensions, executes the command and closes the audit log.
// Exit code 1 indicates error.
func Execute() {
	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
