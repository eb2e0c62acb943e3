// log.go implements "dur log", which shows recent audit log entries, and
// "dur log prune", which deletes old ones.

package core

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/config"
	"github.com/jpl-au/dur/internal/format"
	"github.com/jpl-au/dur/internal/log"
	"github.com/jpl-au/dur/internal/validate"
	"github.com/spf13/cobra"
)

// logJSON is the JSON form of an audit entry.
type logJSON struct {
	Start   int64          `json:"start"`
	Source  string         `json:"source"`
	Action  string         `json:"action"`
	Author  string         `json:"author,omitempty"`
	Input   string         `json:"input,omitempty"`
	Output  string         `json:"output,omitempty"`
	Value   *int64         `json:"nanoseconds,omitempty"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent audit log entries",
		Long: `Show the most recent entries in the audit log, newest first.

  dur log                     # last 20 entries
  dur log -n 5                # last 5 entries
  dur log --source 'mcp:*'    # MCP tool calls only
  dur log --failed            # failed operations only
  dur log prune 720h          # delete entries older than 30 days

The log lives in $DUR_HOME/log/dur-log.db. Disable it with
"dur config log.enabled false" or per command with --no-log.`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", log.DefaultLimit, "Number of entries to show")
	c.Flags().String(extension.FlagSource, "", "Only sources matching this glob (e.g. 'convert:*')")
	c.Flags().Bool(extension.FlagFailed, false, "Only failed operations")
	c.AddCommand(newLogPruneCmd())
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	source, _ := c.Flags().GetString(extension.FlagSource)
	failed, _ := c.Flags().GetBool(extension.FlagFailed)
	if limit <= 0 {
		return cmd.PrintJSONError(fmt.Errorf("--%s must be positive", extension.FlagLimit))
	}

	entries, err := log.Query(log.Filter{Limit: limit, Source: source, Failed: failed})
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		out := make([]logJSON, 0, len(entries))
		for _, e := range entries {
			j := logJSON{
				Start:   e.Start,
				Source:  e.Source,
				Action:  e.Action,
				Author:  e.Author,
				Input:   e.Input,
				Output:  e.Output,
				Success: e.Success,
				Error:   e.Error,
				Detail:  e.Detail,
			}
			if e.Value != nil {
				ns := e.Value.Nanoseconds()
				j.Value = &ns
			}
			out = append(out, j)
		}
		return cmd.PrintJSON(out)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.Out(), "no log entries")
		return nil
	}
	return format.Log(cmd.Out(), entries)
}

func newLogPruneCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "prune <age>",
		Short: "Delete audit log entries older than age",
		Long: `Permanently delete audit log entries that started more than <age> ago.

This is irreversible. Use --force to skip confirmation.

  dur log prune 720h              # older than 30 days
  dur log prune --dry-run 24h     # count what would go`,
		Args: cobra.ExactArgs(1),
		RunE: runLogPrune,
	}
	c.Flags().Bool(extension.FlagDryRun, false, "Show how many entries would be deleted")
	c.Flags().BoolP(extension.FlagForce, "f", false, "Skip confirmation")
	return c
}

// parseAge reads a positive duration argument.
func parseAge(s string) (duration.Duration, error) {
	in, err := validate.Input(s, config.DefaultMaxInput)
	if err != nil {
		return 0, err
	}
	age, err := duration.Parse(in)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", duration.Quote(in), err)
	}
	if age <= 0 {
		return 0, fmt.Errorf("%w: age must be positive", validate.ErrInvalidInput)
	}
	return age, nil
}

func runLogPrune(c *cobra.Command, args []string) error {
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	force, _ := c.Flags().GetBool(extension.FlagForce)

	age, err := parseAge(args[0])
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if !dryRun && !force && !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Permanently delete log entries older than %s? This cannot be undone. [y/N] ", age)
		response, err := bufio.NewReader(cmd.In()).ReadString('\n')
		if err != nil && response == "" {
			return cmd.PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.Out(), "Cancelled")
			return nil
		}
	}

	n, err := log.Prune(age, dryRun)
	if errors.Is(err, log.ErrClosed) {
		err = errors.New("audit log is disabled; nothing to prune")
	}

	log.Event("core:log", "prune").
		Author(cmd.Author()).
		Input(args[0]).
		Value(age).
		Detail("dry_run", dryRun).
		Detail("count", n).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"age": age.String(), "dry_run": dryRun, "deleted": n})
	}
	switch {
	case n == 0:
		fmt.Fprintln(cmd.Out(), "No log entries to prune")
	case dryRun:
		fmt.Fprintf(cmd.Out(), "Would delete %d log entries\n", n)
	default:
		fmt.Fprintf(cmd.Out(), "Pruned %d log entries\n", n)
	}
	return nil
}
