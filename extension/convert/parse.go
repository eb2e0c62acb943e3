// parse.go implements "dur parse".

package convert

import (
	"fmt"
	"strings"

	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/convert"
	"github.com/jpl-au/dur/internal/format"
	"github.com/jpl-au/dur/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newParseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "parse <duration>...",
		Short: "Parse durations to nanoseconds",
		Long: `Parse one or more durations and print their value in nanoseconds.

  dur parse 1h30m          # 5400000000000
  dur parse --long 1.5us   # table of every unit
  dur parse -o json 90s    # all accessors as JSON`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runParse,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Show every unit in a table")
	return c
}

func (e *Extension) runParse(c *cobra.Command, args []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)

	rs, err := e.conv.ParseAll(args)
	logResults("convert:parse", "parse", args, rs, err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(rs)
	}
	if long {
		return format.Long(cmd.Out(), rs)
	}
	return format.Values(cmd.Out(), rs)
}

// logResults records a multi-input command. The value column holds the
// last result so single-argument invocations stay queryable.
func logResults(source, action string, args []string, rs []convert.Result, err error) {
	b := log.Event(source, action).
		Author(cmd.Author()).
		Input(strings.Join(args, " ")).
		Detail("count", len(args))
	if len(rs) > 0 {
		outs := make([]string, len(rs))
		for i, r := range rs {
			outs[i] = r.Canonical()
		}
		b = b.Output(strings.Join(outs, " ")).Value(rs[len(rs)-1].Duration)
	}
	b.Write(err)
}

// logResult records a single-result command.
func logResult(source, action, input string, r convert.Result, err error) *log.Builder {
	b := log.Event(source, action).Author(cmd.Author()).Input(input)
	if err == nil {
		b = b.Output(r.Canonical()).Value(r.Duration)
	}
	return b
}

// printResult writes r as JSON or as its canonical form.
func printResult(r convert.Result) error {
	if cmd.JSON() {
		return cmd.PrintJSON(r)
	}
	_, err := fmt.Fprintln(cmd.Out(), r.Canonical())
	return err
}
