// format.go implements "dur format", the inverse of parse.

package convert

import (
	"bufio"
	"fmt"

	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/internal/convert"
	"github.com/jpl-au/dur/internal/format"
	"github.com/spf13/cobra"
)

func (e *Extension) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [nanoseconds...]",
		Short: "Format nanosecond counts as durations",
		Long: `Print the canonical duration for each integer nanosecond count.

With no arguments, reads whitespace-separated integers from stdin.

  dur format 5400000000000            # 1h30m0s
  dur format -- -1500                 # -1.5µs
  echo 1000 2000 | dur format         # 1µs, 2µs`,
		RunE: e.runFormat,
	}
}

func (e *Extension) runFormat(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		var err error
		if args, err = words(e.conv.MaxInput); err != nil {
			return cmd.PrintJSONError(fmt.Errorf("read stdin: %w", err))
		}
	}

	rs := make([]convert.Result, 0, len(args))
	var err error
	for _, a := range args {
		var r convert.Result
		if r, err = e.conv.Format(a); err != nil {
			break
		}
		rs = append(rs, r)
	}
	logResults("convert:format", "format", args, rs, err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(rs)
	}
	return format.Canonical(cmd.Out(), rs)
}

// words splits stdin on whitespace. Tokens longer than maxLen fail the
// scan rather than being truncated.
func words(maxLen int) ([]string, error) {
	s := bufio.NewScanner(cmd.In())
	s.Buffer(make([]byte, 0, 64), max(maxLen, 64))
	s.Split(bufio.ScanWords)
	var out []string
	for s.Scan() {
		out = append(out, s.Text())
	}
	return out, s.Err()
}
