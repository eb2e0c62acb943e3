// arith.go implements "dur sum", "dur scale" and "dur ratio".
//
// These use plain int64 arithmetic, so sums and products that overflow
// wrap around rather than saturating.

package convert

import (
	"fmt"

	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum <duration>...",
		Short: "Add durations together",
		Long: `Add durations together and print the total.

  dur sum 1h 30m 15s          # 1h30m15s
  dur sum -- 1h -90m          # -30m0s`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSum,
	}
}

func (e *Extension) runSum(_ *cobra.Command, args []string) error {
	r, err := e.conv.Sum(args)
	logResult("convert:sum", "sum", r.Input, r, err).Detail("count", len(args)).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return printResult(r)
}

func (e *Extension) newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <duration> <n>",
		Short: "Multiply a duration by an integer",
		Long: `Multiply a duration by an integer factor.

  dur scale 1m30s 4           # 6m0s
  dur scale -- 1s -2          # -2s`,
		Args: cobra.ExactArgs(2),
		RunE: e.runScale,
	}
}

func (e *Extension) runScale(_ *cobra.Command, args []string) error {
	r, err := e.conv.Scale(args[0], args[1])
	logResult("convert:scale", "scale", args[0], r, err).Detail("factor", args[1]).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return printResult(r)
}

func (e *Extension) newRatioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratio <a> <b>",
		Short: "Count how many whole b fit in a",
		Long: `Divide one duration by another, truncating toward zero.

  dur ratio 1h 1m             # 60
  dur ratio 119s 1m           # 1`,
		Args: cobra.ExactArgs(2),
		RunE: e.runRatio,
	}
}

func (e *Extension) runRatio(_ *cobra.Command, args []string) error {
	n, err := e.conv.Ratio(args[0], args[1])
	log.Event("convert:ratio", "ratio").
		Author(cmd.Author()).
		Input(args[0] + " / " + args[1]).
		Output(fmt.Sprint(n)).
		Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"a": args[0], "b": args[1], "ratio": n})
	}
	fmt.Fprintln(cmd.Out(), n)
	return nil
}
