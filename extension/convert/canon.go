// canon.go implements "dur canon", which rewrites durations into the
// form dur itself prints.

package convert

import (
	"fmt"

	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/convert"
	"github.com/jpl-au/dur/internal/diff"
	"github.com/spf13/cobra"
)

// canonJSON is the JSON shape of one canon result.
type canonJSON struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Changed   bool   `json:"changed"`
	Diff      string `json:"diff,omitempty"`
}

func (e *Extension) newCanonCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "canon <duration>...",
		Short: "Print durations in canonical form",
		Long: `Print each duration in canonical form.

  dur canon 90m            # 1h30m0s
  dur canon 1.5us          # 1.5µs
  dur canon --diff 90m     # show what changed`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runCanon,
	}
	c.Flags().Bool(extension.FlagDiff, false, "Show a diff from input to canonical form")
	return c
}

func (e *Extension) runCanon(c *cobra.Command, args []string) error {
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	rs := make([]convert.Result, 0, len(args))
	var err error
	for _, a := range args {
		var r convert.Result
		if r, err = e.conv.Canon(a); err != nil {
			break
		}
		rs = append(rs, r)
	}
	changed := 0
	for _, r := range rs {
		if r.Changed() {
			changed++
		}
	}
	logResults("convert:canon", "canon", args, rs, err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		out := make([]canonJSON, len(rs))
		for i, r := range rs {
			out[i] = canonJSON{Input: r.Input, Canonical: r.Canonical(), Changed: r.Changed()}
			if showDiff {
				out[i].Diff = diff.Compute(r.Input, r.Canonical(), "input", "canonical").Diff
			}
		}
		return cmd.PrintJSON(out)
	}

	colour := cmd.OutIsTerminal()
	for _, r := range rs {
		if showDiff {
			fmt.Fprint(cmd.Out(), diff.Compute(r.Input, r.Canonical(), "input", "canonical").Format(colour))
			continue
		}
		fmt.Fprintln(cmd.Out(), r.Canonical())
	}
	if showDiff && changed == 0 {
		fmt.Fprintln(cmd.Out(), "already canonical")
	}
	return nil
}
