// round.go implements "dur round" and "dur truncate".
//
// Both take the unit as a duration-typed flag. When --unit is not given
// the configured default (defaults.round / defaults.truncate) applies.

package convert

import (
	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/config"
	"github.com/jpl-au/dur/internal/convert"
	"github.com/spf13/cobra"
)

func (e *Extension) newRoundCmd() *cobra.Command {
	unit := config.DefaultRound
	c := &cobra.Command{
		Use:   "round <duration>",
		Short: "Round a duration to a multiple of a unit",
		Long: `Round a duration to the nearest multiple of --unit. Halfway values
round away from zero; results that would overflow saturate at the range limits.

  dur round 1h15m30.918273645s           # 1h15m31s (default unit 1s)
  dur round -u 10m 1h15m30s              # 1h20m0s
  dur round -u 1m -- -2m30s              # -3m0s

The default unit comes from 'dur config defaults.round'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if !c.Flags().Changed(extension.FlagUnit) {
				unit = e.cfg.RoundUnit()
			}
			return e.runRounding(args[0], unit, "round", e.conv.Round)
		},
	}
	c.Flags().VarP(&unit, extension.FlagUnit, "u", "Rounding unit (default from config, 1s)")
	return c
}

func (e *Extension) newTruncateCmd() *cobra.Command {
	unit := config.DefaultTruncate
	c := &cobra.Command{
		Use:   "truncate <duration>",
		Short: "Truncate a duration toward zero",
		Long: `Truncate a duration toward zero to a multiple of --unit.

  dur truncate 1h15m30.918273645s        # 1h15m30s (default unit 1s)
  dur truncate -u 1h 1h59m               # 1h0m0s
  dur truncate -u 1m -- -2m59s           # -2m0s

The default unit comes from 'dur config defaults.truncate'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if !c.Flags().Changed(extension.FlagUnit) {
				unit = e.cfg.TruncateUnit()
			}
			return e.runRounding(args[0], unit, "truncate", e.conv.Truncate)
		},
	}
	c.Flags().VarP(&unit, extension.FlagUnit, "u", "Truncation unit (default from config, 1s)")
	return c
}

func (e *Extension) runRounding(in string, unit duration.Duration, action string,
	fn func(string, duration.Duration) (convert.Result, error)) error {
	r, err := fn(in, unit)
	logResult("convert:"+action, action, in, r, err).Detail("unit", unit.String()).Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return printResult(r)
}
