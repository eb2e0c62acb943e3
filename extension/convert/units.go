// units.go implements "dur units".

package convert

import (
	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/internal/format"
	"github.com/spf13/cobra"
)

// unitJSON is the JSON shape of one unit table row.
type unitJSON struct {
	Name        string `json:"name"`
	Nanoseconds int64  `json:"nanoseconds"`
}

func (e *Extension) newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List accepted units",
		Long: `List every unit suffix the parser accepts and its value in nanoseconds.
Days and larger calendar units are deliberately absent.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			units := duration.Units()
			if cmd.JSON() {
				out := make([]unitJSON, len(units))
				for i, u := range units {
					out[i] = unitJSON{Name: u.Name, Nanoseconds: int64(u.Value)}
				}
				return cmd.PrintJSON(out)
			}
			return format.Units(cmd.Out(), units)
		},
	}
}
