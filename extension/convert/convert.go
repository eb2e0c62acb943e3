// Package convert provides the convert extension: the commands that parse,
// format, round and combine durations, and their MCP tool equivalents.
// Registers commands: parse, format, round, truncate, canon, sum, scale,
// ratio, units.
package convert

import (
	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/config"
	"github.com/jpl-au/dur/internal/convert"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the convert extension.
type Extension struct {
	conv *convert.Converter
	cfg  *config.Config
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Bootstrap     = (*Extension)(nil)
)

// Name returns "convert".
func (e *Extension) Name() string { return "convert" }

// Init picks up the shared converter and config.
func (e *Extension) Init(ctx extension.Context) error {
	e.conv = ctx.Converter()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the conversion commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newParseCmd(),
		e.newFormatCmd(),
		e.newRoundCmd(),
		e.newTruncateCmd(),
		e.newCanonCmd(),
		e.newSumCmd(),
		e.newScaleCmd(),
		e.newRatioCmd(),
		e.newUnitsCmd(),
	}
}

// BootstrapCommands returns commands that need no config: units prints a
// fixed table.
func (e *Extension) BootstrapCommands() []string {
	return []string{"units"}
}
