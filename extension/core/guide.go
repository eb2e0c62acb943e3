// guide.go implements "dur guide".
//
// Guides are embedded in the binary. A terminal gets glamour-rendered
// markdown; a pipe gets the raw text so it can be fed to an LLM as context.

package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/guide"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the dur usage guide",
		Long: `Outputs the dur guide for LLMs and humans.

  dur guide           # main guide
  dur guide round     # detailed round guide
  dur guide config    # configuration keys
  dur guide --raw     # markdown source, even on a terminal`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names, _ := guide.List()
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(c *cobra.Command, args []string) error {
			raw, _ := c.Flags().GetBool(extension.FlagRaw)
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}
			return show(name, content, raw)
		},
	}
	c.Flags().Bool(extension.FlagRaw, false, "Output raw markdown without rendering")
	return c
}

// show writes a guide page, rendering it when the output is a terminal unless
// raw is set.
func show(name, content string, raw bool) error {
	if cmd.JSON() {
		if name == "" {
			name = "guide"
		}
		return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
	}

	if !raw && cmd.OutIsTerminal() {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(cmd.Out(), content)
	return nil
}
