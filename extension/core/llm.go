// llm.go implements "dur llm", a quick reference for LLM agents. The text
// lives in guide/llm.md.

package core

import (
	"github.com/jpl-au/dur/cmd"
	"github.com/jpl-au/dur/guide"
	"github.com/spf13/cobra"
)

func newLlmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "llm",
		Short: "Getting started guide for LLMs",
		Long:  `Quick reference for LLMs to discover available commands and usage patterns.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			content, err := guide.Get("llm")
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			return show("llm", content, false)
		},
	}
}
