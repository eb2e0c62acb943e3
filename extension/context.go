// context.go defines the Context interface for extension access to dur internals.
//
// Extensions receive Context during Init(), not at construction, so they can
// register commands before configuration has been loaded.

package extension

import (
	"github.com/jpl-au/dur/internal/config"
	"github.com/jpl-au/dur/internal/convert"
)

// Context provides extensions controlled access to dur internals.
type Context interface {
	// Converter returns the shared converter, configured with the user's
	// input limit.
	Converter() *convert.Converter

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	conv *convert.Converter
	cfg  *config.Config
}

// NewContext creates a new extension context from cfg. A nil cfg is
// treated as an empty configuration.
func NewContext(cfg *config.Config) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &extContext{
		conv: convert.New(cfg.MaxInput()),
		cfg:  cfg,
	}
}

// Converter returns the converter shared by commands and MCP tools.
func (c *extContext) Converter() *convert.Converter {
	return c.conv
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
