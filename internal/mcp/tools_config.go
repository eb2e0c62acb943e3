// tools_config.go implements the dur_config_get and dur_config_set tools.
//
// Both work on the config file of the scope the server started with. The
// running server keeps the configuration it was started with; tool calls
// run concurrently and share it, so a saved change applies on restart.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/config"
	"github.com/jpl-au/dur/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// load reads the config file backing the server's configuration.
func (h *handlers) load() (*config.Config, error) {
	return config.LoadScope(h.ext.Config().Scope())
}

// configGet handles dur_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.load()
	if err != nil {
		log.Event("mcp:dur_config_get", "get").Author("mcp").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := extension.StringArg(req, "key", "")
	if key == "" {
		log.Event("mcp:dur_config_get", "list").Author("mcp").Write(nil)
		return extension.JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:dur_config_get", "get").Author("mcp").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(map[string]string{key: v})
}

// configSet handles dur_config_set tool calls.
func (h *handlers) configSet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	cfg, err := h.load()
	if err != nil {
		log.Event("mcp:dur_config_set", "set").Author("mcp").Detail("key", key).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := cfg.Set(key, value); err != nil {
		log.Event("mcp:dur_config_set", "set").Author("mcp").Detail("key", key).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = cfg.Save()

	log.Event("mcp:dur_config_set", "set").Author("mcp").
		Detail("key", key).Detail("scope", cfg.Scope().String()).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	v, _ := cfg.Get(key)
	return mcp.NewToolResultText(fmt.Sprintf("%s = %s (%s, restart server to apply)", key, v, cfg.Scope())), nil
}
