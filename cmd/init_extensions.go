/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until first
// command execution. The config is loaded once and shared across all
// extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/config"
)

// bootstrapCommands lists commands that bypass extension initialisation.
// Built from core commands plus extension-declared bootstrap commands.
var bootstrapCommands map[string]bool

// buildBootstrapCommands creates the set of commands that run without
// loading config. "config" must work on a malformed file so the user can
// repair it; the others never touch the converter.
func buildBootstrapCommands() map[string]bool {
	cmds := map[string]bool{
		"config":     true,
		"guide":      true,
		"llm":        true,
		"version":    true,
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if b, ok := ext.(extension.Bootstrap); ok {
			for _, name := range b.BootstrapCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config and injects the shared context into every
// Initializable extension, exactly once per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		bootstrapCommands = buildBootstrapCommands()
	})
}
