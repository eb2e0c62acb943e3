package core

import (
	"testing"

	"github.com/jpl-au/dur/extension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	e := &Extension{}

	var names []string
	for _, c := range e.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"config", "serve", "guide", "llm", "log", "version"}, names)

	// Everything except serve runs without loading config.
	for _, n := range names {
		if n == "serve" {
			assert.NotContains(t, e.BootstrapCommands(), n)
			continue
		}
		assert.Contains(t, e.BootstrapCommands(), n)
	}
}

func TestInit(t *testing.T) {
	e := &Extension{}
	ctx := extension.NewContext(nil)
	require.NoError(t, e.Init(ctx))
	assert.Same(t, ctx, e.ctx)
	assert.Nil(t, e.MCPTools())
}

func TestFlags(t *testing.T) {
	f := newLogCmd().Flags().ShorthandLookup("n")
	require.NotNil(t, f)
	assert.Equal(t, extension.FlagLimit, f.Name)
	assert.Equal(t, "20", f.DefValue)

	assert.NotNil(t, newConfigCmd().Flags().Lookup(extension.FlagLocal))
}
