package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/dur/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points global config at a temp DUR_HOME and runs the test from
// an empty working directory so no local config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(HomeEnv, home)
	t.Chdir(t.TempDir())
	return home
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, duration.Second, cfg.RoundUnit())
	assert.Equal(t, duration.Second, cfg.TruncateUnit())
	assert.True(t, cfg.LogEnabled())
	assert.Equal(t, DefaultMaxInput, cfg.MaxInput())
	for _, k := range ValidKeys() {
		assert.False(t, cfg.IsSet(k), k)
	}
}

func TestHome(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/dur-home")
	assert.Equal(t, "/tmp/dur-home", Home())
	assert.Equal(t, filepath.Join("/tmp/dur-home", "config.yaml"), GlobalPath())

	t.Setenv(HomeEnv, "")
	if h, err := os.UserHomeDir(); err == nil {
		assert.Equal(t, filepath.Join(h, Dir), Home())
	}
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"author.name", "ada", "ada"},
		{"author.email", "ada@example.com", "ada@example.com"},
		{"defaults.round", "90s", "1m30s"},
		{"defaults.truncate", "1us", "1µs"},
		{"log.enabled", "FALSE", "false"},
		{"limits.max_input", "64", "64"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var cfg Config
			require.NoError(t, cfg.Set(tt.key, tt.value))
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, cfg.IsSet(tt.key))
			assert.Equal(t, tt.want, cfg.All()[tt.key])
		})
	}
}

func TestSet_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"defaults.round", "0s"},
		{"defaults.round", "-1m"},
		{"defaults.truncate", "5"},
		{"defaults.truncate", "1d"},
		{"log.enabled", "yes"},
		{"limits.max_input", "0"},
		{"limits.max_input", "65537"},
		{"limits.max_input", "lots"},
	}
	for _, tt := range tests {
		var cfg Config
		err := cfg.Set(tt.key, tt.value)
		assert.ErrorIs(t, err, ErrInvalidValue, "%s=%s", tt.key, tt.value)
		assert.False(t, cfg.IsSet(tt.key))
	}

	var cfg Config
	err := cfg.Set("defaults.truncate", "1d")
	assert.ErrorIs(t, err, duration.ErrUnknownUnit)

	assert.ErrorIs(t, cfg.Set("sync.files", "true"), ErrUnknownKey)
	_, err = cfg.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.False(t, IsValidKey("nope"))
	assert.True(t, IsValidKey("defaults.round"))
}

func TestSaveLoad_Global(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Set("defaults.round", "15m"))
	require.NoError(t, cfg.Set("author.name", "ada"))
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "round: 15m0s")
	assert.NotContains(t, string(data), "truncate")

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*duration.Minute, got.RoundUnit())
	assert.Equal(t, "ada", got.Author.Name)
	assert.Equal(t, duration.Second, got.TruncateUnit())
}

func TestLoad_LocalWins(t *testing.T) {
	isolate(t)

	global := &Config{}
	require.NoError(t, global.Set("defaults.round", "1m"))
	require.NoError(t, global.SaveScope(ScopeGlobal))

	local := &Config{}
	require.NoError(t, local.Set("defaults.round", "1h"))
	require.NoError(t, local.SaveScope(ScopeLocal))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, duration.Hour, cfg.RoundUnit())
	assert.Equal(t, LocalPath(), cfg.Path())
}

func TestLoad_Invalid(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  round: -1s\n"), 0644))
	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidValue)

	require.NoError(t, os.WriteFile(path, []byte("limits:\n  max_input: 0\n"), 0644))
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidValue)

	require.NoError(t, os.WriteFile(path, []byte("defaults: [\n"), 0644))
	_, err = Load()
	assert.ErrorContains(t, err, "malformed config file")

	// Bare integers in YAML are nanoseconds.
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  truncate: 1000\n"), 0644))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, duration.Microsecond, cfg.TruncateUnit())
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "global", ScopeGlobal.String())
	assert.Equal(t, "local", ScopeLocal.String())
}
