package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"compound", []string{"1h30m"}, []string{"5400000000000"}},
		{"fraction", []string{"1.5us"}, []string{"1500"}},
		{"micro sign", []string{"1.5µs"}, []string{"1500"}},
		{"bare zero", []string{"0"}, []string{"0"}},
		{"several", []string{"1s", "1ms", "1ns"}, []string{"1000000000", "1000000", "1"}},
		{"negative", []string{"--", "-1.5h"}, []string{"-5400000000000"}},
		{"min", []string{"--", "-2562047h47m16.854775808s"}, []string{"-9223372036854775808"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			out := env.run(append([]string{"parse"}, tc.args...)...)
			assert.Equal(t, tc.want, lines(out))
		})
	}
}

func TestParse_Long(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("parse", "--long", "1.5us")
	env.contains(out, "CANONICAL")
	env.contains(out, "NANOSECONDS")
	env.contains(out, "1.5µs")
	env.contains(out, "1,500")
}

func TestParse_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("-o", "json", "parse", "90m")
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "90m", got[0]["input"])
	assert.Equal(t, "1h30m0s", got[0]["duration"])
	assert.Equal(t, 5.4e12, got[0]["nanoseconds"])
	assert.Equal(t, 1.5, got[0]["hours"])
	assert.Equal(t, 90.0, got[0]["minutes"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"missing unit", "5", `parse "5": missing unit in duration`},
		{"unknown unit", "5xs", `parse "5xs": unknown unit "xs"`},
		{"days", "1d", `unknown unit "d"`},
		{"overflow", "9999999h", `parse "9999999h": invalid duration`},
		{"garbage", "abc", `invalid duration`},
		{"non-ascii unit", "3é", `unknown unit "\u{e9}"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			stdout, stderr, err := env.exec("", "parse", tc.arg)
			require.Error(t, err)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error: ")
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestParse_JSONError(t *testing.T) {
	env := newTestEnv(t)

	stdout, stderr, err := env.exec("", "-o", "json", "parse", "5")
	require.Error(t, err, "JSON errors still exit non-zero")
	assert.JSONEq(t, `{"error":"parse \"5\": missing unit in duration"}`, stdout)
	assert.NotContains(t, stderr, "Error:")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"0", "0s"},
		{"1", "1ns"},
		{"1100", "1.1µs"},
		{"5400000000000", "1h30m0s"},
		{"-1500", "-1.5µs"},
		{"9223372036854775807", "2562047h47m16.854775807s"},
		{"-9223372036854775808", "-2562047h47m16.854775808s"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			env := newTestEnv(t)
			env.equals(env.run("format", "--", tc.arg), tc.want)
		})
	}
}

func TestFormat_Stdin(t *testing.T) {
	env := newTestEnv(t)

	out := env.runStdin("1000 2000\n300000000\n", "format")
	assert.Equal(t, []string{"1µs", "2µs", "300ms"}, lines(out))
}

func TestFormat_Errors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("format", "1s")
	assert.Error(t, err)

	_, err = env.runErr("format", "9223372036854775808")
	assert.Error(t, err, "beyond int64")
}

func TestRound(t *testing.T) {
	const d = "1h15m30.918273645s"
	tests := []struct {
		unit string
		want string
	}{
		{"1ns", "1h15m30.918273645s"},
		{"1us", "1h15m30.918274s"},
		{"1ms", "1h15m30.918s"},
		{"1s", "1h15m31s"},
		{"2s", "1h15m30s"},
		{"1m", "1h16m0s"},
		{"10m", "1h20m0s"},
		{"1h", "1h0m0s"},
	}
	for _, tc := range tests {
		t.Run(tc.unit, func(t *testing.T) {
			env := newTestEnv(t)
			env.equals(env.run("round", "-u", tc.unit, d), tc.want)
		})
	}
}

func TestTruncate(t *testing.T) {
	const d = "1h15m30.918273645s"
	tests := []struct {
		unit string
		want string
	}{
		{"1ns", "1h15m30.918273645s"},
		{"1us", "1h15m30.918273s"},
		{"1ms", "1h15m30.918s"},
		{"1s", "1h15m30s"},
		{"2s", "1h15m30s"},
		{"1m", "1h15m0s"},
		{"10m", "1h10m0s"},
		{"1h", "1h0m0s"},
	}
	for _, tc := range tests {
		t.Run(tc.unit, func(t *testing.T) {
			env := newTestEnv(t)
			env.equals(env.run("truncate", "--unit", tc.unit, d), tc.want)
		})
	}
}

func TestRound_Negative(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("round", "-u", "1m", "--", "-2m30s"), "-3m0s")
	env.equals(env.run("truncate", "-u", "3m", "--", "-10m"), "-9m0s")
}

func TestRound_Saturates(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("round", "-u", "1h", "2562047h47m16s"), "2562047h47m16.854775807s")
}

func TestRound_ConfigDefault(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("round", "1h15m30.918273645s"), "1h15m31s")

	env.run("config", "defaults.round", "1m")
	env.run("config", "defaults.truncate", "1h")
	env.equals(env.run("round", "1h15m30.918273645s"), "1h16m0s")
	env.equals(env.run("truncate", "1h15m30.918273645s"), "1h0m0s")

	// An explicit flag beats the config.
	env.equals(env.run("round", "-u", "1s", "1h15m30.918273645s"), "1h15m31s")
}

func TestRound_InvalidUnit(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero", []string{"round", "-u", "0s", "1h"}},
		{"negative", []string{"round", "--unit=-1s", "1h"}},
		{"unknown", []string{"truncate", "-u", "1d", "1h"}},
		{"missing unit", []string{"truncate", "-u", "5", "1h"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.runErr(tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestCanon(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("canon", "90s", "1.5us", "0h1m", "1h0m0s")
	assert.Equal(t, []string{"1m30s", "1.5µs", "1m0s", "1h0m0s"}, lines(out))
}

func TestCanon_Diff(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("canon", "--diff", "1.5us")
	env.contains(out, "--- input")
	env.contains(out, "+++ canonical")
	env.contains(out, "1.5[-u-]{+µ+}s")

	env.equals(env.run("canon", "--diff", "1m30s"), "already canonical")
}

func TestCanon_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("-o", "json", "canon", "--diff", "1.5us", "1s")
	var got []struct {
		Input     string `json:"input"`
		Canonical string `json:"canonical"`
		Changed   bool   `json:"changed"`
		Diff      string `json:"diff"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "1.5µs", got[0].Canonical)
	assert.True(t, got[0].Changed)
	assert.Equal(t, "1.5[-u-]{+µ+}s", got[0].Diff)
	assert.False(t, got[1].Changed)
}

func TestArithmetic(t *testing.T) {
	env := newTestEnv(t)

	env.equals(env.run("sum", "1h", "30m", "15s"), "1h30m15s")
	env.equals(env.run("sum", "--", "1h", "-90m"), "-30m0s")
	env.equals(env.run("scale", "1m30s", "4"), "6m0s")
	env.equals(env.run("scale", "--", "1s", "-2"), "-2s")
	env.equals(env.run("ratio", "1h", "7m"), "8")
	env.equals(env.run("ratio", "--", "-119s", "1m"), "-1")

	_, err := env.runErr("ratio", "1h", "0s")
	assert.Error(t, err)
	_, err = env.runErr("scale", "1h", "x")
	assert.Error(t, err)
}

func TestUnits(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("units")
	for _, u := range []string{"ns", "us", "µs", "ms", "h"} {
		env.contains(out, u)
	}
	env.contains(out, "3600000000000")

	var got []struct {
		Name        string `json:"name"`
		Nanoseconds int64  `json:"nanoseconds"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.run("-o", "json", "units")), &got))
	assert.Equal(t, "ns", got[0].Name)
	assert.Equal(t, int64(1), got[0].Nanoseconds)
}

func TestInputLimit(t *testing.T) {
	env := newTestEnv(t)

	env.run("config", "limits.max_input", "8")
	env.equals(env.run("parse", "1h30m"), "5400000000000")

	_, err := env.runErr("parse", "1h30m0s0ms")
	assert.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("-o", "yaml", "parse", "1s")
	assert.Error(t, err)
	assert.Contains(t, out, "invalid output format")
}
