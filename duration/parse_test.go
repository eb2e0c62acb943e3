package duration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseTests = []struct {
	in   string
	want Duration
}{
	// simple
	{"0", 0},
	{"5s", 5 * Second},
	{"30s", 30 * Second},
	{"1478s", 1478 * Second},
	// sign
	{"-5s", -5 * Second},
	{"+5s", 5 * Second},
	{"-0", 0},
	{"+0", 0},
	// decimal
	{"5.0s", 5 * Second},
	{"5.6s", 5*Second + 600*Millisecond},
	{"5.s", 5 * Second},
	{".5s", 500 * Millisecond},
	{"1.0s", 1 * Second},
	{"1.00s", 1 * Second},
	{"1.004s", 1*Second + 4*Millisecond},
	{"1.0040s", 1*Second + 4*Millisecond},
	{"100.00100s", 100*Second + 1*Millisecond},
	// different units
	{"10ns", 10 * Nanosecond},
	{"11us", 11 * Microsecond},
	{"12µs", 12 * Microsecond}, // U+00B5
	{"12μs", 12 * Microsecond}, // U+03BC
	{"13ms", 13 * Millisecond},
	{"14s", 14 * Second},
	{"15m", 15 * Minute},
	{"16h", 16 * Hour},
	// composite durations
	{"3h30m", 3*Hour + 30*Minute},
	{"1h30m", 90 * Minute},
	{"10.5s4m", 4*Minute + 10*Second + 500*Millisecond},
	{"-2m3.4s", -(2*Minute + 3*Second + 400*Millisecond)},
	{"1h2m3s4ms5us6ns", 1*Hour + 2*Minute + 3*Second + 4*Millisecond + 5*Microsecond + 6*Nanosecond},
	{"39h9m14.425s", 39*Hour + 9*Minute + 14*Second + 425*Millisecond},
	// large value
	{"52763797000ns", 52763797000 * Nanosecond},
	// more than 9 digits after decimal point
	{"0.3333333333333333333h", 20 * Minute},
	// 9007199254740993 = 1<<53+1 cannot be stored precisely in a float64
	{"9007199254740993ns", (1<<53 + 1) * Nanosecond},
	// largest duration that can be represented by int64 in nanoseconds
	{"9223372036854775807ns", Max},
	{"9223372036854775.807us", Max},
	{"9223372036s854ms775us807ns", Max},
	{"-9223372036854775808ns", Min},
	{"-9223372036854775.808us", Min},
	{"-9223372036s854ms775us808ns", Min},
	// largest negative round trip value
	{"-2562047h47m16.854775808s", Min},
	// huge string
	{"0.100000000000000000000h", 6 * Minute},
	// first overflow check in leadingFraction
	{"0.830103483285477580700h", 49*Minute + 48*Second + 372539827*Nanosecond},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "Parse(%q) = %d, want %d", tt.in, got, tt.want)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrInvalid},
		{"sign only", "-", ErrInvalid},
		{"plus only", "+", ErrInvalid},
		{"unit only", "s", ErrInvalid},
		{"dot only", ".", ErrInvalid},
		{"signed dot", "-.", ErrInvalid},
		{"dot unit", ".s", ErrInvalid},
		{"signed dot unit", "+.s", ErrInvalid},
		{"double sign", "--5s", ErrInvalid},
		{"invalid utf8", "\x85\x85", ErrInvalid},
		{"invalid utf8 prefix", "\xffff", ErrInvalid},
		{"text", "hello \xffff world", ErrInvalid},
		{"replacement char", "�", ErrInvalid},
		{"no unit", "5", ErrMissingUnit},
		{"trailing number", "5s5", ErrMissingUnit},
		{"signed no unit", "-3", ErrMissingUnit},
		{"day", "1d", ErrUnknownUnit},
		{"unknown", "5xs", ErrUnknownUnit},
		{"bare micro", "1µ", ErrUnknownUnit},
		{"upper case", "1H", ErrUnknownUnit},
		// overflow
		{"overflow leading int", "9223372036854775810ns", ErrInvalid},
		{"overflow by one", "9223372036854775808ns", ErrInvalid},
		{"negative overflow by one", "-9223372036854775809ns", ErrInvalid},
		{"overflow micro", "9223372036854776us", ErrInvalid},
		{"overflow hours", "3000000h", ErrInvalid},
		{"overflow fraction", "9223372036854775.808us", ErrInvalid},
		{"overflow terms", "9223372036854ms775us808ns", ErrInvalid},
		{"overflow two max terms", "9223372036854775808ns9223372036854775808ns", ErrInvalid},
		{"overflow negative extra term", "-9223372036854775808ns1ns", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.Error(t, err, "Parse(%q) = %d, want error", tt.in, got)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, got)
		})
	}
}

func TestParse_UnknownUnit(t *testing.T) {
	tests := []struct {
		in      string
		unit    string
		message string
	}{
		{"5xs", "xs", `unknown unit "xs"`},
		{"1d", "d", `unknown unit "d"`},
		{"1.5x2s", "x", `unknown unit "x"`},
		{"1 s", " s", `unknown unit " s"`},
		{"3µ", "µ", `unknown unit "\u{b5}"`},
		{"2\"", "\"", `unknown unit "\""`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			var uerr *UnknownUnitError
			require.True(t, errors.As(err, &uerr), "Parse(%q) error = %v, want *UnknownUnitError", tt.in, err)
			assert.Equal(t, tt.unit, uerr.Unit)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestParse_FixedMessages(t *testing.T) {
	_, err := Parse("")
	assert.EqualError(t, err, "invalid duration")

	_, err = Parse("5")
	assert.EqualError(t, err, "missing unit in duration")
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, 90*Minute, MustParse("1h30m"))
	assert.PanicsWithValue(t, `duration: MustParse("5"): missing unit in duration`, func() {
		MustParse("5")
	})
}

func TestUnits(t *testing.T) {
	units := Units()
	require.Len(t, units, 8)
	assert.Equal(t, Unit{"ns", Nanosecond}, units[0])
	assert.Equal(t, Unit{"h", Hour}, units[len(units)-1])

	// Callers get a copy; the parser's table is unaffected.
	units[0].Value = Hour
	d, err := Parse("1ns")
	require.NoError(t, err)
	assert.Equal(t, Nanosecond, d)

	for _, u := range Units() {
		d, err := Parse("1" + u.Name)
		require.NoError(t, err, "unit %q", u.Name)
		assert.Equal(t, u.Value, d, "unit %q", u.Name)
	}
}

func TestLeadingInt(t *testing.T) {
	x, rem, ok := leadingInt("9223372036854775808ns")
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<63), x)
	assert.Equal(t, "ns", rem)

	_, _, ok = leadingInt("9223372036854775809")
	assert.False(t, ok)

	x, rem, ok = leadingInt("ms")
	assert.True(t, ok)
	assert.Zero(t, x)
	assert.Equal(t, "ms", rem)
}

func TestLeadingFraction(t *testing.T) {
	x, scale, rem := leadingFraction("25s")
	assert.Equal(t, uint64(25), x)
	assert.Equal(t, 100.0, scale)
	assert.Equal(t, "s", rem)

	// Digits past the accumulator's capacity are consumed but ignored.
	x, scale, rem = leadingFraction("33333333333333333333333h")
	assert.Equal(t, uint64(3333333333333333333), x)
	assert.Equal(t, 1e19, scale)
	assert.Equal(t, "h", rem)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"ms", `"ms"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"µs", `"\u{b5}s"`},
		{"μs", `"\u{3bc}s"`},
		{"\t", `"\u{9}"`},
		{"\x7f", `"\u{7f}"`},
		{"\xff", `"\u{fffd}"`},
		{"日", `"\u{65e5}"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "Quote(%q)", tt.in)
	}
}
