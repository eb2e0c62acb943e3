// Package convert implements dur's text-level operations.
//
// Commands and MCP tools receive durations as strings. Converter validates
// that text, hands it to the duration package, and packages the outcome as
// a Result that the presentation layers can render or marshal. Keeping this
// logic out of the command handlers lets the CLI and the MCP server share a
// single implementation.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/internal/validate"
)

// DefaultMaxInput is the input size limit used when none is configured.
const DefaultMaxInput = 1024

var (
	// ErrDivideByZero is returned by Ratio when the divisor is zero.
	ErrDivideByZero = errors.New("divide by zero duration")
	// ErrInvalidNumber is returned when an integer argument does not parse.
	ErrInvalidNumber = errors.New("invalid number")
)

// Converter runs duration operations over raw text input.
type Converter struct {
	// MaxInput bounds the byte length of each input string. Zero disables
	// the limit.
	MaxInput int
}

// New returns a Converter with the given input limit. A non-positive limit
// selects DefaultMaxInput.
func New(maxInput int) *Converter {
	if maxInput <= 0 {
		maxInput = DefaultMaxInput
	}
	return &Converter{MaxInput: maxInput}
}

// duration validates and parses s. Errors name the offending input.
func (c *Converter) duration(s string) (string, duration.Duration, error) {
	in, err := validate.Input(s, c.MaxInput)
	if err != nil {
		return "", 0, err
	}
	d, err := parse(in)
	if err != nil {
		return "", 0, err
	}
	return in, d, nil
}

// durations validates every element of in before parsing any of them.
// Validation errors carry the argument position.
func (c *Converter) durations(in []string) ([]string, []duration.Duration, error) {
	vals, err := validate.Inputs(in, c.MaxInput)
	if err != nil {
		return nil, nil, err
	}
	ds := make([]duration.Duration, len(vals))
	for i, v := range vals {
		if ds[i], err = parse(v); err != nil {
			return nil, nil, err
		}
	}
	return vals, ds, nil
}

// parse parses text that has already been validated.
func parse(in string) (duration.Duration, error) {
	d, err := duration.Parse(in)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", duration.Quote(in), err)
	}
	return d, nil
}

// number validates and parses s as a base-10 int64.
func (c *Converter) number(s string) (string, int64, error) {
	in, err := validate.Input(s, c.MaxInput)
	if err != nil {
		return "", 0, err
	}
	n, err := strconv.ParseInt(in, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", ErrInvalidNumber, duration.Quote(in))
	}
	return in, n, nil
}

// Parse parses a single duration string.
func (c *Converter) Parse(s string) (Result, error) {
	in, d, err := c.duration(s)
	if err != nil {
		return Result{}, err
	}
	return NewResult(in, d), nil
}

// ParseAll parses each string in order. Input checks run on every string
// first; parsing stops at the first failure.
func (c *Converter) ParseAll(in []string) ([]Result, error) {
	vals, ds, err := c.durations(in)
	if err != nil {
		return nil, err
	}
	out := make([]Result, len(vals))
	for i, v := range vals {
		out[i] = NewResult(v, ds[i])
	}
	return out, nil
}

// Format interprets ns as an integer count of nanoseconds.
func (c *Converter) Format(ns string) (Result, error) {
	in, n, err := c.number(ns)
	if err != nil {
		return Result{}, err
	}
	return NewResult(in, duration.Duration(n)), nil
}

// Round rounds s to the nearest multiple of m, halves away from zero.
func (c *Converter) Round(s string, m duration.Duration) (Result, error) {
	if err := validate.Unit(m); err != nil {
		return Result{}, err
	}
	in, d, err := c.duration(s)
	if err != nil {
		return Result{}, err
	}
	return NewResult(in, d.Round(m)), nil
}

// Truncate rounds s toward zero to a multiple of m.
func (c *Converter) Truncate(s string, m duration.Duration) (Result, error) {
	if err := validate.Unit(m); err != nil {
		return Result{}, err
	}
	in, d, err := c.duration(s)
	if err != nil {
		return Result{}, err
	}
	return NewResult(in, d.Truncate(m)), nil
}

// Canon parses s and reports its canonical form. The Result's Input keeps
// the original text so callers can compare the two.
func (c *Converter) Canon(s string) (Result, error) {
	return c.Parse(s)
}

// Sum adds every duration in in. Overflow wraps.
func (c *Converter) Sum(in []string) (Result, error) {
	if len(in) == 0 {
		return Result{}, validate.ErrEmptyInput
	}
	vals, ds, err := c.durations(in)
	if err != nil {
		return Result{}, err
	}
	var total duration.Duration
	for _, d := range ds {
		total = total.Add(d)
	}
	return NewResult(strings.Join(vals, " + "), total), nil
}

// Scale multiplies s by the integer n. Overflow wraps.
func (c *Converter) Scale(s, n string) (Result, error) {
	in, d, err := c.duration(s)
	if err != nil {
		return Result{}, err
	}
	k, factor, err := c.number(n)
	if err != nil {
		return Result{}, err
	}
	return NewResult(in+" * "+k, d.Mul(factor)), nil
}

// Ratio returns how many whole b fit in a, truncated toward zero.
func (c *Converter) Ratio(a, b string) (int64, error) {
	_, x, err := c.duration(a)
	if err != nil {
		return 0, err
	}
	_, y, err := c.duration(b)
	if err != nil {
		return 0, err
	}
	if y == 0 {
		return 0, fmt.Errorf("%w: %s", ErrDivideByZero, duration.Quote(b))
	}
	return x.Div(y), nil
}
