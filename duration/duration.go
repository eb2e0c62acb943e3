// Package duration provides an elapsed-time value measured in integer
// nanoseconds, together with its canonical textual form.
//
// A Duration is a signed 64-bit nanosecond count, so the largest
// representable value is roughly 292 years. Text such as "1h30m", "300ms"
// or "-1.5µs" is decoded with [Parse] and produced by [Duration.String];
// every string the formatter produces parses back to the same value.
//
// There is deliberately no unit for days or anything larger. Calendar days
// are not a fixed length, so they belong to a calendar, not a duration.
//
// Ordinary arithmetic wraps in two's complement like any int64. Only
// [Duration.Round], [Duration.Abs] and [Duration.Neg] saturate at the
// boundaries.
package duration

import (
	"cmp"
	"math"
	"time"
)

// Duration is an elapsed time in nanoseconds.
type Duration int64

// Common durations. There is no definition for units of Day or larger.
const (
	Nanosecond  Duration = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
)

// Bounds of the representable range.
const (
	Max Duration = math.MaxInt64 // 2562047h47m16.854775807s
	Min Duration = math.MinInt64 // -2562047h47m16.854775808s
)

// FromStd converts a standard library duration. Both types count
// nanoseconds in an int64, so the conversion is exact.
func FromStd(d time.Duration) Duration { return Duration(d) }

// Std returns d as a standard library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Add returns d+o. Overflow wraps.
func (d Duration) Add(o Duration) Duration { return d + o }

// Sub returns d-o. Overflow wraps.
func (d Duration) Sub(o Duration) Duration { return d - o }

// Mul returns d scaled by n. Overflow wraps.
func (d Duration) Mul(n int64) Duration { return d * Duration(n) }

// Scale returns n*d, the scalar-on-the-left form of [Duration.Mul].
func Scale(n int64, d Duration) Duration { return Duration(n) * d }

// Div returns the ratio d/o truncated toward zero. Like integer division
// it panics when o is zero.
func (d Duration) Div(o Duration) int64 { return int64(d / o) }

// Neg returns -d. Min has no positive counterpart, so Neg(Min) is Min.
func (d Duration) Neg() Duration {
	if d == Min {
		return Min
	}
	return -d
}

// Abs returns the absolute value of d.
// As a special case, Min is converted to Max.
func (d Duration) Abs() Duration {
	switch {
	case d >= 0:
		return d
	case d == Min:
		return Max
	default:
		return -d
	}
}

// Compare returns -1, 0 or +1 depending on whether d is less than, equal
// to, or greater than o.
func (d Duration) Compare(o Duration) int { return cmp.Compare(d, o) }

// Less reports whether d is shorter than o.
func (d Duration) Less(o Duration) bool { return d < o }

// Nanoseconds returns the duration as an integer nanosecond count.
func (d Duration) Nanoseconds() int64 { return int64(d) }

// Microseconds returns the duration as an integer microsecond count.
func (d Duration) Microseconds() int64 { return int64(d) / 1e3 }

// Milliseconds returns the duration as an integer millisecond count.
func (d Duration) Milliseconds() int64 { return int64(d) / 1e6 }

// Seconds returns the duration as a floating point number of seconds.
//
// The whole and fractional parts are converted separately so that large
// values keep their sub-second precision as long as float64 allows.
func (d Duration) Seconds() float64 {
	sec := d / Second
	nsec := d % Second
	return float64(sec) + float64(nsec)/1e9
}

// Minutes returns the duration as a floating point number of minutes.
func (d Duration) Minutes() float64 {
	m := d / Minute
	nsec := d % Minute
	return float64(m) + float64(nsec)/(60*1e9)
}

// Hours returns the duration as a floating point number of hours.
func (d Duration) Hours() float64 {
	h := d / Hour
	nsec := d % Hour
	return float64(h) + float64(nsec)/(60*60*1e9)
}
