package convert

import "github.com/jpl-au/dur/duration"

// Result is the outcome of a conversion, carrying every accessor so JSON
// consumers do not need to parse the canonical form themselves.
type Result struct {
	Input        string            `json:"input"`
	Duration     duration.Duration `json:"duration"`
	Nanoseconds  int64             `json:"nanoseconds"`
	Microseconds int64             `json:"microseconds"`
	Milliseconds int64             `json:"milliseconds"`
	Seconds      float64           `json:"seconds"`
	Minutes      float64           `json:"minutes"`
	Hours        float64           `json:"hours"`
}

// NewResult fills a Result from d.
func NewResult(input string, d duration.Duration) Result {
	return Result{
		Input:        input,
		Duration:     d,
		Nanoseconds:  d.Nanoseconds(),
		Microseconds: d.Microseconds(),
		Milliseconds: d.Milliseconds(),
		Seconds:      d.Seconds(),
		Minutes:      d.Minutes(),
		Hours:        d.Hours(),
	}
}

// Canonical returns the canonical text of the result's duration.
func (r Result) Canonical() string { return r.Duration.String() }

// Changed reports whether the input differs from its canonical form.
func (r Result) Changed() bool { return r.Input != r.Canonical() }
