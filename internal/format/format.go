// Package format provides output formatting utilities for CLI display.
//
// Command implementations focus on running conversions; this package
// handles column alignment and number grouping for text output.
package format

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/internal/convert"
	"github.com/jpl-au/dur/internal/log"
)

// float renders an accessor value without exponent noise for whole numbers.
func float(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Values prints the nanosecond count of each result, one per line.
func Values(w io.Writer, rs []convert.Result) error {
	for _, r := range rs {
		fmt.Fprintln(w, r.Nanoseconds)
	}
	return nil
}

// Canonical prints the canonical form of each result, one per line.
func Canonical(w io.Writer, rs []convert.Result) error {
	for _, r := range rs {
		fmt.Fprintln(w, r.Canonical())
	}
	return nil
}

// Long prints results as a table of every accessor.
//
// Column order is CANONICAL, NANOSECONDS, MILLISECONDS, SECONDS, HOURS,
// INPUT. The input goes last because it is free text of arbitrary width.
func Long(w io.Writer, rs []convert.Result) error {
	if len(rs) == 0 {
		return nil
	}

	type row struct {
		canon, ns, ms, s, h, input string
	}
	rows := make([]row, 0, len(rs))
	wCanon, wNs, wMs, wS, wH := 9, 11, 12, 7, 5 // header widths
	for _, r := range rs {
		rw := row{
			canon: r.Canonical(),
			ns:    humanize.Comma(r.Nanoseconds),
			ms:    humanize.Comma(r.Milliseconds),
			s:     float(r.Seconds),
			h:     float(r.Hours),
			input: r.Input,
		}
		wCanon = max(wCanon, len([]rune(rw.canon)))
		wNs = max(wNs, len(rw.ns))
		wMs = max(wMs, len(rw.ms))
		wS = max(wS, len(rw.s))
		wH = max(wH, len(rw.h))
		rows = append(rows, rw)
	}

	fmt.Fprintf(w, "%-*s  %*s  %*s  %*s  %*s  %s\n",
		wCanon, "CANONICAL", wNs, "NANOSECONDS", wMs, "MILLISECONDS", wS, "SECONDS", wH, "HOURS", "INPUT")
	for _, rw := range rows {
		// %-*s pads by bytes; µ is two bytes but one column.
		pad := wCanon - len([]rune(rw.canon)) + len(rw.canon)
		fmt.Fprintf(w, "%-*s  %*s  %*s  %*s  %*s  %s\n",
			pad, rw.canon, wNs, rw.ns, wMs, rw.ms, wS, rw.s, wH, rw.h, rw.input)
	}
	return nil
}

// Units prints the unit table with nanosecond values grouped by thousands.
func Units(w io.Writer, units []duration.Unit) error {
	fmt.Fprintf(w, "%-4s  %17s\n", "UNIT", "NANOSECONDS")
	for _, u := range units {
		pad := 4 - len([]rune(u.Name)) + len(u.Name)
		fmt.Fprintf(w, "%-*s  %17s\n", pad, u.Name, humanize.Comma(int64(u.Value)))
	}
	return nil
}

// Log prints audit log entries, newest first, with relative timestamps.
func Log(w io.Writer, entries []log.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	maxSource := 6 // minimum "SOURCE"
	for _, e := range entries {
		maxSource = max(maxSource, len(e.Source))
	}

	fmt.Fprintf(w, "%-16s  %-*s  %-6s  %-10s  %s\n", "WHEN", maxSource, "SOURCE", "STATUS", "AUTHOR", "DETAIL")
	for _, e := range entries {
		when := humanize.Time(time.Unix(e.Start, 0))
		author := e.Author
		if author == "" {
			author = "-"
		}
		status := "ok"
		detail := e.Input
		if e.Output != "" {
			detail += " -> " + e.Output
		}
		if !e.Success {
			status = "error"
			detail = e.Error
		}
		fmt.Fprintf(w, "%-16s  %-*s  %-6s  %-10s  %s\n", when, maxSource, e.Source, status, author, detail)
	}
	return nil
}
