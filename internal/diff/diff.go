// Package diff renders character-level differences between a duration as
// written and its canonical form.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ANSI colours used by Colourise.
const (
	red   = "\033[31m"
	green = "\033[32m"
	reset = "\033[0m"
)

// Result holds diff output.
type Result struct {
	Old  string // old label
	New  string // new label
	Diff string // plain inline diff text

	ops []diffmatchpatch.Diff
}

// Compute returns an inline diff between oldText and newText.
//
// Durations are single tokens, so the diff is rendered on one line with
// deletions as [-text-] and insertions as {+text+}.
func Compute(oldText, newText, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldText, newText, false)
	d = dmp.DiffCleanupSemantic(d)

	return Result{
		Old:  oldLabel,
		New:  newLabel,
		Diff: format(d, false),
		ops:  d,
	}
}

// Changed reports whether the two texts differ.
func (r Result) Changed() bool {
	for _, d := range r.ops {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

func format(diffs []diffmatchpatch.Diff, colour bool) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if colour {
				b.WriteString(red + d.Text + reset)
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffmatchpatch.DiffInsert:
			if colour {
				b.WriteString(green + d.Text + reset)
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Colourise returns the inline diff with ANSI colours in place of markers.
func (r Result) Colourise() string {
	return format(r.ops, true)
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + r.Colourise() + "\n"
	}
	return header + r.Diff + "\n"
}
