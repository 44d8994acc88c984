// Package duedate extracts a coarse due date from capture text
package duedate

import (
	"strings"
	"time"

	"later/internal/core/normalize"
	"later/internal/core/rulepack"
	ptime "later/internal/platform/time"
)

// now is a seam so tests can pin the reference instant
var now = time.Now

// Extractor scans capture text for due phrases from the rule pack
type Extractor struct {
	p *rulepack.Pack
	n *normalize.Normalizer
}

// New creates an Extractor over a compiled rule pack
func New(p *rulepack.Pack) *Extractor {
	return &Extractor{p: p, n: normalize.New()}
}

// Extract scans text for a due phrase relative to the current time.
// Returns false when no phrase matches
func (e *Extractor) Extract(text string) (time.Time, bool) {
	return e.ExtractAt(text, now())
}

// ExtractAt scans text for a due phrase relative to ref.
// Pack order is the priority order; the first phrase found wins, and the
// result is the start of the resolved day in ref's location
func (e *Extractor) ExtractAt(text string, ref time.Time) (time.Time, bool) {
	folded := e.n.Fold(text)
	if folded == "" {
		return time.Time{}, false
	}
	for _, d := range e.p.DuePhrases {
		if strings.Contains(folded, d.Phrase) {
			return ptime.StartOfDay(ref.AddDate(0, 0, d.Days)), true
		}
	}
	return time.Time{}, false
}
