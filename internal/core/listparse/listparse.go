// Package listparse extracts individual list items from capture text
package listparse

import (
	"strings"
	"unicode/utf8"

	"later/internal/core/normalize"
	"later/internal/core/rulepack"
)

// minPlainItems is the floor for marker-less lists: a text with no bullet or
// numbered line needs at least this many plain candidates to count as a list
const minPlainItems = 2

// Parser extracts list items using the pack's line patterns
type Parser struct {
	p *rulepack.Pack
	n *normalize.Normalizer
}

// New creates a Parser over a compiled rule pack
func New(p *rulepack.Pack) *Parser {
	return &Parser{p: p, n: normalize.New()}
}

// Items splits text into ordered list items. Bullet and numbered markers are
// stripped; items keep their original casing. Plain short lines accumulate as
// fallback candidates only until the first marked line appears
func (x *Parser) Items(text string) []string {
	th := x.p.Thresholds

	var items []string
	patternFound := false
	plain := 0

	for _, raw := range strings.Split(normalize.Sanitize(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if loc := x.p.BulletRe.FindStringIndex(line); loc != nil {
			items = append(items, strings.TrimSpace(line[loc[1]:]))
			patternFound = true
			continue
		}
		if loc := x.p.NumberedRe.FindStringIndex(line); loc != nil {
			items = append(items, strings.TrimSpace(line[loc[1]:]))
			patternFound = true
			continue
		}

		if patternFound {
			// once a marked line is seen, stray prose between items is dropped
			continue
		}
		if len(items) == 0 && x.looksLikeHeader(line) {
			continue
		}
		if utf8.RuneCountInString(line) < th.ShortLineChars &&
			!strings.Contains(line, ".") &&
			!strings.HasSuffix(line, ":") {
			items = append(items, line)
			plain++
		}
	}

	// a single plain line is not a list
	if !patternFound && plain < minPlainItems {
		return nil
	}
	return items
}

// looksLikeHeader reports whether a line reads like a list title ("things to buy")
func (x *Parser) looksLikeHeader(line string) bool {
	return x.p.ListRe.MatchString(x.n.Fold(line))
}
