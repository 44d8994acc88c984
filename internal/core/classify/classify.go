// Package classify scores captured text and classifies it as task, list, or note
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"later/internal/core/normalize"
	"later/internal/core/rulepack"
)

// ContentType is the category a piece of captured text is classified into
type ContentType string

const (
	// TypeTask is a single actionable item
	TypeTask ContentType = "task"
	// TypeList is a collection of short entries
	TypeList ContentType = "list"
	// TypeNote is free-form prose and the default for weak signal
	TypeNote ContentType = "note"
)

// Valid reports whether ct is one of the closed set
func (ct ContentType) Valid() bool {
	switch ct {
	case TypeTask, TypeList, TypeNote:
		return true
	}
	return false
}

// Scores is the heuristic score triple computed fresh per call
type Scores struct {
	Task float64 `json:"task"`
	List float64 `json:"list"`
	Note float64 `json:"note"`
}

// Total returns the sum of the three scores
func (s Scores) Total() float64 { return s.Task + s.List + s.Note }

// Max returns the largest of the three scores
func (s Scores) Max() float64 {
	m := s.Task
	if s.List > m {
		m = s.List
	}
	if s.Note > m {
		m = s.Note
	}
	return m
}

// Of returns the score for one content type
func (s Scores) Of(ct ContentType) float64 {
	switch ct {
	case TypeTask:
		return s.Task
	case TypeList:
		return s.List
	default:
		return s.Note
	}
}

// Detector runs classification over capture text.
// It is stateless across calls and safe for concurrent use
type Detector struct {
	p       *rulepack.Pack
	n       *normalize.Normalizer
	version int
}

// New creates a Detector over a compiled rule pack
func New(p *rulepack.Pack, version int) *Detector {
	return &Detector{p: p, n: normalize.New(), version: version}
}

// Version returns the detector version stamped onto results
func (d *Detector) Version() int { return d.version }

// Score computes the three heuristic scores for text
func (d *Detector) Score(text string) Scores {
	return d.score(d.n.Fold(text))
}

// Detect classifies text. The comparison order is part of the contract: list
// must strictly beat both others, task must strictly beat note, and note is
// the default, so exact ties fall through to the later branch
func (d *Detector) Detect(text string) ContentType {
	folded := d.n.Fold(text)
	if folded == "" {
		return TypeNote
	}
	s := d.score(folded)
	switch {
	case s.List > s.Task && s.List > s.Note:
		return TypeList
	case s.Task > s.Note:
		return TypeTask
	default:
		return TypeNote
	}
}

// Confidence returns the candidate's share of the total score in [0,1].
// Empty input yields 0.5 for note and 0 otherwise; a best score below the
// weak-signal threshold dampens the result
func (d *Detector) Confidence(text string, ct ContentType) float64 {
	folded := d.n.Fold(text)
	if folded == "" {
		if ct == TypeNote {
			return 0.5
		}
		return 0.0
	}
	s := d.score(folded)
	total := s.Total()
	if total <= 0 {
		return 0.0
	}
	conf := s.Of(ct) / total
	if s.Max() < d.p.Thresholds.WeakSignal {
		conf *= d.p.Thresholds.WeakDampen
	}
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

// score computes all three scores over already-folded text
func (d *Detector) score(folded string) Scores {
	if folded == "" {
		// the note baseline applies even to empty input, so note wins by default
		return Scores{Note: d.p.Weights.NoteBaseline}
	}
	return Scores{
		Task: d.taskScore(folded),
		List: d.listScore(folded),
		Note: d.noteScore(folded),
	}
}

func (d *Detector) taskScore(folded string) float64 {
	w := d.p.Weights
	th := d.p.Thresholds

	var score float64

	rest := folded
	checkbox := false
	for _, cb := range d.p.CheckboxPrefixes {
		if strings.HasPrefix(rest, cb) {
			checkbox = true
			rest = strings.TrimLeft(strings.TrimPrefix(rest, cb), " ")
			break
		}
	}
	if checkbox {
		score += w.TaskCheckbox
	}

	// strong gates the one-liner bonus; the verb-anywhere signal alone is too weak
	strong := checkbox

	if first := firstWord(rest); first != "" {
		if _, ok := d.p.VerbSet[first]; ok {
			score += w.TaskLeadVerb
			strong = true
		}
	}
	if d.p.VerbRe.MatchString(folded) {
		score += w.TaskVerb
	}
	if d.p.TimeRe.MatchString(folded) {
		score += w.TaskTime
		strong = true
	}
	if d.p.PriorityRe.MatchString(folded) {
		score += w.TaskPriority
		strong = true
	}

	// one-liner bonus: short, newline-free, and at least one strong signal.
	// multi-line short texts deliberately miss this (see duedate for the rest)
	if strong && !strings.Contains(folded, "\n") && utf8.RuneCountInString(folded) < th.ShortTextChars {
		score += w.TaskShortBonus
	}

	return score
}

func (d *Detector) listScore(folded string) float64 {
	w := d.p.Weights
	th := d.p.Thresholds

	var bullets, numbered, nonEmpty, short int
	for _, ln := range strings.Split(folded, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		nonEmpty++
		if utf8.RuneCountInString(ln) < th.ShortLineChars {
			short++
		}
		switch {
		case d.p.BulletRe.MatchString(ln):
			bullets++
		case d.p.NumberedRe.MatchString(ln):
			numbered++
		}
	}

	var score float64
	if bullets >= th.MinPatternLines || numbered >= th.MinPatternLines {
		score += w.ListBlockBase + w.ListPerItem*float64(bullets+numbered)
	}
	if d.p.ListRe.MatchString(folded) {
		score += w.ListKeyword
	}
	if nonEmpty >= th.SimpleListLines && short == nonEmpty {
		score += w.ListShortLines
	}
	return score
}

func (d *Detector) noteScore(folded string) float64 {
	w := d.p.Weights
	th := d.p.Thresholds

	var score float64
	if utf8.RuneCountInString(folded) > th.LongTextChars {
		score += w.NoteLength
	}
	marks := strings.Count(folded, ".") + strings.Count(folded, "!") + strings.Count(folded, "?")
	if marks >= th.NoteMinMarks {
		score += w.NoteSentences
	}
	if strings.Contains(folded, "\n\n") {
		score += w.NoteParagraph
	}
	if len(strings.Fields(folded)) > th.NoteMinWords {
		score += w.NoteWords
	}
	// the baseline keeps note from ever scoring zero
	score += w.NoteBaseline
	return score
}

// firstWord returns the first whitespace-delimited token of s with any
// non-letter edges trimmed, so "buy:" and "(call" still look up cleanly
func firstWord(s string) string {
	if i := strings.IndexAny(s, " \n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
}
