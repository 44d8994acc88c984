// Package rulepack loads and compiles capture classification rules from the embedded rules.json.
// It prepares the keyword tables, line patterns, weights, and thresholds the
// classifier and extractors share
package rulepack

import (
	_ "embed"
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	perr "later/internal/platform/errors"
)

//go:embed rules.json
var embedded []byte

type rawKeywords struct {
	ActionVerbs []string `json:"action_verbs" validate:"required,min=1,dive,required"`
	Time        []string `json:"time" validate:"required,min=1,dive,required"`
	Priority    []string `json:"priority" validate:"required,min=1,dive,required"`
	List        []string `json:"list" validate:"required,min=1,dive,required"`
}

type rawPatterns struct {
	Bullet   string `json:"bullet" validate:"required"`
	Numbered string `json:"numbered" validate:"required"`
}

type rawDuePhrase struct {
	Phrase string `json:"phrase" validate:"required"`
	Days   int    `json:"days" validate:"gte=0"`
}

// Weights is the named weight table from rules.json.
// Every score contribution of the classifier is one of these fields
type Weights struct {
	TaskCheckbox   float64 `json:"task_checkbox" validate:"gt=0"`
	TaskLeadVerb   float64 `json:"task_lead_verb" validate:"gt=0"`
	TaskVerb       float64 `json:"task_verb" validate:"gt=0"`
	TaskTime       float64 `json:"task_time" validate:"gt=0"`
	TaskPriority   float64 `json:"task_priority" validate:"gt=0"`
	TaskShortBonus float64 `json:"task_short_bonus" validate:"gt=0"`

	ListBlockBase  float64 `json:"list_block_base" validate:"gt=0"`
	ListPerItem    float64 `json:"list_per_item" validate:"gt=0"`
	ListKeyword    float64 `json:"list_keyword" validate:"gt=0"`
	ListShortLines float64 `json:"list_short_lines" validate:"gt=0"`

	NoteLength    float64 `json:"note_length" validate:"gt=0"`
	NoteSentences float64 `json:"note_sentences" validate:"gt=0"`
	NoteParagraph float64 `json:"note_paragraph" validate:"gt=0"`
	NoteWords     float64 `json:"note_words" validate:"gt=0"`
	NoteBaseline  float64 `json:"note_baseline" validate:"gt=0"`
}

// Thresholds is the named threshold table from rules.json
type Thresholds struct {
	// ShortTextChars is the upper bound (exclusive) for the one-liner task bonus
	ShortTextChars int `json:"short_text_chars" validate:"gt=0"`
	// ShortLineChars is the upper bound (exclusive) for "short line" heuristics
	ShortLineChars int `json:"short_line_chars" validate:"gt=0"`
	// LongTextChars is the lower bound (exclusive) for the long-note signal
	LongTextChars int `json:"long_text_chars" validate:"gt=0"`
	// NoteMinMarks is the minimum count of sentence-terminal marks for the sentence signal
	NoteMinMarks int `json:"note_min_marks" validate:"gt=0"`
	// NoteMinWords is the lower bound (exclusive) for the wordy-note signal
	NoteMinWords int `json:"note_min_words" validate:"gt=0"`
	// MinPatternLines is the minimum bullet/numbered line count for the list block signal
	MinPatternLines int `json:"min_pattern_lines" validate:"gt=1"`
	// SimpleListLines is the minimum non-empty line count for the all-short-lines signal
	SimpleListLines int `json:"simple_list_lines" validate:"gt=1"`
	// WeakSignal dampens confidence when the best score stays below it
	WeakSignal float64 `json:"weak_signal" validate:"gt=0"`
	// WeakDampen is the multiplier applied to weak-signal confidence
	WeakDampen float64 `json:"weak_dampen" validate:"gt=0,lt=1"`
}

type rawPack struct {
	Version          int            `json:"version" validate:"required"`
	Meta             map[string]any `json:"meta"`
	Keywords         rawKeywords    `json:"keywords"`
	CheckboxPrefixes []string       `json:"checkbox_prefixes" validate:"required,min=1,dive,required"`
	Patterns         rawPatterns    `json:"patterns"`
	DuePhrases       []rawDuePhrase `json:"due_phrases" validate:"required,min=1,dive"`
	Weights          Weights        `json:"weights"`
	Thresholds       Thresholds     `json:"thresholds"`
}

// DuePhrase maps a surface phrase to a day offset from the reference day.
// Order in the pack is the match priority order
type DuePhrase struct {
	Phrase string
	Days   int
}

// Pack represents a compiled rule pack for the capture classifier
type Pack struct {
	Version int
	Meta    map[string]any

	// VerbSet holds the action verbs for exact first-word lookups
	VerbSet map[string]struct{}
	// CheckboxPrefixes are literal leading tokens like "[ ]" and "[x]"
	CheckboxPrefixes []string

	// Word-boundary alternations over folded text
	VerbRe     *regexp.Regexp
	TimeRe     *regexp.Regexp
	PriorityRe *regexp.Regexp
	ListRe     *regexp.Regexp

	// Line shape patterns, anchored at line start
	BulletRe   *regexp.Regexp
	NumberedRe *regexp.Regexp

	DuePhrases []DuePhrase
	Weights    Weights
	Thresholds Thresholds
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) { return Parse(embedded) }

// Embedded returns a copy of the built-in rules.json bytes
func Embedded() []byte { return append([]byte(nil), embedded...) }

// Parse decodes, validates, and compiles a rules.json payload
func Parse(b []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(b, &rp); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "rulepack: parse rules.json")
	}
	if rp.Version != 1 {
		return nil, perr.InvalidArgf("rulepack: unsupported rules.json version %d (want 1)", rp.Version)
	}
	if err := validateRaw(&rp); err != nil {
		return nil, err
	}

	p := &Pack{
		Version:    rp.Version,
		Meta:       rp.Meta,
		VerbSet:    make(map[string]struct{}, len(rp.Keywords.ActionVerbs)),
		Weights:    rp.Weights,
		Thresholds: rp.Thresholds,
	}

	for _, v := range rp.Keywords.ActionVerbs {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			p.VerbSet[v] = struct{}{}
		}
	}

	for _, cb := range rp.CheckboxPrefixes {
		if cb = strings.ToLower(cb); cb != "" {
			p.CheckboxPrefixes = append(p.CheckboxPrefixes, cb)
		}
	}

	var err error
	if p.VerbRe, err = compileGroup(rp.Keywords.ActionVerbs, ""); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "rulepack: action_verbs")
	}
	// "3pm" style suffixes have no word boundary before am/pm, so the time
	// group carries an extra digit-prefixed alternative
	if p.TimeRe, err = compileGroup(rp.Keywords.Time, `[0-9](?:am|pm)\b`); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "rulepack: time")
	}
	if p.PriorityRe, err = compileGroup(rp.Keywords.Priority, ""); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "rulepack: priority")
	}
	if p.ListRe, err = compileGroup(rp.Keywords.List, ""); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "rulepack: list")
	}
	if p.BulletRe, err = regexp.Compile(rp.Patterns.Bullet); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "rulepack: bullet pattern")
	}
	if p.NumberedRe, err = regexp.Compile(rp.Patterns.Numbered); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "rulepack: numbered pattern")
	}

	for _, d := range rp.DuePhrases {
		ph := strings.ToLower(strings.TrimSpace(d.Phrase))
		if ph == "" {
			continue
		}
		p.DuePhrases = append(p.DuePhrases, DuePhrase{Phrase: ph, Days: d.Days})
	}

	return p, nil
}

// compileGroup builds a word-boundary alternation over lowercased, regex-quoted terms.
// extra is an optional raw alternative appended verbatim
func compileGroup(terms []string, extra string) (*regexp.Regexp, error) {
	uniq := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}
	// longest first so multi-word phrases are not shadowed in the alternation
	sort.Slice(uniq, func(i, j int) bool {
		if len(uniq[i]) != len(uniq[j]) {
			return len(uniq[i]) > len(uniq[j])
		}
		return uniq[i] < uniq[j]
	})
	parts := make([]string, 0, len(uniq))
	for _, t := range uniq {
		parts = append(parts, regexp.QuoteMeta(t))
	}
	expr := `\b(?:` + strings.Join(parts, "|") + `)\b`
	if extra != "" {
		expr += "|" + extra
	}
	return regexp.Compile(expr)
}
