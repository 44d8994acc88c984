package rulepack

import (
	"testing"

	perr "later/internal/platform/errors"
)

func TestLoad(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Version != 1 {
		t.Fatalf("version = %d, want 1", p.Version)
	}
	for _, v := range []string{"buy", "call", "submit"} {
		if _, ok := p.VerbSet[v]; !ok {
			t.Fatalf("VerbSet missing %q", v)
		}
	}
	if len(p.CheckboxPrefixes) == 0 || p.CheckboxPrefixes[0] != "[ ]" {
		t.Fatalf("unexpected checkbox prefixes: %v", p.CheckboxPrefixes)
	}
	if len(p.DuePhrases) == 0 || p.DuePhrases[0] != (DuePhrase{Phrase: "today", Days: 0}) {
		t.Fatalf("unexpected due phrases: %v", p.DuePhrases)
	}
}

func TestTimeRegex(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	matches := []string{
		"call dentist tomorrow",
		"meet at 3pm",
		"done by friday",
		"see you next week",
	}
	for _, in := range matches {
		if !p.TimeRe.MatchString(in) {
			t.Fatalf("TimeRe should match %q", in)
		}
	}
	misses := []string{
		"spam folder",   // pm inside a word
		"teammates",     // am inside a word
		"the attic",     // at inside a word
		"nightly build", // no time keyword at all
	}
	for _, in := range misses {
		if p.TimeRe.MatchString(in) {
			t.Fatalf("TimeRe should not match %q", in)
		}
	}
}

func TestPriorityRegexMultiWord(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.PriorityRe.MatchString("this is high priority work") {
		t.Fatalf("PriorityRe should match the multi-word phrase")
	}
	if p.PriorityRe.MatchString("sort by priority") {
		t.Fatalf("bare priority is not a keyword")
	}
}

func TestLinePatterns(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, in := range []string{"- milk", "* milk", "• milk"} {
		if !p.BulletRe.MatchString(in) {
			t.Fatalf("BulletRe should match %q", in)
		}
	}
	if p.BulletRe.MatchString("-milk") {
		t.Fatalf("bullet needs trailing whitespace")
	}
	for _, in := range []string{"1. first", "12) second"} {
		if !p.NumberedRe.MatchString(in) {
			t.Fatalf("NumberedRe should match %q", in)
		}
	}
	if p.NumberedRe.MatchString("a. first") {
		t.Fatalf("numbered needs a leading digit")
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse([]byte("{")); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("truncated JSON: got %v, want JSON error", err)
	}
	if _, err := Parse([]byte(`{"version": 2}`)); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unsupported version: got %v, want invalid argument", err)
	}
}

func TestParseValidation(t *testing.T) {
	// structurally fine but the weights block is missing entirely
	js := `{
	  "version": 1,
	  "keywords": {"action_verbs": ["buy"], "time": ["today"], "priority": ["urgent"], "list": ["list"]},
	  "checkbox_prefixes": ["[ ]"],
	  "patterns": {"bullet": "^[-*•]\\s+", "numbered": "^[0-9]+[.)]\\s+"},
	  "due_phrases": [{"phrase": "today", "days": 0}],
	  "thresholds": {
	    "short_text_chars": 100, "short_line_chars": 50, "long_text_chars": 100,
	    "note_min_marks": 2, "note_min_words": 20, "min_pattern_lines": 2,
	    "simple_list_lines": 3, "weak_signal": 2.0, "weak_dampen": 0.6
	  }
	}`
	_, err := Parse([]byte(js))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
	e, ok := perr.As(err)
	if !ok || e.Field() == "" {
		t.Fatalf("validation error should carry the offending field, got %+v", err)
	}
}

func TestEmbeddedIsACopy(t *testing.T) {
	a := Embedded()
	a[0] = 'x'
	if b := Embedded(); b[0] == 'x' {
		t.Fatalf("Embedded must return a fresh copy")
	}
}
