package errors

import (
	stderrs "errors"
	"testing"
)

func TestWrapAndCode(t *testing.T) {
	root := stderrs.New("boom")
	err := Wrap(root, ErrorCodeValidation, "bad pack")

	if CodeOf(err) != ErrorCodeValidation {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("IsCode should match")
	}
	if Root(err) != root {
		t.Fatalf("Root should unwrap to the cause")
	}
	if got := err.Error(); got != "bad pack: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCodeOfForeignError(t *testing.T) {
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors default to unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatalf("nil defaults to unknown")
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := Validationf("bad value")
	withF := WithField(base, "weights.task_verb")

	e, ok := As(withF)
	if !ok || e.Field() != "weights.task_verb" {
		t.Fatalf("field not attached: %+v", e)
	}
	orig, _ := As(base)
	if orig.Field() != "" {
		t.Fatalf("WithField must not mutate the original")
	}
}

func TestWithOp(t *testing.T) {
	err := WithOp(InvalidArgf("nope"), "rulepack.parse")
	e, ok := As(err)
	if !ok || e.Op() != "rulepack.parse" {
		t.Fatalf("op not attached: %+v", e)
	}
}

func TestWithFieldForeignPassthrough(t *testing.T) {
	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatalf("foreign errors pass through unchanged")
	}
}

func TestWrapIf(t *testing.T) {
	if WrapIf(nil, ErrorCodeJSON, "m") != nil {
		t.Fatalf("nil stays nil")
	}
	if err := WrapIf(stderrs.New("x"), ErrorCodeJSON, "m"); !IsCode(err, ErrorCodeJSON) {
		t.Fatalf("non-nil gets wrapped")
	}
}

func TestSugarCodes(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{JSONErrf("x"), ErrorCodeJSON},
		{Canceledf("x"), ErrorCodeCanceled},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, tc := range cases {
		if CodeOf(tc.err) != tc.code {
			t.Fatalf("%v: code = %v, want %v", tc.err, CodeOf(tc.err), tc.code)
		}
	}
}

func TestSentinelNotFound(t *testing.T) {
	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatalf("sentinel should carry the not found code")
	}
}
