package logger

import (
	"bytes"
	"context"
	"os"
	"testing"

	"later/internal/platform/scope"
	"later/internal/platform/testkit"

	"github.com/rs/zerolog"
)

var testBuf bytes.Buffer

func TestMain(m *testing.M) {
	Init(Options{Level: "debug", Format: "json", Writer: &testBuf, Service: "later-test"})
	os.Exit(m.Run())
}

func TestGetReturnsRoot(t *testing.T) {
	if Get() == nil {
		t.Fatalf("root logger must never be nil")
	}
	Get().Info().Msg("root sanity")
	testkit.MustContain(t, testBuf.String(), `"service":"later-test"`)
}

func TestCEnrichesFromScope(t *testing.T) {
	ctx := scope.With(context.Background(), map[string]string{
		scope.KeyCaptureID: "c-123",
		scope.KeyBatchID:   "b-9",
	})
	C(ctx).Info().Msg("scoped line")
	out := testBuf.String()
	testkit.MustContain(t, out, `"capture_id":"c-123"`)
	testkit.MustContain(t, out, `"batch_id":"b-9"`)
}

func TestCWithoutScope(t *testing.T) {
	l := C(context.Background())
	if l == nil {
		t.Fatalf("C must fall back to the root logger")
	}
}

func TestNamed(t *testing.T) {
	Named("classify").Info().Msg("named line")
	testkit.MustContain(t, testBuf.String(), `"component":"classify"`)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"WARNING": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"panic":   zerolog.PanicLevel,
		"bogus":   zerolog.DebugLevel,
		"":        zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "capture")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "3")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "capture" {
		t.Fatalf("unexpected options: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 3 {
		t.Fatalf("unexpected options: %+v", opt)
	}
}
