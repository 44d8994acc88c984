package module

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"later/internal/core/classify"
	"later/internal/modkit"
	modreg "later/internal/modkit/module"
	"later/internal/platform/config"
	"later/internal/platform/testkit"
	"later/internal/services/capture/domain"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("CAPTURE_WORKERS", "8")
	t.Setenv("CAPTURE_MIN_CONFIDENCE", "0.7")
	o := FromConfig(config.New())
	if o.Workers != 8 {
		t.Fatalf("workers = %d, want 8", o.Workers)
	}
	if o.MinConfidence != 0.7 {
		t.Fatalf("min confidence = %v, want 0.7", o.MinConfidence)
	}
	if o.Version != 1 || o.TitleRunes != 80 {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}

func TestNewExposesAnalyzer(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New()}, Options{Workers: 1})
	if m.Name() != "capture" {
		t.Fatalf("name = %q", m.Name())
	}
	a := modreg.MustPortsOf[domain.AnalyzerPort](m)

	d, err := a.Analyze(context.Background(), "Call dentist tomorrow at 3pm")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if d.Type != classify.TypeTask {
		t.Fatalf("type = %q, want task", d.Type)
	}
}

func TestOverridesWinOverEnv(t *testing.T) {
	t.Setenv("CAPTURE_VERSION", "4")
	m := New(modkit.Deps{Cfg: config.New()}, Options{Version: 9})
	a := modreg.MustPortsOf[domain.AnalyzerPort](m)
	d, err := a.Analyze(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if d.DetectorVersion != 9 {
		t.Fatalf("detector version = %d, want override 9", d.DetectorVersion)
	}
}

// Module wiring reports through the injected logger, not the global one
func TestNewLogsThroughDeps(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	New(modkit.Deps{Log: log, Cfg: config.New()}, Options{Workers: 3})
	testkit.MustContain(t, buf.String(), "capture module ready")
	testkit.MustContain(t, buf.String(), `"workers":3`)
}

func TestNewRejectsInjectedPorts(t *testing.T) {
	testkit.MustPanic(t, func() {
		New(modkit.Deps{Cfg: config.New()}, Options{}, modkit.WithPorts(struct{}{}))
	})
}
