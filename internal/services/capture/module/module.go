// Package module implements the capture module
package module

import (
	"later/internal/core/rulepack"
	"later/internal/modkit"
	"later/internal/services/capture/domain"
	"later/internal/services/capture/service"
)

// Ports exposed by the capture module
type Ports struct {
	Analyzer domain.AnalyzerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new capture module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("capture"),
	}, opts...)...)

	// Basic guardrail against incorrect wiring
	if b.Ports != nil {
		panic("capture module: takes no injected ports")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.Version != 0 {
		cfg.Version = overrides.Version
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.MinConfidence != 0 {
		cfg.MinConfidence = overrides.MinConfidence
	}
	if overrides.TitleRunes != 0 {
		cfg.TitleRunes = overrides.TitleRunes
	}

	// Shared rulepack for the analyzer
	rp, err := rulepack.Load()
	if err != nil {
		panic(err)
	}

	svc := service.New(rp, service.Config{
		Version:       cfg.Version,
		Workers:       cfg.Workers,
		MinConfidence: cfg.MinConfidence,
		TitleRunes:    cfg.TitleRunes,
	})

	deps.Log.Debug().
		Int("version", cfg.Version).
		Int("workers", cfg.Workers).
		Float64("min_confidence", cfg.MinConfidence).
		Msg("capture module ready")

	m := &Module{deps: deps}
	m.ports = Ports{Analyzer: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "capture" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
