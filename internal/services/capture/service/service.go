// Package service implements the capture service
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"later/internal/core/classify"
	"later/internal/core/duedate"
	"later/internal/core/listparse"
	"later/internal/core/normalize"
	"later/internal/core/rulepack"
	perr "later/internal/platform/errors"
	"later/internal/platform/logger"
	"later/internal/platform/scope"
	str "later/internal/platform/strings"
	ptime "later/internal/platform/time"
	"later/internal/services/capture/domain"
)

// nowFn is a seam for tests
var nowFn = time.Now

// Config for the capture service
type Config struct {
	Version       int
	Workers       int
	MinConfidence float64
	TitleRunes    int
}

// Service implements domain.AnalyzerPort
type Service struct {
	Det   *classify.Detector
	Due   *duedate.Extractor
	Lists *listparse.Parser
	Cfg   Config
}

// New constructs a capture service over a compiled rule pack
func New(rp *rulepack.Pack, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.TitleRunes <= 0 {
		cfg.TitleRunes = 80
	}
	return &Service{
		Det:   classify.New(rp, cfg.Version),
		Due:   duedate.New(rp),
		Lists: listparse.New(rp),
		Cfg:   cfg,
	}
}

// Analyze classifies one capture, stamps it with an id, and runs the
// extractors. Empty input is not an error: it yields a note detection with
// confidence 0.5, which callers should treat as "ask the user"
func (s *Service) Analyze(ctx context.Context, text string) (domain.Detection, error) {
	if err := ctx.Err(); err != nil {
		return domain.Detection{}, perr.Wrap(err, perr.ErrorCodeCanceled, "capture analyze")
	}

	d := domain.Detection{
		ID:              uuid.NewString(),
		DetectorVersion: s.Det.Version(),
		CapturedAt:      nowFn().UTC(),
	}
	ctx = scope.With(ctx, map[string]string{scope.KeyCaptureID: d.ID})

	d.Type = s.Det.Detect(text)
	d.Confidence = s.Det.Confidence(text, d.Type)
	d.Confident = d.Confidence >= s.Cfg.MinConfidence
	d.Scores = s.Det.Score(text)
	d.Title = str.TruncateRunes(str.FirstLine(normalize.Sanitize(text)), s.Cfg.TitleRunes)

	// the extractors run regardless of the detected type; the caller decides
	// which parts of the detection to act on. CapturedAt is the due reference
	// so one capture resolves against one instant
	if due, ok := s.Due.ExtractAt(text, d.CapturedAt); ok {
		d.DueAt = ptime.Ptr(due)
	}
	d.Items = s.Lists.Items(text)

	logger.C(ctx).Debug().
		Str("type", string(d.Type)).
		Float64("confidence", d.Confidence).
		Int("items", len(d.Items)).
		Msg("capture analyzed")

	return d, nil
}

// AnalyzeBatch processes texts with a bounded worker pool, preserving order
func (s *Service) AnalyzeBatch(ctx context.Context, texts []string) ([]domain.Detection, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	ctx = scope.With(ctx, map[string]string{scope.KeyBatchID: uuid.NewString()})

	out := make([]domain.Detection, len(texts))
	errs := make([]error, len(texts))

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}
	for i := range texts {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			out[i], errs[i] = s.Analyze(ctx, texts[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
