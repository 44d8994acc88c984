package domain

import "context"

// AnalyzerPort is the external port for the capture module
type AnalyzerPort interface {
	// Analyze classifies one capture and runs the auxiliary extractors
	Analyze(ctx context.Context, text string) (Detection, error)

	// AnalyzeBatch processes each text independently, preserving input order
	AnalyzeBatch(ctx context.Context, texts []string) ([]Detection, error)
}
