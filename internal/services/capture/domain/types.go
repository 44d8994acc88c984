// Package domain defines the core types and interfaces for the capture service
package domain

import (
	"time"

	"later/internal/core/classify"
)

// Detection is the full analysis of one piece of captured text
type Detection struct {
	ID              string               `json:"id"` // uuid
	Type            classify.ContentType `json:"type"`
	Confidence      float64              `json:"confidence"`
	Confident       bool                 `json:"confident"` // confidence cleared the configured minimum
	Scores          classify.Scores      `json:"scores"`
	Title           string               `json:"title,omitempty"`
	DueAt           *time.Time           `json:"due_at,omitempty"`
	Items           []string             `json:"items,omitempty"`
	DetectorVersion int                  `json:"detector_version"`
	CapturedAt      time.Time            `json:"captured_at"`
}
