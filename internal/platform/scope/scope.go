// Package scope provides a way to manage context-scoped values
package scope

import "context"

// Well-known scope keys used across the capture pipeline
const (
	// KeyCaptureID tags log lines and results belonging to one capture
	KeyCaptureID = "capture_id"
	// KeyBatchID tags all captures processed by one batch invocation
	KeyBatchID = "batch_id"
)

// Scope holds cross boundary attributes
type Scope struct {
	Values map[string]string
}

type key struct{}

// With returns a child context whose scope is a copy of the parent's with kv
// merged in. Stored maps are never mutated, so sibling contexts derived from
// one parent are safe to use concurrently
func With(ctx context.Context, kv map[string]string) context.Context {
	parent := From(ctx)
	s := Scope{Values: make(map[string]string, len(parent.Values)+len(kv))}
	for k, v := range parent.Values {
		s.Values[k] = v
	}
	for k, v := range kv {
		s.Values[k] = v
	}
	return context.WithValue(ctx, key{}, s)
}

// Get returns a value and a boolean
func Get(ctx context.Context, k string) (string, bool) {
	s := From(ctx)
	v, ok := s.Values[k]
	return v, ok
}

// From returns scope on ctx or an empty one
func From(ctx context.Context) Scope {
	v := ctx.Value(key{})
	if v == nil {
		return Scope{Values: make(map[string]string)}
	}
	s, _ := v.(Scope)
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	return s
}
