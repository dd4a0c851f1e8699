// Package oracle wraps the remote backend that performs the actual
// Arrange-Act-Assert classification. The pipeline treats it as an opaque
// capability: envelopes go in, analysis text comes out. Classification
// logic never lives in this process.
package oracle

import (
	"context"
	"errors"
)

// ErrNoAPIKey is returned when a remote oracle is constructed without a
// credential. Fatal at startup; the process must not serve without it.
var ErrNoAPIKey = errors.New("oracle: API key is required")

// Oracle submits one analysis envelope and returns the backend's raw
// response text. Implementations own failure normalization: remote
// adapters re-express transport and backend failures in the analysis
// output schema rather than propagating them, so a non-nil error is
// reserved for faults outside that normalization (the dispatch layer
// maps those to a generic failure report).
type Oracle interface {
	Analyze(ctx context.Context, envelope string) (string, error)
}
