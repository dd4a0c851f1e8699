// Package dispatch runs the per-request analysis pipeline: structural
// extraction, envelope assembly, oracle call, and normalization of every
// outcome into a single report shape. No state survives a request.
package dispatch

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"aaalens/internal/astdump"
	"aaalens/internal/envelope"
	"aaalens/internal/oracle"
)

// Report statuses. Exactly one applies per request.
const (
	StatusComplete    = "Analysis Complete"
	StatusSyntaxError = "Syntax Error"
	StatusFailed      = "Analysis Failed"
)

// syntaxErrorResult mirrors the oracle's error schema so a syntax error
// report has the same result shape as an oracle-side failure.
const syntaxErrorResult = "<analysis><error>Invalid Python Code</error></analysis>"

// Report is the normalized outcome returned to the caller: a status plus
// either the oracle's classification text or an error body.
type Report struct {
	Status string `json:"status"`
	Result string `json:"result"`
}

// Service wires the pipeline stages together. Safe for concurrent use:
// the oracle and its contract are read-only after construction, and
// Handle keeps everything else on the stack.
type Service struct {
	oracle oracle.Oracle
	log    *zap.Logger
}

// New creates a Service around the given oracle. A nil logger disables
// logging.
func New(o oracle.Oracle, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{oracle: o, log: log}
}

// Handle runs one snippet through the full pipeline and always returns a
// report; per-request failures degrade to a tagged report, never an
// error. The oracle is not invoked for input that fails extraction.
func (s *Service) Handle(ctx context.Context, code string) Report {
	if strings.TrimSpace(code) == "" {
		s.log.Debug("rejecting blank snippet")
		return Report{Status: StatusSyntaxError, Result: syntaxErrorResult}
	}

	dump, err := astdump.Dump(code)
	if err != nil {
		var perr *astdump.ParseError
		if errors.As(err, &perr) {
			s.log.Info("snippet failed to parse",
				zap.Int("line", perr.Line),
				zap.Int("column", perr.Column))
			return Report{Status: StatusSyntaxError, Result: syntaxErrorResult}
		}
		s.log.Error("extractor failed", zap.Error(err))
		return Report{Status: StatusFailed, Result: "Error: " + err.Error()}
	}

	env := envelope.Build(code, dump)

	result, err := s.oracle.Analyze(ctx, env)
	if err != nil {
		s.log.Error("oracle call failed", zap.Error(err))
		return Report{Status: StatusFailed, Result: "Error: " + err.Error()}
	}

	s.log.Debug("analysis complete",
		zap.Int("snippet_bytes", len(code)),
		zap.Int("result_bytes", len(result)))
	return Report{Status: StatusComplete, Result: result}
}
