package oracle

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 2 * time.Minute
)

// GeminiConfig holds configuration for the Gemini-backed oracle.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Gemini classifies envelopes via the Google Gemini API. The analysis
// contract is bound once at construction as the system instruction and
// reused verbatim on every call. Safe for concurrent use: nothing is
// mutated after construction.
type Gemini struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	contract Contract
}

// NewGemini creates a Gemini oracle. Returns ErrNoAPIKey when the
// credential is absent; callers treat that as fatal at startup.
func NewGemini(ctx context.Context, cfg GeminiConfig, contract Contract) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{
		client:   client,
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		contract: contract,
	}, nil
}

// Model returns the configured model name.
func (g *Gemini) Model() string { return g.model }

// Contract returns the bound analysis contract.
func (g *Gemini) Contract() Contract { return g.contract }

// Analyze submits one envelope as a single synchronous call. Transport
// and backend failures are not propagated: they come back as error text
// in the analysis output schema, so the caller sees the same shape
// either way. No retry, no backoff; a failure surfaces immediately.
func (g *Gemini) Analyze(ctx context.Context, env string) (string, error) {
	// Apply the configured timeout only when the caller imposed none.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(env, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.contract.Instructions(), genai.RoleUser),
	})
	if err != nil {
		return failureText(err), nil
	}

	text := resp.Text()
	if text == "" {
		return failureText(fmt.Errorf("empty response from model %s", g.model)), nil
	}
	return text, nil
}

// failureText re-expresses a failure in the oracle's own output schema,
// so downstream consumers never need a second error shape for
// oracle-layer faults.
func failureText(err error) string {
	return fmt.Sprintf("<analysis><error>Gemini API Failed: %v</error></analysis>", err)
}
