package main

import (
	"context"

	"aaalens/internal/config"
	"aaalens/internal/dispatch"
	"aaalens/internal/oracle"
)

// newService assembles the full pipeline from configuration. A missing
// credential fails here, before anything serves.
func newService(ctx context.Context) (*config.Config, *dispatch.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	timeout, err := cfg.OracleTimeout()
	if err != nil {
		return nil, nil, err
	}

	gem, err := oracle.NewGemini(ctx, oracle.GeminiConfig{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: timeout,
	}, oracle.DefaultContract())
	if err != nil {
		return nil, nil, err
	}

	return cfg, dispatch.New(gem, logger), nil
}
