// Package ai abstracts text-generation backends behind a single interface.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"server-warden/internal/config"
)

const requestTimeout = 60 * time.Second

// Provider generates a text completion for a prompt.
type Provider interface {
	// Name identifies the backend in logs.
	Name() string
	// Generate returns the model's reply to prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the provider selected by the configuration.
func New(cfg *config.Config) (Provider, error) {
	switch strings.ToLower(cfg.AIProvider) {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		return NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case "pollinations":
		return NewPollinations(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}
