// Package reflection asks a language model for a short, non-judgmental
// narrative about a completed score profile.
package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/mai/internal/llm"
	"github.com/abhisek/mai/internal/scoring"
)

// Reflection is the generated narrative.
type Reflection struct {
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growth_areas"`
}

// Input describes the completed profile.
type Input struct {
	// Title of the inventory, e.g. "Metacognitive Awareness Inventory".
	Title  string
	Scores []scoring.Entry
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation settings used by the app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.4,
	}
}

// Service generates reflections.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a reflection service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Reflect generates a reflection for in. It fails if the profile is empty.
func (s *Service) Reflect(ctx context.Context, in Input) (*Reflection, error) {
	if len(in.Scores) == 0 {
		return nil, errors.New("reflection needs at least one category score")
	}

	ctx = llm.WithPurpose(ctx, "reflection")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(in),
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("reflection generation: %w", err)
	}

	var out Reflection
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reflection response: %w", err)
	}
	return &out, nil
}
