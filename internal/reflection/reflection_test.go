package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mai/internal/llm"
	"github.com/abhisek/mai/internal/scoring"
)

func demoInput() Input {
	return Input{
		Title: "Metacognitive Awareness Inventory",
		Scores: []scoring.Entry{
			{Label: "Knowledge about Cognition", Score: 1, Total: 1},
			{Label: "Procedural Knowledge", Score: 0, Total: 1},
		},
	}
}

func TestService_Reflect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"summary": "You know a lot about how you learn.",
		"strengths": ["Knowledge about Cognition"],
		"growth_areas": ["Try naming the strategy before you start."]
	}`)})
	svc := NewService(mock, DefaultConfig())

	r, err := svc.Reflect(context.Background(), demoInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Summary == "" || len(r.Strengths) != 1 || len(r.GrowthAreas) != 1 {
		t.Fatalf("reflection = %+v", r)
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	req := calls[0]
	if req.Schema != Schema {
		t.Error("request should carry the reflection schema")
	}
	for _, want := range []string{"Metacognitive Awareness Inventory", "Knowledge about Cognition: 1 / 1 (100%)", "Procedural Knowledge: 0 / 1 (0%)"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
}

func TestService_ReflectRejectsSchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":"only"}`)})
	_, err := NewService(mock, DefaultConfig()).Reflect(context.Background(), demoInput())

	var inv *llm.InvalidResponseError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestService_ReflectPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.UnavailableError{}})
	_, err := NewService(mock, DefaultConfig()).Reflect(context.Background(), demoInput())
	var unavail *llm.UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}

func TestService_ReflectEmptyProfile(t *testing.T) {
	mock := llm.NewMockProvider()
	if _, err := NewService(mock, DefaultConfig()).Reflect(context.Background(), Input{}); err == nil {
		t.Fatal("expected error for empty profile")
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called for an empty profile")
	}
}
