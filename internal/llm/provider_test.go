package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Prompt: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Prompt: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}

	calls := mock.Calls()
	if len(calls) != 2 || calls[0].Prompt != "first" || calls[1].Prompt != "second" {
		t.Fatalf("recorded calls = %+v", calls)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("expected UnavailableError, got: %T", err)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"summary":"s"}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: testSchema("mock-schema")})
	var inv *InvalidResponseError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidResponseError, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q, want unknown", got)
	}
	ctx := WithPurpose(context.Background(), "reflection")
	if got := PurposeFrom(ctx); got != "reflection" {
		t.Errorf("purpose = %q, want reflection", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: ProviderAnthropic, APIKey: "k"}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"mock without key", Config{Provider: ProviderMock}, false},
		{"unknown", Config{Provider: "acme", APIKey: "k"}, true},
		{"empty", Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range keyEnv {
		t.Setenv(k.env, "")
	}
}

func TestConfig_ResolveDiscoversKey(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, ok := Config{}.Resolve()
	if !ok {
		t.Fatal("expected a provider to be discovered")
	}
	if cfg.Provider != ProviderOpenAI || cfg.APIKey != "sk-test" {
		t.Fatalf("resolved %+v", cfg)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want provider default", cfg.Model)
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Timeout != 30*time.Second {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestConfig_ResolveExplicitProvider(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, ok := Config{Provider: ProviderGemini, Model: "gemini-pro"}.Resolve()
	if !ok {
		t.Fatal("expected ok")
	}
	if cfg.APIKey != "g-key" {
		t.Errorf("APIKey = %q, want the gemini key", cfg.APIKey)
	}
	if cfg.Model != "gemini-pro" {
		t.Errorf("Model = %q, want explicit model kept", cfg.Model)
	}
}

func TestConfig_ResolveNothingFound(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := (Config{}).Resolve(); ok {
		t.Fatal("expected no provider")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock, Retry: retryConfig(), Timeout: time.Second}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
	// The factory mock has no canned responses.
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock")
	}
}

func TestNewProvider_RejectsMissingKey(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: ProviderAnthropic}, nil, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestLookupCost(t *testing.T) {
	c, ok := LookupCost("gpt-4o-mini")
	if !ok {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Errorf("Cost = %v, want 0.75", got)
	}
	if _, ok := LookupCost("nope"); ok {
		t.Error("unexpected pricing for unknown model")
	}
}

func TestProviders_ExcludesMock(t *testing.T) {
	for _, p := range Providers() {
		if p == ProviderMock {
			t.Errorf("Providers() lists %q, which is only a test double", p)
		}
	}
	if len(Providers()) != 4 {
		t.Errorf("Providers() = %v, want 4 entries", Providers())
	}
}
