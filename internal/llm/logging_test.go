package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mai/internal/store"
)

type recordingEvents struct {
	store.EventRepo
	llm []store.LLMRequestEventData
	err error
}

func (r *recordingEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.llm = append(r.llm, d)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	events := &recordingEvents{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 3, OutputTokens: 4},
	})
	p := WithLogging(mock, ProviderMock, events, nil)

	ctx := WithPurpose(context.Background(), "reflection")
	if _, err := p.Generate(ctx, Request{System: "sys", Prompt: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.llm) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.llm))
	}
	e := events.llm[0]
	if !e.Success || e.Purpose != "reflection" || e.Provider != "mock" {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 3 || e.OutputTokens != 4 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]\nsys") || !strings.Contains(e.RequestBody, "[user]\nhello") {
		t.Errorf("RequestBody = %q", e.RequestBody)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Errorf("ResponseBody = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailureAndPassesErrorThrough(t *testing.T) {
	events := &recordingEvents{}
	boom := errors.New("boom")
	p := WithLogging(NewMockProvider(MockResponse{Err: boom}), ProviderMock, events, nil)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(events.llm) != 1 || events.llm[0].Success || events.llm[0].ErrorMessage != "boom" {
		t.Fatalf("events = %+v", events.llm)
	}
}

func TestLogging_StoreFailureDoesNotFailRequest(t *testing.T) {
	events := &recordingEvents{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), ProviderMock, events, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogging_NilEventRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), ProviderMock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
