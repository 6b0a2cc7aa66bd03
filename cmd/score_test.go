package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mai/internal/answers"
	"github.com/abhisek/mai/internal/config"
	"github.com/abhisek/mai/internal/inventory"
	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/session"
	"github.com/abhisek/mai/internal/store"
)

func mustParse(t *testing.T, s string) answers.Set {
	t.Helper()
	set, err := answers.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return set
}

func TestRunSession(t *testing.T) {
	inv := inventory.Default()

	for _, perPage := range []int{1, 2, 10} {
		st, err := runSession(inv, perPage, mustParse(t, "TFT"))
		if err != nil {
			t.Fatalf("perPage=%d: %v", perPage, err)
		}
		if !st.Finished() {
			t.Errorf("perPage=%d: session should be submitted", perPage)
		}
		if got := st.Snapshot().Answers.String(); got != "TFT" {
			t.Errorf("perPage=%d: answers = %q", perPage, got)
		}
	}
}

func TestRunSession_Incomplete(t *testing.T) {
	inv := inventory.Default()

	_, err := runSession(inv, 2, mustParse(t, "T-T"))
	if !errors.Is(err, session.ErrPageIncomplete) {
		t.Fatalf("expected ErrPageIncomplete, got %v", err)
	}
	if !strings.Contains(err.Error(), "[2]") {
		t.Errorf("error should name statement 2: %v", err)
	}

	_, err = runSession(inv, 10, mustParse(t, "TT-"))
	if !errors.Is(err, session.ErrPageIncomplete) {
		t.Fatalf("expected ErrPageIncomplete on the single page, got %v", err)
	}
}

func TestRunSession_WrongLength(t *testing.T) {
	if _, err := runSession(inventory.Default(), 10, mustParse(t, "TF")); err == nil {
		t.Error("expected an error for too few answers")
	}
}

func TestRender(t *testing.T) {
	res := store.Result{
		SessionID:   "s1",
		Inventory:   "MAI",
		Answers:     "TFT",
		CompletedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Scores: []scoring.Entry{
			{Label: "Knowledge about Cognition", Score: 1, Total: 1},
			{Label: "Procedural Knowledge", Score: 0, Total: 1},
		},
	}

	csv, err := render("csv", res)
	if err != nil {
		t.Fatal(err)
	}
	want := "Category,Score,Total\nKnowledge about Cognition,1,1\nProcedural Knowledge,0,1\n"
	if string(csv) != want {
		t.Errorf("csv = %q, want %q", csv, want)
	}

	js, err := render("json", res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(js), `"session_id": "s1"`) {
		t.Errorf("json missing session id:\n%s", js)
	}
}

func TestApplyFlags(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("db", "", "")
	c.Flags().String("inventory", "", "")
	c.Flags().Int("per-page", 0, "")
	c.Flags().String("export-dir", "", "")
	if err := c.Flags().Parse([]string{"--per-page", "5", "--export-dir", "/tmp/out"}); err != nil {
		t.Fatal(err)
	}

	got := &config.Config{DB: "from-config.db", PerPage: 10, ExportDir: "."}
	applyFlags(c, got)

	if got.PerPage != 5 || got.ExportDir != "/tmp/out" {
		t.Errorf("flags not applied: %+v", got)
	}
	if got.DB != "from-config.db" {
		t.Errorf("unset flag must not override config, DB = %q", got.DB)
	}
}

func TestAggregate(t *testing.T) {
	events := []store.LLMRequestEventRecord{
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "reflection", Model: "gpt-4o-mini", InputTokens: 10, OutputTokens: 5, LatencyMs: 100}},
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "reflection", Model: "gpt-4o-mini", InputTokens: 20, OutputTokens: 5, LatencyMs: 300}},
		{LLMRequestEventData: store.LLMRequestEventData{Purpose: "other", Model: "unknown-model", InputTokens: 1, OutputTokens: 1}},
	}

	byPurpose := aggregate(events, func(e store.LLMRequestEventRecord) string { return e.Purpose })
	if len(byPurpose) != 2 || byPurpose[0].key != "other" || byPurpose[1].key != "reflection" {
		t.Fatalf("unexpected grouping: %+v", byPurpose)
	}
	r := byPurpose[1]
	if r.calls != 2 || r.inputTokens != 30 || r.outputTokens != 10 || r.latencyMs != 400 {
		t.Errorf("unexpected totals: %+v", r)
	}

	var b strings.Builder
	writeUsage(&b, events)
	if !strings.Contains(b.String(), "TOTAL (partial)") || !strings.Contains(b.String(), "unknown-model") {
		t.Errorf("expected partial cost note:\n%s", b.String())
	}
}
