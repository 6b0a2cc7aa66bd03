package reflection

import (
	"fmt"
	"strings"

	"github.com/abhisek/mai/internal/llm"
)

const systemPrompt = `You help people reflect on their answers to a self-report questionnaire about how they think about their own learning. Responses are self-descriptions, not test answers: nothing is correct or incorrect, and a low count is not a failure. Write in a warm, plain, second-person voice. Do not diagnose, grade or rank the person.`

func buildPrompt(in Input) string {
	var b strings.Builder

	title := in.Title
	if title == "" {
		title = "Self-report inventory"
	}
	fmt.Fprintf(&b, "Inventory: %s\n\n", title)
	b.WriteString("Statements endorsed per category (endorsed / statements in category):\n")
	for _, e := range in.Scores {
		fmt.Fprintf(&b, "- %s: %d / %d (%.0f%%)\n", e.Label, e.Score, e.Total, e.Percent())
	}

	b.WriteString(`
Instructions:
1. Summarize the overall pattern in 2-4 sentences.
2. List 1-3 strengths: categories where the person described many of these habits.
3. List 1-3 growth areas: categories with fewer endorsed statements, each phrased as a concrete habit they could try.
4. Refer to categories by their names above. Do not invent categories or numbers.`)

	return b.String()
}

// Schema is the JSON schema the model reply must satisfy.
var Schema = &llm.Schema{
	Name:        "reflection",
	Description: "Short reflection on a self-report score profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence overview of the profile",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 short strengths",
			},
			"growth_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 habits to try",
			},
		},
		"required":             []any{"summary", "strengths", "growth_areas"},
		"additionalProperties": false,
	},
}
