package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/mai/internal/scoring"
)

// Report is the JSON export of a completed session.
type Report struct {
	Inventory   string          `json:"inventory"`
	SessionID   string          `json:"session_id"`
	CompletedAt time.Time       `json:"completed_at"`
	Answers     string          `json:"answers"`
	Scores      []scoring.Entry `json:"scores"`
}

// JSON renders the report as indented JSON with a trailing newline.
func JSON(r Report) ([]byte, error) {
	if r.Scores == nil {
		r.Scores = []scoring.Entry{}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

// Filename returns the download name for an export, e.g. "MAI_scores.csv".
func Filename(inventoryName, ext string) string {
	return inventoryName + "_scores." + ext
}
