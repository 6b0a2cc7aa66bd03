// Package scoring turns a completed answer set into per-category tallies.
package scoring

import (
	"github.com/abhisek/mai/internal/answers"
	"github.com/abhisek/mai/internal/inventory"
)

// Entry is the tally for one category.
type Entry struct {
	Label string `json:"label"`
	Score int    `json:"score"`
	Total int    `json:"total"`
}

// Compute returns one Entry per category, in category order. Score counts
// the members answered True; Total is the member count. Members outside the
// answer set are treated as unset.
func Compute(set answers.Set, categories []inventory.Category) []Entry {
	entries := make([]Entry, 0, len(categories))
	for _, c := range categories {
		e := Entry{Label: c.Label, Total: len(c.Members)}
		for _, id := range c.Members {
			if id >= 0 && id < len(set) && set[id] == answers.True {
				e.Score++
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// Totals sums score and total across entries.
func Totals(entries []Entry) (score, total int) {
	for _, e := range entries {
		score += e.Score
		total += e.Total
	}
	return score, total
}

// Percent returns the score as a percentage of total, or 0 when total is 0.
func (e Entry) Percent() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Score) / float64(e.Total) * 100
}
