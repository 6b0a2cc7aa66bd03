package export

import "github.com/abhisek/mai/internal/scoring"

// ChartSeries feeds the results bar chart. Max is the fixed y-axis upper
// bound taken from the inventory, not derived from the data.
type ChartSeries struct {
	Labels []string
	Values []int
	Max    int
}

// ToChartSeries projects entries onto a chart with a fixed axis maximum.
func ToChartSeries(entries []scoring.Entry, max int) ChartSeries {
	cs := ChartSeries{
		Labels: make([]string, len(entries)),
		Values: make([]int, len(entries)),
		Max:    max,
	}
	for i, e := range entries {
		cs.Labels[i] = e.Label
		cs.Values[i] = e.Score
	}
	return cs
}
