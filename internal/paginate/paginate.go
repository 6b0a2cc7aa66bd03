// Package paginate computes page windows over the question bank.
// All functions are pure.
package paginate

import "github.com/abhisek/mai/internal/answers"

// Slice returns the half-open range [start, end) of question ids shown on page.
// Pages past the end yield an empty range at total.
func Slice(page, perPage, total int) (start, end int) {
	start = page * perPage
	if start > total {
		start = total
	}
	if start < 0 {
		start = 0
	}
	end = min(start+perPage, total)
	if end < start {
		end = start
	}
	return start, end
}

// TotalPages returns ceil(total / perPage), or 0 when perPage is not positive.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// IsPageComplete reports whether every slot in [start, end) is set.
func IsPageComplete(set answers.Set, start, end int) bool {
	for i := start; i < end; i++ {
		if !set.IsSet(i) {
			return false
		}
	}
	return true
}

// Progress returns the completion percentage shown by the progress
// indicator: (page+1) / totalPages * 100.
func Progress(page, totalPages int) float64 {
	if totalPages <= 0 {
		return 0
	}
	return float64(page+1) / float64(totalPages) * 100
}
