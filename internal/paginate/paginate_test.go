package paginate

import (
	"testing"

	"github.com/abhisek/mai/internal/answers"
)

func TestSlice(t *testing.T) {
	tests := []struct {
		page, perPage, total int
		wantStart, wantEnd   int
	}{
		{0, 10, 3, 0, 3},
		{0, 2, 5, 0, 2},
		{1, 2, 5, 2, 4},
		{2, 2, 5, 4, 5},
		{3, 2, 5, 5, 5},
		{0, 3, 0, 0, 0},
	}
	for _, tt := range tests {
		start, end := Slice(tt.page, tt.perPage, tt.total)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("Slice(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.perPage, tt.total, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestSlice_ExactCoverNoOverlap(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for perPage := 1; perPage <= 12; perPage++ {
			covered := make([]int, total)
			pages := TotalPages(total, perPage)
			for p := 0; p < pages; p++ {
				start, end := Slice(p, perPage, total)
				if end-start > perPage {
					t.Fatalf("total=%d perPage=%d page=%d: width %d exceeds perPage", total, perPage, p, end-start)
				}
				if end <= start {
					t.Fatalf("total=%d perPage=%d page=%d: empty page inside range", total, perPage, p)
				}
				for i := start; i < end; i++ {
					covered[i]++
				}
			}
			for i, c := range covered {
				if c != 1 {
					t.Fatalf("total=%d perPage=%d: question %d covered %d times", total, perPage, i, c)
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct{ total, perPage, want int }{
		{3, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{52, 10, 6},
		{0, 10, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestIsPageComplete(t *testing.T) {
	set := answers.Set{answers.True, answers.False, answers.Unset, answers.True}

	if !IsPageComplete(set, 0, 2) {
		t.Error("expected [0,2) complete")
	}
	if IsPageComplete(set, 0, 3) {
		t.Error("expected [0,3) incomplete")
	}
	if !IsPageComplete(set, 3, 4) {
		t.Error("expected [3,4) complete")
	}
	if !IsPageComplete(set, 2, 2) {
		t.Error("empty range should be complete")
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(0, 1); got != 100 {
		t.Errorf("Progress(0,1) = %v, want 100", got)
	}
	if got := Progress(0, 4); got != 25 {
		t.Errorf("Progress(0,4) = %v, want 25", got)
	}
	if got := Progress(0, 0); got != 0 {
		t.Errorf("Progress(0,0) = %v, want 0", got)
	}
}
