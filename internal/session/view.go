package session

import (
	"github.com/abhisek/mai/internal/answers"
	"github.com/abhisek/mai/internal/paginate"
)

// View is an immutable snapshot of a State. Every derived value (page
// window, completeness, scores) is computed from a View on demand.
type View struct {
	Answers    answers.Set
	Page       int
	PerPage    int
	TotalPages int
	Finished   bool
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() View {
	return View{
		Answers:    s.answers.Clone(),
		Page:       s.page,
		PerPage:    s.perPage,
		TotalPages: s.TotalPages(),
		Finished:   s.finished,
	}
}

// PageRange returns the question ids [start, end) on the current page.
func (v View) PageRange() (start, end int) {
	return paginate.Slice(v.Page, v.PerPage, len(v.Answers))
}

// PageComplete reports whether the current page is fully answered.
func (v View) PageComplete() bool {
	start, end := v.PageRange()
	return paginate.IsPageComplete(v.Answers, start, end)
}

// LastPage reports whether the current page is the final one.
func (v View) LastPage() bool {
	return v.Page >= v.TotalPages-1
}

// Controls holds the enabled/visible flags for the navigation widgets and
// the progress indicator value.
type Controls struct {
	BackDisabled   bool
	ShowNext       bool
	NextDisabled   bool
	ShowSubmit     bool
	SubmitDisabled bool

	// Progress is (page+1)/totalPages*100.
	Progress float64
}

// Controls derives the navigation widget state from the snapshot.
func (v View) Controls() Controls {
	last := v.LastPage()
	return Controls{
		BackDisabled:   v.Page == 0 || v.Finished,
		ShowNext:       !last,
		NextDisabled:   !v.PageComplete() || v.Finished,
		ShowSubmit:     last,
		SubmitDisabled: !v.Answers.AllSet() || v.Finished,
		Progress:       paginate.Progress(v.Page, v.TotalPages),
	}
}
