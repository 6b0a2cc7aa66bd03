package results

import "github.com/abhisek/mai/internal/reflection"

// archivedMsg reports the outcome of saving the result to the local archive.
type archivedMsg struct {
	ID  int
	Err error
}

// exportedMsg reports the outcome of an export.
type exportedMsg struct {
	Name string
	Path string
	Err  error
}

// reflectedMsg carries a generated reflection.
type reflectedMsg struct {
	Reflection *reflection.Reflection
	Err        error
}
