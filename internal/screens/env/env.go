// Package env holds the collaborators shared by the TUI screens.
package env

import (
	"log/slog"

	"github.com/abhisek/mai/internal/export"
	"github.com/abhisek/mai/internal/inventory"
	"github.com/abhisek/mai/internal/reflection"
	"github.com/abhisek/mai/internal/store"
)

// Env is built once at startup and passed to every screen constructor.
// Optional collaborators may be nil; screens hide the features they back.
type Env struct {
	Inventory *inventory.Inventory

	// PerPage overrides the inventory page size when positive.
	PerPage int

	Results   store.ResultRepo    // archive of submitted sessions
	Events    store.EventRepo     // session event log
	Saver     export.Saver        // export file sink
	Reflector *reflection.Service // LLM reflection

	Logger *slog.Logger
}

// PageSize returns the effective number of questions per page.
func (e *Env) PageSize() int {
	if e.PerPage > 0 {
		return e.PerPage
	}
	return e.Inventory.PerPage
}

// Log returns the configured logger or the process default.
func (e *Env) Log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
