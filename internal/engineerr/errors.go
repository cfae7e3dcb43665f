// Package engineerr defines the error kinds programmer-facing callers of
// the core must distinguish (§7 of the design: InvalidFEN is reported;
// NoMovesToUndo is a programmer error the engine does not recover from).
package engineerr

import "errors"

// ErrInvalidFEN is returned by FEN parsing on malformed input. Wrap with
// fmt.Errorf("%w: ...", ErrInvalidFEN, detail) to add the specific cause.
var ErrInvalidFEN = errors.New("invalid FEN")

// ErrNoMovesToUndo is raised when UndoMove is called on an empty undo
// stack. This indicates a make/undo imbalance in the caller and is a
// programmer error, not a recoverable condition.
var ErrNoMovesToUndo = errors.New("no moves to undo")

// ErrSearchBusy is raised by StartSearch if a search is already running
// and the caller did not wait for it to finish first.
var ErrSearchBusy = errors.New("search already in progress")
