package docgen

import (
	"errors"
	"fmt"

	"github.com/anixcopiadora/docgen/doctpl"
)

// Sentinel errors for document generation failures.
var (
	ErrUnknownTemplate = errors.New("docgen: unknown template")
	// ErrUnavailable is doctpl.ErrUnavailable, re-exported so callers need
	// not import doctpl to test for it.
	ErrUnavailable = doctpl.ErrUnavailable
	ErrRender      = errors.New("docgen: render failed")
)

// DocError is an error that occurred while producing a specific document.
type DocError struct {
	Op       string // operation name, e.g. "Render", "Preview"
	Template string // template id
	Err      error  // underlying error
}

func (e *DocError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("docgen.%s(%s): %v", e.Op, e.Template, e.Err)
	}
	return fmt.Sprintf("docgen.%s(%s): unknown error", e.Op, e.Template)
}

func (e *DocError) Unwrap() error {
	return e.Err
}

func newDocError(op, id string, err error) *DocError {
	return &DocError{Op: op, Template: id, Err: err}
}
