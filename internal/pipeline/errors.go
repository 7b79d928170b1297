package pipeline

import (
	"fmt"
)

// Kind classifies a pipeline failure. A Kind is itself an error so callers
// can match with errors.Is(err, pipeline.MissingHeader).
type Kind int

const (
	Unexpected Kind = iota
	FileNotFound
	MissingHeader
	MissingColumns
	MalformedRow
)

var kindNames = map[Kind]string{
	Unexpected:     "unexpected",
	FileNotFound:   "file not found",
	MissingHeader:  "missing header",
	MissingColumns: "missing columns",
	MalformedRow:   "malformed row",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error implements the error interface for Kind.
func (k Kind) Error() string {
	return k.String()
}

// Error is the error returned by Run. Its message is the single-line
// diagnostic shown to the operator.
type Error struct {
	Kind    Kind
	Path    string
	Missing []string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("File not found: %s", e.Path)
	case MissingHeader:
		return "CSV file missing header."
	case MissingColumns:
		return "Required columns missing in CSV header."
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a target Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
