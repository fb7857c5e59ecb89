package shopkeep

import "fmt"

// SourceReadError reports an input that could not be read or parsed as a table.
type SourceReadError struct {
	Source string
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// RecordError locates a bad value in an input. Line is 0 when the problem is
// the header itself, such as a missing required column.
type RecordError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: column %q: %v", e.Source, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %q: %v", e.Source, e.Line, e.Column, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
