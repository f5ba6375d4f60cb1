package mada

import "fmt"

// MissingFieldError reports an analysis row without one of the required
// key:value fields, or a word marker without the raw word.
type MissingFieldError struct {
	Field string
	Text  string
	File  string
	Line  int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s:%d: missing field %q in %q", e.File, e.Line, e.Field, e.Text)
}

// MalformedReportError reports a record arriving in a state with no valid
// transition, e.g. a nested sentence start or an analysis row while no
// sentence is open.
type MalformedReportError struct {
	Kind LineKind
	Msg  string
	File string
	Line int
}

func (e *MalformedReportError) Error() string {
	if e.Kind == Ignorable {
		return fmt.Sprintf("%s:%d: malformed report: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: malformed report: %s (got %s)", e.File, e.Line, e.Msg, e.Kind)
}

// UnrecognizedMarkerError is only produced in strict mode, for lines that
// match no known report marker.
type UnrecognizedMarkerError struct {
	Text string
	File string
	Line int
}

func (e *UnrecognizedMarkerError) Error() string {
	return fmt.Sprintf("%s:%d: unrecognized line %q", e.File, e.Line, e.Text)
}
