package leaderboard

import "fmt"

// ParseError reports a leaderboard cell that could not be coerced to its
// column type. Row is the zero-based rank-order index of the offending row.
type ParseError struct {
	Row   int
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: field %q: cannot parse %q as a number", e.Row, e.Field, e.Value)
}

// StructuralError reports a token sequence that cannot be cut into
// well-formed row slices. Index is the position of the token that exposed
// the problem.
type StructuralError struct {
	Index  int
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("token %d: %s", e.Index, e.Reason)
}
