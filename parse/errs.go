package parse

import "fmt"

// Error locates a parse failure in the line source. It wraps the underlying
// schema decode error, so errors.Is(err, schema.ErrParse) holds for malformed
// token lines.
type Error struct {
	Line int    // 1-based source line number
	Text string // the offending raw line
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
