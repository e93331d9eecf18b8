package mapexpr

import (
	"fmt"

	"github.com/san-kum/mathsys/internal/dynamo"
)

// ParseError reports where an expression left the grammar.
type ParseError struct {
	Pos int // 1-based column
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mapexpr: col %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return dynamo.ErrUnsupportedExpression
}

func errorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
