package parsette

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError is the one error kind a parse surfaces: the furthest position
// reached, what was found there, and the union of everything that would have
// been acceptable instead.
type ParseError struct {
	Pos        int
	Unexpected string
	AtEOF      bool
	Expected   []string
}

func newParseError(m Message) *ParseError {
	return &ParseError{
		Pos:        m.Pos,
		Unexpected: m.Unexpected,
		AtEOF:      m.AtEOF,
		Expected:   m.Expected,
	}
}

// Error returns a human readable error string.
func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "at position %d", e.Pos)

	switch {
	case e.AtEOF:
		sb.WriteString(": unexpected end of input")
	case e.Unexpected != "":
		fmt.Fprintf(&sb, ": unexpected %s", e.Unexpected)
	}

	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&sb, ", expected %s", e.Expected[0])
	default:
		fmt.Fprintf(&sb, ", expected one of %s", strings.Join(e.Expected, ", "))
	}

	return sb.String()
}

// renderSymbol turns a symbol into the form it takes inside messages:
// characters and strings are quoted, everything else printed as-is.
func renderSymbol[S any](sym S) string {
	switch v := any(sym).(type) {
	case rune:
		return strconv.QuoteRune(v)
	case byte:
		return strconv.QuoteRune(rune(v))
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
