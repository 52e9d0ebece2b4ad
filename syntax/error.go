package syntax

import (
	"fmt"
	"strconv"
)

// LexError is an error that signifies text which can't be turned into tokens.
type LexError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("expected %s at position %d, found %s", e.Expected, e.Pos, e.Found)
}

func unexpectedRune(pos int, expected string, r rune) *LexError {
	found := "end of input"
	if r != etx {
		found = strconv.QuoteRune(r)
	}
	return &LexError{Pos: pos, Expected: expected, Found: found}
}

// ParseError is an error that signifies tokens which don't form a clause or a query.
type ParseError struct {
	Expected string
	Found    Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at position %d, found %s", e.Expected, e.Found.Pos, e.Found.describe())
}
