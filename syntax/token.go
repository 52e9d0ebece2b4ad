package syntax

import (
	"fmt"
	"strconv"
)

// Token is a smallest meaningful unit of a program.
type Token struct {
	Kind TokenKind
	Val  string
	Pos  int // rune offset of the first character
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %s>", t.Kind, t.Val)
}

// describe renders the token for error messages.
func (t Token) describe() string {
	if t.Kind == TokenEOS {
		return "end of input"
	}
	return fmt.Sprintf("%s %s", t.Kind, strconv.Quote(t.Val))
}

// TokenKind is a type of Token.
type TokenKind byte

const (
	// TokenEOS represents an end of token stream.
	TokenEOS TokenKind = iota

	// TokenVariable represents a variable token.
	TokenVariable

	// TokenInteger represents an integer token.
	TokenInteger

	// TokenAtom represents an atom token.
	TokenAtom

	// TokenComma represents a comma.
	TokenComma

	// TokenPeriod represents a period.
	TokenPeriod

	// TokenParenL represents an open parenthesis.
	TokenParenL

	// TokenParenR represents a close parenthesis.
	TokenParenR

	// TokenNeck represents :- which separates the head and the body of a rule.
	TokenNeck

	tokenLen
)

func (k TokenKind) String() string {
	return [tokenLen]string{
		TokenEOS:      "eos",
		TokenVariable: "variable",
		TokenInteger:  "integer",
		TokenAtom:     "atom",
		TokenComma:    "comma",
		TokenPeriod:   "period",
		TokenParenL:   "paren L",
		TokenParenR:   "paren R",
		TokenNeck:     "neck",
	}[k]
}
