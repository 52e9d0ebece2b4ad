package syntax

import (
	"io"
	"strings"

	"github.com/ichiban/horn/term"
)

// Parser turns tokens into clauses and queries.
//
//	Clause   ::= Fact | Rule
//	Fact     ::= Functor "."
//	Rule     ::= Functor ":-" Functor ("," Functor)* "."
//	Functor  ::= atom "(" [Arg ("," Arg)*] ")"
//	Arg      ::= variable | atom | integer | Functor
//	Query    ::= Functor ("," Functor)* "."
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser over tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse turns tokens into clauses.
func Parse(tokens []Token) ([]term.Clause, error) {
	p := NewParser(tokens)
	var cs []term.Clause
	for p.More() {
		c, err := p.Clause()
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// ParseQuery turns tokens into a conjunction of goals.
func ParseQuery(tokens []Token) ([]term.Term, error) {
	p := NewParser(tokens)
	goals, err := p.Query()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEOS, "end of input"); err != nil {
		return nil, err
	}
	return goals, nil
}

// ReadClauses reads r to the end and turns it into clauses.
func ReadClauses(r io.Reader) ([]term.Clause, error) {
	ts, err := ReadTokens(r)
	if err != nil {
		return nil, err
	}
	return Parse(ts)
}

// ReadQuery turns text into a conjunction of goals.
func ReadQuery(text string) ([]term.Term, error) {
	ts, err := ReadTokens(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return ParseQuery(ts)
}

// More checks if the parser has more tokens to read.
func (p *Parser) More() bool {
	return p.current().Kind != TokenEOS
}

// Clause parses a fact or a rule.
func (p *Parser) Clause() (term.Clause, error) {
	head, err := p.functor()
	if err != nil {
		return term.Clause{}, err
	}

	if p.accept(TokenPeriod) {
		return term.Fact(head), nil
	}

	if _, err := p.expect(TokenNeck, `":-" or "."`); err != nil {
		return term.Clause{}, err
	}

	body, err := p.goals()
	if err != nil {
		return term.Clause{}, err
	}
	return term.Rule(head, body...), nil
}

// Query parses goals separated by commas and followed by a period.
func (p *Parser) Query() ([]term.Term, error) {
	return p.goals()
}

func (p *Parser) goals() ([]term.Term, error) {
	var goals []term.Term
	for {
		g, err := p.functor()
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)

		if p.accept(TokenPeriod) {
			return goals, nil
		}

		if _, err := p.expect(TokenComma, `"," or "."`); err != nil {
			return nil, err
		}
	}
}

// functor parses a name followed by arguments. A numeral is a valid name and is kept as written.
func (p *Parser) functor() (*term.Compound, error) {
	name := p.current()
	if name.Kind != TokenAtom && name.Kind != TokenInteger {
		return nil, &ParseError{Expected: "name", Found: name}
	}
	p.pos++
	if _, err := p.expect(TokenParenL, `"("`); err != nil {
		return nil, err
	}
	return p.args(term.Atom(name.Val))
}

func (p *Parser) args(name term.Atom) (*term.Compound, error) {
	c := term.Compound{Functor: name}
	if p.accept(TokenParenR) {
		return &c, nil
	}
	for {
		a, err := p.arg()
		if err != nil {
			return nil, err
		}
		c.Args = append(c.Args, a)

		if p.accept(TokenParenR) {
			return &c, nil
		}

		if _, err := p.expect(TokenComma, `"," or ")"`); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) arg() (term.Term, error) {
	t := p.current()
	switch t.Kind {
	case TokenVariable:
		p.pos++
		return term.Variable(t.Val), nil
	case TokenInteger:
		p.pos++
		if p.accept(TokenParenL) {
			return p.args(term.Atom(t.Val))
		}
		i, err := term.NewInteger(t.Val)
		if err != nil {
			return nil, &ParseError{Expected: "integer", Found: t}
		}
		return i, nil
	case TokenAtom:
		p.pos++
		if p.accept(TokenParenL) {
			return p.args(term.Atom(t.Val))
		}
		return term.Atom(t.Val), nil
	default:
		return nil, &ParseError{Expected: "variable, atom, or integer", Found: t}
	}
}

func (p *Parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	var pos int
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		pos = last.Pos + len([]rune(last.Val))
	}
	return Token{Kind: TokenEOS, Pos: pos}
}

func (p *Parser) accept(k TokenKind) bool {
	if p.current().Kind != k {
		return false
	}
	p.pos++
	return true
}

func (p *Parser) expect(k TokenKind, expected string) (Token, error) {
	t := p.current()
	if t.Kind != k {
		return Token{}, &ParseError{Expected: expected, Found: t}
	}
	if k != TokenEOS {
		p.pos++
	}
	return t, nil
}
