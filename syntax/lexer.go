package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Lexer turns runes into tokens.
type Lexer struct {
	input  io.RuneScanner
	tokens []Token
	pos    int
	start  int
	buf    strings.Builder
}

// NewLexer creates a lexer reading from input.
func NewLexer(input io.RuneScanner) *Lexer {
	return &Lexer{input: input}
}

// Tokenize turns text into tokens. The last token is always of TokenEOS.
func Tokenize(text string) ([]Token, error) {
	return ReadTokens(strings.NewReader(text))
}

// ReadTokens reads r to the end and turns it into tokens. The last token is always of TokenEOS.
func ReadTokens(r io.Reader) ([]Token, error) {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	l := NewLexer(rs)
	var ts []Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
		if t.Kind == TokenEOS {
			return ts, nil
		}
	}
}

// Next returns the next token. Once the input is exhausted, it keeps returning a token of TokenEOS.
func (l *Lexer) Next() (Token, error) {
	state := l.init
	for len(l.tokens) == 0 {
		r, err := l.next()
		if err != nil {
			return Token{}, err
		}
		state, err = state(r)
		if err != nil {
			return Token{}, err
		}
	}

	var t Token
	t, l.tokens = l.tokens[0], l.tokens[1:]
	return t, nil
}

const etx = 0x2

func (l *Lexer) next() (rune, error) {
	r, _, err := l.input.ReadRune()
	switch err {
	case nil:
		l.pos++
		return r, nil
	case io.EOF:
		return etx, nil
	default:
		return 0, err
	}
}

// offset returns the position of r which has just been read.
func (l *Lexer) offset(r rune) int {
	if r == etx {
		return l.pos
	}
	return l.pos - 1
}

func (l *Lexer) backup(r rune) {
	if r == etx {
		return
	}
	_ = l.input.UnreadRune()
	l.pos--
}

func (l *Lexer) emit(k TokenKind, val string) {
	l.tokens = append(l.tokens, Token{Kind: k, Val: val, Pos: l.start})
}

type lexState func(rune) (lexState, error)

func (l *Lexer) init(r rune) (lexState, error) {
	l.start = l.pos - 1
	switch {
	case r == etx:
		l.start = l.pos
		l.emit(TokenEOS, "")
		return nil, nil
	case unicode.IsSpace(r):
		return l.init, nil
	case r == '%':
		return l.lineComment, nil
	case r == '/':
		return l.blockCommentBegin, nil
	case unicode.IsUpper(r):
		l.buf.Reset()
		_, _ = l.buf.WriteRune(r)
		return l.identifier(TokenVariable), nil
	case unicode.IsLower(r):
		l.buf.Reset()
		_, _ = l.buf.WriteRune(r)
		return l.identifier(TokenAtom), nil
	case isDigit(r):
		l.buf.Reset()
		_, _ = l.buf.WriteRune(r)
		return l.numeral, nil
	case r == '(':
		l.emit(TokenParenL, "(")
		return nil, nil
	case r == ')':
		l.emit(TokenParenR, ")")
		return nil, nil
	case r == ',':
		l.emit(TokenComma, ",")
		return nil, nil
	case r == '.':
		l.emit(TokenPeriod, ".")
		return nil, nil
	case r == ':':
		return l.neck, nil
	default:
		return nil, unexpectedRune(l.start, "a token", r)
	}
}

func (l *Lexer) identifier(k TokenKind) lexState {
	var state lexState
	state = func(r rune) (lexState, error) {
		if isAlnum(r) {
			_, _ = l.buf.WriteRune(r)
			return state, nil
		}
		l.backup(r)
		l.emit(k, l.buf.String())
		return nil, nil
	}
	return state
}

func (l *Lexer) numeral(r rune) (lexState, error) {
	if isDigit(r) {
		_, _ = l.buf.WriteRune(r)
		return l.numeral, nil
	}
	l.backup(r)
	l.emit(TokenInteger, l.buf.String())
	return nil, nil
}

func (l *Lexer) neck(r rune) (lexState, error) {
	if r != '-' {
		return nil, unexpectedRune(l.offset(r), `"-"`, r)
	}
	l.emit(TokenNeck, ":-")
	return nil, nil
}

func (l *Lexer) lineComment(r rune) (lexState, error) {
	switch r {
	case etx:
		l.backup(r)
		return l.init, nil
	case '\n':
		return l.init, nil
	default:
		return l.lineComment, nil
	}
}

func (l *Lexer) blockCommentBegin(r rune) (lexState, error) {
	if r != '*' {
		return nil, unexpectedRune(l.offset(r), `"*"`, r)
	}
	return l.blockComment, nil
}

func (l *Lexer) blockComment(r rune) (lexState, error) {
	switch r {
	case etx:
		return nil, unexpectedRune(l.pos, `"*/"`, r)
	case '*':
		return l.blockCommentEnd, nil
	default:
		return l.blockComment, nil
	}
}

func (l *Lexer) blockCommentEnd(r rune) (lexState, error) {
	switch r {
	case etx:
		return nil, unexpectedRune(l.pos, `"*/"`, r)
	case '/':
		return l.init, nil
	case '*':
		return l.blockCommentEnd, nil
	default:
		return l.blockComment, nil
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlnum(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
