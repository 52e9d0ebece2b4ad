package term

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Atom is a symbolic constant.
type Atom string

func (a Atom) String() string {
	var buf bytes.Buffer
	_ = a.WriteTerm(&buf, nil)
	return buf.String()
}

var unquotedAtomPattern = regexp.MustCompile(`\A[a-z][a-zA-Z0-9_]*\z`)

var quotedAtomEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\t", `\t`)

// WriteTerm writes the atom into w. Atoms which can't be read back as a plain name are quoted.
func (a Atom) WriteTerm(w io.Writer, _ *Substitution) error {
	if unquotedAtomPattern.MatchString(string(a)) {
		_, err := io.WriteString(w, string(a))
		return err
	}
	_, err := fmt.Fprintf(w, "'%s'", quotedAtomEscaper.Replace(string(a)))
	return err
}

// Apply returns a Compound which Functor is the Atom and Args are the arguments. If the arguments are empty,
// then returns itself.
func (a Atom) Apply(args ...Term) Term {
	if len(args) == 0 {
		return a
	}
	return &Compound{
		Functor: a,
		Args:    args,
	}
}
