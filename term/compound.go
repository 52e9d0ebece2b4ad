package term

import (
	"bytes"
	"io"
)

// Compound is a functor applied to an ordered list of arguments.
// The functor name and the number of arguments together identify the symbol.
type Compound struct {
	Functor Atom
	Args    []Term
}

func (c *Compound) String() string {
	var buf bytes.Buffer
	_ = c.WriteTerm(&buf, nil)
	return buf.String()
}

// WriteTerm writes the compound into w as name(arg, ...).
func (c *Compound) WriteTerm(w io.Writer, s *Substitution) error {
	if s != nil {
		return s.Apply(c).WriteTerm(w, nil)
	}
	if err := c.Functor.WriteTerm(w, nil); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	for i, arg := range c.Args {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := arg.WriteTerm(w, nil); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}
