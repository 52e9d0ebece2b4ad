package term

import (
	"fmt"
	"io"
)

// Term is a logic value. It is one of Variable, Atom, Integer, or *Compound.
// Terms are immutable once constructed.
type Term interface {
	fmt.Stringer
	WriteTerm(w io.Writer, s *Substitution) error
	term()
}

func (Variable) term()  {}
func (Atom) term()      {}
func (Integer) term()   {}
func (*Compound) term() {}

// ProcedureIndicator identifies a functor symbol by its name and arity.
type ProcedureIndicator struct {
	Name  Atom
	Arity int
}

func (p ProcedureIndicator) String() string {
	return fmt.Sprintf("%s/%d", p.Name, p.Arity)
}

// PI returns the procedure indicator of t. Only compounds have one.
func PI(t Term) (ProcedureIndicator, bool) {
	c, ok := t.(*Compound)
	if !ok {
		return ProcedureIndicator{}, false
	}
	return ProcedureIndicator{Name: c.Functor, Arity: len(c.Args)}, true
}

// Contains checks if t contains s under the substitution.
func Contains(t, s Term, sub *Substitution) bool {
	switch t := sub.Resolve(t).(type) {
	case *Compound:
		for _, a := range t.Args {
			if Contains(a, s, sub) {
				return true
			}
		}
		return false
	default:
		return t == sub.Resolve(s)
	}
}
