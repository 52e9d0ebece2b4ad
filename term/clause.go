package term

import (
	"strings"
)

// Clause is a fact or a rule. A fact is a rule with an empty body.
type Clause struct {
	Head *Compound
	Body []Term
}

// Fact returns a clause with an empty body.
func Fact(head *Compound) Clause {
	return Clause{Head: head}
}

// Rule returns a clause which holds if all the goals in body hold.
func Rule(head *Compound, body ...Term) Clause {
	return Clause{Head: head, Body: body}
}

// PI returns the procedure indicator of the head.
func (c Clause) PI() ProcedureIndicator {
	return ProcedureIndicator{Name: c.Head.Functor, Arity: len(c.Head.Args)}
}

// Rename returns a copy of the clause with fresh variables from a.
// The head and the body share one renaming.
func (c Clause) Rename(a *Allocator) Clause {
	r := renamer{alloc: a}
	ret := Clause{Head: r.compound(c.Head)}
	if len(c.Body) > 0 {
		ret.Body = make([]Term, len(c.Body))
		for i, g := range c.Body {
			ret.Body[i] = r.rename(g)
		}
	}
	return ret
}

func (c Clause) String() string {
	var sb strings.Builder
	_, _ = sb.WriteString(c.Head.String())
	for i, g := range c.Body {
		if i == 0 {
			_, _ = sb.WriteString(" :- ")
		} else {
			_, _ = sb.WriteString(", ")
		}
		_, _ = sb.WriteString(g.String())
	}
	_, _ = sb.WriteString(".")
	return sb.String()
}
