package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClause_Rename(t *testing.T) {
	x, y, l, r := Variable("X"), Variable("Y"), Variable("L"), Variable("R")
	list := Atom("list")
	c := Rule(
		Atom("append").Apply(list.Apply(x, y), l, list.Apply(x, r)).(*Compound),
		Atom("append").Apply(y, l, r),
	)

	var a Allocator
	c1 := c.Rename(&a)
	c2 := c.Rename(&a)

	assert.Equal(t, Rule(
		Atom("append").Apply(list.Apply(Variable("_1"), Variable("_2")), Variable("_3"), list.Apply(Variable("_1"), Variable("_4"))).(*Compound),
		Atom("append").Apply(Variable("_2"), Variable("_3"), Variable("_4")),
	), c1)

	for _, v := range Variables(c2.Head) {
		assert.NotContains(t, Variables(append([]Term{c1.Head}, c1.Body...)...), v)
	}

	// the original is intact.
	assert.Equal(t, []Variable{x, y, l, r}, Variables(c.Head))
}

func TestClause_PI(t *testing.T) {
	c := Fact(Atom("color").Apply(Atom("red")).(*Compound))
	assert.Equal(t, ProcedureIndicator{Name: "color", Arity: 1}, c.PI())
}

func TestClause_String(t *testing.T) {
	assert.Equal(t, "color(red).", Fact(Atom("color").Apply(Atom("red")).(*Compound)).String())
	assert.Equal(t, "nat(s(X)) :- nat(X).", Rule(
		Atom("nat").Apply(Atom("s").Apply(Variable("X"))).(*Compound),
		Atom("nat").Apply(Variable("X")),
	).String())
	assert.Equal(t, "p(X) :- q(X), r(X).", Rule(
		Atom("p").Apply(Variable("X")).(*Compound),
		Atom("q").Apply(Variable("X")),
		Atom("r").Apply(Variable("X")),
	).String())
}
