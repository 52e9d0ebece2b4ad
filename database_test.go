package horn

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ichiban/horn/syntax"
	"github.com/ichiban/horn/term"
)

func TestDatabase_Add(t *testing.T) {
	var db Database
	assert.NoError(t, db.Add(
		term.Fact(&term.Compound{Functor: "color", Args: []term.Term{term.Atom("red")}}),
		term.Fact(&term.Compound{Functor: "shape", Args: []term.Term{term.Atom("circle")}}),
		term.Fact(&term.Compound{Functor: "color", Args: []term.Term{term.Atom("blue")}}),
	))
	assert.Equal(t, 3, db.Len())

	t.Run("nil head", func(t *testing.T) {
		assert.Error(t, db.Add(
			term.Fact(&term.Compound{Functor: "color", Args: []term.Term{term.Atom("green")}}),
			term.Clause{},
		))
		assert.Equal(t, 3, db.Len())
	})
}

func TestDatabase_Candidates(t *testing.T) {
	db := database(t, `
color(red).
shape(circle).
color(blue).
color(X, Y).
`)

	tests := []struct {
		title string
		goal  term.Term
		heads []string
	}{
		{title: "insertion order", goal: &term.Compound{Functor: "color", Args: []term.Term{term.Variable("C")}}, heads: []string{
			"color(red)",
			"color(blue)",
		}},
		{title: "arity", goal: &term.Compound{Functor: "color", Args: []term.Term{term.Variable("C"), term.Variable("D")}}, heads: []string{
			"color(X, Y)",
		}},
		{title: "unknown", goal: &term.Compound{Functor: "ghost", Args: []term.Term{term.Variable("X")}}},
		{title: "atom", goal: term.Atom("color")},
		{title: "variable", goal: term.Variable("X")},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			var heads []string
			for _, c := range db.Candidates(tt.goal) {
				heads = append(heads, c.Head.String())
			}
			assert.Equal(t, tt.heads, heads)
		})
	}

	t.Run("append to candidates", func(t *testing.T) {
		goal := &term.Compound{Functor: "color", Args: []term.Term{term.Variable("C")}}
		cs := db.Candidates(goal)
		_ = append(cs, term.Fact(&term.Compound{Functor: "color", Args: []term.Term{term.Atom("green")}}))
		assert.NoError(t, db.Load(`color(yellow).`))
		assert.Equal(t, "color(yellow)", db.Candidates(goal)[2].Head.String())
	})
}

func TestDatabase_Load(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var db Database
		assert.NoError(t, db.Load(`
% a list of colors
color(red).
color(blue). /* and a rule */ likes(alice, X) :- color(X).
`))
		var cs []string
		for _, c := range db.Clauses() {
			cs = append(cs, c.String())
		}
		assert.Equal(t, []string{
			"color(red).",
			"color(blue).",
			"likes(alice, X) :- color(X).",
		}, cs)
	})

	t.Run("atomic", func(t *testing.T) {
		db := database(t, `color(red).`)
		err := db.Load(`color(blue). color(green`)
		var pe *syntax.ParseError
		assert.True(t, errors.As(err, &pe))
		assert.Equal(t, 1, db.Len())
	})

	t.Run("lexical error", func(t *testing.T) {
		var db Database
		err := db.Load(`color(red). color(#).`)
		var le *syntax.LexError
		assert.True(t, errors.As(err, &le))
		assert.Equal(t, 0, db.Len())
	})
}

func TestDatabase_Consult(t *testing.T) {
	var db Database
	assert.NoError(t, db.Consult(strings.NewReader("nat(zero).\nnat(s(N)) :- nat(N).\n")))
	assert.Equal(t, 2, db.Len())

	assert.Error(t, db.Consult(strings.NewReader("nat(")))
	assert.Equal(t, 2, db.Len())
}
