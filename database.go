package horn

import (
	"io"
	"strings"

	"github.com/ichiban/horn/syntax"
	"github.com/ichiban/horn/term"
)

// Database is an ordered collection of clauses. The zero value is an empty database.
// The order of insertion is the order in which resolution tries clauses.
// A Database must not be modified while a query against it is running.
type Database struct {
	clauses []term.Clause
	index   map[term.ProcedureIndicator][]term.Clause
}

// Add appends clauses to the database.
func (d *Database) Add(cs ...term.Clause) error {
	for _, c := range cs {
		if c.Head == nil {
			return &TypeError{ValidType: "callable", Culprit: nil}
		}
	}
	if d.index == nil {
		d.index = map[term.ProcedureIndicator][]term.Clause{}
	}
	for _, c := range cs {
		pi := c.PI()
		d.index[pi] = append(d.index[pi], c)
		d.clauses = append(d.clauses, c)
	}
	return nil
}

// Load parses text and appends the clauses in it.
// If the text has an error, no clauses are appended.
func (d *Database) Load(text string) error {
	return d.Consult(strings.NewReader(text))
}

// Consult reads r to the end and appends the clauses in it.
// If the input has an error, no clauses are appended.
func (d *Database) Consult(r io.Reader) error {
	cs, err := syntax.ReadClauses(r)
	if err != nil {
		return err
	}
	return d.Add(cs...)
}

// Len returns the number of clauses.
func (d *Database) Len() int {
	return len(d.clauses)
}

// Clauses returns all the clauses in the order of insertion.
func (d *Database) Clauses() []term.Clause {
	return append([]term.Clause(nil), d.clauses...)
}

// Candidates returns the clauses whose head has the same name and arity as goal, in the order of insertion.
// Goals other than compounds have no candidates. The returned slice must not be modified.
func (d *Database) Candidates(goal term.Term) []term.Clause {
	pi, ok := term.PI(goal)
	if !ok {
		return nil
	}
	cs := d.index[pi]
	return cs[:len(cs):len(cs)]
}
