package horn

import (
	"context"

	"github.com/ichiban/horn/syntax"
)

// Interpreter is a database of clauses with an engine to query it.
// The zero value is a valid interpreter with an empty database.
type Interpreter struct {
	Engine
	Database
}

// New creates a new interpreter with an empty database.
func New() *Interpreter {
	return &Interpreter{}
}

// Exec adds the clauses in text to the database.
// If the text has an error, no clauses are added.
func (i *Interpreter) Exec(text string) error {
	return i.Load(text)
}

// Query executes a query and returns *Solutions.
func (i *Interpreter) Query(query string) (*Solutions, error) {
	return i.QueryContext(context.Background(), query)
}

// QueryContext executes a query and returns *Solutions with context.
func (i *Interpreter) QueryContext(ctx context.Context, query string) (*Solutions, error) {
	goals, err := syntax.ReadQuery(query)
	if err != nil {
		return nil, err
	}
	return i.Solve(ctx, &i.Database, goals...)
}

// QuerySolution executes a query for the first solution.
func (i *Interpreter) QuerySolution(query string) *Solution {
	return i.QuerySolutionContext(context.Background(), query)
}

// QuerySolutionContext executes a query for the first solution with context.
func (i *Interpreter) QuerySolutionContext(ctx context.Context, query string) *Solution {
	sols, err := i.QueryContext(ctx, query)
	if err != nil {
		return &Solution{err: err}
	}

	if !sols.Next() {
		if err := sols.Err(); err != nil {
			return &Solution{err: err}
		}
		return &Solution{err: ErrNoSolutions}
	}

	sol := sols.Current()
	sol.err = sols.Close()
	return &sol
}
