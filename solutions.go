package horn

import (
	"strings"

	"github.com/ichiban/horn/term"
)

// Solutions is the result of a query. Everytime the Next method is called, it searches for the next solution.
// By calling the Scan method, you can retrieve the content of the solution.
type Solutions struct {
	vars     []term.Variable
	resolver *resolver
	closed   bool
}

// Close closes the Solutions and terminates the search for other solutions.
func (s *Solutions) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.resolver.stop(s.resolver.err)
	return nil
}

// Next prepares the next solution for reading with the Scan method. It returns true if it finds another solution,
// or false if there's no further solutions or if there's an error.
func (s *Solutions) Next() bool {
	if s.closed {
		return false
	}
	return s.resolver.next()
}

// Current returns the current solution. It's valid only after Next returned true.
func (s *Solutions) Current() Solution {
	bs := make([]Binding, len(s.vars))
	for i, v := range s.vars {
		bs[i] = Binding{Name: string(v), Value: s.resolver.subst.Apply(v)}
	}
	return Solution{Bindings: bs}
}

// Scan copies the variable values of the current solution into the specified map or struct.
func (s *Solutions) Scan(out interface{}) error {
	if s.closed {
		return ErrClosed
	}
	sol := s.Current()
	return sol.Scan(out)
}

// Err returns the error if exists.
func (s *Solutions) Err() error {
	return s.resolver.err
}

// Vars returns variable names in the order of their first occurrences in the query.
func (s *Solutions) Vars() []string {
	ns := make([]string, len(s.vars))
	for i, v := range s.vars {
		ns[i] = string(v)
	}
	return ns
}

// Binding is a query variable and its value in a solution.
type Binding struct {
	Name  string
	Value term.Term
}

// Solution is the bindings of query variables in a single solution.
type Solution struct {
	Bindings []Binding
	err      error
}

// Err returns an error that occurred while querying for the Solution, if any.
func (s *Solution) Err() error {
	return s.err
}

// Get returns the value of the query variable named name.
func (s *Solution) Get(name string) (term.Term, bool) {
	for _, b := range s.Bindings {
		if b.Name == name {
			return b.Value, true
		}
	}
	return nil, false
}

// Map returns the bindings as a map keyed by variable names.
func (s *Solution) Map() map[string]term.Term {
	m := make(map[string]term.Term, len(s.Bindings))
	for _, b := range s.Bindings {
		m[b.Name] = b.Value
	}
	return m
}

// Scan copies the variable values of the solution into the specified map or struct.
func (s *Solution) Scan(out interface{}) error {
	if s.err != nil {
		return s.err
	}
	return scan(s.Bindings, out)
}

// String returns the bindings in the form of "X = a, Y = f(_1)". An empty solution is "true".
func (s *Solution) String() string {
	var sb strings.Builder
	for i, b := range s.Bindings {
		if i > 0 {
			_, _ = sb.WriteString(", ")
		}
		_, _ = sb.WriteString(b.Name)
		_, _ = sb.WriteString(" = ")
		_ = b.Value.WriteTerm(&sb, nil)
	}
	if sb.Len() == 0 {
		return "true"
	}
	return sb.String()
}
