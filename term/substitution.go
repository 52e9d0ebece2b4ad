package term

import (
	"strings"

	"github.com/ichiban/horn/internal/rbtree"
)

// Substitution is an immutable mapping from variables to terms.
// Bind returns a new Substitution and leaves the receiver intact, so an older Substitution stays valid
// after a failed branch. The nil *Substitution is the empty substitution.
type Substitution struct {
	bindings rbtree.Map[Variable, Term]
}

// Len returns the number of bound variables.
func (s *Substitution) Len() int {
	if s == nil {
		return 0
	}
	return s.bindings.Len()
}

// Lookup returns the term that v is directly bound to.
func (s *Substitution) Lookup(v Variable) (Term, bool) {
	if s == nil {
		return nil, false
	}
	return s.bindings.Get(v)
}

// Bind returns a new Substitution which binds v to t in addition to the existing bindings.
func (s *Substitution) Bind(v Variable, t Term) *Substitution {
	var ret Substitution
	if s != nil {
		ret = *s
	}
	ret.bindings = ret.bindings.Set(v, t)
	return &ret
}

// Resolve follows the variable chain and returns the first non-variable term or the last free variable.
func (s *Substitution) Resolve(t Term) Term {
	u := t
	// An acyclic chain visits each binding at most once.
	for n := s.Len(); n >= 0; n-- {
		v, ok := u.(Variable)
		if !ok {
			return u
		}
		ref, ok := s.Lookup(v)
		if !ok {
			return v
		}
		u = ref
	}
	return s.resolveCycle(t)
}

// resolveCycle is Resolve for a chain which comes back to one of its variables.
// It returns the first variable met twice.
func (s *Substitution) resolveCycle(t Term) Term {
	var stop []Variable
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		for _, u := range stop {
			if u == v {
				return v
			}
		}
		ref, ok := s.Lookup(v)
		if !ok {
			return v
		}
		stop = append(stop, v)
		t = ref
	}
}

// Apply replaces every bound variable in t with its fully expanded binding.
// Free variables are left as they are. A variable which is met again while its own binding is being expanded
// is left unexpanded, so cyclic bindings don't make Apply loop.
func (s *Substitution) Apply(t Term) Term {
	if s.Len() == 0 {
		return t
	}
	return s.apply(t, nil)
}

func (s *Substitution) apply(t Term, path []Variable) Term {
	switch t := t.(type) {
	case Variable:
		for _, p := range path {
			if p == t {
				return t
			}
		}
		ref, ok := s.Lookup(t)
		if !ok {
			return t
		}
		return s.apply(ref, append(path, t))
	case *Compound:
		var args []Term
		for i, a := range t.Args {
			b := s.apply(a, path)
			if args == nil {
				if b == a {
					continue
				}
				args = make([]Term, len(t.Args))
				copy(args, t.Args[:i])
			}
			args[i] = b
		}
		if args == nil {
			return t
		}
		return &Compound{Functor: t.Functor, Args: args}
	default:
		return t
	}
}

// Each calls f for every binding in the order of variable names until f returns false.
func (s *Substitution) Each(f func(Variable, Term) bool) {
	if s == nil {
		return
	}
	s.bindings.Each(f)
}

func (s *Substitution) String() string {
	var sb strings.Builder
	_, _ = sb.WriteString("{")
	first := true
	s.Each(func(v Variable, t Term) bool {
		if !first {
			_, _ = sb.WriteString(", ")
		}
		first = false
		_, _ = sb.WriteString(string(v))
		_, _ = sb.WriteString(" = ")
		_, _ = sb.WriteString(t.String())
		return true
	})
	_, _ = sb.WriteString("}")
	return sb.String()
}
