package term

// Unify extends s so that a and b become syntactically equal.
// It returns the extended substitution and true on success. On failure it returns s and false; s itself is
// never modified, so no partial bindings of a failed attempt are visible.
// There's no occurs check: unifying X with f(X) succeeds with a cyclic binding.
func Unify(a, b Term, s *Substitution) (*Substitution, bool) {
	return unify(a, b, s, false)
}

// UnifyWithOccursCheck is like Unify but fails instead of binding a variable to a term containing it.
func UnifyWithOccursCheck(a, b Term, s *Substitution) (*Substitution, bool) {
	return unify(a, b, s, true)
}

type pair struct {
	a, b Term
}

func unify(a, b Term, s *Substitution, occursCheck bool) (*Substitution, bool) {
	ret := s
	stack := []pair{{a: a, b: b}}
	for len(stack) > 0 {
		var p pair
		p, stack = stack[len(stack)-1], stack[:len(stack)-1]

		x, y := ret.Resolve(p.a), ret.Resolve(p.b)
		if v, ok := x.(Variable); ok {
			x, y = y, v
		}
		switch x := x.(type) {
		case Variable:
			// y is a variable as well.
			y := y.(Variable)
			switch {
			case x == y:
			case older(x, y):
				ret = ret.Bind(y, x)
			default:
				ret = ret.Bind(x, y)
			}
		case Atom, Integer:
			switch y := y.(type) {
			case Variable:
				ret = ret.Bind(y, x)
			default:
				if x != y {
					return s, false
				}
			}
		case *Compound:
			switch y := y.(type) {
			case Variable:
				if occursCheck && Contains(x, y, ret) {
					return s, false
				}
				ret = ret.Bind(y, x)
			case *Compound:
				if x.Functor != y.Functor || len(x.Args) != len(y.Args) {
					return s, false
				}
				for i := len(x.Args) - 1; i >= 0; i-- {
					stack = append(stack, pair{a: x.Args[i], b: y.Args[i]})
				}
			default:
				return s, false
			}
		default:
			return s, false
		}
	}
	return ret, true
}
