package term

// Rename returns a copy of t in which every variable is replaced by a fresh one from a.
// Occurrences of the same variable are replaced by the same fresh variable.
func Rename(t Term, a *Allocator) Term {
	r := renamer{alloc: a}
	return r.rename(t)
}

type renamer struct {
	alloc *Allocator
	fresh map[Variable]Variable
}

func (r *renamer) rename(t Term) Term {
	switch t := t.(type) {
	case Variable:
		if v, ok := r.fresh[t]; ok {
			return v
		}
		if r.fresh == nil {
			r.fresh = map[Variable]Variable{}
		}
		v := r.alloc.NewVariable()
		r.fresh[t] = v
		return v
	case *Compound:
		return r.compound(t)
	default:
		return t
	}
}

func (r *renamer) compound(c *Compound) *Compound {
	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = r.rename(a)
	}
	return &Compound{Functor: c.Functor, Args: args}
}
