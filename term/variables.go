package term

// Variables returns the distinct variables occurring in ts in the order of their first occurrence.
func Variables(ts ...Term) []Variable {
	var vs []Variable
	for _, t := range ts {
		vs = appendVariables(vs, t)
	}
	return vs
}

func appendVariables(vs []Variable, t Term) []Variable {
	switch t := t.(type) {
	case Variable:
		for _, v := range vs {
			if v == t {
				return vs
			}
		}
		return append(vs, t)
	case *Compound:
		for _, a := range t.Args {
			vs = appendVariables(vs, a)
		}
	}
	return vs
}

// IsGround checks if t contains no variables.
func IsGround(t Term) bool {
	switch t := t.(type) {
	case Variable:
		return false
	case *Compound:
		for _, a := range t.Args {
			if !IsGround(a) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
