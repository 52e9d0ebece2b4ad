package term

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Variable is a logic variable identified by its name.
// Variables read from source text start with an uppercase letter.
// Variables minted by an Allocator are named _1, _2, and so on.
type Variable string

func (v Variable) String() string {
	var buf bytes.Buffer
	_ = v.WriteTerm(&buf, nil)
	return buf.String()
}

// WriteTerm writes the variable, or the term it is bound to, into w.
func (v Variable) WriteTerm(w io.Writer, s *Substitution) error {
	if t := s.Apply(v); t != v {
		return t.WriteTerm(w, nil)
	}
	_, err := io.WriteString(w, string(v))
	return err
}

// Generated checks if the variable was minted by an Allocator.
func (v Variable) Generated() bool {
	_, ok := v.serial()
	return ok
}

func (v Variable) serial() (int64, bool) {
	s, ok := strings.CutPrefix(string(v), "_")
	if !ok || s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 || strconv.FormatInt(n, 10) != s {
		return 0, false
	}
	return n, true
}

// older reports whether v was introduced before w.
// Named variables precede generated ones and generated ones are ordered by serial.
func older(v, w Variable) bool {
	vs, vg := v.serial()
	ws, wg := w.serial()
	switch {
	case vg && wg:
		return vs < ws
	case vg:
		return false
	case wg:
		return true
	default:
		return v < w
	}
}

// Allocator mints fresh variables. The zero value is ready to use.
// An Allocator is not safe for concurrent use.
type Allocator struct {
	last int64
}

// NewVariable returns a variable that the Allocator has never returned before.
func (a *Allocator) NewVariable() Variable {
	a.last++
	return Variable("_" + strconv.FormatInt(a.last, 10))
}

// Reserve makes sure the Allocator never returns any of vs.
func (a *Allocator) Reserve(vs ...Variable) {
	for _, v := range vs {
		if n, ok := v.serial(); ok && n > a.last {
			a.last = n
		}
	}
}
