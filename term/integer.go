package term

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/apd"
)

// Integer is an integer constant of arbitrary size in canonical decimal notation.
// Use NewInteger or Int to construct one so that equal numbers are equal values.
type Integer string

// NewInteger parses s as an integer and returns it in canonical form. Leading zeros are dropped.
func NewInteger(s string) (Integer, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("not an integer: %q: %w", s, err)
	}
	if d.Form != apd.Finite || d.Exponent < 0 {
		return "", fmt.Errorf("not an integer: %q", s)
	}
	if d.Sign() == 0 {
		d.Negative = false
	}
	return Integer(d.Text('f')), nil
}

// Int returns an Integer of n.
func Int(n int64) Integer {
	return Integer(strconv.FormatInt(n, 10))
}

// Int64 returns the integer as int64. It fails if the integer doesn't fit.
func (i Integer) Int64() (int64, error) {
	d, _, err := apd.NewFromString(string(i))
	if err != nil {
		return 0, err
	}
	return d.Int64()
}

func (i Integer) String() string {
	return string(i)
}

// WriteTerm writes the integer into w.
func (i Integer) WriteTerm(w io.Writer, _ *Substitution) error {
	_, err := io.WriteString(w, string(i))
	return err
}
