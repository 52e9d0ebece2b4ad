package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRename(t *testing.T) {
	x, y := Variable("X"), Variable("Y")

	var a Allocator
	r := Rename(Atom("p").Apply(x, Atom("f").Apply(y, x), Atom("c")), &a)
	assert.Equal(t, Atom("p").Apply(Variable("_1"), Atom("f").Apply(Variable("_2"), Variable("_1")), Atom("c")), r)

	r = Rename(Atom("p").Apply(x), &a)
	assert.Equal(t, Atom("p").Apply(Variable("_3")), r)

	assert.Equal(t, Atom("a"), Rename(Atom("a"), &a))
	assert.Equal(t, Variable("_4"), Rename(x, &a))
}

func TestVariables(t *testing.T) {
	x, y, z := Variable("X"), Variable("Y"), Variable("Z")
	assert.Equal(t, []Variable{y, x, z}, Variables(Atom("p").Apply(y, Atom("f").Apply(x, y)), z, x))
	assert.Empty(t, Variables(Atom("p").Apply(Atom("a"))))
}

func TestIsGround(t *testing.T) {
	assert.True(t, IsGround(Atom("a")))
	assert.True(t, IsGround(Int(1)))
	assert.True(t, IsGround(Atom("p").Apply(Atom("a"), Atom("f").Apply(Int(1)))))
	assert.False(t, IsGround(Variable("X")))
	assert.False(t, IsGround(Atom("p").Apply(Atom("a"), Atom("f").Apply(Variable("X")))))
}
