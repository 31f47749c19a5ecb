/*
File    : loxi/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/loxi/object"
	"github.com/stretchr/testify/assert"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", object.Number(10))
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, object.Number(10), v)
}

func TestGet_FallsThroughToParent(t *testing.T) {
	outer := New(nil)
	outer.Define("x", object.Number(1))
	inner := New(outer)
	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)
}

func TestGet_InnerShadowsOuter(t *testing.T) {
	outer := New(nil)
	outer.Define("x", object.Number(1))
	inner := New(outer)
	inner.Define("x", object.Number(2))
	v, _ := inner.Get("x")
	assert.Equal(t, object.Number(2), v)
	outerV, _ := outer.Get("x")
	assert.Equal(t, object.Number(1), outerV)
}

func TestGet_Undefined(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssign_UpdatesNearestDefiningFrame(t *testing.T) {
	outer := New(nil)
	outer.Define("x", object.Number(1))
	inner := New(outer)
	err := inner.Assign("x", object.Number(99))
	assert.NoError(t, err)
	v, _ := outer.Get("x")
	assert.Equal(t, object.Number(99), v)
	_, ok := inner.Variables["x"]
	assert.False(t, ok)
}

func TestAssign_UndefinedReturnsError(t *testing.T) {
	env := New(nil)
	err := env.Assign("ghost", object.Number(1))
	assert.Error(t, err)
	assert.Equal(t, "Undefined variable 'ghost'.", err.Error())
}

func TestClosureSharesFrameByReference(t *testing.T) {
	outer := New(nil)
	outer.Define("count", object.Number(0))

	// Simulate capturing `outer` by reference, as a Function closure would.
	captured := outer

	outer.Assign("count", object.Number(1))
	v, _ := captured.Get("count")
	assert.Equal(t, object.Number(1), v, "mutations to the defining frame must be visible through a captured reference")
}
