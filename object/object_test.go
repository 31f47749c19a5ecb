/*
File    : loxi/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberDisplay_WholeHasNoDecimal(t *testing.T) {
	assert.Equal(t, "3", Number(3).Display())
	assert.Equal(t, "0", Number(0).Display())
	assert.Equal(t, "-12", Number(-12).Display())
}

func TestNumberDisplay_FractionalKeepsDigits(t *testing.T) {
	assert.Equal(t, "3.5", Number(3.5).Display())
	assert.Equal(t, "0.25", Number(0.25).Display())
}

func TestNumberDisplay_WholeBeyondInt64RangeRoundTrips(t *testing.T) {
	assert.Equal(t, "1e+19", Number(1e19).Display())
	assert.Equal(t, "1e+300", Number(1e300).Display())
}

func TestBooleanDisplay(t *testing.T) {
	assert.Equal(t, "true", Boolean(true).Display())
	assert.Equal(t, "false", Boolean(false).Display())
}

func TestNilDisplay(t *testing.T) {
	assert.Equal(t, "nil", Nil{}.Display())
}

func TestStringDisplay_NoQuotes(t *testing.T) {
	assert.Equal(t, "hello", String("hello").Display())
}

func TestFunctionDisplay(t *testing.T) {
	fn := &Function{Name: "add"}
	assert.Equal(t, "<fn add>", fn.Display())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Boolean(false)))
	assert.True(t, Truthy(Boolean(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual_CrossTypeNeverEqual(t *testing.T) {
	assert.False(t, Equal(Number(0), Boolean(false)))
	assert.False(t, Equal(String("1"), Number(1)))
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Number(2), Number(2)))
	assert.False(t, Equal(Number(2), Number(3)))
}
