/*
File    : loxi/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value types produced by the
// evaluator: the dynamically-typed Value union (Number, String,
// Boolean, Nil, Function, Native), and the formatting rules that
// govern how each prints in `print` statements and `evaluate` mode.
//
// Unlike the teacher's objects package (Integer/Float/String/Boolean/
// Nil/Error/ReturnValue, each a distinct struct implementing a shared
// GoMixObject interface with GetType/ToString/ToObject), this language
// has a single numeric type, so Integer and Float collapse into one
// Number. There is no Error variant here - runtime failures are
// reported through Go's ordinary error return, not as a value in the
// type union (see the eval package).
package object

import (
	"fmt"
	"math"
	"strconv"

	"github.com/akashmaji946/loxi/ast"
	"github.com/akashmaji946/loxi/token"
)

// Type tags a Value's concrete kind.
type Type string

const (
	NumberType   Type = "number"
	StringType   Type = "string"
	BooleanType  Type = "bool"
	NilType      Type = "nil"
	FunctionType Type = "function"
	NativeType   Type = "native"
)

// Value is the interface every runtime value implements.
type Value interface {
	Type() Type
	// Display renders the value the way `print` and `evaluate` mode
	// show it: whole numbers with no decimal, functions as `<fn NAME>`.
	Display() string
}

// Number is the language's sole numeric type, a 64-bit float.
type Number float64

func (Number) Type() Type { return NumberType }

func (n Number) Display() string {
	return formatNumberForDisplay(float64(n))
}

// formatNumberForDisplay renders a float64 the way printed/evaluated
// values require: shortest round-trip decimal, but whole values show
// no trailing ".0" - the opposite convention from the token-literal
// and parenthesized-printer contexts (ast.Print, token.Token.String).
//
// The int64 fast path only applies within int64's exact range; outside
// it every float64 is already whole (the mantissa can't represent a
// fraction), so v == math.Trunc(v) is always true and %g is used
// directly instead of overflowing the int64 conversion.
func formatNumberForDisplay(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<63 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String is a text value.
type String string

func (String) Type() Type { return StringType }

func (s String) Display() string { return string(s) }

// Boolean is a true/false value.
type Boolean bool

func (Boolean) Type() Type { return BooleanType }

func (b Boolean) Display() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the language's single null value.
type Nil struct{}

func (Nil) Type() Type { return NilType }

func (Nil) Display() string { return "nil" }

// Function is a user-defined closure: the declaration plus the
// environment chain captured at the moment it was declared. Env is
// typed as interface{} to avoid an import cycle with the environment
// package (which itself stores Value); the eval package asserts it
// back to *environment.Environment when making a call.
type Function struct {
	Name   string
	Params []token.Token
	Body   []ast.Stmt
	Env    interface{}
}

func (*Function) Type() Type { return FunctionType }

func (f *Function) Display() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity returns the number of parameters the function expects.
func (f *Function) Arity() int {
	return len(f.Params)
}

// NativeFn is the Go implementation behind a built-in like clock.
type NativeFn func(args []Value) (Value, error)

// Native wraps a built-in function so it satisfies Value alongside
// user-defined Functions; both are callable through the evaluator's
// evalCall.
type Native struct {
	Name  string
	Arity int
	Fn    NativeFn
}

func (*Native) Type() Type { return NativeType }

func (n *Native) Display() string {
	return fmt.Sprintf("<native fn %s>", n.Name)
}

// Truthy implements the language's truthiness rule: false and nil are
// falsy, every other value (including 0 and the empty string) is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(val)
	default:
		return true
	}
}

// Equal implements deep-by-variant equality: values of different
// concrete types are never equal, even Number vs String.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		return a == b
	}
}
