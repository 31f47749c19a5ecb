/*
File    : loxi/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the AST produced by the parser and produces
// runtime object.Values. It mirrors the teacher's Evaluator{Scp, ...}
// design - an evaluator struct holding the active environment plus a
// type-switch Eval dispatcher (eval/evaluator_expressions.go) - but
// departs from the teacher's error-as-runtime-value trick
// (*std.Error satisfying GoMixObject, checked with eval.IsError) in
// favor of Go's ordinary (Value, error) return. That keeps a runtime
// error structurally distinct from the returnSignal used for `return`,
// so the two can never be confused the way a stray objects.Error could
// be mistaken for any other object.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/loxi/ast"
	"github.com/akashmaji946/loxi/environment"
	"github.com/akashmaji946/loxi/object"
	"github.com/akashmaji946/loxi/token"
)

// RuntimeError is a runtime failure with the source line that caused
// it, formatted per spec's "Operands must be ...\n[line L]" family.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func runtimeErrorf(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Evaluator walks statement and expression trees against a chain of
// environment frames, starting at Globals.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Evaluator with a fresh global frame pre-populated with
// the native clock function, printing to stdout by default.
func New() *Evaluator {
	globals := environment.New(nil)
	registerNatives(globals)
	return &Evaluator{Globals: globals, env: globals, Writer: os.Stdout}
}

// SetWriter redirects `print` statement output, mirroring the
// teacher's Evaluator.SetWriter - useful for tests that capture output
// into a buffer instead of stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

func (e *Evaluator) print(v object.Value) {
	fmt.Fprintln(e.Writer, v.Display())
}

// Eval computes the value of an expression node in the evaluator's
// current environment.
func (e *Evaluator) Eval(expr ast.Expr) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil
	case *ast.Grouping:
		return e.Eval(n.Expr)
	case *ast.Unary:
		return e.evalUnary(n)
	case *ast.Binary:
		return e.evalBinary(n)
	case *ast.Logical:
		return e.evalLogical(n)
	case *ast.Variable:
		return e.evalVariable(n)
	case *ast.Assign:
		return e.evalAssign(n)
	case *ast.Call:
		return e.evalCall(n)
	default:
		return nil, runtimeErrorf(0, "Unknown expression node: %T", expr)
	}
}

func literalValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.Nil{}
	case bool:
		return object.Boolean(val)
	case float64:
		return object.Number(val)
	case string:
		return object.String(val)
	default:
		return object.Nil{}
	}
}

func (e *Evaluator) evalUnary(n *ast.Unary) (object.Value, error) {
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case token.Minus:
		num, ok := right.(object.Number)
		if !ok {
			return nil, runtimeErrorf(n.Operator.Line, "Operand must be a number.\n[line %d]", n.Operator.Line)
		}
		return -num, nil
	case token.Bang:
		return object.Boolean(!object.Truthy(right)), nil
	default:
		return nil, runtimeErrorf(n.Operator.Line, "Unknown unary operator: %s", n.Operator.Lexeme)
	}
}

func (e *Evaluator) evalLogical(n *ast.Logical) (object.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Operator.Kind == token.Or {
		if object.Truthy(left) {
			return left, nil
		}
	} else {
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return e.Eval(n.Right)
}

func (e *Evaluator) evalVariable(n *ast.Variable) (object.Value, error) {
	v, ok := e.env.Get(n.Name.Lexeme)
	if !ok {
		return nil, runtimeErrorf(n.Name.Line, "Undefined variable '%s'.\n[line %d]", n.Name.Lexeme, n.Name.Line)
	}
	return v, nil
}

func (e *Evaluator) evalAssign(n *ast.Assign) (object.Value, error) {
	value, err := e.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	if assignErr := e.env.Assign(n.Name.Lexeme, value); assignErr != nil {
		return nil, runtimeErrorf(n.Name.Line, "Undefined variable '%s'.\n[line %d]", n.Name.Lexeme, n.Name.Line)
	}
	return value, nil
}
