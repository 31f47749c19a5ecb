/*
File    : loxi/eval/calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/loxi/ast"
	"github.com/akashmaji946/loxi/environment"
	"github.com/akashmaji946/loxi/object"
)

// returnSignal is the internal control-flow signal a `return` statement
// raises to unwind out of the current function call. It is returned as
// a Go error so it propagates through Execute/Eval's ordinary error
// path, but it is never a RuntimeError and callFunction strips it
// before it can reach a caller outside the function boundary - the
// teacher's equivalent is objects.ReturnValue, unwrapped by
// eval.UnwrapReturnValue at exactly one place (the call boundary).
type returnSignal struct {
	Value object.Value
}

func (*returnSignal) Error() string {
	return "return outside of a function"
}

func (e *Evaluator) evalCall(n *ast.Call) (object.Value, error) {
	callee, err := e.Eval(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *object.Function:
		return e.callFunction(fn, args, n.Paren.Line)
	case *object.Native:
		if len(args) != fn.Arity {
			return nil, runtimeErrorf(n.Paren.Line, "Expected %d arguments but got %d.\n[line %d]", fn.Arity, len(args), n.Paren.Line)
		}
		return fn.Fn(args)
	default:
		return nil, runtimeErrorf(n.Paren.Line, "Can only call functions and classes.\n[line %d]", n.Paren.Line)
	}
}

// callFunction installs the callee's captured environment, pushes a
// fresh frame binding parameters to args, executes the body, and
// restores the caller's environment - mirroring the teacher's
// CallFunction save/restore of e.Scp, but propagating a RuntimeError
// or an unwrapped returnSignal instead of a std.Error/std.ReturnValue.
func (e *Evaluator) callFunction(fn *object.Function, args []object.Value, callLine int) (object.Value, error) {
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(callLine, "Expected %d arguments but got %d.\n[line %d]", fn.Arity(), len(args), callLine)
	}

	closure, ok := fn.Env.(*environment.Environment)
	if !ok {
		return nil, runtimeErrorf(callLine, "Invalid function closure for '%s'.", fn.Name)
	}

	callFrame := environment.New(closure)
	for i, param := range fn.Params {
		callFrame.Define(param.Lexeme, args[i])
	}

	previous := e.env
	e.env = callFrame
	defer func() { e.env = previous }()

	err := e.executeBlock(fn.Body)
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	return object.Nil{}, nil
}
