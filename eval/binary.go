/*
File    : loxi/eval/binary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/loxi/ast"
	"github.com/akashmaji946/loxi/object"
	"github.com/akashmaji946/loxi/token"
)

func (e *Evaluator) evalBinary(n *ast.Binary) (object.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	line := n.Operator.Line

	switch n.Operator.Kind {
	case token.Plus:
		return evalPlus(left, right, line)
	case token.Minus:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(line)
		}
		return l - r, nil
	case token.Star:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(line)
		}
		return l * r, nil
	case token.Slash:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(line)
		}
		return l / r, nil
	case token.Greater:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(line)
		}
		return object.Boolean(l > r), nil
	case token.GreaterEqual:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(line)
		}
		return object.Boolean(l >= r), nil
	case token.Less:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(line)
		}
		return object.Boolean(l < r), nil
	case token.LessEqual:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, operandsMustBeNumbers(line)
		}
		return object.Boolean(l <= r), nil
	case token.EqualEqual:
		return object.Boolean(object.Equal(left, right)), nil
	case token.BangEqual:
		return object.Boolean(!object.Equal(left, right)), nil
	default:
		return nil, runtimeErrorf(line, "Unknown binary operator: %s", n.Operator.Lexeme)
	}
}

func evalPlus(left, right object.Value, line int) (object.Value, error) {
	if l, r, ok := numberPair(left, right); ok {
		return l + r, nil
	}
	if l, ok := left.(object.String); ok {
		if r, ok := right.(object.String); ok {
			return l + r, nil
		}
	}
	return nil, runtimeErrorf(line, "Operands must be two numbers or two strings.\n[line %d]", line)
}

func numberPair(left, right object.Value) (object.Number, object.Number, bool) {
	l, ok := left.(object.Number)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(object.Number)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

func operandsMustBeNumbers(line int) *RuntimeError {
	return runtimeErrorf(line, "Operands must be numbers.\n[line %d]", line)
}
