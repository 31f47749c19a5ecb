/*
File    : loxi/ast/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders an expression in the parenthesized prefix form used by
// `parse` mode: literals print as themselves (numbers always with a
// ".0" for whole values), Unary/Binary/Grouping/Assign wrap their
// operator and operands in parens, Variable prints its bare name, and
// Call prints `(fn <callee> <args...>)`.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return printLiteral(n.Value)
	case *Grouping:
		return parenthesize("group", n.Expr)
	case *Unary:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case *Binary:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Assign:
		return "(= " + n.Name.Lexeme + " " + Print(n.Value) + ")"
	case *Variable:
		return n.Name.Lexeme
	case *Call:
		parts := []string{"fn", Print(n.Callee)}
		for _, a := range n.Args {
			parts = append(parts, Print(a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func printLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatWholeWithDecimal(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	parts := []string{name}
	for _, e := range exprs {
		parts = append(parts, Print(e))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// formatWholeWithDecimal renders a float64 the way literal/printer
// context requires: the shortest round-trip decimal, with whole values
// always keeping a single trailing ".0".
func formatWholeWithDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}
