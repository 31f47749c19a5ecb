/*
File    : loxi/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the abstract syntax tree produced by the parser:
// tagged Expr and Stmt variants, plus the parenthesized printer used by
// `parse` mode. Unlike the teacher's double-dispatch Accept(NodeVisitor)
// pattern, consumers (the evaluator, the printer) pattern-match directly
// on the concrete Go types with a type switch - idiomatic Go for a
// closed sum type, and the one place this module deliberately departs
// from the teacher's own style.
package ast

import "github.com/akashmaji946/loxi/token"

// Expr is the marker interface implemented by every expression node.
type Expr interface {
	exprNode()
}

// Literal is a literal value: a number, a string, true, false, or nil.
// Value holds the Go-native payload (float64, string, bool, or nil).
type Literal struct {
	Value interface{}
}

func (*Literal) exprNode() {}

// Grouping is a parenthesized sub-expression: `( expr )`.
type Grouping struct {
	Expr Expr
}

func (*Grouping) exprNode() {}

// Unary is a prefix operator applied to one operand: `-right`, `!right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (*Unary) exprNode() {}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Binary) exprNode() {}

// Logical is `and`/`or`: like Binary, but evaluated with short-circuit
// semantics rather than eager evaluation of both sides.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (*Logical) exprNode() {}

// Variable is a reference to a named binding: `x`.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}

// Assign is `name = value`. The name token is retained (rather than a
// resolved slot) so assignment errors can report the identifier and line.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

// Call is a function call: `callee(args...)`. Paren is the closing `)`
// token, kept for arity-mismatch and non-callable diagnostics.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Call) exprNode() {}
