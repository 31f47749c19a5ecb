/*
File    : loxi/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/loxi/token"

// Stmt is the marker interface implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt is a bare expression used as a statement: `expr;`.
type ExpressionStmt struct {
	Expr Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt is `print expr;`.
type PrintStmt struct {
	Expr Expr
}

func (*PrintStmt) stmtNode() {}

// VarStmt is `var name ( = initializer )? ;`. Initializer is nil when
// the declaration has no initializer, in which case the variable binds
// to Nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (*VarStmt) stmtNode() {}

// BlockStmt is `{ stmts... }`: a new lexical frame around Stmts.
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt is `if (cond) then (else else)?`. Else is nil when there is no
// else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*IfStmt) stmtNode() {}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

// ForStmt is the C-style `for (init?; cond?; update?) body`. Init may
// be a VarStmt or an ExpressionStmt, or nil. Condition and Update may
// be nil (an absent condition is treated as always-true).
type ForStmt struct {
	Init      Stmt
	Condition Expr
	Update    Expr
	Body      Stmt
}

func (*ForStmt) stmtNode() {}

// FuncStmt is `fun name(params...) { body... }`.
type FuncStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (*FuncStmt) stmtNode() {}

// ReturnStmt is `return expr? ;`. Value is nil when the expression is
// omitted, in which case the function returns Nil.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode() {}
