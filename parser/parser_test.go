/*
File    : loxi/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/loxi/ast"
	"github.com/akashmaji946/loxi/lexer"
	"github.com/stretchr/testify/assert"
)

func parseExprs(t *testing.T, src string) ([]ast.Expr, *Parser) {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	p := New(toks)
	return p.Parse(), p
}

func parseProgram(t *testing.T, src string) ([]ast.Stmt, *Parser) {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	p := New(toks)
	return p.ParseProgram(), p
}

func TestParse_PrecedenceLadder(t *testing.T) {
	exprs, p := parseExprs(t, "1 + 2 * 3 == 4 - 1 and !false or nil")
	assert.False(t, p.HasErrors())
	assert.Len(t, exprs, 1)
	assert.Equal(t, "(or (and (== (+ 1.0 (* 2.0 3.0)) (- 4.0 1.0)) (! false)) nil)", ast.Print(exprs[0]))
}

func TestParse_UnaryIsRightAssociative(t *testing.T) {
	exprs, p := parseExprs(t, "- - 1")
	assert.False(t, p.HasErrors())
	assert.Equal(t, "(- (- 1.0))", ast.Print(exprs[0]))
}

func TestParse_BinaryIsLeftAssociative(t *testing.T) {
	exprs, p := parseExprs(t, "1 - 2 - 3")
	assert.False(t, p.HasErrors())
	assert.Equal(t, "(- (- 1.0 2.0) 3.0)", ast.Print(exprs[0]))
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	exprs, p := parseExprs(t, "a = b = 1")
	assert.False(t, p.HasErrors())
	assert.Equal(t, "(= a (= b 1.0))", ast.Print(exprs[0]))
}

func TestParse_GroupingMissingCloseParen(t *testing.T) {
	_, p := parseExprs(t, "(1 + 2")
	assert.True(t, p.HasErrors())
	assert.Equal(t, "[line 1] Error: Expect ')' after expression.", p.Errors()[0].Error())
}

func TestParse_UnexpectedTokenReportsAtLexeme(t *testing.T) {
	_, p := parseExprs(t, "+ 1")
	assert.True(t, p.HasErrors())
	assert.Equal(t, "[line 1] Error at '+': Expect expression.", p.Errors()[0].Error())
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, p := parseExprs(t, "1 + 2 = 3")
	assert.True(t, p.HasErrors())
	assert.Equal(t, "[line 1] Error at '=': Invalid assignment target.", p.Errors()[0].Error())
}

func TestParse_CallExpression(t *testing.T) {
	exprs, p := parseExprs(t, "add(1, 2, 3)")
	assert.False(t, p.HasErrors())
	assert.Equal(t, "(fn add 1.0 2.0 3.0)", ast.Print(exprs[0]))
}

func TestParseProgram_VarDeclarationNoInitializer(t *testing.T) {
	stmts, p := parseProgram(t, "var x;")
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.Nil(t, v.Initializer)
}

func TestParseProgram_MissingSemicolonAfterValue(t *testing.T) {
	_, p := parseProgram(t, "print 1")
	assert.True(t, p.HasErrors())
	assert.Equal(t, "[line 1] Error at '': Expect ';' after value.", p.Errors()[0].Error())
}

func TestParseProgram_IfElse(t *testing.T) {
	stmts, p := parseProgram(t, "if (true) print 1; else print 2;")
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)
	ifs, ok := stmts[0].(*ast.IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifs.Then)
	assert.NotNil(t, ifs.Else)
}

func TestParseProgram_WhileLoop(t *testing.T) {
	stmts, p := parseProgram(t, "while (x < 10) x = x + 1;")
	assert.False(t, p.HasErrors())
	_, ok := stmts[0].(*ast.WhileStmt)
	assert.True(t, ok)
}

func TestParseProgram_ForLoopDesugaringDeferred(t *testing.T) {
	stmts, p := parseProgram(t, "for (var i = 0; i < 10; i = i + 1) print i;")
	assert.False(t, p.HasErrors())
	f, ok := stmts[0].(*ast.ForStmt)
	assert.True(t, ok)
	assert.NotNil(t, f.Init)
	assert.NotNil(t, f.Condition)
	assert.NotNil(t, f.Update)
}

func TestParseProgram_ForLoopAllClausesOmitted(t *testing.T) {
	stmts, p := parseProgram(t, "for (;;) print 1;")
	assert.False(t, p.HasErrors())
	f, ok := stmts[0].(*ast.ForStmt)
	assert.True(t, ok)
	assert.Nil(t, f.Init)
	assert.Nil(t, f.Condition)
	assert.Nil(t, f.Update)
}

func TestParseProgram_FunctionDeclaration(t *testing.T) {
	stmts, p := parseProgram(t, "fun add(a, b) { return a + b; }")
	assert.False(t, p.HasErrors())
	fn, ok := stmts[0].(*ast.FuncStmt)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParseProgram_ReturnWithNoValue(t *testing.T) {
	stmts, p := parseProgram(t, "fun f() { return; }")
	assert.False(t, p.HasErrors())
	fn := stmts[0].(*ast.FuncStmt)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	assert.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestParseProgram_BlockScoping(t *testing.T) {
	stmts, p := parseProgram(t, "{ var x = 1; print x; }")
	assert.False(t, p.HasErrors())
	block, ok := stmts[0].(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, block.Stmts, 2)
}

func TestParseProgram_MultipleTopLevelStatements(t *testing.T) {
	stmts, p := parseProgram(t, "var a = 1; var b = 2; print a + b;")
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 3)
}
