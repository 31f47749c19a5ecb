/*
File    : loxi/eval/exec.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/loxi/ast"
	"github.com/akashmaji946/loxi/environment"
	"github.com/akashmaji946/loxi/object"
)

// Execute runs a single statement in the evaluator's current
// environment. It returns a *returnSignal (wrapped as an error) when a
// `return` unwinds through it; callFunction is the only place that
// signal is ever unwrapped rather than propagated further.
func (e *Evaluator) Execute(stmt ast.Stmt) error {
	switch n := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.Eval(n.Expr)
		return err
	case *ast.PrintStmt:
		return e.execPrint(n)
	case *ast.VarStmt:
		return e.execVar(n)
	case *ast.BlockStmt:
		return e.execBlockScoped(n)
	case *ast.IfStmt:
		return e.execIf(n)
	case *ast.WhileStmt:
		return e.execWhile(n)
	case *ast.ForStmt:
		return e.execFor(n)
	case *ast.FuncStmt:
		return e.execFuncDecl(n)
	case *ast.ReturnStmt:
		return e.execReturn(n)
	default:
		return runtimeErrorf(0, "Unknown statement node: %T", stmt)
	}
}

// ExecuteProgram runs a full program (the `run` mode entry point),
// stopping at the first runtime error or stray return.
func (e *Evaluator) ExecuteProgram(stmts []ast.Stmt) error {
	return e.executeBlock(stmts)
}

func (e *Evaluator) executeBlock(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := e.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execBlockScoped pushes a fresh frame for the block's lifetime and
// restores the enclosing frame afterward unconditionally - the scoped
// guard spec.md §5 requires so a return or runtime error still pops
// exactly the frame this block pushed.
func (e *Evaluator) execBlockScoped(n *ast.BlockStmt) error {
	previous := e.env
	e.env = environment.New(previous)
	defer func() { e.env = previous }()
	return e.executeBlock(n.Stmts)
}

func (e *Evaluator) execPrint(n *ast.PrintStmt) error {
	value, err := e.Eval(n.Expr)
	if err != nil {
		return err
	}
	e.print(value)
	return nil
}

func (e *Evaluator) execVar(n *ast.VarStmt) error {
	var value object.Value = object.Nil{}
	if n.Initializer != nil {
		v, err := e.Eval(n.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	e.env.Define(n.Name.Lexeme, value)
	return nil
}

func (e *Evaluator) execIf(n *ast.IfStmt) error {
	cond, err := e.Eval(n.Condition)
	if err != nil {
		return err
	}
	if object.Truthy(cond) {
		return e.Execute(n.Then)
	}
	if n.Else != nil {
		return e.Execute(n.Else)
	}
	return nil
}

func (e *Evaluator) execWhile(n *ast.WhileStmt) error {
	for {
		cond, err := e.Eval(n.Condition)
		if err != nil {
			return err
		}
		if !object.Truthy(cond) {
			return nil
		}
		if err := e.Execute(n.Body); err != nil {
			return err
		}
	}
}

// execFor desugars the C-style for loop into its while-loop equivalent
// at evaluation time, as spec.md §4.3 requires - the AST keeps the
// clauses distinct (see ast.ForStmt), this is where they collapse.
func (e *Evaluator) execFor(n *ast.ForStmt) error {
	previous := e.env
	e.env = environment.New(previous)
	defer func() { e.env = previous }()

	if n.Init != nil {
		if err := e.Execute(n.Init); err != nil {
			return err
		}
	}

	for {
		if n.Condition != nil {
			cond, err := e.Eval(n.Condition)
			if err != nil {
				return err
			}
			if !object.Truthy(cond) {
				return nil
			}
		}
		if err := e.Execute(n.Body); err != nil {
			return err
		}
		if n.Update != nil {
			if _, err := e.Eval(n.Update); err != nil {
				return err
			}
		}
	}
}

// execFuncDecl binds name to a Function whose captured environment is
// the current frame itself - not a copy of it - so later mutations to
// enclosing variables remain visible inside the closure body.
func (e *Evaluator) execFuncDecl(n *ast.FuncStmt) error {
	fn := &object.Function{
		Name:   n.Name.Lexeme,
		Params: n.Params,
		Body:   n.Body,
		Env:    e.env,
	}
	e.env.Define(n.Name.Lexeme, fn)
	return nil
}

func (e *Evaluator) execReturn(n *ast.ReturnStmt) error {
	var value object.Value = object.Nil{}
	if n.Value != nil {
		v, err := e.Eval(n.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{Value: value}
}
