/*
File    : loxi/cmd/loxi/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the loxi interpreter. Unlike the
teacher's main package - which defaults to an interactive REPL server
(repl.NewRepl, chzyer/readline, a TCP `server <port>` mode) - this
driver has no REPL: it only ever runs one of the four file-based
commands below, since spec.md's Non-goals exclude an interactive
front-end entirely. Run is split out from main so it is directly
testable against captured stdout/stderr buffers instead of os.Stdout.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/loxi/ast"
	"github.com/akashmaji946/loxi/eval"
	"github.com/akashmaji946/loxi/lexer"
	"github.com/akashmaji946/loxi/parser"
	"github.com/fatih/color"
)

const (
	exitOK      = 0
	exitSyntax  = 65
	exitRuntime = 70
	exitUsage   = 64
)

func main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes one of the four commands (tokenize, parse, evaluate,
// run) against a source file and returns the process exit code,
// mirroring the {0, 65, 70} contract of spec.md §6.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		errColor(stderr).Fprintf(stderr, "Usage: loxi <tokenize|parse|evaluate|run> <filename>\n")
		return exitUsage
	}
	command, filename := args[0], args[1]

	src, err := os.ReadFile(filename)
	if err != nil {
		errColor(stderr).Fprintf(stderr, "Error reading file '%s': %v\n", filename, err)
		return exitUsage
	}

	switch command {
	case "tokenize":
		return runTokenize(string(src), stdout, stderr)
	case "parse":
		return runParse(string(src), stdout, stderr)
	case "evaluate":
		return runEvaluate(string(src), stdout, stderr)
	case "run":
		return runProgram(string(src), stdout, stderr)
	default:
		errColor(stderr).Fprintf(stderr, "Unknown command: %s\n", command)
		return exitUsage
	}
}

// errColor renders diagnostics in red, matching the teacher's redColor
// convention in repl/repl.go and main/main.go - repurposed here for
// one-shot CLI error output instead of a REPL session.
func errColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	if f, ok := w.(*os.File); !ok || !isTerminal(f) {
		c.DisableColor()
	}
	return c
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func runTokenize(src string, stdout, stderr io.Writer) int {
	lex := lexer.New(src)
	tokens := lex.Tokenize()
	for _, tok := range tokens {
		fmt.Fprintln(stdout, tok.String())
	}
	if lex.HasErrors() {
		for _, e := range lex.Errors() {
			errColor(stderr).Fprintln(stderr, e.Error())
		}
		return exitSyntax
	}
	return exitOK
}

func runParse(src string, stdout, stderr io.Writer) int {
	lex := lexer.New(src)
	tokens := lex.Tokenize()
	if lex.HasErrors() {
		for _, e := range lex.Errors() {
			errColor(stderr).Fprintln(stderr, e.Error())
		}
		return exitSyntax
	}

	p := parser.New(tokens)
	exprs := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			errColor(stderr).Fprintln(stderr, e.Error())
		}
		return exitSyntax
	}
	for _, e := range exprs {
		fmt.Fprintln(stdout, ast.Print(e))
	}
	return exitOK
}

func runEvaluate(src string, stdout, stderr io.Writer) int {
	lex := lexer.New(src)
	tokens := lex.Tokenize()
	if lex.HasErrors() {
		for _, e := range lex.Errors() {
			errColor(stderr).Fprintln(stderr, e.Error())
		}
		return exitSyntax
	}

	p := parser.New(tokens)
	exprs := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			errColor(stderr).Fprintln(stderr, e.Error())
		}
		return exitSyntax
	}

	ev := eval.New()
	ev.SetWriter(stdout)
	exitCode := exitOK
	for _, e := range exprs {
		value, err := ev.Eval(e)
		if err != nil {
			errColor(stderr).Fprintln(stderr, err.Error())
			exitCode = exitRuntime
			continue
		}
		fmt.Fprintln(stdout, value.Display())
	}
	return exitCode
}

func runProgram(src string, stdout, stderr io.Writer) int {
	lex := lexer.New(src)
	tokens := lex.Tokenize()
	if lex.HasErrors() {
		for _, e := range lex.Errors() {
			errColor(stderr).Fprintln(stderr, e.Error())
		}
		return exitSyntax
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			errColor(stderr).Fprintln(stderr, e.Error())
		}
		return exitSyntax
	}

	ev := eval.New()
	ev.SetWriter(stdout)
	if err := ev.ExecuteProgram(stmts); err != nil {
		errColor(stderr).Fprintln(stderr, err.Error())
		return exitRuntime
	}
	return exitOK
}
