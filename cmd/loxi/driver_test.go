/*
File    : loxi/cmd/loxi/driver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "program.lox")
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func runCapture(t *testing.T, command, src string) (string, string, int) {
	t.Helper()
	path := writeTempSource(t, src)
	var stdout, stderr bytes.Buffer
	code := Run([]string{command, path}, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRun_TokenizeSimplePunctuation(t *testing.T) {
	stdout, stderr, code := runCapture(t, "tokenize", "(( ))")
	assert.Equal(t, "", stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "LEFT_PAREN ( null\nLEFT_PAREN ( null\nRIGHT_PAREN ) null\nRIGHT_PAREN ) null\nEOF  null\n", stdout)
}

func TestRun_TokenizeLexError(t *testing.T) {
	_, stderr, code := runCapture(t, "tokenize", "@")
	assert.Equal(t, 65, code)
	assert.Contains(t, stderr, "Unexpected character: @")
}

func TestRun_ParsePrintsParenthesizedForm(t *testing.T) {
	stdout, stderr, code := runCapture(t, "parse", "1 + 2")
	assert.Equal(t, "", stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "(+ 1.0 2.0)\n", stdout)
}

func TestRun_ParseSyntaxError(t *testing.T) {
	_, stderr, code := runCapture(t, "parse", "(1 + 2")
	assert.Equal(t, 65, code)
	assert.Contains(t, stderr, "Expect ')' after expression.")
}

func TestRun_EvaluatePrintsDisplayForm(t *testing.T) {
	stdout, stderr, code := runCapture(t, "evaluate", "1 + 2")
	assert.Equal(t, "", stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", stdout)
}

func TestRun_EvaluateRuntimeError(t *testing.T) {
	_, stderr, code := runCapture(t, "evaluate", `"x" + 1`)
	assert.Equal(t, 70, code)
	assert.Contains(t, stderr, "Operands must be two numbers or two strings.")
}

func TestRun_RunProgramPrintsOutput(t *testing.T) {
	stdout, stderr, code := runCapture(t, "run", `print 1 + 2;`)
	assert.Equal(t, "", stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", stdout)
}

func TestRun_RunBlockScoping(t *testing.T) {
	stdout, _, code := runCapture(t, "run", `var a = 1; { var a = 2; print a; } print a;`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "2\n1\n", stdout)
}

func TestRun_RunForLoop(t *testing.T) {
	stdout, _, code := runCapture(t, "run", `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "0\n1\n2\n", stdout)
}

func TestRun_RunClosureCounter(t *testing.T) {
	src := `fun make() { var x = 0; fun inc() { x = x + 1; return x; } return inc; } var c = make(); print c(); print c();`
	stdout, _, code := runCapture(t, "run", src)
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n2\n", stdout)
}

func TestRun_RunUndefinedVariable(t *testing.T) {
	_, stderr, code := runCapture(t, "run", `print a;`)
	assert.Equal(t, 70, code)
	assert.Contains(t, stderr, "Undefined variable 'a'.")
}

func TestRun_MissingArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"run"}, &stdout, &stderr)
	assert.NotEqual(t, 0, code)
}
