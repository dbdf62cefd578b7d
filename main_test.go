package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stdOut string
	}{
		// atoms
		{"string", "print \"hello world\";", "hello world\n"},
		{"number", "print 342.32461932591235;", "342.32461932591235\n"},
		{"string as boolean", "print \"\" and 34;", "34\n"},
		{"nil as boolean", "print nil and 34;", "nil\n"},

		// comments
		{"single-line comment after source", "print 1 + 1; // hello", "2\n"},
		{"single-line comment", `// hello
print 1 + 1;`, "2\n"},

		// unary and binary operations
		{"arithmetic operations", "print -1 + 2 * 3 - 4 / 5;", "4.2\n"},
		{"logical operations", "print (!true or false) and false;", "false\n"},
		{"string concatenation", "print \"hello\" + \" \" + \"world\";", "hello world\n"},
		{"equal to", "print 5 == 5; print 4 == 5;", "true\nfalse\n"},
		{"not equal to", "print 4 != 5; print 5 != 5;", "true\nfalse\n"},

		// variables
		{"variable declaration", "var a = 10; print a*2;", "20\n"},
		{"variable assignment after declaration", "var a; a = 20; print a*2;", "40\n"},
		{"variable re-assignment", "var a = 10; print a; a = 20; print a*2;", "10\n40\n"},

		// block scoping
		{"block scoping", `var a = "global a";
var b = "global b";
var c = "global c";
{
    var a = "outer a";
    var b = "outer b";
    {
        var a = "inner a";
        print a;
        print b;
        print c;
    }
    print a;
    print b;
    print c;
}
print a;
print b;
print c;`, "inner a\nouter b\nglobal c\nouter a\nouter b\nglobal c\nglobal a\nglobal b\nglobal c\n"},

		// conditionals
		{"if block", "if (true) { if (false) { print \"hello\"; } else { print \"world\"; } }", "world\n"},
		{"zero is truthy", "if (0) print \"a\"; else print \"b\";", "a\n"},

		// loops
		{"for loop", `var a = 0;
var temp;

for (var b = 1; a < 10; b = temp + b) {
    print a;
    temp = a;
    a = b;
}`, "0\n1\n1\n2\n3\n5\n8\n"},
		{"while loop", `var a = 0;
var temp;
var b = 1;

while (a < 10) {
    print a;
    temp = a;
    a = b;
    b = temp + b;
}`, "0\n1\n1\n2\n3\n5\n8\n"},
		{"counting for loop", "for (var i = 0; i < 4; i = i + 1) { print i; }", "0\n1\n2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdOut := &bytes.Buffer{}
			stdErr := &bytes.Buffer{}

			r := newRunner(stdOut, stdErr)
			hadError, hadRuntimeError := r.run(tt.source)

			if hadError || hadRuntimeError {
				t.Fatalf("errors: %s", stdErr)
			}
			if stdOut.String() != tt.stdOut {
				t.Fatalf("stdOut: got %q, expected %q", stdOut, tt.stdOut)
			}
		})
	}
}

func TestRunReportsAllSyntaxErrors(t *testing.T) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}

	r := newRunner(stdOut, stdErr)
	hadError, hadRuntimeError := r.run("var 1 = 2;\nprint 3;\nprint ;\n")

	if !hadError {
		t.Fatal("expected syntax errors")
	}
	if hadRuntimeError {
		t.Fatal("program must not run with syntax errors")
	}
	if stdOut.Len() != 0 {
		t.Errorf("stdOut: got %q, expected no output", stdOut)
	}

	lines := strings.Split(strings.TrimSuffix(stdErr.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("stdErr: got %d lines (%q), expected 2", len(lines), stdErr)
	}
	if !strings.HasPrefix(lines[0], "[line 1]") {
		t.Errorf("first error: got %q, expected line 1", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[line 3]") {
		t.Errorf("second error: got %q, expected line 3", lines[1])
	}
}

func TestRunReportsLexAndSyntaxErrorsTogether(t *testing.T) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}

	r := newRunner(stdOut, stdErr)
	hadError, _ := r.run("var a = @;\nprint ;\n")

	if !hadError {
		t.Fatal("expected errors")
	}
	if !strings.Contains(stdErr.String(), "Unexpected character.") {
		t.Errorf("stdErr missing lex error: %q", stdErr)
	}
	if !strings.Contains(stdErr.String(), "Expect expression.") {
		t.Errorf("stdErr missing syntax error: %q", stdErr)
	}
	if stdOut.Len() != 0 {
		t.Errorf("stdOut: got %q, expected no output", stdOut)
	}
}

func TestRunRuntimeError(t *testing.T) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}

	r := newRunner(stdOut, stdErr)
	hadError, hadRuntimeError := r.run("x = 5;")

	if hadError {
		t.Fatal("unexpected syntax error")
	}
	if !hadRuntimeError {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(stdErr.String(), "Undefined variable 'x'.") {
		t.Errorf("stdErr: got %q", stdErr)
	}
}

func TestRunnerKeepsStateAcrossRuns(t *testing.T) {
	stdOut := &bytes.Buffer{}
	r := newRunner(stdOut, &bytes.Buffer{})

	r.run("var a = 1;")
	r.run("a = a + 1;")
	r.run("print a;")

	if stdOut.String() != "2\n" {
		t.Errorf("stdOut: got %q, expected %q", stdOut, "2\n")
	}
}
