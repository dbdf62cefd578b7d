package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lux/interpret"
	"lux/parse"
	"lux/scan"
)

func main() {
	args := os.Args[1:]
	switch len(args) {
	case 0:
		runPrompt()
	case 1:
		runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lux [script]")
		os.Exit(64)
	}
}

func runFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lux: %v\n", err)
		os.Exit(1)
	}

	r := newRunner(os.Stdout, os.Stderr)
	hadError, hadRuntimeError := r.run(string(file))
	if hadError {
		os.Exit(65)
	}
	if hadRuntimeError {
		os.Exit(70)
	}
}

func runPrompt() {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	// one runner for the whole session, so variables persist across lines
	r := newRunner(os.Stdout, os.Stderr)

	for {
		input, err := state.Prompt("lux> ")
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}

		line := strings.TrimSpace(input)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		state.AppendHistory(line)
		r.run(input)
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lux_history")
}

type runner struct {
	interpreter *interpret.Interpreter
	stdErr      io.Writer
}

func newRunner(stdOut io.Writer, stdErr io.Writer) runner {
	return runner{interpreter: interpret.NewInterpreter(stdOut, stdErr), stdErr: stdErr}
}

// run scans, parses, and interprets a source text. If scanning or
// parsing produced any errors, every one of them is reported and the
// program is not executed.
func (r runner) run(source string) (hadError, hadRuntimeError bool) {
	scanner := scan.NewScanner(source)
	tokens, scanErrs := scanner.ScanTokens()
	for _, err := range scanErrs {
		fmt.Fprintln(r.stdErr, err)
	}

	parser := parse.NewParser(tokens)
	statements, parseErrs := parser.Parse()
	for _, err := range parseErrs {
		fmt.Fprintln(r.stdErr, err)
	}

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return true, false
	}

	return false, r.interpreter.Interpret(statements)
}
