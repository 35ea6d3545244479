// r7scheme — a small exact-rational Scheme interpreter.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schemecore/r7scheme/internal/repl"
	"github.com/schemecore/r7scheme/pkg/evaluator"
	"github.com/schemecore/r7scheme/pkg/parser"
)

var (
	flagVerbose = flag.Bool("verbose", false, "Enable verbose REPL debug logging")
	flagHistory = flag.String("history", defaultHistoryPath(), "REPL history file (empty disables history)")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 {
		for _, filename := range args {
			if err := runFile(filename); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	repl.New(os.Stdout, *flagHistory, *flagVerbose).Loop()
}

func runFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	exprs, err := parser.ParseProgram(string(data))
	if err != nil {
		return fmt.Errorf("parse error in %s: %w", filename, err)
	}

	env := evaluator.DefaultEnvironment()
	_, _, err = evaluator.EvalSequence(exprs, env)
	if err != nil {
		return fmt.Errorf("runtime error in %s: %w", filename, err)
	}
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".r7scheme_history")
}
