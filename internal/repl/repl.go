// Package repl implements an interactive Read-Eval-Print-Loop for the
// interpreter, in the shape of OPA's repl.Loop: a peterh/liner prompt with
// persisted history and multi-line buffering until an expression is
// complete.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/schemecore/r7scheme/pkg/evaluator"
	"github.com/schemecore/r7scheme/pkg/parser"
	"github.com/schemecore/r7scheme/pkg/types"
)

const (
	initPrompt   = "scheme> "
	bufferPrompt = "     .. "
)

// REPL holds the state carried between one input line and the next: the
// environment threaded across forms (so a `define` on one line is visible
// on the next, exactly like evalSequence across a whole program), any
// partially-typed multi-line buffer, and where history lives on disk.
type REPL struct {
	output      io.Writer
	env         *types.Environment
	buffer      []string
	historyPath string
	log         *logrus.Logger
}

// New returns a REPL with a fresh default environment.
func New(output io.Writer, historyPath string, verbose bool) *REPL {
	log := logrus.New()
	log.SetOutput(output)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &REPL{
		output:      output,
		env:         evaluator.DefaultEnvironment(),
		historyPath: historyPath,
		log:         log,
	}
}

// Loop runs the interactive prompt until EOF (ctrl-d) or a :quit command.
func (r *REPL) Loop() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	r.loadHistory(line)

	fmt.Fprintln(r.output, "r7scheme — a small exact-rational Scheme. :help for commands, ctrl-d to exit.")

	for {
		input, err := line.Prompt(r.prompt())
		if err == io.EOF {
			fmt.Fprintln(r.output)
			break
		}
		if err == liner.ErrPromptAborted {
			r.buffer = nil
			continue
		}
		if err != nil {
			fmt.Fprintln(r.output, "error (fatal):", err)
			os.Exit(1)
		}

		if len(r.buffer) == 0 {
			trimmed := strings.TrimSpace(input)
			if trimmed == ":quit" || trimmed == ":q" {
				line.AppendHistory(input)
				break
			}
			if r.handleCommand(trimmed) {
				line.AppendHistory(input)
				continue
			}
		}

		if r.OneShot(input) {
			break
		}
		line.AppendHistory(input)
	}

	r.saveHistory(line)
}

// OneShot feeds one more line of input into the pending buffer, and if the
// accumulated text forms a complete expression, evaluates it and prints the
// result or error. It reports whether the REPL should exit (a :quit
// command was entered mid-buffer is not possible, but kept for symmetry
// with OPA's stop-sentinel pattern).
func (r *REPL) OneShot(input string) bool {
	r.buffer = append(r.buffer, input)
	text := strings.Join(r.buffer, "\n")

	if strings.TrimSpace(text) == "" {
		r.buffer = nil
		return false
	}

	if !parser.Complete(text) {
		r.log.Debug("input incomplete, buffering")
		return false
	}
	r.buffer = nil

	expr, err := parser.Parse(text)
	if err != nil {
		fmt.Fprintln(r.output, err)
		return false
	}

	result, next, err := evaluator.Eval(expr, r.env)
	r.env = next
	if err != nil {
		fmt.Fprintln(r.output, err)
		return false
	}
	fmt.Fprintln(r.output, result.String())
	return false
}

func (r *REPL) prompt() string {
	if len(r.buffer) == 0 {
		return initPrompt
	}
	return bufferPrompt
}

func (r *REPL) handleCommand(trimmed string) bool {
	switch {
	case trimmed == "":
		return true
	case trimmed == ":help" || trimmed == ":h":
		fmt.Fprintln(r.output, "Commands: :help :quit :env")
		return true
	case trimmed == ":env":
		for _, name := range r.env.Names() {
			fmt.Fprintln(r.output, name)
		}
		return true
	}
	return false
}

func (r *REPL) loadHistory(line *liner.State) {
	if r.historyPath == "" {
		return
	}
	if f, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
}

func (r *REPL) saveHistory(line *liner.State) {
	if r.historyPath == "" || line == nil {
		return
	}
	if f, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}
