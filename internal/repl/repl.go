// Package repl implements the interactive Spearmint shell: the same
// lex/parse/evaluate pipeline as `spearmint run`, wrapped in a readline loop
// that reproduces the original driver's prompt, banner, and diagnostics.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/jeje1197/spearmint/internal/builtins"
	"github.com/jeje1197/spearmint/internal/eval"
	"github.com/jeje1197/spearmint/internal/host"
	"github.com/jeje1197/spearmint/pkg/parser"
)

const (
	banner    = "----- Spearmint Interpreter -----"
	usageHint = "Type '-e' or '-exit' to close the shell."
	prompt    = "\nSpearmint>"
)

// REPL drives the interactive shell over a readline.Instance.
type REPL struct {
	out *readline.Instance
	h   host.Host
}

// New builds a REPL writing to stdout/stderr and reading from stdin.
func New() (*REPL, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, err
	}
	// readline.Instance only multiplexes line input through Readline() for
	// the shell prompt itself; the interpreted program's input() built-in
	// reads stdin directly, same as cmd/spearmint's `run`/`eval`.
	h := host.NewStdio(rl.Stdout(), os.Stdin, os.Exit)
	return &REPL{out: rl, h: h}, nil
}

// Run prints the welcome banner and loops reading lines until -e/-exit or EOF.
func (r *REPL) Run() error {
	defer r.out.Close()

	fmt.Fprintln(r.out.Stdout(), banner)
	fmt.Fprintln(r.out.Stdout(), usageHint)

	for {
		line, err := r.out.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "-e" || line == "-exit" {
			return nil
		}
		if strings.HasPrefix(line, "-r ") {
			filename := strings.TrimPrefix(line, "-r ")
			if filename == "" {
				continue
			}
			text, err := os.ReadFile(filename)
			if err != nil {
				fmt.Fprintf(r.out.Stdout(), "File: '%s' not found.", filename)
				continue
			}
			r.runSource(filename, string(text))
			continue
		}

		r.runSource("Console", line)
	}
}

// runSource lexes, parses, and evaluates one unit of source text, printing
// elapsed wall time on success and a colored "Exception: ..." on failure.
func (r *REPL) runSource(filename, input string) {
	start := time.Now()

	program, err := parser.Parse(filename, input)
	if err != nil {
		r.showError(err)
		return
	}

	e := eval.New(r.h, builtins.Register)
	if _, err := e.Run(program); err != nil {
		r.showError(err)
		return
	}

	elapsed := time.Since(start)
	fmt.Fprintf(r.out.Stdout(), "Program Time Elapsed: %dms\n", elapsed.Milliseconds())
}

func (r *REPL) showError(err error) {
	msg := fmt.Sprintf("Exception: %s", err.Error())
	if color.NoColor {
		fmt.Fprintln(r.out.Stdout(), msg)
		return
	}
	color.New(color.FgRed).Fprintln(r.out.Stdout(), msg)
}
