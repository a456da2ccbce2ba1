// Package repl runs the read-evaluate-print loop of the arith command.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/repr"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/arith"
)

// LineReader reads one line of input per call, without its line terminator.
// It returns io.EOF when there is no more input.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Session holds the display settings of a loop. The zero value evaluates in
// float64, prints every stage, formats results with %v, and keeps reading
// after errors.
type Session struct {
	// Out receives the display of each line.
	Out io.Writer
	// Err receives error reports. If nil, errors are reported to Out.
	Err io.Writer
	// Prompt is passed to the LineReader before each line.
	Prompt string
	// Format is the fmt verb for results, e.g. "%g".
	Format string
	// Prec is the precision in bits for arbitrary-precision evaluation. If it
	// is 0, expressions are evaluated in float64.
	Prec uint
	// Quiet suppresses the token and tree lines.
	Quiet bool
	// FailFast stops the loop at the first line with an error.
	FailFast bool
	// Parse is the list of options used to parse each line.
	Parse []arith.ParseOption

	ctx *arith.Context
}

// LineError is an error in one line of input.
type LineError struct {
	// Line is the 1-based number of the line.
	Line int
	// Err is the error.
	Err error
}

func (err *LineError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// Run reads lines from in until EOF and displays each one. Errors in lines are
// reported, and if s.FailFast is set, the first one stops the loop and is
// returned as a *LineError. Errors from in are returned unchanged.
func (s *Session) Run(in LineReader) error {
	for n := 1; ; n++ {
		line, err := in.Prompt(s.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				// Ctrl-C discards the line being edited.
				continue
			}
			return err
		}
		if err := s.Line(line); err != nil {
			s.report(err)
			if s.FailFast {
				return &LineError{Line: n, Err: err}
			}
		}
	}
}

// Line runs one line through the pipeline and displays each stage: the
// tokens, the tree, the reconstructed text, and the result.
func (s *Session) Line(line string) error {
	toks, err := arith.Tokenize(line)
	if err != nil {
		return err
	}
	if !s.Quiet {
		fmt.Fprintln(s.Out, "tokenstream:", repr.String(arith.Tokens(toks), repr.NoIndent()))
	}
	tree, err := arith.Parse(toks, s.Parse...)
	if err != nil {
		return err
	}
	if !s.Quiet {
		fmt.Fprintln(s.Out, "abstract syntax tree:", repr.String(tree, repr.NoIndent()))
	}
	fmt.Fprintln(s.Out, "reconstructed input:", arith.Render(tree))
	verb := s.Format
	if verb == "" {
		verb = "%v"
	}
	if s.Prec == 0 {
		fmt.Fprintf(s.Out, "= "+verb+"\n", arith.Eval(tree))
		return nil
	}
	if s.ctx == nil || s.ctx.Prec() != s.Prec {
		s.ctx = arith.NewContext(arith.Prec(s.Prec))
	}
	r := s.ctx.Eval(tree)
	if r == nil {
		return s.ctx.Err()
	}
	fmt.Fprintf(s.Out, "= "+verb+"\n", r)
	return nil
}

func (s *Session) report(err error) {
	w := s.Err
	if w == nil {
		w = s.Out
	}
	fmt.Fprintln(w, "error:", err)
}
