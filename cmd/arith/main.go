package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/repl"
)

var cli struct {
	Prec       uint     `short:"p" default:"0" help:"Precision of calculations in bits. 0 evaluates in float64."`
	Fmt        string   `default:"%g" help:"Result formatting verb."`
	Quiet      bool     `short:"q" help:"Print only the reconstructed input and the result."`
	FailFast   bool     `help:"Stop at the first line that fails to evaluate."`
	SplitFirst bool     `help:"Group chains of operators with equal precedence from the right."`
	Prompt     string   `default:"> " help:"Interactive prompt."`
	History    string   `default:"~/.arith_history" type:"path" help:"Interactive history file. Empty disables history."`
	Expr       []string `arg:"" optional:"" help:"Expressions to evaluate. If none are given, expressions are read from stdin, one per line."`
}

func main() {
	log.SetFlags(0)
	kctx := kong.Parse(&cli, kong.Name("arith"), kong.Description(`
Evaluate arithmetic expressions of numbers, + - * / ^, and brackets of any of
the shapes () [] <> {}. Each expression is printed as tokens, as a parse tree,
reconstructed from the tree, and evaluated.
`), kong.UsageOnError())

	s := repl.Session{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Prompt:   cli.Prompt,
		Format:   cli.Fmt,
		Prec:     cli.Prec,
		Quiet:    cli.Quiet,
		FailFast: cli.FailFast,
	}
	if cli.SplitFirst {
		s.Parse = append(s.Parse, arith.SplitFirst())
	}

	var in repl.LineReader
	switch {
	case len(cli.Expr) > 0:
		args := repl.Args(cli.Expr)
		in = &args
	case interactive(os.Stdin):
		t := repl.NewTerminal(cli.History)
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sigc)
		go func() {
			<-sigc
			t.Close()
			os.Exit(130)
		}()
		in = t
	default:
		in = repl.NewLines(os.Stdin)
	}

	err := s.Run(in)
	if t, ok := in.(*repl.Terminal); ok {
		t.Close()
	}
	if err == nil {
		return
	}
	if errors.As(err, new(*repl.LineError)) {
		// The session already reported it.
		os.Exit(1)
	}
	kctx.FatalIfErrorf(err)
}

// interactive reports whether f is a terminal.
func interactive(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		log.Fatal(err)
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
