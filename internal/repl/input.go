package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// Lines reads newline-terminated lines from a stream. It never prints the
// prompt, so piped input produces only results.
type Lines struct {
	sc *bufio.Scanner
}

// MaxLine is the length in bytes of the longest line Lines reads.
const MaxLine = 16 << 20

// NewLines creates a LineReader over r.
func NewLines(r io.Reader) *Lines {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLine)
	return &Lines{sc: sc}
}

// Prompt returns the next line.
func (l *Lines) Prompt(string) (string, error) {
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(l.sc.Text(), "\r"), nil
}

// Args is a LineReader over a fixed list of lines, e.g. command-line
// arguments.
type Args []string

// Prompt returns the next line.
func (a *Args) Prompt(string) (string, error) {
	if len(*a) == 0 {
		return "", io.EOF
	}
	line := (*a)[0]
	*a = (*a)[1:]
	return line, nil
}

// Terminal is an interactive LineReader with line editing and history.
type Terminal struct {
	ln      *liner.State
	history string
}

// NewTerminal starts line editing on the process's terminal. If history is
// not empty, it names a file from which history is loaded now and to which it
// is saved by Close.
func NewTerminal(history string) *Terminal {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &Terminal{ln: ln, history: history}
}

// Prompt reads a line with editing. Non-empty lines are added to the history.
func (t *Terminal) Prompt(prompt string) (string, error) {
	line, err := t.ln.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		t.ln.AppendHistory(line)
	}
	return line, nil
}

// Close saves the history and restores the terminal.
func (t *Terminal) Close() error {
	if t.history != "" {
		if f, err := os.Create(t.history); err == nil {
			_, _ = t.ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return t.ln.Close()
}
