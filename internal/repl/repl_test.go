package repl

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestSessionGolden(t *testing.T) {
	in, err := os.ReadFile(filepath.Join("testdata", "quiet.input"))
	require.NoError(t, err)
	var out bytes.Buffer
	s := Session{Out: &out, Format: "%g", Quiet: true}
	require.NoError(t, s.Run(NewLines(bytes.NewReader(in))))
	g := goldie.New(t)
	g.Assert(t, "quiet", out.Bytes())
}

func TestSessionStages(t *testing.T) {
	var out, errs bytes.Buffer
	s := Session{Out: &out, Err: &errs}
	require.NoError(t, s.Line("8-3-2"))
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "tokenstream: [Number(8), Minus, Number(3), Minus, Number(2)]\n"), "%q", text)
	assert.NotContains(t, text, "arith.Token")
	assert.Contains(t, text, "\nabstract syntax tree: ")
	assert.Less(t, strings.Index(text, "tokenstream:"), strings.Index(text, "abstract syntax tree:"))
	assert.True(t, strings.HasSuffix(text, "\nreconstructed input: 8-3-2\n= 3\n"), "%q", text)
	assert.Empty(t, errs.String())
}

func TestSessionErrorStages(t *testing.T) {
	var out, errs bytes.Buffer
	s := Session{Out: &out, Err: &errs}

	// Tokenizing fails before anything is printed.
	err := s.Line("(1")
	assert.True(t, arith.IsFormatError(err))
	assert.Empty(t, out.String())

	// Parsing fails after the tokens are printed.
	err = s.Line("1+")
	assert.True(t, arith.IsStructuralError(err))
	assert.True(t, strings.HasPrefix(out.String(), "tokenstream: "), "%q", out.String())
	assert.NotContains(t, out.String(), "abstract syntax tree:")

	// Errors are returned, not reported, by Line.
	assert.Empty(t, errs.String())
}

func TestSessionReportsToErr(t *testing.T) {
	var out, errs bytes.Buffer
	s := Session{Out: &out, Err: &errs, Quiet: true}
	lines := Args{"1+1", "1+", "2*2"}
	require.NoError(t, s.Run(&lines))
	assert.Equal(t, "reconstructed input: 1+1\n= 2\nreconstructed input: 2*2\n= 4\n", out.String())
	assert.Equal(t, "error: 2: no expression after \"+\"\n", errs.String())
	assert.Empty(t, lines)
}

func TestSessionFailFast(t *testing.T) {
	var out bytes.Buffer
	s := Session{Out: &out, Quiet: true, FailFast: true}
	lines := Args{"1+1", "2*(3", "4"}
	err := s.Run(&lines)
	require.Error(t, err)
	var lerr *LineError
	require.True(t, errors.As(err, &lerr), "%#v is not a *LineError", err)
	assert.Equal(t, 2, lerr.Line)
	assert.True(t, arith.IsFormatError(err))
	assert.Equal(t, `line 2: 3: open bracket ( with no close bracket`, err.Error())
	// The line after the error is never read.
	assert.Equal(t, Args{"4"}, lines)
	assert.NotContains(t, out.String(), "= 4")
}

func TestSessionPrec(t *testing.T) {
	var out bytes.Buffer
	s := Session{Out: &out, Quiet: true, Prec: 128}
	require.NoError(t, s.Line("1+2"))
	assert.Equal(t, "reconstructed input: 1+2\n= 3\n", out.String())

	err := s.Line("0/0")
	var derr *arith.DomainError
	assert.True(t, errors.As(err, &derr), "%#v is not a *arith.DomainError", err)

	out.Reset()
	s.Prec = 64
	s.Format = "%.3f"
	require.NoError(t, s.Line("1/8"))
	assert.Equal(t, "reconstructed input: 1/8\n= 0.125\n", out.String())
}

func TestSessionParseOptions(t *testing.T) {
	var out bytes.Buffer
	s := Session{Out: &out, Quiet: true, Parse: []arith.ParseOption{arith.SplitFirst()}}
	require.NoError(t, s.Line("8-3-2"))
	assert.Equal(t, "reconstructed input: 8-3-2\n= 7\n", out.String())
}

type readerFunc func(string) (string, error)

func (f readerFunc) Prompt(p string) (string, error) {
	return f(p)
}

func TestSessionReadError(t *testing.T) {
	bad := errors.New("read failed")
	var prompts []string
	calls := 0
	in := readerFunc(func(p string) (string, error) {
		prompts = append(prompts, p)
		calls++
		if calls == 1 {
			return "5", nil
		}
		return "", bad
	})
	var out bytes.Buffer
	s := Session{Out: &out, Prompt: "> ", Quiet: true}
	err := s.Run(in)
	assert.Same(t, bad, err)
	assert.Equal(t, []string{"> ", "> "}, prompts)
	assert.Equal(t, "reconstructed input: 5\n= 5\n", out.String())
}

func TestLines(t *testing.T) {
	l := NewLines(strings.NewReader("1+2\r\n\n3*4"))
	var got []string
	for {
		line, err := l.Prompt("ignored")
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, line)
	}
	assert.Equal(t, []string{"1+2", "", "3*4"}, got)
}

func TestLinesLong(t *testing.T) {
	// Longer than bufio.MaxScanTokenSize.
	long := "1" + strings.Repeat(" ", 100<<10) + "+2"
	var out bytes.Buffer
	s := Session{Out: &out, Quiet: true}
	require.NoError(t, s.Run(NewLines(strings.NewReader(long+"\n3*4\n"))))
	assert.Equal(t, "reconstructed input: 1+2\n= 3\nreconstructed input: 3*4\n= 12\n", out.String())
}

func TestArgs(t *testing.T) {
	a := Args{"1", "2"}
	line, err := a.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "1", line)
	line, err = a.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "2", line)
	_, err = a.Prompt("")
	assert.Equal(t, io.EOF, err)
}
