package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression: a number, a binary operator, or a
// bracketed group of tokens.
type Token struct {
	// Kind is the kind of the token.
	Kind TokenKind
	// Value is the value of a TokenNumber.
	Value float64
	// Group is the content of a TokenGroup.
	Group []Token
	// Pos is the position of the token's first rune in its input, counted in
	// runes from 1. It is 0 for tokens that were not produced by the
	// tokenizer.
	Pos int
}

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenPlus is the + operator.
	TokenPlus
	// TokenMinus is the - operator.
	TokenMinus
	// TokenStar is the * operator.
	TokenStar
	// TokenSlash is the / operator.
	TokenSlash
	// TokenCaret is the ^ operator.
	TokenCaret
	// TokenGroup is a bracketed sequence of tokens.
	TokenGroup
)

var tokenKindNames = [...]string{
	TokenNone:   "None",
	TokenNumber: "Number",
	TokenPlus:   "Plus",
	TokenMinus:  "Minus",
	TokenStar:   "Star",
	TokenSlash:  "Slash",
	TokenCaret:  "Caret",
	TokenGroup:  "Group",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are binary operators, in the order of
// TokenPlus through TokenCaret.
const Operators = "+-*/^"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// Unlike many notations, any close bracket closes the innermost open bracket
// regardless of its shape.
const (
	OpenBrackets  = "([<{"
	CloseBrackets = ")]>}"
)

// GoString formats the token in its tagged debug form, e.g. Number(2) or
// Group[Number(1), Plus, Number(2)].
func (t Token) GoString() string {
	var b strings.Builder
	t.debug(&b)
	return b.String()
}

func (t Token) debug(b *strings.Builder) {
	switch t.Kind {
	case TokenNumber:
		b.WriteString("Number(")
		b.WriteString(debugNum(t.Value))
		b.WriteByte(')')
	case TokenGroup:
		b.WriteString("Group")
		Tokens(t.Group).debug(b)
	default:
		b.WriteString(t.Kind.String())
	}
}

// Tokens is a token sequence.
type Tokens []Token

// GoString formats the sequence in the same tagged form as a group's
// contents, e.g. [Group[Number(1), Plus, Number(2)], Star, Number(3)].
func (s Tokens) GoString() string {
	var b strings.Builder
	s.debug(&b)
	return b.String()
}

func (s Tokens) debug(b *strings.Builder) {
	b.WriteByte('[')
	for i, t := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		t.debug(b)
	}
	b.WriteByte(']')
}

// frame is an in-progress bracket group. The bottom frame of the lexer's stack
// is the top-level sequence and has no open bracket.
type frame struct {
	open rune
	pos  int
	toks []Token
}

type lexer struct {
	src io.RuneScanner
	// buf holds the pending numeric literal, which starts at column start.
	buf   strings.Builder
	start int
	rune  int
	stack []frame
}

// Lex tokenizes an expression read from src until EOF. Whitespace is skipped,
// runes that are neither digits, decimal points, operators, nor brackets are
// ignored, and brackets are resolved into nested TokenGroup tokens.
//
// A numeric literal that is not a valid number results in a *LexError. A close
// bracket with no open bracket, or an open bracket that is never closed,
// results in a *BracketError. Errors reading src are returned unchanged.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src, stack: []frame{{}}}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch {
		case unicode.IsSpace(r):
			// Spaces do not end numbers.
			continue
		case '0' <= r && r <= '9', r == '.':
			if l.buf.Len() == 0 {
				l.start = l.rune
			}
			l.buf.WriteRune(r)
			continue
		}
		if err := l.flush(); err != nil {
			return nil, err
		}
		if k := strings.IndexRune(Operators, r); k >= 0 {
			l.emit(Token{Kind: TokenPlus + TokenKind(k), Pos: l.rune})
			continue
		}
		if strings.ContainsRune(OpenBrackets, r) {
			l.stack = append(l.stack, frame{open: r, pos: l.rune})
			continue
		}
		if strings.ContainsRune(CloseBrackets, r) {
			if len(l.stack) == 1 {
				return nil, &BracketError{Col: l.rune, Right: string(r)}
			}
			f := l.stack[len(l.stack)-1]
			l.stack = l.stack[:len(l.stack)-1]
			l.emit(Token{Kind: TokenGroup, Group: f.toks, Pos: f.pos})
		}
		// Anything else is ignored.
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	if len(l.stack) > 1 {
		f := l.stack[len(l.stack)-1]
		return nil, &BracketError{Col: f.pos, Left: string(f.open)}
	}
	return l.stack[0].toks, nil
}

// Tokenize is a shortcut to tokenize a string.
func Tokenize(text string) ([]Token, error) {
	return Lex(strings.NewReader(text))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// emit appends a token to the innermost open sequence.
func (l *lexer) emit(tok Token) {
	f := &l.stack[len(l.stack)-1]
	f.toks = append(f.toks, tok)
}

// flush emits the pending numeric literal, if there is one.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	defer l.buf.Reset()
	text := l.buf.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Literals too large for a float64 are infinite, but anything else
		// is not a number at all.
		return &LexError{Text: text, Kind: "number", Col: l.start}
	}
	l.emit(Token{Kind: TokenNumber, Value: v, Pos: l.start})
	return nil
}
