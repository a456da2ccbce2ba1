package arith

import (
	"math"
	"strconv"
	"strings"
)

// Deparse flattens an expression tree back into the token sequence it was
// parsed from. Grouped nodes become groups; no other brackets are added. The
// resulting tokens have no positions.
func Deparse(n *Node) []Token {
	return n.deparse(nil)
}

func (n *Node) deparse(toks []Token) []Token {
	switch n.Kind {
	case NodeLiteral:
		return append(toks, Token{Kind: TokenNumber, Value: n.Value})
	case NodeGrouped:
		return append(toks, Token{Kind: TokenGroup, Group: n.Left.deparse(nil)})
	}
	op, ok := operatorToken[n.Kind]
	if !ok {
		panic("arith: invalid node kind " + n.Kind.String())
	}
	toks = n.Left.deparse(toks)
	toks = append(toks, Token{Kind: op})
	return n.Right.deparse(toks)
}

// Untokenize writes a token sequence as text. Every group is written in round
// brackets, whatever brackets it was read from.
func Untokenize(toks []Token) string {
	var b strings.Builder
	untokenize(&b, toks)
	return b.String()
}

func untokenize(b *strings.Builder, toks []Token) {
	for _, t := range toks {
		switch t.Kind {
		case TokenNumber:
			b.WriteString(formatNum(t.Value))
		case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenCaret:
			b.WriteByte(Operators[t.Kind-TokenPlus])
		case TokenGroup:
			b.WriteByte('(')
			untokenize(b, t.Group)
			b.WriteByte(')')
		default:
			panic("arith: invalid token kind " + t.Kind.String() + " after writing " + b.String())
		}
	}
}

// Render reconstructs the text of an expression tree. Tokenizing and parsing
// the result gives a tree equivalent to n, provided every literal in n is
// non-negative, as every literal the tokenizer produces is.
func Render(n *Node) string {
	return Untokenize(Deparse(n))
}

// infLiteral is the shortest literal that the tokenizer reads as +Inf.
var infLiteral = "1" + strings.Repeat("0", 309)

// formatNum formats a number in the shortest decimal form that reads back as
// the same value, without an exponent, since the tokenizer does not read
// exponents.
func formatNum(v float64) string {
	if math.IsInf(v, 1) {
		return infLiteral
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// debugNum formats a number for debug output.
func debugNum(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return formatNum(v)
}
