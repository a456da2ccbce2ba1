package arith

// Parse builds an expression tree from a token sequence.
//
// The parser never looks ahead or keeps an operator stack. Instead, it finds
// the loosest-binding operator in the sequence, splits the sequence there, and
// parses each side recursively; a lone number becomes a literal and a lone
// group becomes a grouped node over its parsed content. Among operators of the
// same rank, the last one is the split point by default, so every chain of
// equal-rank operators groups from the left: "8-3-2" is (8-3)-2 and "2^3^2" is
// (2^3)^2.
//
// An empty sequence, including empty brackets or a missing operand, results in
// an *EmptyExpressionError. Two operands with no operator between them result
// in an *OperandError.
func Parse(tokens []Token, opts ...ParseOption) (*Node, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.rank == nil {
		p.rank = Priority
	}
	return p.parse(tokens, &EmptyExpressionError{})
}

// ParseString is a shortcut to tokenize and parse a string.
func ParseString(src string, opts ...ParseOption) (*Node, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts...)
}

// parse parses a token sequence. If the sequence is empty, the result is
// ifEmpty, which describes where the missing expression belongs.
func (p *parsectx) parse(toks []Token, ifEmpty *EmptyExpressionError) (*Node, error) {
	if len(toks) == 0 {
		return nil, ifEmpty
	}
	i := p.split(toks)
	tok := toks[i]
	switch tok.Kind {
	case TokenNumber:
		if len(toks) > 1 {
			return nil, operandError(toks)
		}
		return &Node{Kind: NodeLiteral, Value: tok.Value}, nil
	case TokenGroup:
		if len(toks) > 1 {
			return nil, operandError(toks)
		}
		inner, err := p.parse(tok.Group, &EmptyExpressionError{Col: tok.Pos})
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeGrouped, Left: inner}, nil
	}
	kind, ok := binaryNode[tok.Kind]
	if !ok {
		panic("arith: unknown token: " + tok.GoString())
	}
	op := Untokenize(toks[i : i+1])
	left, err := p.parse(toks[:i], &EmptyExpressionError{Col: tok.Pos, Op: op})
	if err != nil {
		return nil, err
	}
	right, err := p.parse(toks[i+1:], &EmptyExpressionError{Col: tok.Pos, Op: op, Right: true})
	if err != nil {
		return nil, err
	}
	return &Node{Kind: kind, Left: left, Right: right}, nil
}

// split returns the index of the token with the highest rank in a non-empty
// sequence, choosing the last such token unless p.first is set.
func (p *parsectx) split(toks []Token) int {
	k := 0
	max := p.rank(toks[0])
	for i := 1; i < len(toks); i++ {
		r := p.rank(toks[i])
		if r > max || r == max && !p.first {
			k, max = i, r
		}
	}
	return k
}

// operandError creates an error for a sequence of more than one token whose
// loosest-binding token is an operand.
func operandError(toks []Token) error {
	return &OperandError{Col: toks[1].Pos, Text: Untokenize(toks[1:2])}
}
