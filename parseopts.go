package arith

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	rankopt  func(Token) int
	splitopt bool
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// rank is the precedence policy. Nil means Priority.
	rank func(Token) int
	// first indicates splitting on the first operator of the loosest tier
	// rather than the last.
	first bool
}

// Ranking sets the precedence policy for parsing. The parser splits a sequence
// on the token with the highest rank, so rank must give every operator a
// higher rank than every number and group. Passing nil restores Priority.
func Ranking(rank func(Token) int) ParseOption {
	return rankopt(rank)
}

func (o rankopt) parseOption(p parsectx) parsectx {
	p.rank = o
	return p
}

// SplitFirst tells the parser to split a sequence on the first operator of the
// loosest tier instead of the last. This groups chains of operators of equal
// rank from the right, so that "8-3-2" is 8-(3-2) and "2^3^2" is 2^(3^2).
func SplitFirst() ParseOption {
	return splitopt(true)
}

func (o splitopt) parseOption(p parsectx) parsectx {
	p.first = bool(o)
	return p
}

// ParsingPreset creates a parsing preset that may be more efficient when using
// the same non-default parsing options for many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.rank != nil || p.first {
		panic("arith: preset applied to non-default parse config")
	}
	return *o
}
