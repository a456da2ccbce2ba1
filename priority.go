package arith

// Ranks of token kinds. The parser splits an expression on the operators with
// the highest rank first, so a higher rank binds more loosely.
const (
	RankNumber  = 0
	RankGroup   = 1
	RankPower   = 2
	RankProduct = 3
	RankSum     = 4
)

// Priority returns the rank of a token.
func Priority(t Token) int {
	switch t.Kind {
	case TokenPlus, TokenMinus:
		return RankSum
	case TokenStar, TokenSlash:
		return RankProduct
	case TokenCaret:
		return RankPower
	case TokenGroup:
		return RankGroup
	case TokenNumber:
		return RankNumber
	default:
		panic("arith: no priority for token kind " + t.Kind.String())
	}
}
