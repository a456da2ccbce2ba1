// Package arith implements a calculator for plain arithmetic expressions.
//
// Expressions are numbers joined by the binary operators + - * / and ^, with
// subexpressions in brackets. Any of ( [ < { opens a group and any of ) ] > }
// closes the innermost one, so "{(2+3]*4>" is the same as "((2+3)*4)". Spaces
// are allowed anywhere, even inside numbers, and other text is ignored.
//
// Parsing splits a token sequence at its loosest operator: sums and
// differences bind loosest, then products and quotients, then powers. Equal
// operators group to the left, so "8-3-2" is 3 and "2^3^2" is 64. There are
// no unary operators; write "0-1" for minus one.
//
// Expressions evaluate either to a float64 with IEEE semantics, where 1/0 is
// +Inf and 0/0 is NaN, or to a *big.Float at a chosen precision using a
// Context, where such results are errors instead.
package arith
