package arith

import (
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Eval computes the value of an expression tree in float64 arithmetic.
// Division by zero, powers of negative numbers, and similar cases follow
// IEEE-754 and produce infinities or NaN rather than errors.
func Eval(n *Node) float64 {
	switch n.Kind {
	case NodeLiteral:
		return n.Value
	case NodeAdd:
		return Eval(n.Left) + Eval(n.Right)
	case NodeSub:
		return Eval(n.Left) - Eval(n.Right)
	case NodeMul:
		return Eval(n.Left) * Eval(n.Right)
	case NodeDiv:
		return Eval(n.Left) / Eval(n.Right)
	case NodePow:
		return math.Pow(Eval(n.Left), Eval(n.Right))
	case NodeGrouped:
		return Eval(n.Left)
	default:
		panic("arith: invalid AST node " + n.Kind.String())
	}
}

// EvalString is a shortcut to tokenize, parse, and evaluate a string.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	n, err := ParseString(src, opts...)
	if err != nil {
		return 0, err
	}
	return Eval(n), nil
}

// Context is a context for evaluating expressions in arbitrary precision. It
// is not safe to use a Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an operation has no
// numeric result, e.g. 0/0 or inf-inf, then the result is nil and ctx.Err
// returns a *DomainError. The result may be modified by the next evaluation.
func (ctx *Context) Eval(n *Node) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		// An earlier evaluation failed partway.
		ctx.stack = ctx.stack[:0]
	}
	err := n.eval(ctx)
	ctx.err = err
	if err != nil {
		return nil
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("arith: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("arith: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			n.prec = uint(opt)
		default:
			panic("arith: unknown option type")
		}
	}
	// Cached literals are reusable only if they have enough precision.
	if n.prec <= ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).SetPrec(n.prec).Set(v)
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from a literal value. The value is read
// back from its shortest decimal form so that e.g. 0.1 is 0.1 to the full
// precision of the context rather than the nearest float64.
func (ctx *Context) num(v float64) *big.Float {
	if math.IsInf(v, 0) {
		return new(big.Float).SetInf(v < 0)
	}
	s := formatNum(v)
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		panic("arith: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

// eval pushes the node's value to the context's stack.
func (n *Node) eval(ctx *Context) error {
	switch n.Kind {
	case NodeLiteral:
		ctx.push().Set(ctx.num(n.Value))
		return nil
	case NodeGrouped:
		return n.Left.eval(ctx)
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodePow:
		// binary; handled below
	default:
		panic("arith: invalid AST node " + n.Kind.String())
	}
	if err := n.Left.eval(ctx); err != nil {
		return err
	}
	if err := n.Right.eval(ctx); err != nil {
		return err
	}
	r := ctx.pop()
	l := ctx.top()
	switch n.Kind {
	case NodeAdd:
		// Guard against inf + -inf.
		if l.IsInf() && r.IsInf() && l.Signbit() != r.Signbit() {
			return &DomainError{X: new(big.Float).Copy(r), Op: "+"}
		}
		l.Add(l, r)
	case NodeSub:
		if l.IsInf() && r.IsInf() && l.Signbit() == r.Signbit() {
			return &DomainError{X: new(big.Float).Copy(r), Op: "-"}
		}
		l.Sub(l, r)
	case NodeMul:
		if l.IsInf() && r.Sign() == 0 || l.Sign() == 0 && r.IsInf() {
			return &DomainError{X: new(big.Float).Copy(r), Op: "*"}
		}
		l.Mul(l, r)
	case NodeDiv:
		// Guard against invalid divisions, 0/0 or inf/inf.
		if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return &DomainError{X: new(big.Float).Copy(r), Op: "/"}
		}
		l.Quo(l, r)
	case NodePow:
		return pow(l, r)
	}
	return nil
}

// pow sets l to l^r. The special cases follow math.Pow, except that a negative
// base requires a finite integer exponent.
func pow(l, r *big.Float) error {
	switch {
	case r.Sign() == 0:
		l.SetInt64(1)
	case l.Sign() < 0:
		// Negative bases have real powers only for integer exponents.
		if !r.IsInt() {
			return &DomainError{X: new(big.Float).Copy(l), Op: "^"}
		}
		k, _ := r.Int(nil)
		odd := k.Bit(0) == 1
		l.Neg(l)
		if err := pow(l, r); err != nil {
			return err
		}
		if odd {
			l.Neg(l)
		}
	case l.Sign() == 0:
		if r.Sign() < 0 {
			l.SetInf(false)
		} else {
			l.SetInt64(0)
		}
	case l.IsInf():
		if r.Sign() < 0 {
			l.SetInt64(0)
		}
		// Otherwise l stays +inf.
	case r.IsInf():
		switch c := l.Cmp(big.NewFloat(1)); {
		case c == 0: // 1^±inf = 1
		case (c > 0) == (r.Sign() > 0):
			l.SetInf(false)
		default:
			l.SetInt64(0)
		}
	default:
		// Pow may return a different value than its receiver.
		l.Set(bigfloat.Pow(new(big.Float).SetPrec(l.Prec()), l, r))
	}
	return nil
}

// EvalBig is a shortcut to tokenize, parse, and evaluate an expression in
// arbitrary precision.
func EvalBig(src io.RuneScanner, opts ...ContextOption) (*big.Float, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	n, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	ctx.Eval(n)
	return ctx.Result(), ctx.Err()
}

// EvalBigString is a shortcut to evaluate a string expression in arbitrary
// precision.
func EvalBigString(src string, opts ...ContextOption) (*big.Float, error) {
	n, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	ctx.Eval(n)
	return ctx.Result(), ctx.Err()
}
