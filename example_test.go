package arith_test

import (
	"fmt"

	"github.com/zephyrtronium/arith"
)

func ExampleParseString() {
	a, _ := arith.ParseString("8-3-2")
	b, _ := arith.ParseString("{(2+3]*4>")
	c, _ := arith.ParseString("8-3-2", arith.SplitFirst())
	fmt.Printf("%v = %v\n", a, arith.Eval(a))
	fmt.Printf("%v = %v\n", b, arith.Eval(b))
	fmt.Printf("%#v = %v\n", *c, arith.Eval(c))

	// Output:
	// 8-3-2 = 3
	// ((2+3)*4) = 20
	// Sub(Literal(8), Sub(Literal(3), Literal(2))) = 7
}

func ExampleContext() {
	ctx := arith.NewContext(arith.Prec(32))
	a, _ := arith.ParseString("[2+3>*4")
	b, _ := arith.ParseString("0/0")
	fmt.Println(ctx.Eval(a))
	fmt.Println(ctx.Eval(b), ctx.Err())

	// Output:
	// 20
	// <nil> 0 outside domain of /
}
