package lazycalc_test

import (
	"fmt"

	"github.com/annkamsk/lazycalc"
)

func ExampleRegistry_RegisterOperator() {
	c := lazycalc.New()
	reg := c.Registry()

	// An operator receives its operands as thunks and decides what to force.
	// Here '?' forces its second operand only when the first is nonzero, and
	// 'S' shouts whenever it runs.
	reg.RegisterOperator('?', lazycalc.If)
	reg.RegisterOperator('S', func(a, b lazycalc.Thunk) int {
		fmt.Println("ran!")
		return 1
	})

	r, _ := c.Calculate("022S?") // condition 0: 'S' never runs
	fmt.Println(r)
	r, _ = c.Calculate("222S?") // condition 2: 'S' runs
	fmt.Println(r)

	// Output:
	// 0
	// ran!
	// 1
}

func ExampleSeq() {
	c := lazycalc.New(lazycalc.NoBuiltins())
	reg := c.Registry()
	reg.RegisterLiteral('a', func() int {
		fmt.Println("first")
		return 1
	})
	reg.RegisterLiteral('b', func() int {
		fmt.Println("second")
		return 2
	})
	reg.RegisterOperator(',', lazycalc.Seq)

	r, _ := c.Calculate("ab,")
	fmt.Println(r)

	// Output:
	// first
	// second
	// 2
}
