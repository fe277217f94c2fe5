// Package builder_test provides runnable examples for Generate.
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/tspbrute/builder"
)

// ExampleGenerate builds a 4-vertex graph whose weight set holds a single
// value, so the output does not depend on the RNG.
func ExampleGenerate() {
	g, err := builder.Generate(4, 3, 4, builder.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range g.Rows() {
		fmt.Println(row)
	}
	// Output:
	// [0 3 3 3]
	// [3 0 3 3]
	// [3 3 0 3]
	// [3 3 3 0]
}

// ExampleGenerate_invalid shows the fail-fast validation.
func ExampleGenerate_invalid() {
	_, err := builder.Generate(4, 0, 10)
	fmt.Println(err)
	// Output: Generate: lower=0 upper=10: invalid argument: builder: weight limit cannot be 0
}

// ExampleWeightSet lists the weights Generate draws from.
func ExampleWeightSet() {
	ws, _ := builder.WeightSet(1, 10)
	fmt.Println(ws)
	// Output: [1 2 3 4 5 6 7 8 9]
}
