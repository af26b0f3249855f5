// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/bintree/builder"
)

// ExampleBuild shows the deterministic constructors.
func ExampleBuild() {
	perfect, _ := builder.Build(builder.Perfect(3))
	chain, _ := builder.Build(builder.Chain(4, builder.Zigzag))
	fmt.Println("perfect:", perfect.Size(), perfect.Values())
	fmt.Println("chain:  ", chain.Size(), chain.Values())

	// Output:
	// perfect: 7 [1 2 4 5 3 6 7]
	// chain:   4 [1 2 3 4]
}
