package hamiltonian_test

import (
	"fmt"

	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/hamiltonian"
)

func ExampleFind() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(5))
	res, _ := hamiltonian.Find(g)
	fmt.Println(res.Kind, res.Sequence, res.Explored)
	fmt.Println(res.Dirac.Explanation)

	// Output:
	// cycle [A B C D E] 5
	// Minimum degree 2 < 2.5, so Dirac's theorem does not apply.
}
