package graph_test

import (
	"fmt"

	"github.com/matzehuels/nodeedit/pkg/graph"
)

func ExampleBuild() {
	g, err := graph.Build([]byte(`{"customer": [{"name": "Ada"}], "count": 1}`))
	if err != nil {
		panic(err)
	}
	for _, n := range g.Nodes() {
		fmt.Printf("%s %d rows\n", n.Path, len(n.Rows))
	}
	// Output:
	// $ 2 rows
	// $["customer"][0] 1 rows
}
