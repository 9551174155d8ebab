// File: grid/example_test.go
package grid_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse reads the text format and inspects a few cells.
func ExampleParse() {
	g, err := grid.Parse(strings.NewReader("0 0 5\n0 5 0\n0 0 0\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, cols := g.Dimensions()
	s, _ := g.StateAt(grid.C(1, 1))
	fmt.Printf("%dx%d, (1,1) is %s, %d obstacles\n", rows, cols, s, g.Count(grid.Obstacle))
	// Output:
	// 3x3, (1,1) is obstacle, 2 obstacles
}

// ExampleGrid_MarkPath marks cells as Path and writes the grid back out.
func ExampleGrid_MarkPath() {
	g, _ := grid.Filled(2, 3, grid.Free)
	_ = g.MarkPath([]grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(1, 1), grid.C(1, 2)})
	_, _ = g.WriteTo(os.Stdout)
	// Output:
	// 1 0 0
	// 1 1 1
}

// ExampleGrid_Regions groups free cells into 4-connected regions.
func ExampleGrid_Regions() {
	g, _ := grid.FromInts([][]int{
		{0, 0, 5, 0},
		{5, 5, 5, 0},
	})
	for i, region := range g.Regions() {
		fmt.Printf("region %d: %v\n", i, region)
	}
	// Output:
	// region 0: [(0,0) (0,1)]
	// region 1: [(0,3) (1,3)]
}
