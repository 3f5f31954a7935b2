package shape_test

import (
	"fmt"

	"github.com/katalvlaran/blokus/point"
	"github.com/katalvlaran/blokus/shape"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CanConnect
////////////////////////////////////////////////////////////////////////////////

// ExampleShape_CanConnect places two V3 pieces:
//
//	. . . .        . . . .
//	B . . .        . B B .
//	A . B B        A A B .
//	A A . .        A . . .
//
// corner touch only (left) is legal, an edge touch (right) is not.
func ExampleShape_CanConnect() {
	a := shape.New(point.Pt(0, 0), point.Pt(0, 1), point.Pt(1, 0))
	corner := shape.New(point.Pt(2, 1), point.Pt(2, 2), point.Pt(3, 1))
	edge := shape.New(point.Pt(1, 1), point.Pt(1, 2), point.Pt(2, 1))

	fmt.Println(a.CanConnect(corner))
	fmt.Println(a.CanConnect(edge))

	// Output:
	// true
	// false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Arrangements
////////////////////////////////////////////////////////////////////////////////

// ExampleShape_Arrangements lists the orientations of a V3 anchored at the
// board corner, with and without bounds.
func ExampleShape_Arrangements() {
	v3 := shape.New(point.Pt(0, 0), point.Pt(0, 1), point.Pt(1, 0))

	fmt.Println("free:", len(v3.Arrangements()))
	for _, a := range v3.Arrangements(shape.WithBoard(20)) {
		fmt.Println("on board:", a.Sorted())
	}

	// Output:
	// free: 4
	// on board: [(0,0) (1,0) (0,1)]
}
