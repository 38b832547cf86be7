package grid

import (
	"reflect"
	"sort"
	"testing"
)

func isLand(v int) bool { return v >= 1 }

// TestComponents_Simple4 tests Components on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestComponents_Simple4(t *testing.T) {
	g, err := FromRows([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}

	comps := g.Components(Conn4, isLand)
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestComponents_Diagonal8 uses Conn8 so that cells touching only at
// corners merge into one region.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestComponents_Diagonal8(t *testing.T) {
	g, _ := FromRows([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})

	if comps := g.Components(Conn8, isLand); len(comps) != 1 || len(comps[0]) != 9 {
		t.Fatalf("Conn8: got %d components; want 1 of size 9", len(comps))
	}
	if comps := g.Components(Conn4, isLand); len(comps) != 9 {
		t.Fatalf("Conn4: got %d components; want 9", len(comps))
	}
}

func TestRegion(t *testing.T) {
	g, _ := ParseDigits("2199943210\n3987894921\n9856789892\n8767896789\n9899965678")
	notNine := func(v int) bool { return v != 9 }

	if got := len(g.Region(Pt(1, 0), Conn4, notNine)); got != 3 {
		t.Errorf("top-left basin size = %d; want 3", got)
	}
	if got := len(g.Region(Pt(9, 0), Conn4, notNine)); got != 9 {
		t.Errorf("top-right basin size = %d; want 9", got)
	}
	if got := g.Region(Pt(2, 0), Conn4, notNine); got != nil {
		t.Errorf("region from a wall = %v; want nil", got)
	}
	if got := g.Region(Pt(-1, 0), Conn4, notNine); got != nil {
		t.Errorf("region from outside = %v; want nil", got)
	}
}
