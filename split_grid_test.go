package layoutparser

import "testing"

func grid2x2() []*NodeSchema {
	// Two rows, two columns: (0,0) (100,0) / (0,60) (100,60), each 80x50.
	return []*NodeSchema{
		Leaf("a", Frame{Left: 0, Top: 0, Width: 80, Height: 50, Right: 80, Bottom: 50}),
		Leaf("b", Frame{Left: 100, Top: 0, Width: 80, Height: 50, Right: 180, Bottom: 50}),
		Leaf("c", Frame{Left: 0, Top: 60, Width: 80, Height: 50, Right: 80, Bottom: 110}),
		Leaf("d", Frame{Left: 100, Top: 60, Width: 80, Height: 50, Right: 180, Bottom: 110}),
	}
}

func TestSplitGridAlignedDetectsGrid(t *testing.T) {
	children := grid2x2()
	result := splitGridAligned(children, SplitOptions{Axis: AxisColumn})
	if !result.Success {
		t.Fatalf("expected grid detection to succeed")
	}
	if len(result.Groups) != 2 {
		t.Fatalf("expected 2 row-bands, got %d", len(result.Groups))
	}
}

func TestSplitGridAlignedRequiresFourChildren(t *testing.T) {
	children := grid2x2()[:3]
	result := splitGridAligned(children, SplitOptions{Axis: AxisColumn})
	if result.Success {
		t.Errorf("expected grid detection to refuse fewer than 4 children")
	}
}

func TestSplitGridAlignedRejectsSingleAxisStack(t *testing.T) {
	children := makeRowChildren([]float64{0, 100, 200, 300}, 80)
	result := splitGridAligned(children, SplitOptions{Axis: AxisRow})
	if result.Success {
		t.Errorf("expected a single-row stack to fail grid detection (only one band perpendicular)")
	}
}

func TestPerpendicularAxis(t *testing.T) {
	if perpendicularAxis(AxisRow) != AxisColumn {
		t.Errorf("expected column")
	}
	if perpendicularAxis(AxisColumn) != AxisRow {
		t.Errorf("expected row")
	}
}
