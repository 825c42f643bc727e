package layoutparser

import "testing"

func TestDetermineLayoutTypeRow(t *testing.T) {
	parent := Frame{Left: 0, Top: 0, Width: 300, Height: 100, Right: 300, Bottom: 100}
	children := makeRowChildren([]float64{10, 110, 210}, 80)
	for _, c := range children {
		c.Frame.Top = 25
		c.Frame.Bottom = 75
	}
	res := DetermineLayoutType(parent, children)
	if res.LayoutType != LayoutRow {
		t.Fatalf("expected row, got %s", res.LayoutType)
	}
	if res.Gap != 20 {
		t.Errorf("expected gap 20, got %.2f", res.Gap)
	}
	if res.Padding != (Spacing{Top: 25, Right: 10, Bottom: 25, Left: 10}) {
		t.Errorf("unexpected padding: %+v", res.Padding)
	}
}

func TestDetermineLayoutTypeMixOnGrid(t *testing.T) {
	parent := Frame{Left: 0, Top: 0, Width: 180, Height: 110, Right: 180, Bottom: 110}
	children := grid2x2()
	res := DetermineLayoutType(parent, children)
	if res.LayoutType != LayoutMix {
		t.Fatalf("expected mix for a 2x2 grid, got %s", res.LayoutType)
	}
	if len(res.Groups) != 2 {
		t.Fatalf("expected 2 outer groups, got %d", len(res.Groups))
	}
}

func TestDetermineLayoutTypeOverlapUnsplit(t *testing.T) {
	parent := Frame{Left: 0, Top: 0, Width: 200, Height: 200, Right: 200, Bottom: 200}
	a := Leaf("a", Frame{Left: 0, Top: 0, Width: 100, Height: 100, Right: 100, Bottom: 100})
	b := Leaf("b", Frame{Left: 20, Top: 20, Width: 100, Height: 100, Right: 120, Bottom: 120})
	res := DetermineLayoutType(parent, []*NodeSchema{a, b})
	if res.LayoutType != "" {
		t.Fatalf("expected unset layout type for overlapping children, got %s", res.LayoutType)
	}
}

func TestDetermineLayoutTypeSingleton(t *testing.T) {
	parent := Frame{Left: 0, Top: 0, Width: 400, Height: 100, Right: 400, Bottom: 100}
	child := Leaf("a", Frame{Left: 150, Top: 25, Width: 100, Height: 50, Right: 250, Bottom: 75})
	res := DetermineLayoutType(parent, []*NodeSchema{child})
	if res.LayoutType != "" {
		t.Errorf("expected unset layout type for a singleton child, got %s", res.LayoutType)
	}
	if len(res.Groups) != 0 {
		t.Errorf("expected no groups for a singleton child, got %+v", res.Groups)
	}
}

func TestComputePaddingClampsNegative(t *testing.T) {
	parent := Frame{Left: 50, Top: 50, Width: 10, Height: 10, Right: 60, Bottom: 60}
	child := Leaf("overflow", Frame{Left: 0, Top: 0, Width: 200, Height: 200, Right: 200, Bottom: 200})
	p := computePadding(parent, []*NodeSchema{child})
	if p.Top != 0 || p.Left != 0 || p.Right != 0 || p.Bottom != 0 {
		t.Errorf("expected clamped-to-zero padding for overflowing children, got %+v", p)
	}
}
