package layoutparser

import "testing"

func TestClassifyChildrenHiddenBeatsEverything(t *testing.T) {
	hidden := Hide(Leaf("a", Frame{Left: 0, Top: 0, Width: 10, Height: 10, Right: 10, Bottom: 10}))
	normal := Leaf("b", Frame{Left: 100, Top: 0, Width: 10, Height: 10, Right: 110, Bottom: 10})
	c := ClassifyChildren([]*NodeSchema{hidden, normal})
	if len(c.Hidden) != 1 || len(c.Normal) != 1 {
		t.Fatalf("expected 1 hidden + 1 normal, got %+v", c)
	}
}

func TestClassifyChildrenSlot(t *testing.T) {
	slot := AsSlot(Leaf("a", Frame{}), "header")
	c := ClassifyChildren([]*NodeSchema{slot})
	if len(c.Slot) != 1 {
		t.Fatalf("expected 1 slot child, got %+v", c)
	}
}

func TestClassifyChildrenMissingFrameIsAbsolute(t *testing.T) {
	noFrame := &NodeSchema{ComponentName: "icon"}
	c := ClassifyChildren([]*NodeSchema{noFrame})
	if len(c.Absolute) != 1 {
		t.Fatalf("expected child with no frame to classify absolute, got %+v", c)
	}
}

func TestClassifyChildrenExplicitPositionAbsolute(t *testing.T) {
	child := Absolute(Leaf("badge", Frame{Left: 0, Top: 0, Width: 10, Height: 10, Right: 10, Bottom: 10}))
	c := ClassifyChildren([]*NodeSchema{child})
	if len(c.Absolute) != 1 {
		t.Fatalf("expected explicit position:absolute child to classify absolute, got %+v", c)
	}
}

func TestClassifyChildrenOverlapPullsOutAbsolute(t *testing.T) {
	a := Leaf("a", Frame{Left: 0, Top: 0, Width: 100, Height: 100, Right: 100, Bottom: 100})
	b := Leaf("b", Frame{Left: 10, Top: 10, Width: 100, Height: 100, Right: 110, Bottom: 110})
	c := ClassifyChildren([]*NodeSchema{a, b})
	if len(c.Absolute) == 0 {
		t.Fatalf("expected heavily overlapping siblings to be classified absolute, got %+v", c)
	}
}

func TestClassifyChildrenNormalCase(t *testing.T) {
	a := Leaf("a", Frame{Left: 0, Top: 0, Width: 80, Height: 50, Right: 80, Bottom: 50})
	b := Leaf("b", Frame{Left: 100, Top: 0, Width: 80, Height: 50, Right: 180, Bottom: 50})
	c := ClassifyChildren([]*NodeSchema{a, b})
	if len(c.Normal) != 2 {
		t.Fatalf("expected both children classified normal, got %+v", c)
	}
}
