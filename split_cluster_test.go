package layoutparser

import "testing"

func TestSplitClusteringGroupsByMedianGap(t *testing.T) {
	// Two tight pairs, far apart from each other.
	children := []*NodeSchema{
		Leaf("a", Frame{Left: 0, Width: 20, Height: 20, Right: 20, Bottom: 20}),
		Leaf("b", Frame{Left: 25, Width: 20, Height: 20, Right: 45, Bottom: 20}),
		Leaf("c", Frame{Left: 300, Width: 20, Height: 20, Right: 320, Bottom: 20}),
		Leaf("d", Frame{Left: 325, Width: 20, Height: 20, Right: 345, Bottom: 20}),
	}
	result := splitClustering(children, SplitOptions{Axis: AxisRow})
	if !result.Success {
		t.Fatalf("expected clustering split to succeed")
	}
	if len(result.Groups) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(result.Groups))
	}
	for _, g := range result.Groups {
		if len(g) != 2 {
			t.Errorf("expected each cluster to contain 2 children, got %d", len(g))
		}
	}
}

func TestClusterByCenterGapSingleChild(t *testing.T) {
	groups, gaps := clusterByCenterGap([]*NodeSchema{Leaf("a", Frame{})}, AxisRow)
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Errorf("expected one group of one, got %+v", groups)
	}
	if gaps != nil {
		t.Errorf("expected no gaps for single child, got %+v", gaps)
	}
}
