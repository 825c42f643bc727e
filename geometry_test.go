package layoutparser

import (
	"math"
	"testing"
)

func TestProjectFrameRow(t *testing.T) {
	iv := projectFrame(Frame{Left: 10, Right: 90, Top: 5, Bottom: 55}, AxisRow)
	if iv.start != 10 || iv.end != 90 {
		t.Errorf("expected [10,90], got [%.2f,%.2f]", iv.start, iv.end)
	}
}

func TestProjectFrameColumn(t *testing.T) {
	iv := projectFrame(Frame{Left: 10, Right: 90, Top: 5, Bottom: 55}, AxisColumn)
	if iv.start != 5 || iv.end != 55 {
		t.Errorf("expected [5,55], got [%.2f,%.2f]", iv.start, iv.end)
	}
}

func TestOverlapsAndAmount(t *testing.T) {
	a := interval{0, 10}
	b := interval{5, 15}
	if !overlaps(a, b) {
		t.Errorf("expected overlap")
	}
	if amt := overlapAmount(a, b); amt != 5 {
		t.Errorf("expected overlap amount 5, got %.2f", amt)
	}
	c := interval{20, 30}
	if overlaps(a, c) {
		t.Errorf("expected no overlap")
	}
	if amt := overlapAmount(a, c); amt != 0 {
		t.Errorf("expected overlap amount 0, got %.2f", amt)
	}
}

func TestSignificantlyOverlap(t *testing.T) {
	a := Frame{Left: 0, Top: 0, Right: 100, Bottom: 100}
	b := Frame{Left: 10, Top: 10, Right: 110, Bottom: 110}
	if !significantlyOverlap(a, b, 5) {
		t.Errorf("expected significant overlap")
	}
	c := Frame{Left: 95, Top: 0, Right: 195, Bottom: 100}
	if significantlyOverlap(a, c, 50) {
		t.Errorf("did not expect significant overlap past tolerance")
	}
}

func TestMeanVarianceStddev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if m := mean(xs); m != 5 {
		t.Errorf("expected mean 5, got %.4f", m)
	}
	if v := variance(xs); math.Abs(v-4) > 1e-9 {
		t.Errorf("expected variance 4, got %.4f", v)
	}
	if s := stddev(xs); math.Abs(s-2) > 1e-9 {
		t.Errorf("expected stddev 2, got %.4f", s)
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	xs := []float64{10, 10, 10}
	if cv := coefficientOfVariation(xs); cv != 0 {
		t.Errorf("expected cv 0 for identical values, got %.4f", cv)
	}
	if cv := coefficientOfVariation(nil); cv != 0 {
		t.Errorf("expected cv 0 for empty input, got %.4f", cv)
	}
}

func TestMedian(t *testing.T) {
	if m := median([]float64{1, 2, 3}); m != 2 {
		t.Errorf("expected median 2, got %.2f", m)
	}
	if m := median([]float64{1, 2, 3, 4}); m != 2.5 {
		t.Errorf("expected median 2.5, got %.2f", m)
	}
	if m := median(nil); m != 0 {
		t.Errorf("expected median 0 for empty input, got %.2f", m)
	}
}

func TestComputeLayoutFactorsEmpty(t *testing.T) {
	f := computeLayoutFactors(nil, AxisRow)
	if f.AvgSize != 0 || f.ElementCount != 0 {
		t.Errorf("expected zero factors for empty input, got %+v", f)
	}
}

func TestBoundingBox(t *testing.T) {
	children := []*NodeSchema{
		Leaf("A", Frame{Left: 10, Top: 10, Width: 20, Height: 20, Right: 30, Bottom: 30}),
		Leaf("B", Frame{Left: 50, Top: 5, Width: 10, Height: 10, Right: 60, Bottom: 15}),
	}
	box := boundingBox(children)
	if box.Left != 10 || box.Top != 5 || box.Right != 60 || box.Bottom != 30 {
		t.Errorf("unexpected bounding box: %+v", box)
	}
}

func TestFrameOfNilSafe(t *testing.T) {
	n := &NodeSchema{ComponentName: "Leaf"}
	f := frameOf(n)
	if f != (Frame{}) {
		t.Errorf("expected zero frame for node with nil Frame, got %+v", f)
	}
}
