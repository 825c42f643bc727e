package layoutparser

import (
	"math"
	"sort"
)

// interval is a projected [start, end] range on one axis.
type interval struct {
	start, end float64
}

// projectFrame projects a frame onto the split axis. For AxisRow the
// leading/trailing edges are Left/Right (splitting side by side produces
// columns); for AxisColumn they are Top/Bottom (splitting stacked
// produces rows).
func projectFrame(f Frame, axis Axis) interval {
	if axis == AxisRow {
		return interval{f.Left, f.Right}
	}
	return interval{f.Top, f.Bottom}
}

// projectCenter returns the center coordinate of a frame on the given axis.
func projectCenter(f Frame, axis Axis) float64 {
	iv := projectFrame(f, axis)
	return (iv.start + iv.end) / 2
}

// projectSize returns the frame's extent along the given axis.
func projectSize(f Frame, axis Axis) float64 {
	iv := projectFrame(f, axis)
	return iv.end - iv.start
}

// crossSize returns the frame's extent perpendicular to the given axis.
func crossSize(f Frame, axis Axis) float64 {
	if axis == AxisRow {
		return f.Bottom - f.Top
	}
	return f.Right - f.Left
}

// overlaps reports whether two intervals intersect at all.
func overlaps(a, b interval) bool {
	return a.start < b.end && b.start < a.end
}

// overlapAmount returns the length of the intersection of a and b, or 0
// (not negative) when they don't overlap.
func overlapAmount(a, b interval) float64 {
	lo := math.Max(a.start, b.start)
	hi := math.Min(a.end, b.end)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// significantlyOverlap reports whether two frames overlap beyond
// tolerance t on both axes — i.e. they occupy genuinely shared space,
// not just a sliver from anti-aliased export coordinates.
func significantlyOverlap(a, b Frame, t float64) bool {
	ox := overlapAmount(interval{a.Left, a.Right}, interval{b.Left, b.Right})
	oy := overlapAmount(interval{a.Top, a.Bottom}, interval{b.Top, b.Bottom})
	return ox > t && oy > t
}

// mean returns the arithmetic mean, 0 for empty input.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance returns mean((x - mean(xs))^2), 0 for empty input.
func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64) float64 {
	return math.Sqrt(variance(xs))
}

// coefficientOfVariation returns stddev(xs)/|mean(xs)|, 0 when the mean
// is 0 (avoids division by zero rather than returning +Inf).
func coefficientOfVariation(xs []float64) float64 {
	m := mean(xs)
	if m == 0 {
		return 0
	}
	return stddev(xs) / math.Abs(m)
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// computeLayoutFactors summarizes children projected onto axis, for
// consumption by AdaptiveTolerance. Empty input yields all-zero
// statistics, never an error.
func computeLayoutFactors(children []*NodeSchema, axis Axis) LayoutFactors {
	if len(children) == 0 {
		return LayoutFactors{}
	}

	sizes := make([]float64, 0, len(children))
	minStart := math.Inf(1)
	maxEnd := math.Inf(-1)
	for _, c := range children {
		f := frameOf(c)
		iv := projectFrame(f, axis)
		sizes = append(sizes, iv.end-iv.start)
		if iv.start < minStart {
			minStart = iv.start
		}
		if iv.end > maxEnd {
			maxEnd = iv.end
		}
	}

	avg := mean(sizes)
	sd := stddev(sizes)
	cv := coefficientOfVariation(sizes)

	uniformity := 1.0
	if avg > 0 {
		uniformity = 1 - math.Min(1, sd/avg)
	}

	span := maxEnd - minStart
	density := 0.0
	if span > 0 {
		occupied := 0.0
		for _, s := range sizes {
			occupied += s
		}
		density = math.Min(1, occupied/span)
	}

	return LayoutFactors{
		AvgSize:        avg,
		SizeStdDev:     sd,
		SizeUniformity: uniformity,
		ElementCount:   len(children),
		Density:        density,
		CV:             cv,
	}
}

// frameOf returns a normalized frame for a child, or a zero-size frame at
// the origin when the child has no frame at all (per §7, such children
// are excluded from "normal" classification and must not skew statistics
// with a nonzero phantom size).
func frameOf(n *NodeSchema) Frame {
	if n == nil || n.Frame == nil {
		return Frame{}
	}
	return NormalizeFrame(*n.Frame)
}

// boundingBox returns the smallest frame containing every child frame, or
// the zero Frame for an empty list.
func boundingBox(children []*NodeSchema) Frame {
	if len(children) == 0 {
		return Frame{}
	}
	minLeft := math.Inf(1)
	minTop := math.Inf(1)
	maxRight := math.Inf(-1)
	maxBottom := math.Inf(-1)
	for _, c := range children {
		f := frameOf(c)
		if f.Left < minLeft {
			minLeft = f.Left
		}
		if f.Top < minTop {
			minTop = f.Top
		}
		if f.Right > maxRight {
			maxRight = f.Right
		}
		if f.Bottom > maxBottom {
			maxBottom = f.Bottom
		}
	}
	return NormalizeFrame(Frame{
		Left:   minLeft,
		Top:    minTop,
		Width:  maxRight - minLeft,
		Height: maxBottom - minTop,
	})
}

// medianDiagonal returns the median of the frames' diagonal lengths, used
// to scale overlap-detection tolerance. Returns 0 for empty input.
func medianDiagonal(frames []Frame) float64 {
	if len(frames) == 0 {
		return 0
	}
	diags := make([]float64, len(frames))
	for i, f := range frames {
		diags[i] = math.Hypot(f.Width, f.Height)
	}
	return median(diags)
}
