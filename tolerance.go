package layoutparser

import "math"

// Tolerance weights. Documented rather than formalized — spec §9 leaves
// these as an implementation parameter; tests verify monotonicity and
// ordering, not exact values.
const (
	tolK1               = 0.10 // base tolerance as a fraction of avgSize
	tolCountPenaltyK     = 0.02 // per-element tightening beyond the threshold
	tolCountThreshold    = 3
	tolUniformityBonus   = 0.6 // fraction of |base| restored when uniformity > 0.9
	tolUniformityCutoff  = 0.9
	tolDensityPenaltyMax = 0.5 // fraction of |base| removed at density 1.0
)

// AdaptiveTolerance computes the minimum perpendicular gap, in length
// units, required for two adjacent children to count as "separated" when
// splitting along axis. Negative values mean "require an actual gap of
// this magnitude"; positive values mean "tolerate an overlap of this
// magnitude". Deterministic: same children, same container, same result.
func AdaptiveTolerance(children []*NodeSchema, axis Axis) float64 {
	factors := computeLayoutFactors(children, axis)
	if factors.AvgSize == 0 {
		return 0
	}

	base := -factors.AvgSize * tolK1

	// Element-count penalty: more elements tighten (more negative)
	// tolerance beyond a small threshold, monotone-decreasing in n.
	if factors.ElementCount > tolCountThreshold {
		extra := float64(factors.ElementCount - tolCountThreshold)
		base -= factors.AvgSize * tolCountPenaltyK * extra
	}

	// Uniformity bonus: near-identical sizes loosen tolerance so jitter
	// doesn't block splitting.
	if factors.SizeUniformity > tolUniformityCutoff {
		t := (factors.SizeUniformity - tolUniformityCutoff) / (1 - tolUniformityCutoff)
		base += math.Abs(base) * tolUniformityBonus * t
	}

	// Density penalty: densely packed children tighten tolerance.
	base -= math.Abs(base) * tolDensityPenaltyMax * factors.Density

	lo := -factors.AvgSize
	hi := factors.AvgSize / 4
	return math.Max(lo, math.Min(hi, base))
}

// OverlapTolerance bundles the light/significant overlap thresholds used
// by the child classifier, both scaled from the median frame diagonal.
type OverlapTolerance struct {
	Light       float64
	Significant float64
}

// OverlapDetectionTolerance derives {light, significant} overlap
// thresholds from the median diagonal of the given frames. Used by
// ClassifyChildren to decide whether two siblings overlap enough to pull
// one of them out of normal flow.
func OverlapDetectionTolerance(frames []Frame) OverlapTolerance {
	diag := medianDiagonal(frames)
	return OverlapTolerance{
		Light:       diag * 0.05,
		Significant: diag * 0.25,
	}
}
