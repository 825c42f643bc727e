package layoutparser

import "math"

// AlignmentResult is the inferred alignment of a container's child
// groups within its frame, along with a confidence per axis. A
// confidence below 0.5 means the corresponding field should be omitted
// rather than asserted (§4.7, §7).
type AlignmentResult struct {
	AlignHorizontal      string
	HorizontalConfidence float64
	AlignVertical        string
	VerticalConfidence   float64
}

// epsilonFraction is the fraction of avgSize used as the equality
// tolerance ε for margin/gap comparisons (§9: "use a single configurable
// ε, default a small fraction of avgSize").
const epsilonFraction = 0.08

// AnalyzeAlignment inspects the groups produced by the winning split axis
// and infers alignHorizontal/alignVertical with a confidence score.
// Children are the full normal child list (used to compute ε); groups
// and the split axis come from the layout resolution.
func AnalyzeAlignment(parentFrame Frame, children []*NodeSchema, resolution LayoutResolution) AlignmentResult {
	if len(children) == 0 {
		return AlignmentResult{}
	}

	// A singleton child or an all-strategies-failed split still has a
	// meaningful position relative to the parent (e.g. a single centered
	// button) — treat the whole child list as one synthetic group rather
	// than skipping alignment analysis outright.
	groups := resolution.Groups
	if len(groups) == 0 {
		groups = [][]*NodeSchema{children}
	}

	factors := computeLayoutFactors(children, AxisRow)
	eps := factors.AvgSize * epsilonFraction
	if eps <= 0 {
		eps = 1
	}

	boxes := make([]Frame, len(groups))
	for i, g := range groups {
		boxes[i] = boundingBox(g)
	}

	hAlign, hConf := classifyAxis(parentFrame.Left, parentFrame.Right, boxes, eps, false)
	vFactors := computeLayoutFactors(children, AxisColumn)
	vEps := vFactors.AvgSize * epsilonFraction
	if vEps <= 0 {
		vEps = 1
	}
	vAlign, vConf := classifyAxis(parentFrame.Top, parentFrame.Bottom, boxes, vEps, true)

	// Vertical "stretch": every child's height equals the parent's usable
	// height within ε.
	if allStretch(boxes, parentFrame, vEps) {
		vAlign, vConf = AlignStretch, 1.0
	}

	result := AlignmentResult{}
	if hConf >= 0.5 {
		result.AlignHorizontal = hAlign
		result.HorizontalConfidence = hConf
	} else {
		result.HorizontalConfidence = hConf
	}
	if vConf >= 0.5 {
		result.AlignVertical = vAlign
		result.VerticalConfidence = vConf
	} else {
		result.VerticalConfidence = vConf
	}
	return result
}

// classifyAxis implements the table in spec §4.7 for one axis. vertical
// selects the top/middle/bottom vocabulary instead of left/center/right.
func classifyAxis(parentStart, parentEnd float64, boxes []Frame, eps float64, vertical bool) (string, float64) {
	n := len(boxes)
	if n == 0 {
		return "", 0
	}

	var starts, ends []float64
	for _, b := range boxes {
		if vertical {
			starts = append(starts, b.Top)
			ends = append(ends, b.Bottom)
		} else {
			starts = append(starts, b.Left)
			ends = append(ends, b.Right)
		}
	}

	marginStart := minOf(starts) - parentStart
	marginEnd := parentEnd - maxOf(ends)

	var gaps []float64
	for i := 1; i < n; i++ {
		gaps = append(gaps, starts[i]-ends[i-1])
	}

	near0 := func(x float64) bool { return math.Abs(x) <= eps }
	gapsEqual := pairwiseWithin(gaps, eps)

	startName, endName, centerName, betweenName, evenName := AlignLeft, AlignRight, AlignCenterH, AlignSpaceBetween, AlignSpaceEvenly
	if vertical {
		startName, endName, centerName = AlignTop, AlignBottom, AlignMiddle
	}

	// space-evenly: margins and all gaps pairwise equal.
	if n >= 2 {
		allValues := append(append([]float64{marginStart}, gaps...), marginEnd)
		if pairwiseWithin(allValues, eps) && marginStart > eps {
			return evenName, confidenceFromSlack(marginStart, marginEnd, eps)
		}
	}

	// space-between: margins ~0, gaps pairwise equal, at least 2 groups.
	if n >= 2 && near0(marginStart) && near0(marginEnd) && gapsEqual {
		return betweenName, confidenceFromSlack(eps*2, absDiff(marginStart, marginEnd)+eps, eps)
	}

	if near0(marginStart) && marginEnd > eps {
		return startName, confidenceFromSlack(marginEnd, marginStart, eps)
	}
	if near0(marginEnd) && marginStart > eps {
		return endName, confidenceFromSlack(marginStart, marginEnd, eps)
	}
	// center requires the margins to actually dominate the layout (be
	// comparable to or larger than the internal gaps) — equal margins
	// that are small relative to the gaps read as an unremarkable
	// default flow, not a deliberate centering, and are better left
	// unclassified (§7: low-confidence fields are omitted).
	marginsDominant := len(gaps) == 0 || marginStart >= mean(gaps)*0.75
	if absDiff(marginStart, marginEnd) <= eps && marginStart > eps && marginEnd > eps && marginsDominant {
		return centerName, confidenceFromSlack(eps, absDiff(marginStart, marginEnd), eps)
	}
	if gapsEqual && marginStart > eps && marginEnd > eps && absDiff(marginStart, marginEnd) > eps {
		return AlignJustify, confidenceFromSlack(eps, absDiff(marginStart, marginEnd)-eps, eps)
	}

	// No class fit cleanly; report the nearest (start/end by smaller
	// margin) at low confidence.
	if marginStart <= marginEnd {
		return startName, 0.3
	}
	return endName, 0.3
}

func allStretch(boxes []Frame, parentFrame Frame, eps float64) bool {
	usable := parentFrame.Bottom - parentFrame.Top
	if usable <= 0 {
		return false
	}
	for _, b := range boxes {
		if math.Abs((b.Bottom-b.Top)-usable) > eps {
			return false
		}
	}
	return true
}

// confidenceFromSlack turns the normalized slack between the observed
// value and the nearest competing class boundary into a [0.5,1] score: more
// slack (cleaner separation from ambiguity) yields higher confidence. A
// matched class therefore never falls below the 0.5 threshold; only
// classifyAxis's no-fit fallback reports less.
func confidenceFromSlack(signal, noise, eps float64) float64 {
	if eps <= 0 {
		eps = 1
	}
	ratio := noise / (signal + eps)
	conf := 1 - math.Min(1, ratio)
	return math.Max(0, math.Min(1, 0.5+conf*0.5))
}

func pairwiseWithin(xs []float64, eps float64) bool {
	if len(xs) < 2 {
		return true
	}
	for i := 1; i < len(xs); i++ {
		if math.Abs(xs[i]-xs[0]) > eps {
			return false
		}
	}
	return true
}

func absDiff(a, b float64) float64 { return math.Abs(a - b) }

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
