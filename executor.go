package layoutparser

import "math"

// Scoring weights, summing to 1. Not formalized by the source spec —
// tests check orderings (evenly sized groups outscore uneven ones, grid
// wins a tie), not these exact values.
const (
	weightBalance      = 0.25
	weightSeparation   = 0.30
	weightNonTrivial   = 0.20
	weightAlignment    = 0.25
)

// strategyPriority breaks score ties: grid > clustering > center-line >
// greedy-edge.
var strategyPriority = map[string]int{
	strategyGridAligned:  4,
	strategyClustering:   3,
	strategyCenterLine:   2,
	strategyGreedyEdge:   1,
}

// executeAll runs every split strategy on the same input and returns all
// four results, for diagnostic use.
func executeAll(children []*NodeSchema, opts SplitOptions) []SplitResult {
	return []SplitResult{
		splitGreedyEdge(children, opts),
		splitCenterLine(children, opts),
		splitGridAligned(children, opts),
		splitClustering(children, opts),
	}
}

// runSplitExecutor runs all applicable strategies and picks the
// best-scoring one. If every strategy fails, it returns the (still
// unsplit) greedy-edge result so callers always get a well-formed
// SplitResult.
func runSplitExecutor(children []*NodeSchema, opts SplitOptions) SplitResult {
	results := executeAll(children, opts)

	var best *SplitResult
	bestScore := math.Inf(-1)
	anySucceeded := false

	for i := range results {
		r := &results[i]
		r.Score = scoreSplit(*r, children, opts.Axis)
		if !r.Success {
			continue
		}
		anySucceeded = true
		if r.Score > bestScore ||
			(r.Score == bestScore && best != nil && strategyPriority[r.StrategyName] > strategyPriority[best.StrategyName]) {
			bestScore = r.Score
			best = r
		}
	}

	if !anySucceeded {
		for i := range results {
			if results[i].StrategyName == strategyGreedyEdge {
				return results[i]
			}
		}
	}
	return *best
}

// scoreSplit computes: score = w_b*balance + w_s*separation + w_n*nonTriv
// + w_a*alignment, each term in [0,1].
func scoreSplit(r SplitResult, children []*NodeSchema, axis Axis) float64 {
	if !r.Success {
		return 0
	}
	return weightBalance*balanceScore(r.Groups) +
		weightSeparation*separationScore(r.Gaps, children, axis) +
		weightNonTrivial*nonTrivialScore(r.Groups) +
		weightAlignment*alignmentCleanlinessScore(r.Groups, axis)
}

// balanceScore rewards low variance in group size: 1 when all groups have
// equal cardinality, decaying toward 0 as group sizes diverge.
func balanceScore(groups [][]*NodeSchema) float64 {
	if len(groups) == 0 {
		return 0
	}
	sizes := make([]float64, len(groups))
	for i, g := range groups {
		sizes[i] = float64(len(g))
	}
	avg := mean(sizes)
	if avg == 0 {
		return 0
	}
	cv := coefficientOfVariation(sizes)
	return 1 / (1 + cv)
}

// separationScore rewards a large minimum gap between adjacent groups,
// normalized by avgSize so it's comparable across containers of
// different scale.
func separationScore(gaps []float64, children []*NodeSchema, axis Axis) float64 {
	if len(gaps) == 0 {
		return 0
	}
	factors := computeLayoutFactors(children, axis)
	if factors.AvgSize == 0 {
		return 0
	}
	minGap := math.Inf(1)
	for _, g := range gaps {
		if g < minGap {
			minGap = g
		}
	}
	normalized := minGap / factors.AvgSize
	// Squash to [0,1]; negative (overlapping) gaps score 0.
	if normalized < 0 {
		return 0
	}
	return math.Min(1, normalized)
}

// nonTrivialScore is 1 when the split produced at least two groups, 0 for
// a single-group (unsplit) result.
func nonTrivialScore(groups [][]*NodeSchema) float64 {
	if len(groups) >= 2 {
		return 1
	}
	return 0
}

// alignmentCleanlinessScore rewards low variance of perpendicular-axis
// edges within each group — groups whose members line up cleanly on the
// cross axis score higher.
func alignmentCleanlinessScore(groups [][]*NodeSchema, axis Axis) float64 {
	perp := perpendicularAxis(axis)
	if len(groups) == 0 {
		return 0
	}
	var total float64
	var n int
	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		starts := make([]float64, len(g))
		for i, c := range g {
			starts[i] = projectFrame(frameOf(c), perp).start
		}
		factors := computeLayoutFactors(g, perp)
		if factors.AvgSize == 0 {
			continue
		}
		cv := stddev(starts) / factors.AvgSize
		total += 1 / (1 + cv)
		n++
	}
	if n == 0 {
		// No multi-member groups to judge cleanliness on; treat as
		// neutral-clean rather than penalizing singleton-only splits.
		return 1
	}
	return total / float64(n)
}
