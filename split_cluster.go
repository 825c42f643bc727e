package layoutparser

import "sort"

const strategyClustering = "clustering"

// clusterMergeFactor scales the median inter-center distance to the
// merge threshold: clusters whose gap is smaller than
// clusterMergeFactor * medianGap are merged.
const clusterMergeFactor = 1.5

// splitClustering performs 1-D agglomerative clustering on children's
// projected centers: starting from one cluster per child, merge clusters
// whose gap is smaller than an adaptive threshold derived from the
// median inter-center distance; stop when the next merge would cross the
// threshold. Produces one group per surviving cluster.
func splitClustering(children []*NodeSchema, opts SplitOptions) SplitResult {
	groups, gaps := clusterByCenterGap(children, opts.Axis)
	return SplitResult{
		Success:      len(groups) > 1,
		Groups:       groups,
		Gaps:         gaps,
		StrategyName: strategyClustering,
	}
}

// clusterByCenterGap sorts children by center on axis and greedily merges
// adjacent children into a cluster while the gap between them is below an
// adaptive threshold (a fraction of the median inter-center distance).
// Shared by the clustering strategy and the grid strategy's band
// detection.
func clusterByCenterGap(children []*NodeSchema, axis Axis) ([][]*NodeSchema, []float64) {
	if len(children) == 0 {
		return nil, nil
	}
	if len(children) == 1 {
		return [][]*NodeSchema{{children[0]}}, nil
	}

	ordered := append([]*NodeSchema(nil), children...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return projectCenter(frameOf(ordered[i]), axis) < projectCenter(frameOf(ordered[j]), axis)
	})

	centers := make([]float64, len(ordered))
	for i, c := range ordered {
		centers[i] = projectCenter(frameOf(c), axis)
	}

	interCenterGaps := make([]float64, len(centers)-1)
	for i := 1; i < len(centers); i++ {
		interCenterGaps[i-1] = centers[i] - centers[i-1]
	}
	threshold := median(interCenterGaps) * clusterMergeFactor

	var groups [][]*NodeSchema
	var gaps []float64

	current := []*NodeSchema{ordered[0]}
	trailing := projectFrame(frameOf(ordered[0]), axis).end

	for i := 1; i < len(ordered); i++ {
		child := ordered[i]
		gap := interCenterGaps[i-1]
		if gap > threshold {
			groups = append(groups, current)
			f := frameOf(child)
			gaps = append(gaps, projectFrame(f, axis).start-trailing)
			current = []*NodeSchema{child}
			trailing = projectFrame(f, axis).end
		} else {
			current = append(current, child)
			if iv := projectFrame(frameOf(child), axis); iv.end > trailing {
				trailing = iv.end
			}
		}
	}
	groups = append(groups, current)

	return groups, gaps
}
