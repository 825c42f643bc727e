package layoutparser

import "sort"

const strategyGreedyEdge = "greedy-edge"

// splitGreedyEdge sorts children by their leading edge on the split axis
// and walks left-to-right, starting a new group whenever the next
// child's leading edge exceeds the current group's trailing edge by more
// than |tolerance|. This is the baseline strategy: cheap, and correct
// whenever edges actually separate groups cleanly.
func splitGreedyEdge(children []*NodeSchema, opts SplitOptions) SplitResult {
	if len(children) == 0 {
		return SplitResult{Success: false, StrategyName: strategyGreedyEdge}
	}

	ordered := append([]*NodeSchema(nil), children...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return projectFrame(frameOf(ordered[i]), opts.Axis).start < projectFrame(frameOf(ordered[j]), opts.Axis).start
	})

	var groups [][]*NodeSchema
	var gaps []float64

	current := []*NodeSchema{ordered[0]}
	trailing := projectFrame(frameOf(ordered[0]), opts.Axis).end

	for _, child := range ordered[1:] {
		iv := projectFrame(frameOf(child), opts.Axis)
		gap := iv.start - trailing
		if gap > absf(opts.Tolerance) {
			groups = append(groups, current)
			gaps = append(gaps, gap)
			current = []*NodeSchema{child}
			trailing = iv.end
		} else {
			current = append(current, child)
			if iv.end > trailing {
				trailing = iv.end
			}
		}
	}
	groups = append(groups, current)

	return SplitResult{
		Success:      len(groups) > 1,
		Groups:       groups,
		Gaps:         gaps,
		StrategyName: strategyGreedyEdge,
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
