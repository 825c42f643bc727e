package layoutparser

import "sort"

const strategyCenterLine = "center-line"

// centerLineThresholdK scales avgSize to a center-to-center gap
// threshold: children whose centers are farther apart than this fraction
// of the average size are considered separate groups, even when their
// edges overlap.
const centerLineThresholdK = 0.5

// splitCenterLine sorts children by center coordinate on the split axis
// and splits where consecutive center-to-center gaps exceed a threshold
// derived from avgSize. This handles children whose edges overlap
// slightly but whose centers are cleanly separated — common when
// elements share a center grid but differ in size.
func splitCenterLine(children []*NodeSchema, opts SplitOptions) SplitResult {
	if len(children) == 0 {
		return SplitResult{Success: false, StrategyName: strategyCenterLine}
	}

	factors := computeLayoutFactors(children, opts.Axis)
	threshold := factors.AvgSize * centerLineThresholdK

	ordered := append([]*NodeSchema(nil), children...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return projectCenter(frameOf(ordered[i]), opts.Axis) < projectCenter(frameOf(ordered[j]), opts.Axis)
	})

	var groups [][]*NodeSchema
	var gaps []float64

	current := []*NodeSchema{ordered[0]}
	prevCenter := projectCenter(frameOf(ordered[0]), opts.Axis)
	groupTrailing := projectFrame(frameOf(ordered[0]), opts.Axis).end
	groupLeading := projectFrame(frameOf(ordered[0]), opts.Axis).start

	for _, child := range ordered[1:] {
		f := frameOf(child)
		center := projectCenter(f, opts.Axis)
		iv := projectFrame(f, opts.Axis)

		if center-prevCenter > threshold {
			groups = append(groups, current)
			gaps = append(gaps, iv.start-groupTrailing)
			current = []*NodeSchema{child}
			groupLeading = iv.start
			groupTrailing = iv.end
		} else {
			current = append(current, child)
			if iv.end > groupTrailing {
				groupTrailing = iv.end
			}
			if iv.start < groupLeading {
				groupLeading = iv.start
			}
		}
		prevCenter = center
	}
	groups = append(groups, current)

	return SplitResult{
		Success:      len(groups) > 1,
		Groups:       groups,
		Gaps:         gaps,
		StrategyName: strategyCenterLine,
	}
}
