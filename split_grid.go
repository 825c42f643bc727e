package layoutparser

const strategyGridAligned = "grid-aligned"

func perpendicularAxis(axis Axis) Axis {
	if axis == AxisRow {
		return AxisColumn
	}
	return AxisRow
}

// splitGridAligned detects whether children form a grid by clustering
// their centers on both axes. It succeeds only when both axes show at
// least two bands with low within-band variance — a genuine 2D grid, as
// opposed to a simple single-axis stack (which the other strategies
// already handle). On success it splits along opts.Axis, one group per
// band on that axis.
func splitGridAligned(children []*NodeSchema, opts SplitOptions) SplitResult {
	if len(children) < 4 {
		return SplitResult{Success: false, StrategyName: strategyGridAligned}
	}

	mainBands, gaps := clusterByCenterGap(children, opts.Axis)
	perpBands, _ := clusterByCenterGap(children, perpendicularAxis(opts.Axis))

	// Both axes must show at least two bands: a genuine 2D grid, as
	// opposed to a simple single-axis stack the other strategies already
	// cover. The clustering threshold itself enforces low within-band
	// variance on the banding coordinate.
	if len(mainBands) < 2 || len(perpBands) < 2 {
		return SplitResult{Success: false, StrategyName: strategyGridAligned}
	}

	return SplitResult{
		Success:      true,
		Groups:       mainBands,
		Gaps:         gaps,
		StrategyName: strategyGridAligned,
	}
}
