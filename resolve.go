package layoutparser

// LayoutResolution is the result of determining a container's layout
// type: the winning axis (if any), the groups and gaps that axis
// produced, and the padding between the parent frame and its children's
// bounding box.
type LayoutResolution struct {
	LayoutType LayoutType
	Axis       Axis // the split axis that actually won; the flex direction for mix containers
	Groups     [][]*NodeSchema
	Gaps       []float64
	Gap        float64 // median of Gaps, the single representative gap
	Padding    Spacing
}

// Spacing is the four-edge distance from a parent frame to its content.
type Spacing struct {
	Top, Right, Bottom, Left float64
}

// SplitToRow runs the multi-strategy executor with axis=row: it detects
// columns side by side.
func SplitToRow(children []*NodeSchema) SplitResult {
	tol := AdaptiveTolerance(children, AxisRow)
	return runSplitExecutor(children, SplitOptions{Axis: AxisRow, Tolerance: tol})
}

// SplitToColumn runs the multi-strategy executor with axis=column: it
// detects rows stacked vertically.
func SplitToColumn(children []*NodeSchema) SplitResult {
	tol := AdaptiveTolerance(children, AxisColumn)
	return runSplitExecutor(children, SplitOptions{Axis: AxisColumn, Tolerance: tol})
}

// DetermineLayoutType tries both axes and picks a winner per §4.6:
//  1. only column succeeds -> column
//  2. only row succeeds -> row
//  3. both succeed -> mix, choosing the higher-scoring split as the
//     outer arrangement
//  4. neither succeeds -> unset, caller falls back to absolute positioning
func DetermineLayoutType(parentFrame Frame, children []*NodeSchema) LayoutResolution {
	if len(children) < 2 {
		return LayoutResolution{Padding: computePadding(parentFrame, children)}
	}

	rowResult := SplitToRow(children)
	colResult := SplitToColumn(children)

	var winner SplitResult
	var layoutType LayoutType
	var axis Axis

	switch {
	case colResult.Success && !rowResult.Success:
		winner = colResult
		layoutType = LayoutColumn
		axis = AxisColumn
	case rowResult.Success && !colResult.Success:
		winner = rowResult
		layoutType = LayoutRow
		axis = AxisRow
	case rowResult.Success && colResult.Success:
		if colResult.Score >= rowResult.Score {
			winner = colResult
			axis = AxisColumn
		} else {
			winner = rowResult
			axis = AxisRow
		}
		layoutType = LayoutMix
	default:
		return LayoutResolution{Padding: computePadding(parentFrame, children)}
	}

	return LayoutResolution{
		LayoutType: layoutType,
		Axis:       axis,
		Groups:     winner.Groups,
		Gaps:       winner.Gaps,
		Gap:        median(winner.Gaps),
		Padding:    computePadding(parentFrame, children),
	}
}

// computePadding returns the four edge distances from parentFrame to the
// bounding box of children, clamped to 0 when negative (children
// overflowing the parent never produce negative padding).
func computePadding(parentFrame Frame, children []*NodeSchema) Spacing {
	if len(children) == 0 {
		return Spacing{}
	}
	box := boundingBox(children)
	clamp := func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return x
	}
	return Spacing{
		Top:    clamp(box.Top - parentFrame.Top),
		Right:  clamp(parentFrame.Right - box.Right),
		Bottom: clamp(parentFrame.Bottom - box.Bottom),
		Left:   clamp(box.Left - parentFrame.Left),
	}
}
