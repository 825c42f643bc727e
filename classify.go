package layoutparser

// ClassifyChildren partitions a container's children into
// {hidden, slot, absolute, normal}, in that priority order: hidden beats
// slot beats absolute. A child missing its frame is treated as zero-size
// at the origin and classified absolute, so it doesn't skew splitting
// statistics for the normal group (§7).
func ClassifyChildren(children []*NodeSchema) ChildClassification {
	var c ChildClassification
	if len(children) == 0 {
		return c
	}

	frames := make([]Frame, len(children))
	for i, child := range children {
		frames[i] = frameOf(child)
	}
	tol := OverlapDetectionTolerance(frames)

	for i, child := range children {
		switch {
		case child.Hidden:
			c.Hidden = append(c.Hidden, child)
		case child.Slot != "":
			c.Slot = append(c.Slot, child)
		case child.Frame == nil:
			c.Absolute = append(c.Absolute, child)
		case isAbsolutelyPositioned(child):
			c.Absolute = append(c.Absolute, child)
		case overlapsAnySibling(i, children, frames, tol.Significant):
			c.Absolute = append(c.Absolute, child)
		default:
			c.Normal = append(c.Normal, child)
		}
	}
	return c
}

func isAbsolutelyPositioned(n *NodeSchema) bool {
	if n.Props == nil || n.Props.Style == nil {
		return false
	}
	pos, ok := n.Props.Style["position"]
	if !ok {
		return false
	}
	s, ok := pos.(string)
	return ok && (s == "absolute" || s == "fixed")
}

func overlapsAnySibling(i int, children []*NodeSchema, frames []Frame, significant float64) bool {
	for j := range children {
		if j == i {
			continue
		}
		if children[j].Hidden {
			continue
		}
		if significantlyOverlap(frames[i], frames[j], significant) {
			return true
		}
	}
	return false
}
