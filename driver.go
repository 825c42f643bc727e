package layoutparser

// LayoutParser is the engine's entry point (§4.9). It walks root
// post-order — children are fully annotated before their parent is
// resolved — so a container's layout inference always sees children that
// already carry their own LayoutType/XLayoutInfo/style. The input tree is
// mutated in place and also returned for convenience; running LayoutParser
// again on its own output is a no-op beyond recomputing the same fields
// (§7 Idempotence).
func LayoutParser(root *NodeSchema) *NodeSchema {
	if root == nil {
		return nil
	}
	return annotate(root)
}

func annotate(node *NodeSchema) *NodeSchema {
	if node == nil {
		return nil
	}
	if node.Frame != nil {
		f := NormalizeFrame(*node.Frame)
		node.Frame = &f
	}
	for i, child := range node.Children {
		node.Children[i] = annotate(child)
	}
	resolveContainer(node)
	return node
}

// resolveContainer classifies node's children, determines the container's
// layout type, analyzes alignment, and synthesizes the flex style — then
// writes all of it onto node. For a "mix" result it also replaces the
// normal children with synthetic row/column wrapper nodes, one per outer
// group, each independently resolved (§4.6 rule 4, §4.9 step 6).
func resolveContainer(node *NodeSchema) {
	if len(node.Children) == 0 {
		return
	}

	classification := ClassifyChildren(node.Children)
	frame := frameOf(node)
	resolution := DetermineLayoutType(frame, classification.Normal)
	alignment := AnalyzeAlignment(frame, classification.Normal, resolution)

	node.LayoutType = resolution.LayoutType
	node.XLayoutInfo = buildXLayout(alignment)

	children := make([]*NodeSchema, 0, len(node.Children))
	var flexItems []*NodeSchema
	switch resolution.LayoutType {
	case LayoutMix:
		for _, group := range resolution.Groups {
			wrapper := buildGroupWrapper(group)
			children = append(children, wrapper)
			flexItems = append(flexItems, wrapper)
		}
	default:
		children = append(children, classification.Normal...)
		flexItems = classification.Normal
	}
	children = append(children, classification.Absolute...)
	children = append(children, classification.Hidden...)
	children = append(children, classification.Slot...)
	node.Children = children

	if resolution.LayoutType != "" {
		inferResize(frame, resolution.Padding, flexItems)
	}

	style := GenerateFlexStyle(node, resolution, alignment)
	setStyle(node, style)
}

// inferResize determines, for each of node's flex items, whether it fills
// the container's content box along each axis (§3 XLayout.resize): a
// filling child's own width/height is redundant in its emitted style
// (§4.8) since the flex layout already produces that size. "fit" sizing
// can't be distinguished from "fix" with the geometry this engine has —
// there's no text/content measurement available — so anything that
// doesn't fill is reported fix rather than guessed at.
func inferResize(parentFrame Frame, padding Spacing, items []*NodeSchema) {
	contentWidth := parentFrame.Width - padding.Left - padding.Right
	contentHeight := parentFrame.Height - padding.Top - padding.Bottom

	for _, item := range items {
		if item.Frame == nil {
			continue
		}
		fillWidth := contentWidth > 0 && absDiff(item.Frame.Width, contentWidth) <= contentWidth*0.02
		fillHeight := contentHeight > 0 && absDiff(item.Frame.Height, contentHeight) <= contentHeight*0.02

		resize := &ResizeSpec{Width: ResizeFix, Height: ResizeFix}
		if fillWidth {
			resize.Width = ResizeFill
		}
		if fillHeight {
			resize.Height = ResizeFill
		}
		if item.XLayoutInfo == nil {
			item.XLayoutInfo = &XLayout{}
		}
		item.XLayoutInfo.Resize = resize

		if item.Props != nil && item.Props.Style != nil {
			if fillWidth {
				delete(item.Props.Style, "width")
			}
			if fillHeight {
				delete(item.Props.Style, "height")
			}
		}
	}
}

// buildGroupWrapper materializes one outer-split group of a mix container
// as its own container node, recursively resolved the same way any other
// container is — its members were already annotated by the post-order walk
// that reached them as node's original children, so resolving the wrapper
// only needs to group and style them.
func buildGroupWrapper(group []*NodeSchema) *NodeSchema {
	box := boundingBox(group)
	wrapper := &NodeSchema{
		ComponentName: "layout-group",
		ID:            generateID("layout-group"),
		Frame:         &box,
		Children:      group,
	}
	resolveContainer(wrapper)
	return wrapper
}

func buildXLayout(a AlignmentResult) *XLayout {
	if a.AlignHorizontal == "" && a.AlignVertical == "" {
		return nil
	}
	return &XLayout{
		AlignHorizontal: a.AlignHorizontal,
		AlignVertical:   a.AlignVertical,
	}
}

func setStyle(node *NodeSchema, style StyleProps) {
	if node.Props == nil {
		node.Props = &Props{}
	}
	node.Props.Style = style
}
