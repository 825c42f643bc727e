package layoutparser

// justifyContentTable and alignItemsTable map §4.7 alignment classes to
// CSS values, depending on whether the axis in question is the flex
// main axis (justify-content) or cross axis (align-items).
var justifyContentTable = map[string]string{
	AlignLeft:         "flex-start",
	AlignRight:        "flex-end",
	AlignCenterH:       "center",
	AlignSpaceBetween: "space-between",
	AlignSpaceEvenly:  "space-evenly",
	AlignJustify:      "space-between",
	AlignTop:          "flex-start",
	AlignBottom:       "flex-end",
	AlignMiddle:       "center",
}

var alignItemsTable = map[string]string{
	AlignLeft:    "flex-start",
	AlignRight:   "flex-end",
	AlignCenterH:  "center",
	AlignTop:     "flex-start",
	AlignBottom:  "flex-end",
	AlignMiddle:  "center",
	AlignStretch: "stretch",
}

// AlignmentToCSS maps the inferred horizontal/vertical alignment classes
// to {justifyContent, alignItems} given the container's resolved flex
// direction. For a row container, horizontal is the main axis and
// vertical is the cross axis; for a column container it's the reverse.
func AlignmentToCSS(horiz, vert string, direction LayoutType) (justifyContent, alignItems string) {
	main, cross := horiz, vert
	if direction == LayoutColumn {
		main, cross = vert, horiz
	}
	// An axis whose confidence fell below the §7 threshold arrives here
	// unset. That isn't "no opinion" in the rendered CSS — flexbox still
	// has to pick something — so it falls back to the CSS defaults
	// (flex-start main, stretch cross) rather than omitting the property.
	if main == "" {
		justifyContent = "flex-start"
	} else if v, ok := justifyContentTable[main]; ok {
		justifyContent = v
	}
	if cross == "" {
		alignItems = "stretch"
	} else if v, ok := alignItemsTable[cross]; ok {
		alignItems = v
	}
	return justifyContent, alignItems
}

// GenerateFlexStyle synthesizes the flex CSS descriptor for an already
// resolved+analyzed container. Frame-related keys from the node's
// existing style bag are stripped so the emitted style never contradicts
// the inferred layout (§4.8).
func GenerateFlexStyle(node *NodeSchema, resolution LayoutResolution, alignment AlignmentResult) StyleProps {
	base := StyleProps{}
	if node.Props != nil && node.Props.Style != nil {
		base = stripFrameKeys(node.Props.Style)
	} else {
		base = StyleProps{}
	}

	p := resolution.Padding
	if p.Top > 0 {
		base["paddingTop"] = p.Top
	}
	if p.Right > 0 {
		base["paddingRight"] = p.Right
	}
	if p.Bottom > 0 {
		base["paddingBottom"] = p.Bottom
	}
	if p.Left > 0 {
		base["paddingLeft"] = p.Left
	}

	if resolution.LayoutType == "" {
		return base
	}

	base["display"] = "flex"
	direction := resolution.LayoutType
	if direction == LayoutMix {
		// For mix, the parent's flexDirection is the winning split axis
		// (§4.8): DetermineLayoutType records it in resolution.Axis since
		// LayoutMix itself doesn't name a concrete direction. Nested
		// wrapper nodes carry their own direction independently.
		if resolution.Axis == AxisColumn {
			direction = LayoutColumn
		} else {
			direction = LayoutRow
		}
	}
	base["flexDirection"] = string(direction)

	if resolution.Gap > 0 {
		base["gap"] = resolution.Gap
	}

	justify, align := AlignmentToCSS(alignment.AlignHorizontal, alignment.AlignVertical, direction)
	if justify != "" {
		base["justifyContent"] = justify
	}
	if align != "" {
		base["alignItems"] = align
	}

	// node's own width/height go into its style unconditionally here;
	// inferResize (driver.go) strips them back out, from the parent's
	// side, once it knows whether this node fills the parent's content
	// box along that axis (§4.8: "omit when redundant with a fill
	// resize"). That can only be decided by the parent, since it's the
	// parent's content box the fill is measured against.
	if node.Frame != nil {
		base["width"] = node.Frame.Width
		base["height"] = node.Frame.Height
	}

	return base
}
