package layoutparser

// High-level builder helpers for constructing NodeSchema trees
// programmatically, inspired by SwiftUI/Flutter-style stack builders. Since
// this engine infers layout from frames rather than computing them, these
// builders only ever set input fields (Frame, Children, and the
// position/hidden/slot markers) — never LayoutType or XLayoutInfo, which
// are LayoutParser's job.

// Leaf creates a childless node at the given frame.
//
// Example:
//
//	btn := layoutparser.Leaf("Button", layoutparser.Frame{Left: 10, Top: 10, Width: 80, Height: 40})
func Leaf(componentName string, frame Frame) *NodeSchema {
	return CreateSchema(componentName, SchemaOptions{Frame: &frame})
}

// Container creates a node at the given frame with the given children.
func Container(componentName string, frame Frame, children ...*NodeSchema) *NodeSchema {
	return CreateSchema(componentName, SchemaOptions{Frame: &frame, Children: children})
}

// Absolute marks node as explicitly absolutely positioned, so the
// classifier (§4.5) places it in the absolute group regardless of whether
// it overlaps a sibling.
func Absolute(node *NodeSchema) *NodeSchema {
	if node.Props == nil {
		node.Props = &Props{}
	}
	if node.Props.Style == nil {
		node.Props.Style = StyleProps{}
	}
	node.Props.Style["position"] = "absolute"
	return node
}

// Hide marks node hidden, excluding it from its parent's split, gap, and
// padding computation and from the sibling-overlap test (§4.5). Its frame
// still counts toward the overlap tolerance derived from all siblings.
func Hide(node *NodeSchema) *NodeSchema {
	node.Hidden = true
	return node
}

// AsSlot marks node as a named slot placeholder, excluding it from its
// parent's split, gap, and padding computation (§4.5). Unlike a hidden
// node it still counts as a sibling in the overlap test, so a normal child
// overlapping it can be classified absolute.
func AsSlot(node *NodeSchema, name string) *NodeSchema {
	node.Slot = name
	return node
}
