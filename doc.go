// Package layoutparser infers flex-style layout semantics from an
// absolutely-positioned tree of UI nodes.
//
// Given a design-tool export — a NodeSchema tree whose nodes carry
// {left, top, width, height} frames and nothing else — the engine decides,
// for each container, whether its children form a horizontal sequence, a
// vertical sequence, a grid, or an overlapping stack, and synthesizes the
// flex CSS necessary to reproduce the positions without absolute
// coordinates.
//
// # Quick Start
//
//	root := layoutparser.CreateSchema("Frame", layoutparser.SchemaOptions{
//	    Frame: &layoutparser.Frame{Width: 300, Height: 100},
//	    Children: []*layoutparser.NodeSchema{
//	        layoutparser.CreateSchema("Button", layoutparser.SchemaOptions{
//	            Frame: &layoutparser.Frame{Left: 10, Top: 25, Width: 80, Height: 50},
//	        }),
//	    },
//	})
//	annotated := layoutparser.LayoutParser(root)
//
// # Pipeline
//
// The engine runs bottom-up: geometry primitives feed an adaptive
// tolerance function, which parameterizes four split strategies, which a
// multi-strategy executor scores and picks between. The winning split
// feeds a layout-type resolver, an alignment analyzer, and finally a
// style synthesizer that emits a flex CSS descriptor attached to the
// node.
//
// # Scope
//
// The engine is a pure function over the tree: it does not render, reflow
// text, or animate, and it never errors — malformed geometry degrades to
// an unannotated (absolutely-positioned) node instead. See the serialize,
// assert, and schema subpackages for JSON/YAML marshaling, CEL-based
// assertions over annotated trees, and golden-fixture loading.
package layoutparser
