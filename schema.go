package layoutparser

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"strings"
)

// LayoutType is the resolved flex direction of a container, or "" when no
// split strategy succeeded and the container falls back to absolute
// positioning.
type LayoutType string

const (
	LayoutRow    LayoutType = "row"
	LayoutColumn LayoutType = "column"
	LayoutMix    LayoutType = "mix"
)

// Axis is the direction a split strategy walks. A "row" axis partitions
// children into columns (side-by-side groups separated by horizontal
// gaps); a "column" axis partitions children into rows.
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// Frame is an absolute rectangle. Right and Bottom are cached, not
// independent: NormalizeFrame is the only place they're derived.
type Frame struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// NormalizeFrame fills Right/Bottom from Left/Top/Width/Height and clamps
// non-finite or negative dimensions to zero. Partial input (e.g. only
// Left/Top/Width/Height set) is accepted; Right/Bottom are always
// recomputed, never trusted from the input.
func NormalizeFrame(f Frame) Frame {
	if !isFinite(f.Left) {
		f.Left = 0
	}
	if !isFinite(f.Top) {
		f.Top = 0
	}
	if !isFinite(f.Width) || f.Width < 0 {
		f.Width = 0
	}
	if !isFinite(f.Height) || f.Height < 0 {
		f.Height = 0
	}
	f.Right = f.Left + f.Width
	f.Bottom = f.Top + f.Height
	return f
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// XLayout is the engine's extended layout annotation. Any field may be
// absent when the corresponding confidence was too low to assert it.
type XLayout struct {
	AlignHorizontal string      `json:"alignHorizontal,omitempty" yaml:"alignHorizontal,omitempty"`
	AlignVertical   string      `json:"alignVertical,omitempty" yaml:"alignVertical,omitempty"`
	Resize          *ResizeSpec `json:"resize,omitempty" yaml:"resize,omitempty"`
	Fixed           bool        `json:"fixed,omitempty" yaml:"fixed,omitempty"`
}

// ResizeSpec describes how a node should resize along each axis. Values
// are "fill", "fit", or "fix".
type ResizeSpec struct {
	Width  string `json:"width,omitempty" yaml:"width,omitempty"`
	Height string `json:"height,omitempty" yaml:"height,omitempty"`
}

const (
	AlignLeft          = "left"
	AlignRight         = "right"
	AlignCenterH       = "center"
	AlignJustify       = "justify"
	AlignSpaceBetween  = "space-between"
	AlignSpaceEvenly   = "space-evenly"
	AlignTop           = "top"
	AlignBottom        = "bottom"
	AlignMiddle        = "middle"
	AlignStretch       = "stretch"
	ResizeFill         = "fill"
	ResizeFit          = "fit"
	ResizeFix          = "fix"
)

// StyleProps is a CSS-property-name to string-or-number bag. Frame-related
// keys (left/top/right/bottom/width/height) are stripped before storage
// by the style synthesizer so the emitted flex layout is never
// contradicted by a stale absolute position.
type StyleProps map[string]interface{}

var frameKeys = map[string]bool{
	"left": true, "top": true, "right": true, "bottom": true,
	"width": true, "height": true,
}

// stripFrameKeys returns a copy of props with frame-related keys removed.
func stripFrameKeys(props StyleProps) StyleProps {
	out := make(StyleProps, len(props))
	for k, v := range props {
		if frameKeys[k] {
			continue
		}
		out[k] = v
	}
	return out
}

// Props is a node's prop bag. Style holds CSS-like properties, including
// position, which the classifier inspects.
type Props struct {
	Style StyleProps `json:"style,omitempty" yaml:"style,omitempty"`
}

// NodeSchema is one node of the tree the engine annotates. ComponentName
// identifies the originating design-tool component; Frame and Children
// are optional (a leaf may have neither). LayoutType, XLayoutInfo, and
// the style entry of Props are output-only fields populated by
// LayoutParser.
type NodeSchema struct {
	ComponentName string        `json:"componentName" yaml:"componentName"`
	ID            string        `json:"id" yaml:"id"`
	Frame         *Frame        `json:"frame,omitempty" yaml:"frame,omitempty"`
	Children      []*NodeSchema `json:"children,omitempty" yaml:"children,omitempty"`
	Props         *Props        `json:"props,omitempty" yaml:"props,omitempty"`
	Hidden        bool          `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Slot          string        `json:"slot,omitempty" yaml:"slot,omitempty"`

	// Output-only, populated by LayoutParser.
	LayoutType  LayoutType `json:"layoutType,omitempty" yaml:"layoutType,omitempty"`
	XLayoutInfo *XLayout   `json:"xLayout,omitempty" yaml:"xLayout,omitempty"`
}

// SchemaOptions are the optional fields accepted by CreateSchema.
type SchemaOptions struct {
	Frame    *Frame
	Props    *Props
	Children []*NodeSchema
	ID       string
}

// CreateSchema builds a NodeSchema, generating an id from componentName
// plus a random suffix when one isn't supplied (so two calls with the same
// componentName get different ids).
func CreateSchema(componentName string, opts SchemaOptions) *NodeSchema {
	id := opts.ID
	if id == "" {
		id = generateID(componentName)
	}
	return &NodeSchema{
		ComponentName: componentName,
		ID:            id,
		Frame:         opts.Frame,
		Children:      opts.Children,
		Props:         opts.Props,
	}
}

// generateID derives an id as "<lowercased componentName>-<short suffix>",
// matching the prefix convention design tools use for exported node ids.
func generateID(componentName string) string {
	prefix := strings.ToLower(strings.TrimSpace(componentName))
	if prefix == "" {
		prefix = "node"
	}
	prefix = strings.Map(func(r rune) rune {
		if r == ' ' {
			return '-'
		}
		return r
	}, prefix)
	return prefix + "-" + shortSuffix()
}

func shortSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "0000"
	}
	return hex.EncodeToString(b[:])
}

// ChildClassification is a disjoint partition of a container's children,
// computed by ClassifyChildren.
type ChildClassification struct {
	Normal   []*NodeSchema
	Absolute []*NodeSchema
	Hidden   []*NodeSchema
	Slot     []*NodeSchema
}

// SplitResult is the outcome of one split strategy run. Groups is an
// ordered partition of the input child list; Gaps[i] is the perpendicular
// gap between Groups[i] and Groups[i+1] along the split axis. Success is
// false iff Groups is a single group containing every input child.
type SplitResult struct {
	Success      bool
	Groups       [][]*NodeSchema
	Gaps         []float64
	StrategyName string
	Score        float64
}

// SplitOptions parameterize a split strategy run.
type SplitOptions struct {
	Axis      Axis
	Tolerance float64
}

// LayoutFactors are statistics over a set of children, projected onto one
// axis, consumed by AdaptiveTolerance.
type LayoutFactors struct {
	AvgSize        float64
	SizeStdDev     float64
	SizeUniformity float64
	ElementCount   int
	Density        float64
	CV             float64
}
