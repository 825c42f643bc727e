// Package assert provides a CEL-based assertion DSL over an annotated
// layoutparser.NodeSchema tree, so fixture-driven tests can express
// expectations as expressions ("getGap('root') == 20.0") rather than
// hand-written Go comparisons.
package assert

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/visionkit/layoutparser"
)

// Assertion is one CEL expression to evaluate against an annotated tree.
type Assertion struct {
	Type       string   `json:"type" yaml:"type"` // e.g. "layout"; Eval does not inspect it
	Expression string   `json:"expression" yaml:"expression"`
	Message    string   `json:"message" yaml:"message"`
	Tolerance  float64  `json:"tolerance" yaml:"tolerance"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Result is the outcome of evaluating one Assertion.
type Result struct {
	Assertion Assertion
	Passed    bool
	Actual    string
	Error     string
}

// Env is a CEL environment bound to one annotated tree, addressed by path
// strings of the form "root", "root.children[0]", "root.children[0].children[1]".
type Env struct {
	root  *layoutparser.NodeSchema
	nodes map[string]*layoutparser.NodeSchema
	env   *cel.Env
}

// NewEnv builds an assertion environment over root. root is typically the
// output of layoutparser.LayoutParser, so getLayoutType/getGap/etc. see
// the inferred annotations rather than bare input frames.
func NewEnv(root *layoutparser.NodeSchema) (*Env, error) {
	nodes := make(map[string]*layoutparser.NodeSchema)
	nodes["root"] = root
	collectNodes(root, "root", nodes)

	env, err := cel.NewEnv(
		cel.Variable("root", cel.DynType),

		unaryDouble("getLeft", nodes, func(n *layoutparser.NodeSchema) float64 { return frameOf(n).Left }),
		unaryDouble("getTop", nodes, func(n *layoutparser.NodeSchema) float64 { return frameOf(n).Top }),
		unaryDouble("getRight", nodes, func(n *layoutparser.NodeSchema) float64 { return frameOf(n).Right }),
		unaryDouble("getBottom", nodes, func(n *layoutparser.NodeSchema) float64 { return frameOf(n).Bottom }),
		unaryDouble("getWidth", nodes, func(n *layoutparser.NodeSchema) float64 { return frameOf(n).Width }),
		unaryDouble("getHeight", nodes, func(n *layoutparser.NodeSchema) float64 { return frameOf(n).Height }),

		unaryDouble("getGap", nodes, func(n *layoutparser.NodeSchema) float64 { return styleNumber(n, "gap") }),
		unaryDouble("getPaddingTop", nodes, func(n *layoutparser.NodeSchema) float64 { return styleNumber(n, "paddingTop") }),
		unaryDouble("getPaddingRight", nodes, func(n *layoutparser.NodeSchema) float64 { return styleNumber(n, "paddingRight") }),
		unaryDouble("getPaddingBottom", nodes, func(n *layoutparser.NodeSchema) float64 { return styleNumber(n, "paddingBottom") }),
		unaryDouble("getPaddingLeft", nodes, func(n *layoutparser.NodeSchema) float64 { return styleNumber(n, "paddingLeft") }),
		unaryDouble("getChildCount", nodes, func(n *layoutparser.NodeSchema) float64 { return float64(len(n.Children)) }),

		unaryString("getLayoutType", nodes, func(n *layoutparser.NodeSchema) string { return string(n.LayoutType) }),
		unaryString("getAlignHorizontal", nodes, func(n *layoutparser.NodeSchema) string {
			if n.XLayoutInfo == nil {
				return ""
			}
			return n.XLayoutInfo.AlignHorizontal
		}),
		unaryString("getAlignVertical", nodes, func(n *layoutparser.NodeSchema) string {
			if n.XLayoutInfo == nil {
				return ""
			}
			return n.XLayoutInfo.AlignVertical
		}),
		unaryString("getJustifyContent", nodes, func(n *layoutparser.NodeSchema) string { return styleString(n, "justifyContent") }),
		unaryString("getAlignItems", nodes, func(n *layoutparser.NodeSchema) string { return styleString(n, "alignItems") }),

		unaryBool("isHidden", nodes, func(n *layoutparser.NodeSchema) bool { return n.Hidden }),
		unaryString("getSlot", nodes, func(n *layoutparser.NodeSchema) string { return n.Slot }),
	)
	if err != nil {
		return nil, err
	}

	return &Env{root: root, nodes: nodes, env: env}, nil
}

// Eval compiles and runs expr, which may reference the getter functions
// above plus the variable "root" (bound to the path string "root").
func (e *Env) Eval(a Assertion) Result {
	result := Result{Assertion: a}

	ast, issues := e.env.Compile(a.Expression)
	if issues != nil && issues.Err() != nil {
		result.Error = fmt.Sprintf("compile error: %v", issues.Err())
		return result
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		result.Error = fmt.Sprintf("program error: %v", err)
		return result
	}
	out, _, err := prg.Eval(map[string]interface{}{"root": "root"})
	if err != nil {
		result.Error = fmt.Sprintf("eval error: %v", err)
		return result
	}
	result.Actual = fmt.Sprintf("%v", out.Value())
	passed, ok := out.Value().(bool)
	result.Passed = ok && passed
	if !ok {
		result.Error = "expression did not evaluate to a bool"
	}
	return result
}

// EvalAll evaluates every assertion independently.
func (e *Env) EvalAll(assertions []Assertion) []Result {
	results := make([]Result, 0, len(assertions))
	for _, a := range assertions {
		results = append(results, e.Eval(a))
	}
	return results
}

func collectNodes(node *layoutparser.NodeSchema, path string, nodes map[string]*layoutparser.NodeSchema) {
	if node == nil {
		return
	}
	for i, child := range node.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		nodes[childPath] = child
		collectNodes(child, childPath, nodes)
	}
}

func findNode(path string, nodes map[string]*layoutparser.NodeSchema) *layoutparser.NodeSchema {
	n, ok := nodes[path]
	if !ok {
		return nil
	}
	return n
}

func frameOf(n *layoutparser.NodeSchema) layoutparser.Frame {
	if n == nil || n.Frame == nil {
		return layoutparser.Frame{}
	}
	return *n.Frame
}

func styleNumber(n *layoutparser.NodeSchema, key string) float64 {
	if n == nil || n.Props == nil || n.Props.Style == nil {
		return 0
	}
	switch v := n.Props.Style[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func styleString(n *layoutparser.NodeSchema, key string) string {
	if n == nil || n.Props == nil || n.Props.Style == nil {
		return ""
	}
	s, _ := n.Props.Style[key].(string)
	return s
}

func unaryDouble(name string, nodes map[string]*layoutparser.NodeSchema, get func(*layoutparser.NodeSchema) float64) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_node",
			[]*cel.Type{cel.StringType},
			cel.DoubleType,
			cel.UnaryBinding(func(pathVal ref.Val) ref.Val {
				path, ok := pathVal.Value().(string)
				if !ok {
					return types.NewErr("path must be a string")
				}
				n := findNode(path, nodes)
				if n == nil {
					return types.NewErr("node not found: %s", path)
				}
				return types.Double(get(n))
			})))
}

func unaryString(name string, nodes map[string]*layoutparser.NodeSchema, get func(*layoutparser.NodeSchema) string) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_node",
			[]*cel.Type{cel.StringType},
			cel.StringType,
			cel.UnaryBinding(func(pathVal ref.Val) ref.Val {
				path, ok := pathVal.Value().(string)
				if !ok {
					return types.NewErr("path must be a string")
				}
				n := findNode(path, nodes)
				if n == nil {
					return types.NewErr("node not found: %s", path)
				}
				return types.String(get(n))
			})))
}

func unaryBool(name string, nodes map[string]*layoutparser.NodeSchema, get func(*layoutparser.NodeSchema) bool) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_node",
			[]*cel.Type{cel.StringType},
			cel.BoolType,
			cel.UnaryBinding(func(pathVal ref.Val) ref.Val {
				path, ok := pathVal.Value().(string)
				if !ok {
					return types.NewErr("path must be a string")
				}
				n := findNode(path, nodes)
				if n == nil {
					return types.NewErr("node not found: %s", path)
				}
				return types.Bool(get(n))
			})))
}
