package main

import (
	"fmt"

	"github.com/visionkit/layoutparser"
)

// diffNodes walks before and after in lockstep by child index and
// collects one human-readable line per field that diverges.
func diffNodes(path string, before, after *layoutparser.NodeSchema) []string {
	var diffs []string

	switch {
	case before == nil && after == nil:
		return diffs
	case before == nil:
		return []string{fmt.Sprintf("%s: added (componentName=%s)", path, after.ComponentName)}
	case after == nil:
		return []string{fmt.Sprintf("%s: removed (componentName=%s)", path, before.ComponentName)}
	}

	if before.LayoutType != after.LayoutType {
		diffs = append(diffs, fmt.Sprintf("%s: layoutType %q -> %q", path, before.LayoutType, after.LayoutType))
	}

	diffs = append(diffs, diffAlignment(path, before.XLayoutInfo, after.XLayoutInfo)...)
	diffs = append(diffs, diffStyle(path, before, after)...)

	n := len(before.Children)
	if len(after.Children) > n {
		n = len(after.Children)
	}
	for i := 0; i < n; i++ {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		var b, a *layoutparser.NodeSchema
		if i < len(before.Children) {
			b = before.Children[i]
		}
		if i < len(after.Children) {
			a = after.Children[i]
		}
		diffs = append(diffs, diffNodes(childPath, b, a)...)
	}

	return diffs
}

func diffAlignment(path string, before, after *layoutparser.XLayout) []string {
	var diffs []string
	beforeH, beforeV := "", ""
	afterH, afterV := "", ""
	if before != nil {
		beforeH, beforeV = before.AlignHorizontal, before.AlignVertical
	}
	if after != nil {
		afterH, afterV = after.AlignHorizontal, after.AlignVertical
	}
	if beforeH != afterH {
		diffs = append(diffs, fmt.Sprintf("%s: alignHorizontal %q -> %q", path, beforeH, afterH))
	}
	if beforeV != afterV {
		diffs = append(diffs, fmt.Sprintf("%s: alignVertical %q -> %q", path, beforeV, afterV))
	}
	return diffs
}

func diffStyle(path string, before, after *layoutparser.NodeSchema) []string {
	var diffs []string
	beforeStyle := styleOf(before)
	afterStyle := styleOf(after)

	seen := make(map[string]bool, len(beforeStyle)+len(afterStyle))
	for k := range beforeStyle {
		seen[k] = true
	}
	for k := range afterStyle {
		seen[k] = true
	}
	for k := range seen {
		bv, bok := beforeStyle[k]
		av, aok := afterStyle[k]
		if !bok {
			diffs = append(diffs, fmt.Sprintf("%s: style.%s added -> %v", path, k, av))
			continue
		}
		if !aok {
			diffs = append(diffs, fmt.Sprintf("%s: style.%s removed (was %v)", path, k, bv))
			continue
		}
		if fmt.Sprintf("%v", bv) != fmt.Sprintf("%v", av) {
			diffs = append(diffs, fmt.Sprintf("%s: style.%s %v -> %v", path, k, bv, av))
		}
	}
	return diffs
}

func styleOf(n *layoutparser.NodeSchema) layoutparser.StyleProps {
	if n == nil || n.Props == nil || n.Props.Style == nil {
		return layoutparser.StyleProps{}
	}
	return n.Props.Style
}
