// Package mindmap implements the in-memory mind-map state core.
// This file renders a plain-text listing of a map for the command surface.
package mindmap

import (
	"fmt"
	"strings"

	"mindcanvas/app/pkg/model"
)

// ViewTree returns an indented textual listing of the tree followed by the
// connection list. Collapsed nodes show a marker instead of their subtree.
func ViewTree(m *model.Mindmap) string {
	var sb strings.Builder
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		node, ok := m.Nodes[id]
		if !ok {
			return
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(node.ID)
		sb.WriteString(": ")
		sb.WriteString(node.Text)
		if !node.IsExpanded && len(node.Children) > 0 {
			fmt.Fprintf(&sb, " [+%d]", len(node.Children))
			sb.WriteString("\n")
			return
		}
		sb.WriteString("\n")
		for _, childID := range node.Children {
			walk(childID, depth+1)
		}
	}
	walk(m.RootID, 0)

	if len(m.Connections) > 0 {
		sb.WriteString("connections:\n")
		for _, conn := range m.Connections {
			sb.WriteString("  ")
			sb.WriteString(conn.Start)
			sb.WriteString(" <-> ")
			sb.WriteString(conn.End)
			if conn.Label != "" {
				fmt.Fprintf(&sb, " (%s)", conn.Label)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
