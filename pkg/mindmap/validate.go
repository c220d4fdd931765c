// Package mindmap implements the in-memory mind-map state core.
// This file validates the structural invariants of a map, used when
// accepting imported documents.
package mindmap

import (
	"fmt"

	"mindcanvas/app/pkg/model"
)

// Validate checks the structural invariants of a mind map: a resolvable
// root with no parent, exactly one parentless node, bidirectional
// parent/children consistency, no dangling references, full reachability
// from the root, and connection endpoints that resolve. Violations are
// reported as ErrParse since they only arise from external documents.
func Validate(m *model.Mindmap) error {
	if m.RootID == "" {
		return fmt.Errorf("missing root id: %w", ErrParse)
	}
	root, ok := m.Nodes[m.RootID]
	if !ok {
		return fmt.Errorf("root node %q not in node mapping: %w", m.RootID, ErrParse)
	}
	if root.ParentID != "" {
		return fmt.Errorf("root node %q has a parent: %w", m.RootID, ErrParse)
	}

	for id, node := range m.Nodes {
		if node.ID != id {
			return fmt.Errorf("node keyed %q carries id %q: %w", id, node.ID, ErrParse)
		}
		if id != m.RootID {
			if node.ParentID == "" {
				return fmt.Errorf("non-root node %q has no parent: %w", id, ErrParse)
			}
			parent, ok := m.Nodes[node.ParentID]
			if !ok {
				return fmt.Errorf("node %q references missing parent %q: %w", id, node.ParentID, ErrParse)
			}
			if count := countID(parent.Children, id); count != 1 {
				return fmt.Errorf("parent %q lists child %q %d times: %w", parent.ID, id, count, ErrParse)
			}
		}
		for _, childID := range node.Children {
			child, ok := m.Nodes[childID]
			if !ok {
				return fmt.Errorf("node %q references missing child %q: %w", id, childID, ErrParse)
			}
			if child.ParentID != id {
				return fmt.Errorf("child %q of %q points to parent %q: %w", childID, id, child.ParentID, ErrParse)
			}
		}
	}

	// Bidirectional consistency alone admits cycles detached from the
	// root, so check reachability as well.
	reachable := descendants(m, m.RootID)
	if len(reachable)+1 != len(m.Nodes) {
		return fmt.Errorf("%d of %d nodes unreachable from root: %w", len(m.Nodes)-len(reachable)-1, len(m.Nodes), ErrParse)
	}

	for _, conn := range m.Connections {
		if _, ok := m.Nodes[conn.Start]; !ok {
			return fmt.Errorf("connection references missing node %q: %w", conn.Start, ErrParse)
		}
		if _, ok := m.Nodes[conn.End]; !ok {
			return fmt.Errorf("connection references missing node %q: %w", conn.End, ErrParse)
		}
		if conn.Start == conn.End {
			return fmt.Errorf("connection from %q to itself: %w", conn.Start, ErrParse)
		}
	}

	return nil
}

// countID counts occurrences of id in ids.
func countID(ids []string, id string) int {
	count := 0
	for _, candidate := range ids {
		if candidate == id {
			count++
		}
	}
	return count
}
