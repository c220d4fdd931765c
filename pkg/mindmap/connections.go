// Package mindmap implements the in-memory mind-map state core.
// This file contains the free-form connection operations. Connections are
// independent of the parent/child tree and treat their endpoints as an
// unordered pair.
package mindmap

import (
	"fmt"
	"time"

	"mindcanvas/app/pkg/model"
)

// AddConnection adds a labeled, colored connection between two existing
// nodes and returns the new snapshot. Self-connections and duplicates over
// the same unordered pair are rejected.
func AddConnection(m *model.Mindmap, start, end, label, color string) (*model.Mindmap, error) {
	if _, ok := m.Nodes[start]; !ok {
		return m, fmt.Errorf("connection start %q: %w", start, ErrNodeNotFound)
	}
	if _, ok := m.Nodes[end]; !ok {
		return m, fmt.Errorf("connection end %q: %w", end, ErrNodeNotFound)
	}
	if start == end {
		return m, fmt.Errorf("connection from %q to itself: %w", start, ErrInvalidOperation)
	}
	for _, conn := range m.Connections {
		if conn.Matches(start, end) {
			return m, fmt.Errorf("connection between %q and %q already exists: %w", start, end, ErrInvalidOperation)
		}
	}

	next := Clone(m)
	next.Connections = append(next.Connections, model.Connection{
		Start: start,
		End:   end,
		Label: label,
		Color: color,
	})
	next.UpdatedAt = time.Now()
	return next, nil
}

// DeleteConnection removes the connection between the given unordered node
// pair and returns the new snapshot.
func DeleteConnection(m *model.Mindmap, start, end string) (*model.Mindmap, error) {
	for i, conn := range m.Connections {
		if conn.Matches(start, end) {
			next := Clone(m)
			next.Connections = append(next.Connections[:i], next.Connections[i+1:]...)
			next.UpdatedAt = time.Now()
			return next, nil
		}
	}
	return m, fmt.Errorf("connection between %q and %q: %w", start, end, ErrConnectionNotFound)
}

// pruneConnections drops every connection with an endpoint in the removed
// set. Called by DeleteNode so deleted nodes never leave dangling edges.
func pruneConnections(m *model.Mindmap, removed map[string]bool) {
	kept := m.Connections[:0]
	for _, conn := range m.Connections {
		if removed[conn.Start] || removed[conn.End] {
			continue
		}
		kept = append(kept, conn)
	}
	m.Connections = kept
}
