// Package model defines the data structures used throughout the Mindcanvas application.
package model

import "time"

// Connection is a free-form labeled edge between two nodes. It is
// independent of the parent/child tree; the (Start, End) pair is treated as
// unordered for duplicate detection.
type Connection struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// Matches reports whether the connection joins the same unordered node pair.
func (c Connection) Matches(start, end string) bool {
	return (c.Start == start && c.End == end) || (c.Start == end && c.End == start)
}

// Mindmap is a complete mind-map document: the node mapping keyed by node
// ID, the root reference, and the free-form connections.
type Mindmap struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Owner       string           `json:"-"`
	RootID      string           `json:"rootId"`
	Nodes       map[string]*Node `json:"nodes"`
	Connections []Connection     `json:"connections"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Root returns the root node, or nil if the root reference is dangling.
func (m *Mindmap) Root() *Node {
	return m.Nodes[m.RootID]
}

// MindmapInfo contains basic information about a mind map.
type MindmapInfo struct {
	ID        string
	Name      string
	Owner     string
	NodeCount int
	Updated   time.Time
}
