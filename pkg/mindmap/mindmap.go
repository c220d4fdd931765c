// Package mindmap implements the in-memory mind-map state core.
// This file contains map construction, snapshot cloning, and node lookup.
package mindmap

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mindcanvas/app/pkg/model"
)

const (
	// RootNodeID is the identifier given to the root node of a new map.
	RootNodeID = "root"

	// DefaultNodeText is used when a node is added without explicit text.
	DefaultNodeText = "New Idea"

	// Offsets applied to a new child's position relative to its parent.
	childOffsetX = 180.0
	childOffsetY = 60.0
)

// New creates a mind map containing only a root node.
func New(name, owner, rootText string) *model.Mindmap {
	if rootText == "" {
		rootText = name
	}
	now := time.Now()
	root := &model.Node{
		ID:         RootNodeID,
		Text:       rootText,
		Position:   model.Position{X: 0, Y: 0},
		Shape:      model.ShapeEllipse,
		Children:   []string{},
		IsExpanded: true,
	}
	return &model.Mindmap{
		ID:          uuid.NewString(),
		Name:        name,
		Owner:       owner,
		RootID:      root.ID,
		Nodes:       map[string]*model.Node{root.ID: root},
		Connections: []model.Connection{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a deep copy of the map. Snapshots handed to the history
// ledger must never share node or connection storage with live state.
func Clone(m *model.Mindmap) *model.Mindmap {
	nodes := make(map[string]*model.Node, len(m.Nodes))
	for id, node := range m.Nodes {
		copied := *node
		copied.Children = append([]string(nil), node.Children...)
		if copied.Children == nil {
			copied.Children = []string{}
		}
		nodes[id] = &copied
	}
	connections := append([]model.Connection(nil), m.Connections...)
	if connections == nil {
		connections = []model.Connection{}
	}
	clone := *m
	clone.Nodes = nodes
	clone.Connections = connections
	return &clone
}

// newNodeID generates a fresh child identifier derived from the parent's
// id, picking the lowest free sequence number so ids stay short and stable.
func newNodeID(m *model.Mindmap, parentID string) string {
	parent := m.Nodes[parentID]
	for n := len(parent.Children) + 1; ; n++ {
		id := fmt.Sprintf("%s-%d", parentID, n)
		if _, exists := m.Nodes[id]; !exists {
			return id
		}
	}
}

// descendants returns the set of transitive descendants of the given node,
// not including the node itself.
func descendants(m *model.Mindmap, nodeID string) map[string]bool {
	found := make(map[string]bool)
	stack := append([]string(nil), m.Nodes[nodeID].Children...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if found[id] {
			continue
		}
		found[id] = true
		if node, ok := m.Nodes[id]; ok {
			stack = append(stack, node.Children...)
		}
	}
	return found
}

// FindNodes returns all nodes whose text contains the query,
// case-insensitively, in depth-first tree order.
func FindNodes(m *model.Mindmap, query string) []*model.Node {
	query = strings.ToLower(query)
	var matches []*model.Node
	var walk func(id string)
	walk = func(id string) {
		node, ok := m.Nodes[id]
		if !ok {
			return
		}
		if strings.Contains(strings.ToLower(node.Text), query) {
			matches = append(matches, node)
		}
		for _, childID := range node.Children {
			walk(childID)
		}
	}
	walk(m.RootID)
	return matches
}
