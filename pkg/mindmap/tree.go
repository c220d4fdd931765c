// Package mindmap implements the in-memory mind-map state core.
// This file contains the tree operations: add child, update/reparent, and
// delete with cascade or child promotion.
package mindmap

import (
	"fmt"
	"time"

	"mindcanvas/app/pkg/model"
)

// AddChild creates a new node under parentID and returns the new snapshot
// together with the created node. The child inherits the parent's style,
// is positioned relative to the parent, and the parent is expanded so the
// new node is visible.
func AddChild(m *model.Mindmap, parentID, text string) (*model.Mindmap, *model.Node, error) {
	if _, ok := m.Nodes[parentID]; !ok {
		return m, nil, fmt.Errorf("parent %q: %w", parentID, ErrNodeNotFound)
	}
	if text == "" {
		text = DefaultNodeText
	}

	next := Clone(m)
	parent := next.Nodes[parentID]
	child := &model.Node{
		ID:   newNodeID(next, parentID),
		Text: text,
		Position: model.Position{
			X: parent.Position.X + childOffsetX,
			Y: parent.Position.Y + childOffsetY*float64(len(parent.Children)),
		},
		Color:      parent.Color,
		Gradient:   parent.Gradient,
		TextColor:  parent.TextColor,
		FontSize:   parent.FontSize,
		Shape:      parent.Shape,
		Children:   []string{},
		ParentID:   parentID,
		IsExpanded: true,
	}
	next.Nodes[child.ID] = child
	parent.Children = append(parent.Children, child.ID)
	parent.IsExpanded = true
	next.UpdatedAt = time.Now()
	return next, child, nil
}

// UpdateNode applies a partial update to a node and returns the new
// snapshot. A ParentID change moves the node atomically between the old and
// new parents' children lists. Reparenting a node under itself or one of
// its own descendants is rejected, as is reparenting the root.
func UpdateNode(m *model.Mindmap, nodeID string, update model.NodeUpdate) (*model.Mindmap, error) {
	node, ok := m.Nodes[nodeID]
	if !ok {
		return m, fmt.Errorf("node %q: %w", nodeID, ErrNodeNotFound)
	}
	if update.Shape != nil && !update.Shape.Valid() {
		return m, fmt.Errorf("unknown shape %q: %w", *update.Shape, ErrInvalidOperation)
	}

	if update.ParentID != nil && *update.ParentID != node.ParentID {
		newParentID := *update.ParentID
		if nodeID == m.RootID {
			return m, fmt.Errorf("cannot reparent root node: %w", ErrInvalidOperation)
		}
		if _, ok := m.Nodes[newParentID]; !ok {
			return m, fmt.Errorf("parent %q: %w", newParentID, ErrNodeNotFound)
		}
		if newParentID == nodeID || descendants(m, nodeID)[newParentID] {
			return m, fmt.Errorf("cannot reparent %q under its own subtree: %w", nodeID, ErrInvalidOperation)
		}
	}

	next := Clone(m)
	node = next.Nodes[nodeID]

	if update.ParentID != nil && *update.ParentID != node.ParentID {
		oldParent := next.Nodes[node.ParentID]
		oldParent.Children = removeID(oldParent.Children, nodeID)
		newParent := next.Nodes[*update.ParentID]
		newParent.Children = append(newParent.Children, nodeID)
		node.ParentID = *update.ParentID
	}

	if update.Text != nil {
		node.Text = *update.Text
		// Renaming the root renames the map itself.
		if nodeID == next.RootID && *update.Text != "" {
			next.Name = *update.Text
		}
	}
	if update.Position != nil {
		node.Position = *update.Position
	}
	if update.IsExpanded != nil {
		node.IsExpanded = *update.IsExpanded
	}
	if update.Color != nil {
		node.Color = *update.Color
	}
	if update.Gradient != nil {
		node.Gradient = *update.Gradient
	}
	if update.TextColor != nil {
		node.TextColor = *update.TextColor
	}
	if update.FontSize != nil {
		node.FontSize = *update.FontSize
	}
	if update.Shape != nil {
		node.Shape = *update.Shape
	}

	next.UpdatedAt = time.Now()
	return next, nil
}

// DeleteNode removes a node and returns the new snapshot. With cascade the
// whole subtree is removed; otherwise direct children are promoted to the
// deleted node's former parent, preserving their order. Connections
// referencing any removed node are pruned in the same step. The root cannot
// be deleted.
func DeleteNode(m *model.Mindmap, nodeID string, cascade bool) (*model.Mindmap, error) {
	node, ok := m.Nodes[nodeID]
	if !ok {
		return m, fmt.Errorf("node %q: %w", nodeID, ErrNodeNotFound)
	}
	if nodeID == m.RootID {
		return m, fmt.Errorf("cannot delete root node: %w", ErrInvalidOperation)
	}

	next := Clone(m)
	node = next.Nodes[nodeID]
	parent := next.Nodes[node.ParentID]

	removed := map[string]bool{nodeID: true}
	if cascade {
		for id := range descendants(next, nodeID) {
			removed[id] = true
		}
	} else {
		// Promote direct children to the deleted node's former parent.
		for _, childID := range node.Children {
			child := next.Nodes[childID]
			child.ParentID = parent.ID
			parent.Children = append(parent.Children, childID)
		}
	}

	parent.Children = removeID(parent.Children, nodeID)
	for id := range removed {
		delete(next.Nodes, id)
	}
	pruneConnections(next, removed)

	next.UpdatedAt = time.Now()
	return next, nil
}

// removeID returns ids without the first occurrence of id.
func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
