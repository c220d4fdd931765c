// Package session manages user sessions and command dispatch.
// This file contains the handlers for node-scope commands: add, update,
// move, delete, and find.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"mindcanvas/app/pkg/event"
	"mindcanvas/app/pkg/mindmap"
	"mindcanvas/app/pkg/model"
)

// handleNodeAdd adds a child node under the given parent.
func handleNodeAdd(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	parentID := cmd.Args[0]
	text := ""
	if len(cmd.Args) > 1 {
		text = strings.Join(cmd.Args[1:], " ")
	}

	next, node, err := mindmap.AddChild(m, parentID, text)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(next, event.NodeUpdated)
	return fmt.Sprintf("node '%s' added under '%s'", node.ID, parentID), nil
}

// handleNodeUpdate applies text and field:value updates to a node.
// Recognized fields: color, gradient, textcolor, fontsize, shape, x, y,
// expanded. Plain arguments are joined into the node text.
func handleNodeUpdate(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	nodeID := cmd.Args[0]
	update, textParts, err := parseNodeUpdate(m, nodeID, cmd.Args[1:])
	if err != nil {
		return nil, err
	}
	if len(textParts) > 0 {
		text := strings.Join(textParts, " ")
		update.Text = &text
	}

	next, err := mindmap.UpdateNode(m, nodeID, update)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(next, event.NodeUpdated)
	return fmt.Sprintf("node '%s' updated", nodeID), nil
}

// handleNodeMove reparents a node under a new parent.
func handleNodeMove(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	nodeID, newParentID := cmd.Args[0], cmd.Args[1]
	next, err := mindmap.UpdateNode(m, nodeID, model.NodeUpdate{ParentID: &newParentID})
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(next, event.NodeUpdated)
	return fmt.Sprintf("node '%s' moved under '%s'", nodeID, newParentID), nil
}

// handleNodeDelete removes a node, cascading with --cascade and promoting
// children otherwise.
func handleNodeDelete(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	nodeID := cmd.Args[0]
	cascade := len(cmd.Args) > 1 && cmd.Args[1] == "--cascade"

	next, err := mindmap.DeleteNode(m, nodeID, cascade)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(next, event.NodeDeleted)
	if cascade {
		return fmt.Sprintf("node '%s' and its subtree deleted", nodeID), nil
	}
	return fmt.Sprintf("node '%s' deleted, children promoted", nodeID), nil
}

// handleNodeFind lists nodes whose text contains the query.
func handleNodeFind(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	matches := mindmap.FindNodes(m, cmd.Args[0])
	if len(matches) == 0 {
		return "no matching nodes", nil
	}
	lines := make([]string, 0, len(matches))
	for _, node := range matches {
		lines = append(lines, fmt.Sprintf("%s: %s", node.ID, node.Text))
	}
	return strings.Join(lines, "\n"), nil
}

// parseNodeUpdate splits update arguments into field:value settings and
// plain text parts.
func parseNodeUpdate(m *model.Mindmap, nodeID string, args []string) (model.NodeUpdate, []string, error) {
	var update model.NodeUpdate
	var textParts []string

	position := model.Position{}
	if node, ok := m.Nodes[nodeID]; ok {
		position = node.Position
	}
	positionSet := false

	for _, arg := range args {
		field, value, ok := strings.Cut(arg, ":")
		if !ok {
			textParts = append(textParts, arg)
			continue
		}
		switch strings.ToLower(field) {
		case "color":
			update.Color = &value
		case "gradient":
			update.Gradient = &value
		case "textcolor":
			update.TextColor = &value
		case "fontsize":
			size, err := strconv.Atoi(value)
			if err != nil {
				return update, nil, fmt.Errorf("invalid font size '%s'", value)
			}
			update.FontSize = &size
		case "shape":
			shape := model.NodeShape(strings.ToLower(value))
			update.Shape = &shape
		case "x":
			x, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return update, nil, fmt.Errorf("invalid x coordinate '%s'", value)
			}
			position.X = x
			positionSet = true
		case "y":
			y, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return update, nil, fmt.Errorf("invalid y coordinate '%s'", value)
			}
			position.Y = y
			positionSet = true
		case "expanded":
			expanded, err := strconv.ParseBool(value)
			if err != nil {
				return update, nil, fmt.Errorf("invalid expanded value '%s'", value)
			}
			update.IsExpanded = &expanded
		default:
			// Unknown field:value pairs are treated as text, e.g. a URL.
			textParts = append(textParts, arg)
		}
	}

	if positionSet {
		update.Position = &position
	}
	return update, textParts, nil
}
