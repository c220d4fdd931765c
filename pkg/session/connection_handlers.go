// Package session manages user sessions and command dispatch.
// This file contains the handlers for connection-scope commands.
package session

import (
	"fmt"
	"strings"

	"mindcanvas/app/pkg/event"
	"mindcanvas/app/pkg/mindmap"
	"mindcanvas/app/pkg/model"
)

// handleConnectionAdd connects two nodes with an optional label and color.
func handleConnectionAdd(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	start, end := cmd.Args[0], cmd.Args[1]
	label, color := "", ""
	if len(cmd.Args) > 2 {
		label = cmd.Args[2]
	}
	if len(cmd.Args) > 3 {
		color = cmd.Args[3]
	}

	next, err := mindmap.AddConnection(m, start, end, label, color)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(next, event.ConnectionAdded)
	return fmt.Sprintf("connected '%s' and '%s'", start, end), nil
}

// handleConnectionDelete removes the connection between two nodes.
func handleConnectionDelete(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	start, end := cmd.Args[0], cmd.Args[1]
	next, err := mindmap.DeleteConnection(m, start, end)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(next, event.ConnectionDeleted)
	return fmt.Sprintf("disconnected '%s' and '%s'", start, end), nil
}

// handleConnectionList lists the current map's connections.
func handleConnectionList(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	if len(m.Connections) == 0 {
		return "no connections", nil
	}
	lines := make([]string, 0, len(m.Connections))
	for _, conn := range m.Connections {
		line := fmt.Sprintf("%s <-> %s", conn.Start, conn.End)
		if conn.Label != "" {
			line += fmt.Sprintf(" (%s)", conn.Label)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
