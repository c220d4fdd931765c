// Package session manages user sessions and command dispatch.
// This file contains the handlers for map-scope commands: lifecycle,
// import/export, the textual view, and undo/redo.
package session

import (
	"fmt"
	"strings"
	"time"

	"mindcanvas/app/pkg/event"
	"mindcanvas/app/pkg/mindmap"
	"mindcanvas/app/pkg/model"
	"mindcanvas/app/pkg/storage"
)

// handleMapAdd creates a new map and selects it.
func handleMapAdd(s *Session, cmd model.Command) (interface{}, error) {
	user, err := s.UserGet()
	if err != nil {
		return nil, err
	}
	name := ""
	if len(cmd.Args) > 0 {
		name = cmd.Args[0]
	}

	newMap, err := s.DataManager.MapManager.MapAdd(user, name)
	if err != nil {
		return nil, err
	}
	s.MindmapSet(newMap)
	return fmt.Sprintf("mindmap '%s' added and selected", newMap.Name), nil
}

// handleMapSelect loads a map by name and makes it current.
func handleMapSelect(s *Session, cmd model.Command) (interface{}, error) {
	user, err := s.UserGet()
	if err != nil {
		return nil, err
	}

	m, found, err := s.DataManager.MapManager.MapLoadByName(user, cmd.Args[0])
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("mindmap '%s' not found", cmd.Args[0])
	}

	s.MindmapSet(m)
	return fmt.Sprintf("mindmap '%s' selected", m.Name), nil
}

// handleMapList lists the user's maps.
func handleMapList(s *Session, cmd model.Command) (interface{}, error) {
	user, err := s.UserGet()
	if err != nil {
		return nil, err
	}

	infos, err := s.DataManager.MapManager.MapList(user)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return "no mindmaps", nil
	}
	lines := make([]string, 0, len(infos))
	for _, info := range infos {
		lines = append(lines, fmt.Sprintf("%s (%d nodes, updated %s)", info.Name, info.NodeCount, info.Updated.Format("2006-01-02 15:04")))
	}
	return strings.Join(lines, "\n"), nil
}

// handleMapDelete removes a map by name.
func handleMapDelete(s *Session, cmd model.Command) (interface{}, error) {
	user, err := s.UserGet()
	if err != nil {
		return nil, err
	}

	m, found, err := s.DataManager.MapManager.MapLoadByName(user, cmd.Args[0])
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("mindmap '%s' not found", cmd.Args[0])
	}

	if err := s.DataManager.MapManager.MapDelete(user, m); err != nil {
		return nil, err
	}
	if s.Mindmap != nil && s.Mindmap.ID == m.ID {
		s.MindmapSet(nil)
	}
	return fmt.Sprintf("mindmap '%s' deleted", m.Name), nil
}

// handleMapView renders the current map as an indented tree.
func handleMapView(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}
	return mindmap.ViewTree(m), nil
}

// handleMapExport writes the current map to a JSON file. Without an
// explicit filename the file is named after the map and today's date.
func handleMapExport(s *Session, cmd model.Command) (interface{}, error) {
	m, err := s.MindmapGet()
	if err != nil {
		return nil, err
	}

	filename := ""
	if len(cmd.Args) > 0 {
		filename = cmd.Args[0]
	} else {
		filename = storage.ExportFilename(m, s.DataManager.Config.ExportFolder, time.Now())
	}

	if err := s.DataManager.MapExport(m, filename); err != nil {
		return nil, err
	}
	return fmt.Sprintf("mindmap exported to %s", filename), nil
}

// handleMapImport reads a map from a JSON file, persists it, and selects it.
func handleMapImport(s *Session, cmd model.Command) (interface{}, error) {
	user, err := s.UserGet()
	if err != nil {
		return nil, err
	}

	imported, err := s.DataManager.MapImport(user, cmd.Args[0])
	if err != nil {
		return nil, err
	}

	s.MindmapSet(imported)
	return fmt.Sprintf("mindmap '%s' imported and selected", imported.Name), nil
}

// handleMapUndo steps the session back one snapshot.
func handleMapUndo(s *Session, cmd model.Command) (interface{}, error) {
	if _, err := s.MindmapGet(); err != nil {
		return nil, err
	}

	snapshot, ok := s.History.Undo()
	if !ok {
		return "nothing to undo", nil
	}
	s.Mindmap = snapshot
	s.DataManager.EventManager.Publish(event.Event{Type: event.MapUpdated, Data: snapshot})
	return "undone", nil
}

// handleMapRedo steps the session forward one snapshot.
func handleMapRedo(s *Session, cmd model.Command) (interface{}, error) {
	if _, err := s.MindmapGet(); err != nil {
		return nil, err
	}

	snapshot, ok := s.History.Redo()
	if !ok {
		return "nothing to redo", nil
	}
	s.Mindmap = snapshot
	s.DataManager.EventManager.Publish(event.Event{Type: event.MapUpdated, Data: snapshot})
	return "redone", nil
}
