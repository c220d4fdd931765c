// Package storage provides functionality for persisting and retrieving
// Mindcanvas data. This file handles mind-map export to and import from
// JSON files.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mindcanvas/app/pkg/mindmap"
	"mindcanvas/app/pkg/model"
)

// MapSerialize encodes a mind map as indented JSON.
func MapSerialize(m *model.Mindmap) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mindmap: %w", err)
	}
	return data, nil
}

// MapDeserialize decodes a mind-map JSON document, requiring the "nodes"
// and "rootId" keys and validating the tree invariants before accepting it.
func MapDeserialize(data []byte) (*model.Mindmap, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %v: %w", err, mindmap.ErrParse)
	}
	for _, key := range []string{"nodes", "rootId"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("missing required key %q: %w", key, mindmap.ErrParse)
		}
	}

	var imported model.Mindmap
	if err := json.Unmarshal(data, &imported); err != nil {
		return nil, fmt.Errorf("invalid mindmap document: %v: %w", err, mindmap.ErrParse)
	}
	if imported.Nodes == nil {
		imported.Nodes = map[string]*model.Node{}
	}
	if imported.Connections == nil {
		imported.Connections = []model.Connection{}
	}

	if err := mindmap.Validate(&imported); err != nil {
		return nil, err
	}
	return &imported, nil
}

// FileExport exports a mindmap to a JSON file.
func FileExport(m *model.Mindmap, filename string) error {
	data, err := MapSerialize(m)
	if err != nil {
		return err
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FileImport imports a mindmap from a JSON file.
func FileImport(filename string) (*model.Mindmap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return MapDeserialize(data)
}

// ExportFilename builds the default export file name from the map name and
// the given date, e.g. "my-mind-map-2026-08-26.json".
func ExportFilename(m *model.Mindmap, dir string, t time.Time) string {
	slug := strings.ToLower(strings.TrimSpace(m.Name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "mindmap"
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.json", slug, t.Format("2006-01-02")))
}
