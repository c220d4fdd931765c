package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"mindcanvas/app/pkg/mindmap"
	"mindcanvas/app/pkg/model"
)

func exampleMap(t *testing.T) *model.Mindmap {
	t.Helper()
	m := mindmap.New("Road Trip", "alice", "Road Trip")

	var err error
	m, _, err = mindmap.AddChild(m, mindmap.RootNodeID, "Packing")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	m, _, err = mindmap.AddChild(m, mindmap.RootNodeID, "Route")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	m, err = mindmap.AddConnection(m, "root-1", "root-2", "affects", "#888888")
	if err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}
	return m
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	m := exampleMap(t)

	data, err := MapSerialize(m)
	if err != nil {
		t.Fatalf("MapSerialize failed: %v", err)
	}
	got, err := MapDeserialize(data)
	if err != nil {
		t.Fatalf("MapDeserialize failed: %v", err)
	}

	if got.Name != m.Name || got.RootID != m.RootID {
		t.Errorf("name/rootId = %q/%q, want %q/%q", got.Name, got.RootID, m.Name, m.RootID)
	}
	if len(got.Nodes) != len(m.Nodes) {
		t.Fatalf("node count = %d, want %d", len(got.Nodes), len(m.Nodes))
	}
	for id, want := range m.Nodes {
		node, ok := got.Nodes[id]
		if !ok {
			t.Fatalf("node %q missing after round trip", id)
		}
		if node.Text != want.Text || node.ParentID != want.ParentID ||
			node.Position != want.Position || node.Shape != want.Shape ||
			node.IsExpanded != want.IsExpanded {
			t.Errorf("node %q = %+v, want %+v", id, node, want)
		}
		if len(node.Children) != len(want.Children) {
			t.Fatalf("node %q children = %v, want %v", id, node.Children, want.Children)
		}
		for i := range want.Children {
			if node.Children[i] != want.Children[i] {
				t.Errorf("node %q children = %v, want %v", id, node.Children, want.Children)
			}
		}
	}
	if len(got.Connections) != 1 || got.Connections[0] != m.Connections[0] {
		t.Errorf("connections = %v, want %v", got.Connections, m.Connections)
	}
}

func TestDeserializeRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not JSON", `{{{`},
		{"missing nodes key", `{"rootId":"root"}`},
		{"missing rootId key", `{"nodes":{}}`},
		{"wrong field type", `{"rootId":"root","nodes":[]}`},
		{
			"invariant violation",
			`{"rootId":"root","nodes":{"root":{"id":"root","text":"r","children":["ghost"]}}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := MapDeserialize([]byte(tc.data)); !errors.Is(err, mindmap.ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
		})
	}
}

func TestFileExportImport(t *testing.T) {
	m := exampleMap(t)
	filename := filepath.Join(t.TempDir(), "exports", "trip.json")

	if err := FileExport(m, filename); err != nil {
		t.Fatalf("FileExport failed: %v", err)
	}
	got, err := FileImport(filename)
	if err != nil {
		t.Fatalf("FileImport failed: %v", err)
	}
	if got.Name != m.Name || len(got.Nodes) != len(m.Nodes) || len(got.Connections) != len(m.Connections) {
		t.Errorf("imported map differs: %q with %d nodes, %d connections",
			got.Name, len(got.Nodes), len(got.Connections))
	}
}

func TestFileImportMissingFile(t *testing.T) {
	if _, err := FileImport(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("FileImport succeeded on a missing file")
	}
}

func TestExportFilename(t *testing.T) {
	date := time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)

	cases := []struct {
		mapName string
		want    string
	}{
		{"Road Trip", "road-trip-2026-08-26.json"},
		{"  Q3 Plan!  ", "q3-plan-2026-08-26.json"},
		{"***", "mindmap-2026-08-26.json"},
	}
	for _, tc := range cases {
		m := &model.Mindmap{Name: tc.mapName}
		got := ExportFilename(m, "out", date)
		if want := filepath.Join("out", tc.want); got != want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.mapName, got, want)
		}
	}
}
