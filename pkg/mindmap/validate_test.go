package mindmap

import (
	"errors"
	"testing"

	"mindcanvas/app/pkg/model"
)

func TestValidateAcceptsWellFormedMap(t *testing.T) {
	m := newTestMap(t)
	m, err := AddConnection(m, "root-1-1", "root-2", "link", "")
	if err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}
	if err := Validate(m); err != nil {
		t.Errorf("Validate failed on a well-formed map: %v", err)
	}
}

func TestValidateRejectsBrokenMaps(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(m *model.Mindmap)
	}{
		{
			name: "missing root id",
			corrupt: func(m *model.Mindmap) {
				m.RootID = ""
			},
		},
		{
			name: "root not in mapping",
			corrupt: func(m *model.Mindmap) {
				m.RootID = "ghost"
			},
		},
		{
			name: "root has a parent",
			corrupt: func(m *model.Mindmap) {
				m.Nodes[m.RootID].ParentID = "root-1"
			},
		},
		{
			name: "key does not match node id",
			corrupt: func(m *model.Mindmap) {
				m.Nodes["alias"] = m.Nodes["root-2"]
			},
		},
		{
			name: "non-root without parent",
			corrupt: func(m *model.Mindmap) {
				m.Nodes["root-2"].ParentID = ""
			},
		},
		{
			name: "dangling parent reference",
			corrupt: func(m *model.Mindmap) {
				m.Nodes["root-2"].ParentID = "ghost"
			},
		},
		{
			name: "parent missing from children list",
			corrupt: func(m *model.Mindmap) {
				root := m.Nodes[m.RootID]
				root.Children = removeID(root.Children, "root-2")
			},
		},
		{
			name: "duplicate child listing",
			corrupt: func(m *model.Mindmap) {
				root := m.Nodes[m.RootID]
				root.Children = append(root.Children, "root-2")
			},
		},
		{
			name: "dangling child reference",
			corrupt: func(m *model.Mindmap) {
				root := m.Nodes[m.RootID]
				root.Children = append(root.Children, "ghost")
			},
		},
		{
			name: "child points at wrong parent",
			corrupt: func(m *model.Mindmap) {
				m.Nodes["root-1-1"].ParentID = "root-2"
			},
		},
		{
			name: "detached cycle",
			corrupt: func(m *model.Mindmap) {
				a := &model.Node{ID: "a", Text: "a", ParentID: "b", Children: []string{"b"}}
				b := &model.Node{ID: "b", Text: "b", ParentID: "a", Children: []string{"a"}}
				m.Nodes["a"], m.Nodes["b"] = a, b
			},
		},
		{
			name: "connection to missing node",
			corrupt: func(m *model.Mindmap) {
				m.Connections = append(m.Connections, model.Connection{Start: "root-1", End: "ghost"})
			},
		},
		{
			name: "self connection",
			corrupt: func(m *model.Mindmap) {
				m.Connections = append(m.Connections, model.Connection{Start: "root-1", End: "root-1"})
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMap(t)
			tc.corrupt(m)
			if err := Validate(m); !errors.Is(err, ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
		})
	}
}
