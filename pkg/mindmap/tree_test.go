package mindmap

import (
	"errors"
	"testing"

	"mindcanvas/app/pkg/model"
)

// newTestMap builds a small tree:
//
//	root
//	├── root-1
//	│   ├── root-1-1
//	│   └── root-1-2
//	└── root-2
func newTestMap(t *testing.T) *model.Mindmap {
	t.Helper()
	m := New("Test Map", "alice", "Root")

	var err error
	m, _, err = AddChild(m, RootNodeID, "first")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	m, _, err = AddChild(m, RootNodeID, "second")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	m, _, err = AddChild(m, "root-1", "first child a")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	m, _, err = AddChild(m, "root-1", "first child b")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	return m
}

// checkInvariants verifies parent/children consistency via Validate.
func checkInvariants(t *testing.T, m *model.Mindmap) {
	t.Helper()
	if err := Validate(m); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestNewCreatesRootOnlyMap(t *testing.T) {
	m := New("My Map", "alice", "Main Idea")

	if m.RootID != RootNodeID {
		t.Errorf("RootID = %q, want %q", m.RootID, RootNodeID)
	}
	root := m.Root()
	if root == nil {
		t.Fatal("root node missing from node mapping")
	}
	if root.ParentID != "" {
		t.Errorf("root ParentID = %q, want empty", root.ParentID)
	}
	if root.Text != "Main Idea" {
		t.Errorf("root text = %q, want %q", root.Text, "Main Idea")
	}
	if len(m.Nodes) != 1 {
		t.Errorf("node count = %d, want 1", len(m.Nodes))
	}
	checkInvariants(t, m)
}

func TestAddChild(t *testing.T) {
	m := New("Test", "alice", "Root")
	root := m.Root()
	root.Color = "#ff0000"
	root.Shape = model.ShapeHexagon
	root.IsExpanded = false

	next, child, err := AddChild(m, RootNodeID, "idea")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}

	if child.ID != "root-1" {
		t.Errorf("child ID = %q, want %q", child.ID, "root-1")
	}
	if child.ParentID != RootNodeID {
		t.Errorf("child ParentID = %q, want %q", child.ParentID, RootNodeID)
	}
	if child.Text != "idea" {
		t.Errorf("child text = %q, want %q", child.Text, "idea")
	}
	if child.Color != "#ff0000" || child.Shape != model.ShapeHexagon {
		t.Errorf("child did not inherit parent style: color=%q shape=%q", child.Color, child.Shape)
	}
	if !next.Nodes[RootNodeID].IsExpanded {
		t.Error("parent was not expanded after AddChild")
	}
	if got := next.Nodes[RootNodeID].Children; len(got) != 1 || got[0] != child.ID {
		t.Errorf("parent children = %v, want [%s]", got, child.ID)
	}

	// The input snapshot must be untouched
	if len(m.Nodes) != 1 {
		t.Errorf("input snapshot mutated: node count = %d, want 1", len(m.Nodes))
	}
	if m.Root().IsExpanded {
		t.Error("input snapshot mutated: root expanded")
	}
	checkInvariants(t, next)
}

func TestAddChildDefaultText(t *testing.T) {
	m := New("Test", "alice", "Root")
	next, child, err := AddChild(m, RootNodeID, "")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if child.Text != DefaultNodeText {
		t.Errorf("child text = %q, want %q", child.Text, DefaultNodeText)
	}
	checkInvariants(t, next)
}

func TestAddChildUnknownParent(t *testing.T) {
	m := New("Test", "alice", "Root")
	next, _, err := AddChild(m, "ghost", "idea")
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
	if next != m {
		t.Error("failed AddChild did not return the unchanged map")
	}
}

func TestAddChildIDsNeverCollide(t *testing.T) {
	m := newTestMap(t)

	// Delete root-1 cascading, then add two more children to root. The
	// generator must not reuse the live "root-2" id.
	m, err := DeleteNode(m, "root-1", true)
	if err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}
	m, a, err := AddChild(m, RootNodeID, "x")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	m, b, err := AddChild(m, RootNodeID, "y")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if a.ID == b.ID || a.ID == "root-2" || b.ID == "root-2" {
		t.Errorf("generated colliding ids %q, %q", a.ID, b.ID)
	}
	checkInvariants(t, m)
}

func TestUpdateNodeFields(t *testing.T) {
	m := newTestMap(t)

	text := "renamed"
	color := "#00ff00"
	size := 18
	shape := model.ShapeEllipse
	expanded := false
	pos := model.Position{X: 10, Y: -5}

	next, err := UpdateNode(m, "root-2", model.NodeUpdate{
		Text:       &text,
		Color:      &color,
		FontSize:   &size,
		Shape:      &shape,
		IsExpanded: &expanded,
		Position:   &pos,
	})
	if err != nil {
		t.Fatalf("UpdateNode failed: %v", err)
	}

	node := next.Nodes["root-2"]
	if node.Text != text || node.Color != color || node.FontSize != size ||
		node.Shape != shape || node.IsExpanded != expanded || node.Position != pos {
		t.Errorf("update not applied: %+v", node)
	}
	// Untouched fields keep their values
	if node.ParentID != RootNodeID {
		t.Errorf("ParentID changed to %q", node.ParentID)
	}
	// Input snapshot untouched
	if m.Nodes["root-2"].Text == text {
		t.Error("input snapshot mutated")
	}
	checkInvariants(t, next)
}

func TestUpdateNodeUnknownNode(t *testing.T) {
	m := newTestMap(t)
	text := "x"
	next, err := UpdateNode(m, "ghost", model.NodeUpdate{Text: &text})
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
	if next != m {
		t.Error("failed UpdateNode did not return the unchanged map")
	}
}

func TestUpdateNodeInvalidShape(t *testing.T) {
	m := newTestMap(t)
	shape := model.NodeShape("triangle")
	_, err := UpdateNode(m, "root-2", model.NodeUpdate{Shape: &shape})
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("err = %v, want ErrInvalidOperation", err)
	}
}

func TestUpdateNodeReparent(t *testing.T) {
	m := newTestMap(t)

	newParent := "root-2"
	next, err := UpdateNode(m, "root-1-1", model.NodeUpdate{ParentID: &newParent})
	if err != nil {
		t.Fatalf("UpdateNode failed: %v", err)
	}

	if got := next.Nodes["root-1-1"].ParentID; got != "root-2" {
		t.Errorf("ParentID = %q, want %q", got, "root-2")
	}
	if got := next.Nodes["root-1"].Children; len(got) != 1 || got[0] != "root-1-2" {
		t.Errorf("old parent children = %v, want [root-1-2]", got)
	}
	if got := next.Nodes["root-2"].Children; len(got) != 1 || got[0] != "root-1-1" {
		t.Errorf("new parent children = %v, want [root-1-1]", got)
	}
	checkInvariants(t, next)
}

func TestUpdateNodeReparentSameParentIsNoop(t *testing.T) {
	m := newTestMap(t)

	sameParent := "root-1"
	next, err := UpdateNode(m, "root-1-1", model.NodeUpdate{ParentID: &sameParent})
	if err != nil {
		t.Fatalf("UpdateNode failed: %v", err)
	}
	if got := next.Nodes["root-1"].Children; len(got) != 2 || got[0] != "root-1-1" {
		t.Errorf("children = %v, want [root-1-1 root-1-2]", got)
	}
	checkInvariants(t, next)
}

func TestUpdateNodeReparentUnderDescendantRejected(t *testing.T) {
	m := newTestMap(t)

	for _, target := range []string{"root-1", "root-1-1"} {
		target := target
		next, err := UpdateNode(m, "root-1", model.NodeUpdate{ParentID: &target})
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("reparent under %q: err = %v, want ErrInvalidOperation", target, err)
		}
		if next != m {
			t.Errorf("reparent under %q mutated the map", target)
		}
	}
}

func TestUpdateNodeReparentRootRejected(t *testing.T) {
	m := newTestMap(t)
	target := "root-1"
	_, err := UpdateNode(m, RootNodeID, model.NodeUpdate{ParentID: &target})
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("err = %v, want ErrInvalidOperation", err)
	}
}

func TestUpdateRootTextRenamesMap(t *testing.T) {
	m := newTestMap(t)
	text := "Grand Plan"
	next, err := UpdateNode(m, RootNodeID, model.NodeUpdate{Text: &text})
	if err != nil {
		t.Fatalf("UpdateNode failed: %v", err)
	}
	if next.Name != "Grand Plan" {
		t.Errorf("map name = %q, want %q", next.Name, "Grand Plan")
	}
}

func TestDeleteRootRejected(t *testing.T) {
	m := newTestMap(t)
	for _, cascade := range []bool{true, false} {
		next, err := DeleteNode(m, RootNodeID, cascade)
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("cascade=%v: err = %v, want ErrInvalidOperation", cascade, err)
		}
		if next != m {
			t.Errorf("cascade=%v: map changed on rejected delete", cascade)
		}
	}
	checkInvariants(t, m)
}

func TestDeleteNodeCascade(t *testing.T) {
	m := newTestMap(t)
	m, err := AddConnection(m, "root-1-1", "root-2", "relates", "")
	if err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}

	next, err := DeleteNode(m, "root-1", true)
	if err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}

	for _, id := range []string{"root-1", "root-1-1", "root-1-2"} {
		if _, ok := next.Nodes[id]; ok {
			t.Errorf("node %q still present after cascade delete", id)
		}
	}
	if got := next.Nodes[RootNodeID].Children; len(got) != 1 || got[0] != "root-2" {
		t.Errorf("root children = %v, want [root-2]", got)
	}
	if len(next.Connections) != 0 {
		t.Errorf("connections = %v, want none", next.Connections)
	}
	checkInvariants(t, next)
}

func TestDeleteNodePromotesChildren(t *testing.T) {
	m := newTestMap(t)

	next, err := DeleteNode(m, "root-1", false)
	if err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}

	if _, ok := next.Nodes["root-1"]; ok {
		t.Error("deleted node still present")
	}
	for _, id := range []string{"root-1-1", "root-1-2"} {
		node, ok := next.Nodes[id]
		if !ok {
			t.Fatalf("descendant %q removed by promote delete", id)
		}
		if node.ParentID != RootNodeID {
			t.Errorf("%s ParentID = %q, want %q", id, node.ParentID, RootNodeID)
		}
	}

	want := []string{"root-2", "root-1-1", "root-1-2"}
	got := next.Nodes[RootNodeID].Children
	if len(got) != len(want) {
		t.Fatalf("root children = %v, want %v", got, want)
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Errorf("duplicate child %q in root children", id)
		}
		seen[id] = true
	}
	for _, id := range want {
		if !seen[id] {
			t.Errorf("root children missing %q: %v", id, got)
		}
	}
	checkInvariants(t, next)
}

func TestDeleteNodeUnknown(t *testing.T) {
	m := newTestMap(t)
	next, err := DeleteNode(m, "ghost", true)
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
	if next != m {
		t.Error("failed DeleteNode did not return the unchanged map")
	}
}

func TestFindNodes(t *testing.T) {
	m := newTestMap(t)

	matches := FindNodes(m, "FIRST")
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	// Depth-first order: root-1 before its children
	if matches[0].ID != "root-1" {
		t.Errorf("first match = %q, want root-1", matches[0].ID)
	}

	if matches := FindNodes(m, "no such text"); len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

// TestEditorScenario walks the end-to-end editing sequence: two children
// added under the root, one deleted with promotion, a connection added, and
// finally a cascade delete that leaves just the root.
func TestEditorScenario(t *testing.T) {
	m := New("Scenario", "alice", "r")

	m, first, err := AddChild(m, RootNodeID, "")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if first.ParentID != RootNodeID {
		t.Fatalf("first child ParentID = %q, want %q", first.ParentID, RootNodeID)
	}

	m, second, err := AddChild(m, RootNodeID, "")
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	if got := m.Root().Children; len(got) != 2 || got[0] != first.ID || got[1] != second.ID {
		t.Fatalf("root children = %v, want [%s %s]", got, first.ID, second.ID)
	}

	m, err = DeleteNode(m, first.ID, false)
	if err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}
	if got := m.Root().Children; len(got) != 1 || got[0] != second.ID {
		t.Fatalf("root children = %v, want [%s]", got, second.ID)
	}

	m, err = AddConnection(m, second.ID, RootNodeID, "", "")
	if err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}

	m, err = DeleteNode(m, second.ID, true)
	if err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}
	if len(m.Connections) != 0 {
		t.Errorf("connections = %v, want none", m.Connections)
	}
	if len(m.Nodes) != 1 {
		t.Errorf("node count = %d, want 1", len(m.Nodes))
	}
	if _, ok := m.Nodes[RootNodeID]; !ok {
		t.Error("root missing after scenario")
	}
	checkInvariants(t, m)
}
