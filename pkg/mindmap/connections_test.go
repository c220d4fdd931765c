package mindmap

import (
	"errors"
	"testing"
)

func TestAddConnection(t *testing.T) {
	m := newTestMap(t)

	next, err := AddConnection(m, "root-1", "root-2", "depends on", "#0000ff")
	if err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}
	if len(next.Connections) != 1 {
		t.Fatalf("connection count = %d, want 1", len(next.Connections))
	}
	conn := next.Connections[0]
	if conn.Start != "root-1" || conn.End != "root-2" || conn.Label != "depends on" || conn.Color != "#0000ff" {
		t.Errorf("connection = %+v", conn)
	}
	if len(m.Connections) != 0 {
		t.Error("input snapshot mutated")
	}
	checkInvariants(t, next)
}

func TestAddConnectionUnknownEndpoint(t *testing.T) {
	m := newTestMap(t)

	if _, err := AddConnection(m, "ghost", "root-2", "", ""); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("unknown start: err = %v, want ErrNodeNotFound", err)
	}
	if _, err := AddConnection(m, "root-1", "ghost", "", ""); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("unknown end: err = %v, want ErrNodeNotFound", err)
	}
}

func TestAddConnectionSelfRejected(t *testing.T) {
	m := newTestMap(t)
	next, err := AddConnection(m, "root-1", "root-1", "", "")
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("err = %v, want ErrInvalidOperation", err)
	}
	if next != m {
		t.Error("rejected AddConnection changed the map")
	}
}

func TestAddConnectionDuplicateRejected(t *testing.T) {
	m := newTestMap(t)
	m, err := AddConnection(m, "root-1", "root-2", "", "")
	if err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}

	// Same pair in either direction is a duplicate
	if _, err := AddConnection(m, "root-1", "root-2", "other", ""); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("same order: err = %v, want ErrInvalidOperation", err)
	}
	if _, err := AddConnection(m, "root-2", "root-1", "", ""); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("reversed order: err = %v, want ErrInvalidOperation", err)
	}
}

func TestDeleteConnection(t *testing.T) {
	m := newTestMap(t)
	m, err := AddConnection(m, "root-1", "root-2", "", "")
	if err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}

	// Endpoints are unordered, so the reversed pair matches
	next, err := DeleteConnection(m, "root-2", "root-1")
	if err != nil {
		t.Fatalf("DeleteConnection failed: %v", err)
	}
	if len(next.Connections) != 0 {
		t.Errorf("connections = %v, want none", next.Connections)
	}
	if len(m.Connections) != 1 {
		t.Error("input snapshot mutated")
	}
}

func TestDeleteConnectionUnknown(t *testing.T) {
	m := newTestMap(t)
	next, err := DeleteConnection(m, "root-1", "root-2")
	if !errors.Is(err, ErrConnectionNotFound) {
		t.Fatalf("err = %v, want ErrConnectionNotFound", err)
	}
	if next != m {
		t.Error("failed DeleteConnection did not return the unchanged map")
	}
}
