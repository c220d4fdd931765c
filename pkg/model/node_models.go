// Package model defines the data structures used throughout the Mindcanvas application.
package model

// NodeShape enumerates the supported node outline shapes.
type NodeShape string

const (
	ShapeRectangle NodeShape = "rectangle"
	ShapeEllipse   NodeShape = "ellipse"
	ShapeHexagon   NodeShape = "hexagon"
)

// Valid reports whether the shape is one of the supported values.
func (s NodeShape) Valid() bool {
	switch s {
	case ShapeRectangle, ShapeEllipse, ShapeHexagon:
		return true
	}
	return false
}

// Position is a node's location on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node represents a single node in a mind map. ParentID is empty only for
// the root node. Children holds the ordered child node IDs; every entry must
// name a node whose ParentID points back here.
type Node struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Position   Position  `json:"position"`
	Color      string    `json:"color,omitempty"`
	Gradient   string    `json:"gradient,omitempty"`
	TextColor  string    `json:"textColor,omitempty"`
	FontSize   int       `json:"fontSize,omitempty"`
	Shape      NodeShape `json:"shape,omitempty"`
	Children   []string  `json:"children"`
	ParentID   string    `json:"parentId,omitempty"`
	IsExpanded bool      `json:"isExpanded"`
}

// NodeUpdate describes a partial update to a node. Nil fields are left
// untouched; a non-nil ParentID requests a reparent.
type NodeUpdate struct {
	Text       *string
	Position   *Position
	ParentID   *string
	IsExpanded *bool
	Color      *string
	Gradient   *string
	TextColor  *string
	FontSize   *int
	Shape      *NodeShape
}
