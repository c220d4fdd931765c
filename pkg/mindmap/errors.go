// Package mindmap implements the in-memory mind-map state core: the node
// mapping, tree operations, free-form connections, and structural
// validation. Every operation takes a map snapshot and returns a new one;
// on error the input snapshot is returned unchanged.
package mindmap

import "errors"

// Error taxonomy for state-core operations. Callers are expected to match
// with errors.Is; every failure leaves the input map untouched.
var (
	ErrNodeNotFound       = errors.New("node not found")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrParse              = errors.New("parse error")
)
