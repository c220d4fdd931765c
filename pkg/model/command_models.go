// Package model defines the data structures used throughout the Mindcanvas application.
package model

// Command is a single operation issued against the state core, addressed by
// scope (user, map, node, connection, system) and operation name.
type Command struct {
	Scope     string
	Operation string
	Args      []string
}
