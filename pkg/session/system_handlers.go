// Package session manages user sessions and command dispatch.
// This file contains the handlers for system-scope commands.
package session

import "mindcanvas/app/pkg/model"

// ExitRequested is returned by the exit handler so the outer surface can
// distinguish a requested shutdown from a normal command result.
type ExitRequested struct{}

// handleSystemExit signals the caller to shut down.
func handleSystemExit(s *Session, cmd model.Command) (interface{}, error) {
	return ExitRequested{}, nil
}
