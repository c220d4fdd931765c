// Package model defines the data structures used throughout the Mindcanvas application.
package model

import "time"

// User represents a local profile that owns mind maps.
type User struct {
	Username     string
	PasswordHash []byte
	Active       bool
	Created      time.Time
	Updated      time.Time
}
