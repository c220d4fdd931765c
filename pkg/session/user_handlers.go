// Package session manages user sessions and command dispatch.
// This file contains the handlers for user-scope commands.
package session

import (
	"fmt"
	"strings"

	"mindcanvas/app/pkg/model"
)

// handleUserAdd creates a new user profile.
func handleUserAdd(s *Session, cmd model.Command) (interface{}, error) {
	username := cmd.Args[0]
	password := ""
	if len(cmd.Args) > 1 {
		password = cmd.Args[1]
	}
	if err := s.DataManager.UserManager.UserAdd(username, password); err != nil {
		return nil, err
	}
	return fmt.Sprintf("user '%s' added", username), nil
}

// handleUserSelect authenticates and selects a user for the session.
func handleUserSelect(s *Session, cmd model.Command) (interface{}, error) {
	username := cmd.Args[0]
	password := ""
	if len(cmd.Args) > 1 {
		password = cmd.Args[1]
	}

	ok, err := s.DataManager.UserManager.UserAuthenticate(username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("authentication failed for user '%s'", username)
	}

	user, found, err := s.DataManager.UserManager.UserGet(username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("user '%s' not found", username)
	}

	s.UserSet(user)
	return fmt.Sprintf("user '%s' selected", username), nil
}

// handleUserUpdate changes a user's username and/or password.
func handleUserUpdate(s *Session, cmd model.Command) (interface{}, error) {
	username := cmd.Args[0]
	newUsername, newPassword := "", ""
	if len(cmd.Args) > 1 {
		newUsername = cmd.Args[1]
	}
	if len(cmd.Args) > 2 {
		newPassword = cmd.Args[2]
	}

	user, found, err := s.DataManager.UserManager.UserGet(username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("user '%s' not found", username)
	}

	if err := s.DataManager.UserManager.UserUpdate(user, newUsername, newPassword); err != nil {
		return nil, err
	}
	return fmt.Sprintf("user '%s' updated", user.Username), nil
}

// handleUserDelete removes a user profile along with its maps.
func handleUserDelete(s *Session, cmd model.Command) (interface{}, error) {
	username := cmd.Args[0]

	user, found, err := s.DataManager.UserManager.UserGet(username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("user '%s' not found", username)
	}

	if err := s.DataManager.UserManager.UserDelete(user); err != nil {
		return nil, err
	}
	if s.User != nil && s.User.Username == username {
		s.UserSet(nil)
	}
	return fmt.Sprintf("user '%s' deleted", username), nil
}

// handleUserList lists all user profiles.
func handleUserList(s *Session, cmd model.Command) (interface{}, error) {
	users, err := s.DataManager.UserManager.UserList()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return "no users", nil
	}
	names := make([]string, 0, len(users))
	for _, user := range users {
		names = append(names, user.Username)
	}
	return strings.Join(names, "\n"), nil
}
