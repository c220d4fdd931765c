// Package data provides data management functionality for the Mindcanvas
// application. This file contains operations related to user profiles.
package data

import (
	"context"
	"fmt"

	"mindcanvas/app/pkg/event"
	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
	"mindcanvas/app/pkg/storage"
)

// UserOperations defines the interface for user-related operations
type UserOperations interface {
	UserAdd(username, password string) error
	UserGet(username string) (*model.User, bool, error)
	UserList() ([]*model.User, error)
	UserUpdate(user *model.User, newUsername, newPassword string) error
	UserDelete(user *model.User) error
	UserAuthenticate(username, password string) (bool, error)
}

// UserManager handles user profile operations against the user store.
type UserManager struct {
	userStore    storage.UserStore
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewUserManager creates a new UserManager instance
func NewUserManager(userStore storage.UserStore, eventManager *event.EventManager, logger *log.Logger) (*UserManager, error) {
	if userStore == nil {
		return nil, fmt.Errorf("userStore not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &UserManager{
		userStore:    userStore,
		eventManager: eventManager,
		logger:       logger,
	}, nil
}

// UserAdd creates a new user profile.
func (um *UserManager) UserAdd(username, password string) error {
	ctx := context.Background()
	um.logger.Info(ctx, "Adding new user", log.Fields{"username": username})

	if username == "" {
		return fmt.Errorf("username is required")
	}

	_, exists, err := um.userStore.UserGet(username)
	if err != nil {
		um.logger.Error(ctx, "Failed to check for existing user", log.Fields{"error": err, "username": username})
		return fmt.Errorf("failed to check for existing user: %w", err)
	}
	if exists {
		um.logger.Warn(ctx, "User already exists", log.Fields{"username": username})
		return fmt.Errorf("user '%s' already exists", username)
	}

	if err := um.userStore.UserAdd(username, password); err != nil {
		um.logger.Error(ctx, "Failed to add user", log.Fields{"error": err, "username": username})
		return fmt.Errorf("failed to add user: %w", err)
	}

	um.logger.Info(ctx, "User added successfully", log.Fields{"username": username})
	return nil
}

// UserGet retrieves a user profile by username.
func (um *UserManager) UserGet(username string) (*model.User, bool, error) {
	user, found, err := um.userStore.UserGet(username)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}
	return user, found, nil
}

// UserList returns all user profiles.
func (um *UserManager) UserList() ([]*model.User, error) {
	users, err := um.userStore.UserList()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UserUpdate changes a user's username and/or password.
func (um *UserManager) UserUpdate(user *model.User, newUsername, newPassword string) error {
	ctx := context.Background()
	um.logger.Info(ctx, "Updating user", log.Fields{"username": user.Username})

	if newUsername != "" && newUsername != user.Username {
		_, exists, err := um.userStore.UserGet(newUsername)
		if err != nil {
			return fmt.Errorf("failed to check for existing user: %w", err)
		}
		if exists {
			return fmt.Errorf("user '%s' already exists", newUsername)
		}
	}

	if err := um.userStore.UserUpdate(user.Username, newUsername, newPassword); err != nil {
		um.logger.Error(ctx, "Failed to update user", log.Fields{"error": err, "username": user.Username})
		return fmt.Errorf("failed to update user: %w", err)
	}
	if newUsername != "" {
		user.Username = newUsername
	}

	um.logger.Info(ctx, "User updated successfully", log.Fields{"username": user.Username})
	return nil
}

// UserDelete removes a user profile and publishes UserDeleted so owned maps
// are removed as well.
func (um *UserManager) UserDelete(user *model.User) error {
	ctx := context.Background()
	um.logger.Info(ctx, "Deleting user", log.Fields{"username": user.Username})

	if err := um.userStore.UserDelete(user.Username); err != nil {
		um.logger.Error(ctx, "Failed to delete user", log.Fields{"error": err, "username": user.Username})
		return fmt.Errorf("failed to delete user: %w", err)
	}

	um.eventManager.Publish(event.Event{
		Type: event.UserDeleted,
		Data: user,
	})

	um.logger.Info(ctx, "User deleted successfully", log.Fields{"username": user.Username})
	return nil
}

// UserAuthenticate checks a user's password.
func (um *UserManager) UserAuthenticate(username, password string) (bool, error) {
	ok, err := um.userStore.UserAuthenticate(username, password)
	if err != nil {
		return false, fmt.Errorf("failed to authenticate user: %w", err)
	}
	return ok, nil
}
