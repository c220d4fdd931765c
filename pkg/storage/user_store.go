// Package storage provides functionality for persisting and retrieving
// Mindcanvas data. This file implements the local profile store with
// bcrypt-hashed passwords.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
)

// UserStore defines the interface for user persistence operations
type UserStore interface {
	UserAdd(username, password string) error
	UserGet(username string) (*model.User, bool, error)
	UserList() ([]*model.User, error)
	UserUpdate(username, newUsername, newPassword string) error
	UserDelete(username string) error
	UserAuthenticate(username, password string) (bool, error)
}

// UserStorage is the SQL-backed implementation of UserStore
type UserStorage struct {
	db     Database
	logger *log.Logger
}

// NewUserStorage creates a new UserStorage instance
func NewUserStorage(db Database, logger *log.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// UserAdd creates a new user with a bcrypt-hashed password. An empty
// password is stored as an empty hash and authenticates with any input.
func (s *UserStorage) UserAdd(username, password string) error {
	hashedPassword := []byte{}
	if password != "" {
		var err error
		hashedPassword, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	now := time.Now()
	_, err := s.db.Exec(
		"INSERT INTO users (username, password_hash, active, created, updated) VALUES (?, ?, 1, ?, ?)",
		username, hashedPassword, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}
	return nil
}

// UserGet retrieves a user by username.
func (s *UserStorage) UserGet(username string) (*model.User, bool, error) {
	var user model.User
	err := s.db.QueryRow(
		"SELECT username, password_hash, active, created, updated FROM users WHERE username = ?",
		username,
	).Scan(&user.Username, &user.PasswordHash, &user.Active, &user.Created, &user.Updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, true, nil
}

// UserList returns all stored users.
func (s *UserStorage) UserList() ([]*model.User, error) {
	rows, err := s.db.Query("SELECT username, password_hash, active, created, updated FROM users ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.Username, &user.PasswordHash, &user.Active, &user.Created, &user.Updated); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

// UserUpdate changes the username and/or password of an existing user.
func (s *UserStorage) UserUpdate(username, newUsername, newPassword string) error {
	if newUsername != "" && newUsername != username {
		if _, err := s.db.Exec("UPDATE users SET username = ?, updated = ? WHERE username = ?", newUsername, time.Now(), username); err != nil {
			return fmt.Errorf("failed to update username: %w", err)
		}
		if _, err := s.db.Exec("UPDATE mindmaps SET owner = ? WHERE owner = ?", newUsername, username); err != nil {
			return fmt.Errorf("failed to reassign mindmaps: %w", err)
		}
		username = newUsername
	}

	// Update password if provided
	if newPassword != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash new password: %w", err)
		}
		if _, err := s.db.Exec("UPDATE users SET password_hash = ?, updated = ? WHERE username = ?", hashedPassword, time.Now(), username); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
	}

	return nil
}

// UserDelete removes a user.
func (s *UserStorage) UserDelete(username string) error {
	if _, err := s.db.Exec("DELETE FROM users WHERE username = ?", username); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// UserAuthenticate checks a password against the stored hash.
func (s *UserStorage) UserAuthenticate(username, password string) (bool, error) {
	var hashedPassword []byte
	err := s.db.QueryRow("SELECT password_hash FROM users WHERE username = ?", username).Scan(&hashedPassword)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to get password hash: %w", err)
	}

	// Users created without a password authenticate with any input
	if len(hashedPassword) == 0 {
		return true, nil
	}

	// Compare the provided password with the stored hash
	err = bcrypt.CompareHashAndPassword(hashedPassword, []byte(password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return false, nil
		}
		return false, fmt.Errorf("failed to compare passwords: %w", err)
	}
	return true, nil
}
