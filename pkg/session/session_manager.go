// Package session manages user sessions and command dispatch.
// This file contains the session registry with idle-session cleanup.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"mindcanvas/app/pkg/data"
	"mindcanvas/app/pkg/log"
)

const (
	sessionIdleTimeout     = 30 * time.Minute
	sessionCleanupInterval = 5 * time.Minute
)

// SessionManager manages all active sessions
type SessionManager struct {
	sessions    map[string]*Session
	mu          sync.RWMutex
	dataManager *data.DataManager
	stopChan    chan struct{}
	stopOnce    sync.Once
	logger      *log.Logger
}

// NewSessionManager creates a new SessionManager and starts the cleanup routine
func NewSessionManager(dataManager *data.DataManager, logger *log.Logger) *SessionManager {
	sm := &SessionManager{
		sessions:    make(map[string]*Session),
		dataManager: dataManager,
		stopChan:    make(chan struct{}),
		logger:      logger,
	}
	go sm.cleanupRoutine()
	return sm
}

// SessionAdd creates a new session and returns its ID
func (sm *SessionManager) SessionAdd() (string, error) {
	sessionID := uuid.NewString()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, exists := sm.sessions[sessionID]; exists {
		return "", fmt.Errorf("session ID collision: %s", sessionID)
	}
	sm.sessions[sessionID] = NewSession(sessionID, sm.dataManager, sm.logger)
	sm.logger.Info(context.Background(), "New session added", log.Fields{"sessionID": sessionID})
	return sessionID, nil
}

// SessionGet retrieves a session by ID
func (sm *SessionManager) SessionGet(sessionID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	session, exists := sm.sessions[sessionID]
	return session, exists
}

// SessionDelete removes a session
func (sm *SessionManager) SessionDelete(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, sessionID)
	sm.logger.Info(context.Background(), "Session removed", log.Fields{"sessionID": sessionID})
}

// cleanupRoutine periodically removes idle sessions
func (sm *SessionManager) cleanupRoutine() {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sm.cleanupIdleSessions()
		case <-sm.stopChan:
			return
		}
	}
}

// cleanupIdleSessions removes sessions idle longer than the timeout
func (sm *SessionManager) cleanupIdleSessions() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	cutoff := time.Now().Add(-sessionIdleTimeout)
	for id, session := range sm.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(sm.sessions, id)
			sm.logger.Info(context.Background(), "Idle session removed", log.Fields{"sessionID": id})
		}
	}
}

// StopCleanupRoutine stops the cleanup routine
func (sm *SessionManager) StopCleanupRoutine() {
	sm.stopOnce.Do(func() {
		close(sm.stopChan)
	})
}
