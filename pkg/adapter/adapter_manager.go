// Package adapter bridges outer interfaces (currently the CLI) to the
// session layer. The adapter manager funnels every command through a single
// channel, so exactly one mutation runs at a time regardless of how many
// adapter instances exist.
package adapter

import (
	"fmt"
	"sync"

	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
	"mindcanvas/app/pkg/session"
)

// AdapterInstance represents an instance of an adapter
type AdapterInstance interface {
	// CommandProcess processes a command and returns the result
	CommandProcess(cmd model.Command) (interface{}, error)

	// AdapterStart starts the adapter instance
	AdapterStart() error

	// AdapterStop terminates the adapter instance
	AdapterStop() error

	// GetType returns the type of the adapter
	GetType() string
}

// commandRequest represents a request to execute a command within a specific
// session and carries a result channel
type commandRequest struct {
	SessionID  string
	Command    model.Command
	ResultChan chan interface{}
}

// AdapterManager manages adapter instances and serializes their commands
type AdapterManager struct {
	instances      sync.Map // map[string]AdapterInstance keyed by session ID
	sessionManager *session.SessionManager
	cmdChan        chan commandRequest
	stopChan       chan struct{}
	stopOnce       sync.Once
	logger         *log.Logger
}

// NewAdapterManager creates a new AdapterManager
func NewAdapterManager(sm *session.SessionManager, logger *log.Logger) *AdapterManager {
	am := &AdapterManager{
		sessionManager: sm,
		cmdChan:        make(chan commandRequest),
		stopChan:       make(chan struct{}),
		logger:         logger,
	}
	go am.commandHandler()
	return am
}

// AdapterAdd registers an adapter instance, creating a session for it, and
// returns the session ID.
func (am *AdapterManager) AdapterAdd(instance AdapterInstance) (string, error) {
	sessionID, err := am.sessionManager.SessionAdd()
	if err != nil {
		return "", fmt.Errorf("failed to add session: %w", err)
	}
	am.instances.Store(sessionID, instance)
	return sessionID, nil
}

// AdapterRemove unregisters an adapter instance and its session.
func (am *AdapterManager) AdapterRemove(sessionID string) {
	am.instances.Delete(sessionID)
	am.sessionManager.SessionDelete(sessionID)
}

// CommandRun runs a command for a specific session. Commands from all
// adapters are handled one at a time.
func (am *AdapterManager) CommandRun(sessionID string, cmd model.Command) (interface{}, error) {
	resultChan := make(chan interface{})
	select {
	case am.cmdChan <- commandRequest{SessionID: sessionID, Command: cmd, ResultChan: resultChan}:
	case <-am.stopChan:
		return nil, fmt.Errorf("adapter manager stopped")
	}
	result := <-resultChan
	if err, ok := result.(error); ok {
		return nil, err
	}
	return result, nil
}

// SessionGet returns the session associated with an adapter instance.
func (am *AdapterManager) SessionGet(sessionID string) (*session.Session, bool) {
	return am.sessionManager.SessionGet(sessionID)
}

// Shutdown stops the command handler and all adapter instances
func (am *AdapterManager) Shutdown() {
	am.stopOnce.Do(func() {
		close(am.stopChan)
	})
	am.instances.Range(func(key, value interface{}) bool {
		value.(AdapterInstance).AdapterStop()
		am.instances.Delete(key)
		return true
	})
}

// commandHandler serializes command execution across all sessions
func (am *AdapterManager) commandHandler() {
	for {
		select {
		case req := <-am.cmdChan:
			sess, ok := am.sessionManager.SessionGet(req.SessionID)
			if !ok {
				req.ResultChan <- fmt.Errorf("no session found: %s", req.SessionID)
				continue
			}
			result, err := sess.CommandRun(req.Command)
			if err != nil {
				req.ResultChan <- err
			} else {
				req.ResultChan <- result
			}
		case <-am.stopChan:
			return
		}
	}
}
