// Package session manages user sessions and dispatches validated commands
// to scope-specific handlers. Each session owns the current user, the
// current mind-map snapshot, and the undo/redo ledger for that map.
package session

import (
	"context"
	"errors"
	"time"

	"mindcanvas/app/pkg/data"
	"mindcanvas/app/pkg/event"
	"mindcanvas/app/pkg/history"
	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
)

// CommandHandler is a function type for command handlers
type CommandHandler func(*Session, model.Command) (interface{}, error)

// Session represents an individual user session
type Session struct {
	ID              string
	DataManager     *data.DataManager
	User            *model.User
	Mindmap         *model.Mindmap
	History         *history.History
	LastActivity    time.Time
	commandHandlers map[string]map[string]CommandHandler
	logger          *log.Logger
}

// NewSession creates a new Session instance
func NewSession(id string, dataManager *data.DataManager, logger *log.Logger) *Session {
	s := &Session{
		ID:           id,
		DataManager:  dataManager,
		History:      history.NewHistory(),
		LastActivity: time.Now(),
		logger:       logger,
	}
	s.initCommandHandlers()
	logger.Info(context.Background(), "New session created", log.Fields{"sessionID": id})
	return s
}

// initCommandHandlers initializes the command handlers map
func (s *Session) initCommandHandlers() {
	s.commandHandlers = map[string]map[string]CommandHandler{
		"user":       initUserCommandHandlers(),
		"map":        initMapCommandHandlers(),
		"node":       initNodeCommandHandlers(),
		"connection": initConnectionCommandHandlers(),
		"system":     initSystemCommandHandlers(),
	}
}

// CommandRun validates and executes a command within the session context
func (s *Session) CommandRun(cmd model.Command) (interface{}, error) {
	ctx := context.Background()
	s.logger.Command(ctx, "Running command", log.Fields{"sessionID": s.ID, "scope": cmd.Scope, "operation": cmd.Operation, "args": cmd.Args})

	s.LastActivity = time.Now()

	sessionCmd := NewCommand(cmd, s.logger)
	if err := sessionCmd.Validate(); err != nil {
		s.logger.Error(ctx, "Command validation failed", log.Fields{"error": err})
		return nil, err
	}

	scopeHandlers, ok := s.commandHandlers[cmd.Scope]
	if !ok {
		return nil, errors.New("invalid command scope")
	}
	handler, ok := scopeHandlers[cmd.Operation]
	if !ok {
		return nil, errors.New("invalid command operation")
	}

	result, err := handler(s, cmd)
	if err != nil {
		s.logger.Error(ctx, "Command execution failed", log.Fields{"error": err, "scope": cmd.Scope, "operation": cmd.Operation})
	}
	return result, err
}

// UserGet retrieves the current user
func (s *Session) UserGet() (*model.User, error) {
	if s.User == nil {
		return nil, errors.New("no user selected")
	}
	return s.User, nil
}

// UserSet sets the current user and clears any selected map
func (s *Session) UserSet(user *model.User) {
	s.User = user
	s.Mindmap = nil
	s.History.Reset()
}

// MindmapGet retrieves the current mindmap
func (s *Session) MindmapGet() (*model.Mindmap, error) {
	if s.Mindmap == nil {
		return nil, errors.New("no mindmap selected")
	}
	return s.Mindmap, nil
}

// MindmapSet selects a map, resetting the undo ledger and seeding it with
// the loaded snapshot.
func (s *Session) MindmapSet(m *model.Mindmap) {
	s.Mindmap = m
	s.History.Reset()
	if m != nil {
		s.History.Commit(m)
	}
}

// commitSnapshot installs a mutated snapshot as current state, records it in
// the undo ledger, and publishes the event that triggers autosave.
func (s *Session) commitSnapshot(next *model.Mindmap, eventType event.EventType) {
	s.Mindmap = next
	s.History.Commit(next)
	s.DataManager.EventManager.Publish(event.Event{
		Type: eventType,
		Data: next,
	})
}

// initUserCommandHandlers initializes user command handlers
func initUserCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleUserAdd,
		"select": handleUserSelect,
		"update": handleUserUpdate,
		"delete": handleUserDelete,
		"list":   handleUserList,
	}
}

// initMapCommandHandlers initializes map command handlers
func initMapCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleMapAdd,
		"select": handleMapSelect,
		"list":   handleMapList,
		"delete": handleMapDelete,
		"view":   handleMapView,
		"export": handleMapExport,
		"import": handleMapImport,
		"undo":   handleMapUndo,
		"redo":   handleMapRedo,
	}
}

// initNodeCommandHandlers initializes node command handlers
func initNodeCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleNodeAdd,
		"update": handleNodeUpdate,
		"move":   handleNodeMove,
		"delete": handleNodeDelete,
		"find":   handleNodeFind,
	}
}

// initConnectionCommandHandlers initializes connection command handlers
func initConnectionCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleConnectionAdd,
		"delete": handleConnectionDelete,
		"list":   handleConnectionList,
	}
}

// initSystemCommandHandlers initializes system command handlers
func initSystemCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"exit": handleSystemExit,
		"quit": handleSystemExit,
	}
}
