// Package data provides data management functionality for the Mindcanvas
// application. It coordinates operations between the user and map managers.
package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mindcanvas/app/pkg/event"
	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/model"
	"mindcanvas/app/pkg/storage"
)

// DataManager is the main struct that coordinates all data operations
type DataManager struct {
	UserManager  *UserManager
	MapManager   *MapManager
	EventManager *event.EventManager
	Config       *model.Config
	Logger       *log.Logger
}

// NewDataManager creates a new DataManager instance
func NewDataManager(store *storage.Storage, cfg *model.Config, logger *log.Logger) (*DataManager, error) {
	eventManager := event.NewEventManager(logger)
	m := &DataManager{
		EventManager: eventManager,
		Config:       cfg,
		Logger:       logger,
	}

	// Initialize UserManager
	var err error
	m.UserManager, err = NewUserManager(store.UserStore, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create UserManager: %w", err)
	}

	// Initialize MapManager
	m.MapManager, err = NewMapManager(store.MapStore, eventManager, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create MapManager: %w", err)
	}

	// Handle default user logic
	if cfg.DefaultUserActive {
		_, exists, err := m.UserManager.UserGet(cfg.DefaultUser)
		if err != nil {
			return nil, fmt.Errorf("failed to check default user existence: %w", err)
		}
		if !exists {
			if err := m.UserManager.UserAdd(cfg.DefaultUser, cfg.DefaultUserPassword); err != nil {
				return nil, fmt.Errorf("failed to create default user: %w", err)
			}
		}
	}

	// Delete a removed user's maps along with the user
	eventManager.Subscribe(event.UserDeleted, m.MapManager.handleUserDeleted)

	// Persist the current map whenever a mutation commits
	for _, eventType := range []event.EventType{
		event.MapUpdated,
		event.NodeUpdated,
		event.NodeDeleted,
		event.ConnectionAdded,
		event.ConnectionDeleted,
	} {
		eventManager.Subscribe(eventType, m.MapManager.handleMapMutated)
	}

	return m, nil
}

// MapExport exports a mindmap to a JSON file.
func (m *DataManager) MapExport(mindmap *model.Mindmap, filename string) error {
	if err := storage.FileExport(mindmap, filename); err != nil {
		return fmt.Errorf("failed to export mindmap: %w", err)
	}
	m.Logger.Info(context.Background(), "Mindmap exported", log.Fields{"mapID": mindmap.ID, "filename": filename})
	return nil
}

// MapImport imports a mindmap from a JSON file, assigns it to the user, and
// persists it. An existing map with the same name is replaced.
func (m *DataManager) MapImport(user *model.User, filename string) (*model.Mindmap, error) {
	ctx := context.Background()

	imported, err := storage.FileImport(filename)
	if err != nil {
		m.Logger.Error(ctx, "Failed to import mindmap", log.Fields{"error": err, "filename": filename})
		return nil, fmt.Errorf("failed to import mindmap: %w", err)
	}

	imported.Owner = user.Username
	if imported.ID == "" {
		imported.ID = uuid.NewString()
	}

	// Replace an existing map with the same name
	existing, found, err := m.MapManager.MapLoadByName(user, imported.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing mindmap: %w", err)
	}
	if found && existing.ID != imported.ID {
		if err := m.MapManager.MapDelete(user, existing); err != nil {
			return nil, fmt.Errorf("failed to delete existing mindmap: %w", err)
		}
	}

	if err := m.MapManager.MapSave(imported); err != nil {
		return nil, fmt.Errorf("failed to save imported mindmap: %w", err)
	}

	m.Logger.Info(ctx, "Mindmap imported", log.Fields{"mapID": imported.ID, "mapName": imported.Name, "filename": filename})
	return imported, nil
}
