// Package data provides data management functionality for the Mindcanvas
// application. This file contains operations related to mind-map management.
package data

import (
	"context"
	"fmt"

	"mindcanvas/app/pkg/event"
	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/mindmap"
	"mindcanvas/app/pkg/model"
	"mindcanvas/app/pkg/storage"
)

// MapOperations defines the interface for mind-map-related operations
type MapOperations interface {
	MapAdd(user *model.User, name string) (*model.Mindmap, error)
	MapLoadByName(user *model.User, name string) (*model.Mindmap, bool, error)
	MapList(user *model.User) ([]model.MindmapInfo, error)
	MapSave(m *model.Mindmap) error
	MapDelete(user *model.User, m *model.Mindmap) error
}

// MapManager handles mind-map lifecycle operations against the map store.
type MapManager struct {
	mapStore     storage.MapStore
	eventManager *event.EventManager
	config       *model.Config
	logger       *log.Logger
}

// NewMapManager creates a new MapManager instance
func NewMapManager(mapStore storage.MapStore, eventManager *event.EventManager, cfg *model.Config, logger *log.Logger) (*MapManager, error) {
	if mapStore == nil {
		return nil, fmt.Errorf("mapStore not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &MapManager{
		mapStore:     mapStore,
		eventManager: eventManager,
		config:       cfg,
		logger:       logger,
	}, nil
}

// MapAdd creates a new mind map with the given name, owned by the user.
func (mm *MapManager) MapAdd(user *model.User, name string) (*model.Mindmap, error) {
	ctx := context.Background()
	if name == "" {
		name = mm.config.DefaultMapName
	}
	mm.logger.Info(ctx, "Adding new mindmap", log.Fields{"username": user.Username, "mapName": name})

	// Check if the user already has a mindmap with the same name
	_, found, err := mm.mapStore.MapLoadByName(user.Username, name)
	if err != nil {
		mm.logger.Error(ctx, "Failed to check for existing mindmap", log.Fields{"error": err, "mapName": name})
		return nil, fmt.Errorf("failed to check for existing mindmap: %w", err)
	}
	if found {
		mm.logger.Warn(ctx, "Mindmap with the same name already exists", log.Fields{"mapName": name})
		return nil, fmt.Errorf("mindmap with name '%s' already exists for this user", name)
	}

	newMap := mindmap.New(name, user.Username, mm.config.DefaultRootText)
	if err := mm.mapStore.MapSave(newMap); err != nil {
		mm.logger.Error(ctx, "Failed to save new mindmap", log.Fields{"error": err, "mapName": name})
		return nil, fmt.Errorf("failed to save new mindmap: %w", err)
	}

	mm.eventManager.Publish(event.Event{
		Type: event.MapAdded,
		Data: newMap,
	})

	mm.logger.Info(ctx, "Mindmap added successfully", log.Fields{"mapID": newMap.ID, "mapName": name})
	return newMap, nil
}

// MapLoadByName loads a user's map by name from the store.
func (mm *MapManager) MapLoadByName(user *model.User, name string) (*model.Mindmap, bool, error) {
	m, found, err := mm.mapStore.MapLoadByName(user.Username, name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load mindmap: %w", err)
	}
	return m, found, nil
}

// MapList returns summary information for the user's maps.
func (mm *MapManager) MapList(user *model.User) ([]model.MindmapInfo, error) {
	infos, err := mm.mapStore.MapList(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to list mindmaps: %w", err)
	}
	return infos, nil
}

// MapSave persists the map, last write wins.
func (mm *MapManager) MapSave(m *model.Mindmap) error {
	if err := mm.mapStore.MapSave(m); err != nil {
		return fmt.Errorf("failed to save mindmap: %w", err)
	}
	return nil
}

// MapDelete removes a mind map owned by the user.
func (mm *MapManager) MapDelete(user *model.User, m *model.Mindmap) error {
	ctx := context.Background()
	mm.logger.Info(ctx, "Deleting mindmap", log.Fields{"username": user.Username, "mapID": m.ID})

	if m.Owner != user.Username {
		mm.logger.Warn(ctx, "User does not have permission to delete mindmap", log.Fields{"username": user.Username, "mapID": m.ID})
		return fmt.Errorf("user %s does not have permission to delete %s mindmap", user.Username, m.Name)
	}

	if err := mm.mapStore.MapDelete(m.ID); err != nil {
		mm.logger.Error(ctx, "Failed to delete mindmap", log.Fields{"error": err, "mapID": m.ID})
		return fmt.Errorf("failed to delete mindmap: %w", err)
	}

	mm.eventManager.Publish(event.Event{
		Type: event.MapDeleted,
		Data: m,
	})

	mm.logger.Info(ctx, "Mindmap deleted successfully", log.Fields{"mapID": m.ID})
	return nil
}

// handleMapMutated persists the snapshot carried by a mutation event. The
// save is fire-and-forget: the event manager already runs handlers off the
// mutating path, and a failed save only leaves an older stored revision.
func (mm *MapManager) handleMapMutated(e event.Event) {
	ctx := context.Background()

	m, ok := e.Data.(*model.Mindmap)
	if !ok {
		mm.logger.Error(ctx, "Invalid event data for map mutation event", log.Fields{"eventType": e.Type})
		return
	}

	if err := mm.mapStore.MapSave(m); err != nil {
		mm.logger.Error(ctx, "Failed to autosave mindmap", log.Fields{"error": err, "mapID": m.ID})
		return
	}
	mm.logger.Debug(ctx, "Mindmap autosaved", log.Fields{"mapID": m.ID})
}

// handleUserDeleted deletes all mindmaps associated with the deleted user
func (mm *MapManager) handleUserDeleted(e event.Event) {
	ctx := context.Background()

	user, ok := e.Data.(*model.User)
	if !ok {
		mm.logger.Error(ctx, "Invalid event data for user delete event", nil)
		return
	}

	if err := mm.mapStore.MapDeleteByOwner(user.Username); err != nil {
		mm.logger.Error(ctx, "Failed to delete mindmaps for deleted user", log.Fields{"error": err, "username": user.Username})
		return
	}
	mm.logger.Info(ctx, "Deleted mindmaps for deleted user", log.Fields{"username": user.Username})
}
