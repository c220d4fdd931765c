// Package storage provides functionality for persisting and retrieving
// Mindcanvas data. This file stores whole mind maps as JSON documents,
// one row per map, last write wins.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"mindcanvas/app/pkg/log"
	"mindcanvas/app/pkg/mindmap"
	"mindcanvas/app/pkg/model"
)

// MapStore defines the interface for mind-map persistence operations
type MapStore interface {
	MapSave(mindmap *model.Mindmap) error
	MapLoad(id string) (*model.Mindmap, bool, error)
	MapLoadByName(owner, name string) (*model.Mindmap, bool, error)
	MapList(owner string) ([]model.MindmapInfo, error)
	MapDelete(id string) error
	MapDeleteByOwner(owner string) error
}

// MapStorage is the SQL-backed implementation of MapStore
type MapStorage struct {
	db     Database
	logger *log.Logger
}

// NewMapStorage creates a new MapStorage instance
func NewMapStorage(db Database, logger *log.Logger) *MapStorage {
	return &MapStorage{db: db, logger: logger}
}

// MapSave inserts or replaces the stored document for the map.
func (s *MapStorage) MapSave(mindmap *model.Mindmap) error {
	ctx := context.Background()

	document, err := json.Marshal(mindmap)
	if err != nil {
		s.logger.Error(ctx, "Failed to marshal mindmap document", log.Fields{"error": err, "mapID": mindmap.ID})
		return fmt.Errorf("failed to marshal mindmap document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO mindmaps (id, map_name, owner, document, created, updated)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			map_name = excluded.map_name,
			document = excluded.document,
			updated = excluded.updated
	`, mindmap.ID, mindmap.Name, mindmap.Owner, string(document), mindmap.CreatedAt, time.Now())
	if err != nil {
		s.logger.Error(ctx, "Failed to save mindmap", log.Fields{"error": err, "mapID": mindmap.ID})
		return fmt.Errorf("failed to save mindmap: %w", err)
	}

	s.logger.Debug(ctx, "Mindmap saved", log.Fields{"mapID": mindmap.ID, "mapName": mindmap.Name})
	return nil
}

// MapLoad retrieves a map by id. A malformed stored document is logged and
// treated as absent rather than surfaced as an error.
func (s *MapStorage) MapLoad(id string) (*model.Mindmap, bool, error) {
	row := s.db.QueryRow("SELECT owner, document FROM mindmaps WHERE id = ?", id)
	return s.scanDocument(row, id)
}

// MapLoadByName retrieves a map by owner and name.
func (s *MapStorage) MapLoadByName(owner, name string) (*model.Mindmap, bool, error) {
	row := s.db.QueryRow("SELECT owner, document FROM mindmaps WHERE owner = ? AND map_name = ?", owner, name)
	return s.scanDocument(row, name)
}

// scanDocument decodes a single stored document row.
func (s *MapStorage) scanDocument(row *sql.Row, key string) (*model.Mindmap, bool, error) {
	ctx := context.Background()

	var owner, document string
	if err := row.Scan(&owner, &document); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load mindmap: %w", err)
	}

	var stored model.Mindmap
	if err := json.Unmarshal([]byte(document), &stored); err != nil {
		// A corrupted document is not fatal: the caller falls back to a
		// fresh map, but the corruption is kept in the error log.
		s.logger.Warn(ctx, "Stored mindmap document is malformed, treating as absent", log.Fields{"error": err, "key": key})
		return nil, false, nil
	}
	stored.Owner = owner
	if stored.Nodes == nil {
		stored.Nodes = map[string]*model.Node{}
	}
	if stored.Connections == nil {
		stored.Connections = []model.Connection{}
	}

	// Valid JSON is not enough: a document whose tree invariants are broken
	// would panic the tree operations downstream, so it is treated the same
	// as undecodable JSON.
	if err := mindmap.Validate(&stored); err != nil {
		s.logger.Warn(ctx, "Stored mindmap document violates tree invariants, treating as absent", log.Fields{"error": err, "key": key})
		return nil, false, nil
	}

	return &stored, true, nil
}

// MapList returns summary information for all maps owned by owner. The node
// count is derived from the stored document; a malformed document counts as
// zero nodes rather than failing the listing.
func (s *MapStorage) MapList(owner string) ([]model.MindmapInfo, error) {
	rows, err := s.db.Query("SELECT id, map_name, owner, document, updated FROM mindmaps WHERE owner = ? ORDER BY map_name", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list mindmaps: %w", err)
	}
	defer rows.Close()

	var infos []model.MindmapInfo
	for rows.Next() {
		var info model.MindmapInfo
		var document string
		if err := rows.Scan(&info.ID, &info.Name, &info.Owner, &document, &info.Updated); err != nil {
			return nil, fmt.Errorf("failed to scan mindmap row: %w", err)
		}
		var stored model.Mindmap
		if err := json.Unmarshal([]byte(document), &stored); err == nil {
			info.NodeCount = len(stored.Nodes)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mindmap rows: %w", err)
	}
	return infos, nil
}

// MapDelete removes the stored document for the map.
func (s *MapStorage) MapDelete(id string) error {
	if _, err := s.db.Exec("DELETE FROM mindmaps WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete mindmap: %w", err)
	}
	return nil
}

// MapDeleteByOwner removes all maps owned by owner.
func (s *MapStorage) MapDeleteByOwner(owner string) error {
	if _, err := s.db.Exec("DELETE FROM mindmaps WHERE owner = ?", owner); err != nil {
		return fmt.Errorf("failed to delete mindmaps for owner: %w", err)
	}
	return nil
}
