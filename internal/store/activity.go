// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

// ActivityStore handles the append-only portal activity feed. Entries
// are recorded by backend actions and only ever read back.
type ActivityStore struct {
	db *sql.DB
}

// NewActivityStore creates a new ActivityStore with the given database connection.
func NewActivityStore(db *sql.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Record appends one activity entry for a client.
func (s *ActivityStore) Record(clientID uuid.UUID, activityType models.ActivityType, title, description string) error {
	_, err := s.db.Exec(`
		INSERT INTO portal_activity (client_id, type, title, description)
		VALUES ($1, $2, $3, $4)
	`, clientID, activityType, title, description)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries for a client, capped at limit.
func (s *ActivityStore) ListRecent(clientID uuid.UUID, limit int) ([]models.PortalActivity, error) {
	rows, err := s.db.Query(`
		SELECT id, client_id, type, title, description, created_at
		FROM portal_activity
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	defer rows.Close()

	var entries []models.PortalActivity
	for rows.Next() {
		var a models.PortalActivity
		if err := rows.Scan(&a.ID, &a.ClientID, &a.Type, &a.Title, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}
