// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

const scriptColumns = `
	id, client_id, type, title, script_text, duration_seconds, status, notes,
	created_at, updated_at`

// ScriptStore handles all script-related database operations.
type ScriptStore struct {
	db *sql.DB
}

// NewScriptStore creates a new ScriptStore with the given database connection.
func NewScriptStore(db *sql.DB) *ScriptStore {
	return &ScriptStore{db: db}
}

func scanScript(row interface{ Scan(...any) error }) (*models.Script, error) {
	sc := &models.Script{}
	err := row.Scan(
		&sc.ID, &sc.ClientID, &sc.Type, &sc.Title, &sc.ScriptText,
		&sc.DurationSeconds, &sc.Status, &sc.Notes,
		&sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// ListByClient returns all scripts for a client in creation order, which
// matches the generation order of a 30-day pack.
func (s *ScriptStore) ListByClient(clientID uuid.UUID) ([]models.Script, error) {
	rows, err := s.db.Query(`
		SELECT`+scriptColumns+` FROM scripts WHERE client_id = $1 ORDER BY created_at ASC, id ASC
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list scripts by client: %w", err)
	}
	defer rows.Close()

	var scripts []models.Script
	for rows.Next() {
		sc, err := scanScript(rows)
		if err != nil {
			return nil, fmt.Errorf("scan script: %w", err)
		}
		scripts = append(scripts, *sc)
	}
	return scripts, rows.Err()
}

// FindByID retrieves a script by its UUID. Returns nil if not found.
func (s *ScriptStore) FindByID(id uuid.UUID) (*models.Script, error) {
	sc, err := scanScript(s.db.QueryRow(`SELECT`+scriptColumns+` FROM scripts WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find script by id: %w", err)
	}
	return sc, nil
}

// Create inserts a single script and returns it with the generated ID.
func (s *ScriptStore) Create(sc *models.Script) (*models.Script, error) {
	status := sc.Status
	if status == "" {
		status = models.ScriptStatusDraft
	}

	result, err := scanScript(s.db.QueryRow(`
		INSERT INTO scripts (client_id, type, title, script_text, duration_seconds, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING`+scriptColumns+`
	`, sc.ClientID, sc.Type, sc.Title, sc.ScriptText, sc.DurationSeconds, status, sc.Notes))
	if err != nil {
		return nil, fmt.Errorf("create script: %w", err)
	}
	return result, nil
}

// CreateBatch inserts a full generated pack in one transaction. Either
// every script is stored or none are.
func (s *ScriptStore) CreateBatch(scripts []models.Script) ([]models.Script, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create batch begin: %w", err)
	}
	defer tx.Rollback()

	created := make([]models.Script, 0, len(scripts))
	for _, sc := range scripts {
		status := sc.Status
		if status == "" {
			status = models.ScriptStatusDraft
		}
		row, err := scanScript(tx.QueryRow(`
			INSERT INTO scripts (client_id, type, title, script_text, duration_seconds, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING`+scriptColumns+`
		`, sc.ClientID, sc.Type, sc.Title, sc.ScriptText, sc.DurationSeconds, status, sc.Notes))
		if err != nil {
			return nil, fmt.Errorf("create batch insert: %w", err)
		}
		created = append(created, *row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create batch commit: %w", err)
	}
	return created, nil
}

// Update modifies a script's content fields and status. Passing the
// current values back unchanged is harmless.
func (s *ScriptStore) Update(sc *models.Script) error {
	_, err := s.db.Exec(`
		UPDATE scripts SET
			title = $1, script_text = $2, duration_seconds = $3, status = $4, notes = $5,
			updated_at = NOW()
		WHERE id = $6
	`, sc.Title, sc.ScriptText, sc.DurationSeconds, sc.Status, sc.Notes, sc.ID)
	if err != nil {
		return fmt.Errorf("update script: %w", err)
	}
	return nil
}

// SetStatus changes a script's review status, optionally replacing its
// notes when notes is non-nil.
func (s *ScriptStore) SetStatus(id uuid.UUID, status models.ScriptStatus, notes *string) error {
	var err error
	if notes != nil {
		_, err = s.db.Exec(`
			UPDATE scripts SET status = $1, notes = $2, updated_at = NOW() WHERE id = $3
		`, status, notes, id)
	} else {
		_, err = s.db.Exec(`
			UPDATE scripts SET status = $1, updated_at = NOW() WHERE id = $2
		`, status, id)
	}
	if err != nil {
		return fmt.Errorf("set script status: %w", err)
	}
	return nil
}

// BulkSetStatus applies one target status to a set of script IDs in a
// single transaction and returns the number of rows changed. The whole
// batch succeeds or the transaction rolls back; re-applying the same
// status is a no-op success.
func (s *ScriptStore) BulkSetStatus(ids []uuid.UUID, status models.ScriptStatus) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("bulk set status begin: %w", err)
	}
	defer tx.Rollback()

	count := 0
	for _, id := range ids {
		res, err := tx.Exec(`
			UPDATE scripts SET status = $1, updated_at = NOW() WHERE id = $2
		`, status, id)
		if err != nil {
			return 0, fmt.Errorf("bulk set status update: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("bulk set status rows affected: %w", err)
		}
		count += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("bulk set status commit: %w", err)
	}
	return count, nil
}

// Delete removes a script by ID.
func (s *ScriptStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM scripts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete script: %w", err)
	}
	return nil
}
