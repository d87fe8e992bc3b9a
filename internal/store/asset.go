// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

// AssetStore tracks delivered files stored in object storage.
type AssetStore struct {
	db *sql.DB
}

// NewAssetStore creates a new AssetStore with the given database connection.
func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

// Create records an uploaded asset and returns it with the generated ID.
func (s *AssetStore) Create(a *models.ClientAsset) (*models.ClientAsset, error) {
	result := &models.ClientAsset{}
	err := s.db.QueryRow(`
		INSERT INTO client_assets (client_id, file_name, file_type, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, client_id, file_name, file_type, size_bytes, storage_key, uploaded_at
	`, a.ClientID, a.FileName, a.FileType, a.SizeBytes, a.StorageKey).Scan(
		&result.ID, &result.ClientID, &result.FileName, &result.FileType,
		&result.SizeBytes, &result.StorageKey, &result.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return result, nil
}

// FindByID retrieves an asset by its UUID. Returns nil if not found.
func (s *AssetStore) FindByID(id uuid.UUID) (*models.ClientAsset, error) {
	a := &models.ClientAsset{}
	err := s.db.QueryRow(`
		SELECT id, client_id, file_name, file_type, size_bytes, storage_key, uploaded_at
		FROM client_assets WHERE id = $1
	`, id).Scan(
		&a.ID, &a.ClientID, &a.FileName, &a.FileType, &a.SizeBytes, &a.StorageKey, &a.UploadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find asset by id: %w", err)
	}
	return a, nil
}

// ListByClient returns a client's assets, newest upload first.
func (s *AssetStore) ListByClient(clientID uuid.UUID) ([]models.ClientAsset, error) {
	rows, err := s.db.Query(`
		SELECT id, client_id, file_name, file_type, size_bytes, storage_key, uploaded_at
		FROM client_assets
		WHERE client_id = $1
		ORDER BY uploaded_at DESC
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list assets by client: %w", err)
	}
	defer rows.Close()

	var assets []models.ClientAsset
	for rows.Next() {
		var a models.ClientAsset
		if err := rows.Scan(
			&a.ID, &a.ClientID, &a.FileName, &a.FileType, &a.SizeBytes, &a.StorageKey, &a.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Delete removes an asset record by ID. The object storage copy is
// removed separately by the caller.
func (s *AssetStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM client_assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}
