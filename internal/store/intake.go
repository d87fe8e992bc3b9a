// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

// IntakeStore handles intake form persistence. Each client has at most
// one intake record.
type IntakeStore struct {
	db *sql.DB
}

// NewIntakeStore creates a new IntakeStore with the given database connection.
func NewIntakeStore(db *sql.DB) *IntakeStore {
	return &IntakeStore{db: db}
}

// FindByClient retrieves the intake for a client. Returns nil if the
// client has not submitted one.
func (s *IntakeStore) FindByClient(clientID uuid.UUID) (*models.Intake, error) {
	i := &models.Intake{}
	err := s.db.QueryRow(`
		SELECT id, client_id, raw_faqs, raw_offers, raw_testimonials, raw_promos,
		       brand_voice_notes, reference_links, brand_colors, logo_url,
		       created_at, updated_at
		FROM intakes WHERE client_id = $1
	`, clientID).Scan(
		&i.ID, &i.ClientID, &i.RawFAQs, &i.RawOffers, &i.RawTestimonials, &i.RawPromos,
		&i.BrandVoiceNotes, &i.References, &i.BrandColors, &i.LogoURL,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find intake by client: %w", err)
	}
	return i, nil
}

// Upsert creates or replaces a client's intake. Resubmitting the form
// overwrites the previous answers.
func (s *IntakeStore) Upsert(i *models.Intake) (*models.Intake, error) {
	result := &models.Intake{}
	err := s.db.QueryRow(`
		INSERT INTO intakes (client_id, raw_faqs, raw_offers, raw_testimonials, raw_promos,
		                     brand_voice_notes, reference_links, brand_colors, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (client_id) DO UPDATE SET
			raw_faqs = EXCLUDED.raw_faqs,
			raw_offers = EXCLUDED.raw_offers,
			raw_testimonials = EXCLUDED.raw_testimonials,
			raw_promos = EXCLUDED.raw_promos,
			brand_voice_notes = EXCLUDED.brand_voice_notes,
			reference_links = EXCLUDED.reference_links,
			brand_colors = EXCLUDED.brand_colors,
			logo_url = EXCLUDED.logo_url,
			updated_at = NOW()
		RETURNING id, client_id, raw_faqs, raw_offers, raw_testimonials, raw_promos,
		          brand_voice_notes, reference_links, brand_colors, logo_url,
		          created_at, updated_at
	`, i.ClientID, i.RawFAQs, i.RawOffers, i.RawTestimonials, i.RawPromos,
		i.BrandVoiceNotes, i.References, i.BrandColors, i.LogoURL,
	).Scan(
		&result.ID, &result.ClientID, &result.RawFAQs, &result.RawOffers,
		&result.RawTestimonials, &result.RawPromos,
		&result.BrandVoiceNotes, &result.References, &result.BrandColors, &result.LogoURL,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert intake: %w", err)
	}
	return result, nil
}
