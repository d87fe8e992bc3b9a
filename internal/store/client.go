// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

// clientColumns is the column list shared by every client query so that
// Scan destinations stay in one fixed order.
const clientColumns = `
	id, business_name, contact_name, email, phone, website, niche, tone, goals, notes,
	package, package_price, is_subscription, payment_status, payment_amount, payment_date,
	project_status, project_start_date, project_delivery_date,
	avatar_id, voice_id, created_at, updated_at`

// ClientStore handles all client-related database operations.
type ClientStore struct {
	db *sql.DB
}

// NewClientStore creates a new ClientStore with the given database connection.
func NewClientStore(db *sql.DB) *ClientStore {
	return &ClientStore{db: db}
}

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	c := &models.Client{}
	err := row.Scan(
		&c.ID, &c.BusinessName, &c.ContactName, &c.Email, &c.Phone, &c.Website,
		&c.Niche, &c.Tone, &c.Goals, &c.Notes,
		&c.Package, &c.PackagePrice, &c.IsSubscription,
		&c.PaymentStatus, &c.PaymentAmount, &c.PaymentDate,
		&c.ProjectStatus, &c.ProjectStartDate, &c.ProjectDeliveryDate,
		&c.AvatarID, &c.VoiceID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all clients, newest first.
func (s *ClientStore) List() ([]models.Client, error) {
	rows, err := s.db.Query(`SELECT` + clientColumns + ` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// FindByID retrieves a client by its UUID. Returns nil if not found.
func (s *ClientStore) FindByID(id uuid.UUID) (*models.Client, error) {
	c, err := scanClient(s.db.QueryRow(`SELECT`+clientColumns+` FROM clients WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client by id: %w", err)
	}
	return c, nil
}

// Create inserts a new client and returns it with the generated ID. New
// clients always start in the discovery stage.
func (s *ClientStore) Create(c *models.Client) (*models.Client, error) {
	status := c.ProjectStatus
	if status == "" {
		status = models.StatusDiscovery
	}
	paymentStatus := c.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	result, err := scanClient(s.db.QueryRow(`
		INSERT INTO clients (
			business_name, contact_name, email, phone, website, niche, tone, goals, notes,
			package, package_price, is_subscription, payment_status, payment_amount, payment_date,
			project_status, avatar_id, voice_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING`+clientColumns+`
	`, c.BusinessName, c.ContactName, c.Email, c.Phone, c.Website,
		c.Niche, c.Tone, c.Goals, c.Notes,
		c.Package, c.PackagePrice, c.IsSubscription,
		paymentStatus, c.PaymentAmount, c.PaymentDate,
		status, c.AvatarID, c.VoiceID,
	))
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return result, nil
}

// Update modifies an existing client's profile and commercial fields.
// Project status changes go through SetStatus instead.
func (s *ClientStore) Update(c *models.Client) error {
	_, err := s.db.Exec(`
		UPDATE clients SET
			business_name = $1, contact_name = $2, email = $3, phone = $4, website = $5,
			niche = $6, tone = $7, goals = $8, notes = $9,
			package = $10, package_price = $11, is_subscription = $12,
			payment_status = $13, payment_amount = $14, payment_date = $15,
			avatar_id = $16, voice_id = $17,
			updated_at = NOW()
		WHERE id = $18
	`, c.BusinessName, c.ContactName, c.Email, c.Phone, c.Website,
		c.Niche, c.Tone, c.Goals, c.Notes,
		c.Package, c.PackagePrice, c.IsSubscription,
		c.PaymentStatus, c.PaymentAmount, c.PaymentDate,
		c.AvatarID, c.VoiceID, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// SetStatus moves a client to a new project status. Start and delivery
// dates are only written when non-nil, so existing dates survive later
// status changes.
func (s *ClientStore) SetStatus(id uuid.UUID, status models.ProjectStatus, startDate, deliveryDate *time.Time) error {
	_, err := s.db.Exec(`
		UPDATE clients SET
			project_status = $1,
			project_start_date = COALESCE($2, project_start_date),
			project_delivery_date = COALESCE($3, project_delivery_date),
			updated_at = NOW()
		WHERE id = $4
	`, status, startDate, deliveryDate, id)
	if err != nil {
		return fmt.Errorf("set client status: %w", err)
	}
	return nil
}

// ListByPaymentStatus returns clients whose payment is in the given state,
// oldest first. Used by the reminder job.
func (s *ClientStore) ListByPaymentStatus(paymentStatus string) ([]models.Client, error) {
	rows, err := s.db.Query(`
		SELECT`+clientColumns+` FROM clients WHERE payment_status = $1 ORDER BY created_at ASC
	`, paymentStatus)
	if err != nil {
		return nil, fmt.Errorf("list clients by payment status: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// CountByStatus returns how many clients sit in each project status.
func (s *ClientStore) CountByStatus() (map[models.ProjectStatus]int, error) {
	rows, err := s.db.Query(`SELECT project_status, COUNT(*) FROM clients GROUP BY project_status`)
	if err != nil {
		return nil, fmt.Errorf("count clients by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ProjectStatus]int)
	for rows.Next() {
		var status models.ProjectStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// Delete removes a client by ID. Normal flows never call this; it exists
// for admin cleanup of records created by mistake.
func (s *ClientStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
