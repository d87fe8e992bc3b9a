// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies a portal activity entry.
type ActivityType string

const (
	ActivityVideoUploaded   ActivityType = "video_uploaded"
	ActivityScriptGenerated ActivityType = "script_generated"
	ActivityScriptApproved  ActivityType = "script_approved"
	ActivityStatusChanged   ActivityType = "status_changed"
	ActivityPaymentReceived ActivityType = "payment_received"
	ActivityAccountCreated  ActivityType = "account_created"
)

// PortalActivity is one entry in a client's append-only activity feed.
// Entries are created by backend actions and never mutated or deleted
// through the portal.
type PortalActivity struct {
	ID          uuid.UUID    `json:"id"`
	ClientID    uuid.UUID    `json:"clientId"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"timestamp"`
}
