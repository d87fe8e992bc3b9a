// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Client represents one customer engagement: a small business that buys a
// script pack or subscription. Clients are never hard-deleted through the
// normal flows; project status reflects the end of an engagement.
type Client struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"businessName"`
	ContactName  string    `json:"contactName"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	Website      *string   `json:"website,omitempty"`
	Niche        string    `json:"niche"`
	Tone         string    `json:"tone"`
	Goals        string    `json:"goals"`
	Notes        *string   `json:"notes,omitempty"`

	// Commercial terms
	Package        *string    `json:"package,omitempty"`
	PackagePrice   *float64   `json:"packagePrice,omitempty"`
	IsSubscription bool       `json:"isSubscription"`
	PaymentStatus  string     `json:"paymentStatus"`
	PaymentAmount  *float64   `json:"paymentAmount,omitempty"`
	PaymentDate    *time.Time `json:"paymentDate,omitempty"`

	// Project lifecycle
	ProjectStatus       ProjectStatus `json:"projectStatus"`
	ProjectStartDate    *time.Time    `json:"projectStartDate,omitempty"`
	ProjectDeliveryDate *time.Time    `json:"projectDeliveryDate,omitempty"`

	// Avatar and voice selection
	AvatarID *string `json:"avatarId,omitempty"`
	VoiceID  *string `json:"voiceId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Intake holds the raw material a client submits at signup. The script
// generator turns it into the 30-day pack prompt.
type Intake struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
	RawFAQs         string    `json:"rawFaqs"`
	RawOffers       string    `json:"rawOffers"`
	RawTestimonials string    `json:"rawTestimonials"`
	RawPromos       string    `json:"rawPromos"`
	BrandVoiceNotes string    `json:"brandVoiceNotes"`
	References      string    `json:"references"`
	BrandColors     *string   `json:"brandColors,omitempty"`
	LogoURL         *string   `json:"logoUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ClientAsset is a delivered file (typically a finished video) stored in
// object storage and surfaced to the client through the portal.
type ClientAsset struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"clientId"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"` // MIME type, e.g. "video/mp4"
	SizeBytes  int64     `json:"sizeBytes"`
	StorageKey string    `json:"-"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// IsVideo reports whether the asset is a video file.
func (a *ClientAsset) IsVideo() bool {
	return len(a.FileType) >= 5 && a.FileType[:5] == "video"
}
