// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScriptType categorizes a script within the 30-day content structure.
type ScriptType string

const (
	ScriptTypeFAQ         ScriptType = "FAQ"
	ScriptTypeService     ScriptType = "SERVICE"
	ScriptTypePromo       ScriptType = "PROMO"
	ScriptTypeTestimonial ScriptType = "TESTIMONIAL"
	ScriptTypeTip         ScriptType = "TIP"
	ScriptTypeBrand       ScriptType = "BRAND"
)

// ScriptTypes is the fixed category order used everywhere scripts are
// grouped: exports, the admin detail view, and the portal.
var ScriptTypes = []ScriptType{
	ScriptTypeFAQ,
	ScriptTypeService,
	ScriptTypePromo,
	ScriptTypeTestimonial,
	ScriptTypeTip,
	ScriptTypeBrand,
}

// ScriptTypeLabels maps script types to their display labels.
var ScriptTypeLabels = map[ScriptType]string{
	ScriptTypeFAQ:         "FAQ",
	ScriptTypeService:     "Service/Explainer",
	ScriptTypePromo:       "Promo",
	ScriptTypeTestimonial: "Testimonial",
	ScriptTypeTip:         "Tip/Educational",
	ScriptTypeBrand:       "Brand/Credibility",
}

// ContentStructure defines how many scripts of each type make up a
// standard 30-day pack.
var ContentStructure = map[ScriptType]int{
	ScriptTypeFAQ:         8,
	ScriptTypeService:     8,
	ScriptTypePromo:       4,
	ScriptTypeTestimonial: 4,
	ScriptTypeTip:         4,
	ScriptTypeBrand:       2,
}

// Valid reports whether t is one of the six recognized script types.
func (t ScriptType) Valid() bool {
	for _, v := range ScriptTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ScriptStatus represents a script's position in the review workflow.
type ScriptStatus string

const (
	ScriptStatusDraft             ScriptStatus = "draft"
	ScriptStatusApproved          ScriptStatus = "approved"
	ScriptStatusRevisionRequested ScriptStatus = "revision_requested"
	ScriptStatusExported          ScriptStatus = "exported"
)

// ScriptStatuses lists every valid script status.
var ScriptStatuses = []ScriptStatus{
	ScriptStatusDraft,
	ScriptStatusApproved,
	ScriptStatusRevisionRequested,
	ScriptStatusExported,
}

// Valid reports whether s is one of the four recognized script statuses.
func (s ScriptStatus) Valid() bool {
	for _, v := range ScriptStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// speakingWordsPerMinute is the rate assumed when estimating how long a
// script takes to speak on camera.
const speakingWordsPerMinute = 150

// Script is one generated video script belonging to exactly one client.
type Script struct {
	ID              uuid.UUID    `json:"id"`
	ClientID        uuid.UUID    `json:"clientId"`
	Type            ScriptType   `json:"type"`
	Title           string       `json:"title"`
	ScriptText      string       `json:"scriptText"`
	DurationSeconds *int         `json:"durationSeconds,omitempty"`
	Status          ScriptStatus `json:"status"`
	Notes           *string      `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// WordCount returns the number of whitespace-separated words in the
// script body. An empty or all-whitespace body counts as zero.
func (s *Script) WordCount() int {
	return CountWords(s.ScriptText)
}

// Duration returns the stored duration when present, otherwise an
// estimate derived from the script text.
func (s *Script) Duration() int {
	if s.DurationSeconds != nil {
		return *s.DurationSeconds
	}
	return EstimateDuration(s.ScriptText)
}

// CountWords returns the whitespace-separated word count of text.
func CountWords(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// EstimateDuration estimates the spoken duration of text in seconds,
// assuming an average speaking rate of 150 words per minute. The estimate
// is deterministic: the same text always yields the same value.
func EstimateDuration(text string) int {
	words := CountWords(text)
	return int(math.Round(float64(words) / speakingWordsPerMinute * 60))
}

// FormatDuration renders a duration in seconds as a compact display
// string: "~42 sec" under a minute, "~1:05" from one minute up.
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("~%d sec", seconds)
	}
	return fmt.Sprintf("~%d:%02d", seconds/60, seconds%60)
}
