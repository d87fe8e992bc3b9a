// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

func TestAggregateEmptyCollection(t *testing.T) {
	stats := Aggregate(nil)
	if stats.Count != 0 || stats.Words != 0 || stats.Minutes != 0 || stats.Approved != 0 || stats.Pending != 0 {
		t.Errorf("empty collection should yield zero stats, got %+v", stats)
	}
}

func TestAggregate(t *testing.T) {
	stored := 120
	scripts := []models.Script{
		{ScriptText: strings.Repeat("word ", 150), Status: models.ScriptStatusApproved}, // 150 words, 60s
		{ScriptText: strings.Repeat("word ", 75), Status: models.ScriptStatusDraft},     // 75 words, 30s
		{ScriptText: "ignored for duration", DurationSeconds: &stored, Status: models.ScriptStatusRevisionRequested},
		{ScriptText: "", Status: models.ScriptStatusExported},
	}

	stats := Aggregate(scripts)
	if stats.Count != 4 {
		t.Errorf("count = %d, want 4", stats.Count)
	}
	if stats.Words != 150+75+3 {
		t.Errorf("words = %d, want %d", stats.Words, 150+75+3)
	}
	// 60 + 30 + 120 + 0 = 210s -> 4 minutes (210+30)/60.
	if stats.Minutes != 4 {
		t.Errorf("minutes = %d, want 4", stats.Minutes)
	}
	if stats.Approved != 1 {
		t.Errorf("approved = %d, want 1", stats.Approved)
	}
	// Pending counts draft and revision_requested; exported is neither.
	if stats.Pending != 2 {
		t.Errorf("pending = %d, want 2", stats.Pending)
	}
}

func TestAggregateBulkApproveConvergence(t *testing.T) {
	// Five drafts bulk-updated to approved must show 5 approved, 0 pending.
	scripts := make([]models.Script, 5)
	for i := range scripts {
		scripts[i] = models.Script{ScriptText: "body", Status: models.ScriptStatusDraft}
	}
	before := Aggregate(scripts)
	if before.Pending != 5 || before.Approved != 0 {
		t.Fatalf("before: %+v", before)
	}

	for i := range scripts {
		scripts[i].Status = models.ScriptStatusApproved
	}
	after := Aggregate(scripts)
	if after.Approved != 5 || after.Pending != 0 {
		t.Errorf("after bulk approve: %+v, want 5 approved / 0 pending", after)
	}
}

func TestPortalSummary(t *testing.T) {
	client := &models.Client{ProjectStatus: models.StatusQAReview}
	scripts := []models.Script{
		{ScriptText: "a", Status: models.ScriptStatusApproved},
		{ScriptText: "b", Status: models.ScriptStatusDraft},
	}
	older := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC)
	videos := []models.ClientAsset{
		{FileName: "intro.mp4", FileType: "video/mp4", UploadedAt: older},
		{FileName: "promo.mp4", FileType: "video/mp4", UploadedAt: newer},
	}

	stats := PortalSummary(client, scripts, videos)
	if stats.TotalVideos != 2 || stats.TotalScripts != 2 {
		t.Errorf("totals: %+v", stats)
	}
	if stats.ScriptsApproved != 1 || stats.ScriptsPending != 1 {
		t.Errorf("approvals: %+v", stats)
	}
	if stats.ProjectProgress != 83 {
		t.Errorf("progress = %d, want 83 for qa-review", stats.ProjectProgress)
	}
	if stats.LastUpload == nil || !stats.LastUpload.Equal(newer) {
		t.Errorf("lastUpload = %v, want %v", stats.LastUpload, newer)
	}
}

func TestPortalSummarySideStateNoProgress(t *testing.T) {
	client := &models.Client{ProjectStatus: models.StatusPaused}
	stats := PortalSummary(client, nil, nil)
	if stats.ProjectProgress != 0 {
		t.Errorf("paused progress = %d, want 0", stats.ProjectProgress)
	}
	if stats.LastUpload != nil {
		t.Errorf("lastUpload = %v, want nil", stats.LastUpload)
	}
}

func TestRecentActivityOrderAndCap(t *testing.T) {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	var persisted []models.PortalActivity
	for i := 0; i < 8; i++ {
		persisted = append(persisted, models.PortalActivity{
			ID:        uuid.New(),
			Type:      models.ActivityStatusChanged,
			Title:     "Project status updated",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	scripts := []models.Script{
		{ID: uuid.New(), Type: models.ScriptTypeFAQ, Title: "Opening hours", Status: models.ScriptStatusApproved, CreatedAt: base.Add(20 * time.Hour)},
		{ID: uuid.New(), Type: models.ScriptTypeTip, Title: "Flossing 101", Status: models.ScriptStatusDraft, CreatedAt: base.Add(19 * time.Hour)},
	}
	videos := []models.ClientAsset{
		{ID: uuid.New(), FileName: "final.mp4", UploadedAt: base.Add(30 * time.Hour)},
	}

	entries := RecentActivity(persisted, scripts, videos)
	if len(entries) != 10 {
		t.Fatalf("expected cap of 10 entries, got %d", len(entries))
	}

	// Newest first.
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Fatalf("entries not sorted newest first at index %d", i)
		}
	}
	if entries[0].Type != string(models.ActivityVideoUploaded) {
		t.Errorf("newest entry type = %q, want video_uploaded", entries[0].Type)
	}
}

func TestRecentActivityScriptWording(t *testing.T) {
	scripts := []models.Script{
		{ID: uuid.New(), Type: models.ScriptTypePromo, Title: "Spring sale", Status: models.ScriptStatusApproved},
		{ID: uuid.New(), Type: models.ScriptTypeFAQ, Title: "Pricing", Status: models.ScriptStatusDraft},
	}

	entries := RecentActivity(nil, scripts, nil)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	byType := map[string]ActivityEntry{}
	for _, e := range entries {
		byType[e.Type] = e
	}
	if e := byType[string(models.ActivityScriptApproved)]; !strings.Contains(e.Description, "ready for video production") {
		t.Errorf("approved description = %q", e.Description)
	}
	if e := byType[string(models.ActivityScriptGenerated)]; !strings.Contains(e.Description, "needs your review") {
		t.Errorf("generated description = %q", e.Description)
	}
}

func TestRecentActivityEmpty(t *testing.T) {
	if entries := RecentActivity(nil, nil, nil); len(entries) != 0 {
		t.Errorf("expected empty feed, got %d entries", len(entries))
	}
}
