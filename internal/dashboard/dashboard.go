// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package dashboard computes the summary statistics shown on the admin
// and portal dashboards. Everything here is a pure, total function over
// the input collections: empty input yields zero values, never an error.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"brandvoice/internal/models"
	"brandvoice/internal/workflow"
)

// ScriptStats summarizes a client's script collection.
type ScriptStats struct {
	Count    int `json:"count"`
	Words    int `json:"words"`
	Minutes  int `json:"minutes"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}

// Aggregate computes script totals: count, summed word count, summed
// duration estimates rounded to the nearest minute, approved count, and
// pending count (draft or revision_requested).
func Aggregate(scripts []models.Script) ScriptStats {
	var stats ScriptStats
	seconds := 0

	for _, s := range scripts {
		stats.Count++
		stats.Words += s.WordCount()
		seconds += s.Duration()

		switch s.Status {
		case models.ScriptStatusApproved:
			stats.Approved++
		case models.ScriptStatusDraft, models.ScriptStatusRevisionRequested:
			stats.Pending++
		}
	}

	stats.Minutes = (seconds + 30) / 60
	return stats
}

// PortalStats is the stats block of the portal dashboard payload.
type PortalStats struct {
	TotalVideos     int        `json:"totalVideos"`
	TotalScripts    int        `json:"totalScripts"`
	ScriptsApproved int        `json:"scriptsApproved"`
	ScriptsPending  int        `json:"scriptsPending"`
	LastUpload      *time.Time `json:"lastUpload"`
	ProjectProgress int        `json:"projectProgress"`
}

// PortalSummary computes the portal stats block from the primary client's
// status, the combined script collection, and uploaded video assets.
// Side states (paused, disputed) report zero progress here; the status
// panel renders them separately.
func PortalSummary(primary *models.Client, scripts []models.Script, videos []models.ClientAsset) PortalStats {
	agg := Aggregate(scripts)

	stats := PortalStats{
		TotalVideos:     len(videos),
		TotalScripts:    agg.Count,
		ScriptsApproved: agg.Approved,
		ScriptsPending:  agg.Pending,
	}

	if primary != nil {
		if pct, ok := workflow.Progress(primary.ProjectStatus); ok {
			stats.ProjectProgress = pct
		}
	}

	for i := range videos {
		if stats.LastUpload == nil || videos[i].UploadedAt.After(*stats.LastUpload) {
			t := videos[i].UploadedAt
			stats.LastUpload = &t
		}
	}

	return stats
}

// ActivityEntry is one row of the synthesized portal activity feed.
type ActivityEntry struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// maxActivityEntries caps the portal activity feed.
const maxActivityEntries = 10

// RecentActivity merges persisted activity entries with entries
// synthesized from the newest videos and scripts, sorted newest first and
// capped at ten rows.
func RecentActivity(persisted []models.PortalActivity, scripts []models.Script, videos []models.ClientAsset) []ActivityEntry {
	entries := make([]ActivityEntry, 0, len(persisted)+6)

	for _, a := range persisted {
		entries = append(entries, ActivityEntry{
			ID:          "activity-" + a.ID.String(),
			Type:        string(a.Type),
			Title:       a.Title,
			Description: a.Description,
			Timestamp:   a.CreatedAt,
		})
	}

	for i, v := range videos {
		if i >= 3 {
			break
		}
		entries = append(entries, ActivityEntry{
			ID:          "video-" + v.ID.String(),
			Type:        string(models.ActivityVideoUploaded),
			Title:       "New video uploaded",
			Description: fmt.Sprintf("%s was added to your library", v.FileName),
			Timestamp:   v.UploadedAt,
		})
	}

	for i, s := range scripts {
		if i >= 3 {
			break
		}
		if s.Status == models.ScriptStatusApproved {
			entries = append(entries, ActivityEntry{
				ID:          "script-approved-" + s.ID.String(),
				Type:        string(models.ActivityScriptApproved),
				Title:       "Script approved",
				Description: fmt.Sprintf("%q is ready for video production", s.Title),
				Timestamp:   s.CreatedAt,
			})
		} else {
			entries = append(entries, ActivityEntry{
				ID:          "script-" + s.ID.String(),
				Type:        string(models.ActivityScriptGenerated),
				Title:       "Script generated",
				Description: fmt.Sprintf("%s script %q needs your review", s.Type, s.Title),
				Timestamp:   s.CreatedAt,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if len(entries) > maxActivityEntries {
		entries = entries[:maxActivityEntries]
	}
	return entries
}
