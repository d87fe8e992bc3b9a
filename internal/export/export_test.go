// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

func testClient() *models.Client {
	return &models.Client{
		ID:            uuid.New(),
		BusinessName:  "Acme Dental",
		ContactName:   "Dana Reyes",
		Email:         "dana@acmedental.test",
		Niche:         "Dentist / Dental Practice",
		Tone:          "Warm and friendly",
		PaymentStatus: "paid",
		ProjectStatus: models.StatusScriptwriting,
		CreatedAt:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

// fullPack builds 30 scripts with 5 per category, titled so each title is
// unique and traceable to its category.
func fullPack() []models.Script {
	var scripts []models.Script
	for _, st := range models.ScriptTypes {
		for i := 1; i <= 5; i++ {
			scripts = append(scripts, models.Script{
				ID:         uuid.New(),
				Type:       st,
				Title:      fmt.Sprintf("%s script %d", st, i),
				ScriptText: "Hey there! This is a short sample script body for testing exports.",
				Status:     models.ScriptStatusDraft,
			})
		}
	}
	return scripts
}

func TestTextFixedCategoryOrder(t *testing.T) {
	out := Text(testClient(), fullPack(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	headers := []string{
		"--- FAQ SCRIPTS (5) ---",
		"--- SERVICE/EXPLAINER SCRIPTS (5) ---",
		"--- PROMO SCRIPTS (5) ---",
		"--- TESTIMONIAL SCRIPTS (5) ---",
		"--- TIP/EDUCATIONAL SCRIPTS (5) ---",
		"--- BRAND/CREDIBILITY SCRIPTS (5) ---",
	}

	pos := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		if idx == -1 {
			t.Fatalf("missing header %q", h)
		}
		if idx < pos {
			t.Errorf("header %q out of order", h)
		}
		pos = idx
	}

	// Exactly 6 headers, each followed by exactly 5 numbered entries.
	if got := strings.Count(out, "--- "); got != 6 {
		t.Errorf("expected 6 group headers, got %d", got)
	}
	for i := 1; i <= 5; i++ {
		marker := fmt.Sprintf("[%d] ", i)
		if got := strings.Count(out, marker); got != 6 {
			t.Errorf("expected marker %q six times (once per group), got %d", marker, got)
		}
	}
	if strings.Contains(out, "[6] ") {
		t.Error("unexpected sixth entry within a group")
	}
}

func TestTextBanner(t *testing.T) {
	out := Text(testClient(), nil, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	if !strings.Contains(out, "ACME DENTAL - 30-Day Script Pack") {
		t.Errorf("banner missing upper-cased business name:\n%s", out)
	}
	if !strings.Contains(out, "Generated: March 1, 2026") {
		t.Errorf("banner missing generated date:\n%s", out)
	}
}

func TestTextOmitsEmptyGroups(t *testing.T) {
	scripts := []models.Script{
		{Type: models.ScriptTypePromo, Title: "Spring offer", ScriptText: "Limited time only."},
	}
	out := Text(testClient(), scripts, time.Now())

	if !strings.Contains(out, "--- PROMO SCRIPTS (1) ---") {
		t.Error("expected promo header")
	}
	for _, absent := range []string{"FAQ SCRIPTS", "SERVICE/EXPLAINER", "TESTIMONIAL", "TIP/EDUCATIONAL", "BRAND/CREDIBILITY"} {
		if strings.Contains(out, absent) {
			t.Errorf("empty group %q should be omitted", absent)
		}
	}
}

func TestTextDurationLine(t *testing.T) {
	stored := 42
	scripts := []models.Script{
		{Type: models.ScriptTypeFAQ, Title: "Q1", ScriptText: "short body", DurationSeconds: &stored},
	}
	out := Text(testClient(), scripts, time.Now())
	if !strings.Contains(out, "Duration: ~42 seconds") {
		t.Errorf("stored duration not used:\n%s", out)
	}
}

func TestJSONRoundTripConsistencyWithText(t *testing.T) {
	client := testClient()
	scripts := fullPack()
	now := time.Now()

	text := Text(client, scripts, now)
	raw, err := JSON(client, scripts, now)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc struct {
		Client struct {
			BusinessName string `json:"businessName"`
		} `json:"client"`
		Scripts []struct {
			Title string `json:"title"`
		} `json:"scripts"`
		ScriptsByType map[string][]struct {
			Title string `json:"title"`
		} `json:"scriptsByType"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}

	// Same total count across both formats.
	if len(doc.Scripts) != len(scripts) {
		t.Errorf("json scripts = %d, want %d", len(doc.Scripts), len(scripts))
	}

	// Same set of titles in both formats.
	for _, s := range doc.Scripts {
		if !strings.Contains(text, s.Title) {
			t.Errorf("title %q present in JSON but missing from text export", s.Title)
		}
	}

	// Breakdown mirrors all six fixed categories.
	if len(doc.ScriptsByType) != 6 {
		t.Errorf("scriptsByType has %d categories, want 6", len(doc.ScriptsByType))
	}
	for _, st := range models.ScriptTypes {
		if got := len(doc.ScriptsByType[string(st)]); got != 5 {
			t.Errorf("scriptsByType[%s] = %d entries, want 5", st, got)
		}
	}
}

func TestJSONEmptyCollection(t *testing.T) {
	raw, err := JSON(testClient(), nil, time.Now())
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc struct {
		Scripts       []any            `json:"scripts"`
		ScriptsByType map[string][]any `json:"scriptsByType"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Scripts) != 0 {
		t.Errorf("scripts = %d, want 0", len(doc.Scripts))
	}
	// All six categories present even when empty.
	if len(doc.ScriptsByType) != 6 {
		t.Errorf("scriptsByType has %d categories, want 6", len(doc.ScriptsByType))
	}
}

func TestClientsCSV(t *testing.T) {
	pkg := "Growth"
	clients := []models.Client{
		*testClient(),
		{
			BusinessName:  "Peak, Fitness",
			ContactName:   "Jo Park",
			Email:         "jo@peak.test",
			Niche:         "Fitness / Personal Training",
			Tone:          "High-energy and enthusiastic",
			Package:       &pkg,
			PaymentStatus: "pending",
			ProjectStatus: models.StatusDiscovery,
			CreatedAt:     time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	raw, err := ClientsCSV(clients)
	if err != nil {
		t.Fatalf("ClientsCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Business Name" {
		t.Errorf("header = %v", rows[0])
	}
	// Comma inside a field survives the round trip.
	if rows[2][0] != "Peak, Fitness" {
		t.Errorf("business name = %q, want %q", rows[2][0], "Peak, Fitness")
	}
	if rows[2][5] != "Growth" {
		t.Errorf("package = %q, want Growth", rows[2][5])
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		business string
		suffix   string
		want     string
	}{
		{"Acme Dental", "_scripts.txt", "Acme_Dental_scripts.txt"},
		{"  Spaced   Out  ", "_scripts.json", "Spaced_Out_scripts.json"},
		{"", "_Scripts.pdf", "client_Scripts.pdf"},
	}
	for _, tt := range tests {
		if got := Filename(tt.business, tt.suffix); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.business, got, tt.want)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	stored := 90
	scripts := []models.Script{
		{ScriptText: strings.Repeat("word ", 150)}, // estimated 60s
		{DurationSeconds: &stored},                 // stored 90s
	}
	seconds, minutes := TotalDuration(scripts)
	if seconds != 150 {
		t.Errorf("seconds = %d, want 150", seconds)
	}
	if minutes != 3 {
		t.Errorf("minutes = %d, want 3 (150s rounds up)", minutes)
	}

	seconds, minutes = TotalDuration(nil)
	if seconds != 0 || minutes != 0 {
		t.Errorf("empty collection: got %d/%d, want 0/0", seconds, minutes)
	}
}

func TestHTMLContainsAllTitles(t *testing.T) {
	scripts := fullPack()
	out := HTML(testClient(), scripts, time.Now())

	for _, s := range scripts {
		if !strings.Contains(out, s.Title) {
			t.Errorf("HTML missing title %q", s.Title)
		}
	}
	if !strings.Contains(out, "Total Scripts: 30") {
		t.Error("HTML missing total script count")
	}
}

func TestHTMLEscapesClientFields(t *testing.T) {
	client := testClient()
	client.BusinessName = `Bob's <Barber> & Co`
	out := HTML(client, nil, time.Now())
	if strings.Contains(out, "<Barber>") {
		t.Error("client-supplied markup not escaped")
	}
	if !strings.Contains(out, "&lt;Barber&gt;") {
		t.Error("expected escaped business name")
	}
}
