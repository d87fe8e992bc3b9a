// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package export serializes a client's script collection into the
// deliverable formats: plain text, JSON, and CSV. PDF rendering is not
// done here; it is delegated to the external renderer client, which this
// package only feeds an HTML rendition.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"brandvoice/internal/models"
)

// textGroupLabels are the section headers used in the plain-text export,
// in the fixed category order.
var textGroupLabels = map[models.ScriptType]string{
	models.ScriptTypeFAQ:         "FAQ SCRIPTS",
	models.ScriptTypeService:     "SERVICE/EXPLAINER SCRIPTS",
	models.ScriptTypePromo:       "PROMO SCRIPTS",
	models.ScriptTypeTestimonial: "TESTIMONIAL SCRIPTS",
	models.ScriptTypeTip:         "TIP/EDUCATIONAL SCRIPTS",
	models.ScriptTypeBrand:       "BRAND/CREDIBILITY SCRIPTS",
}

// GroupByType buckets scripts into the six fixed categories, preserving
// input order within each bucket. Scripts with an unrecognized type are
// dropped rather than exported under a wrong header.
func GroupByType(scripts []models.Script) map[models.ScriptType][]models.Script {
	groups := make(map[models.ScriptType][]models.Script, len(models.ScriptTypes))
	for _, st := range models.ScriptTypes {
		groups[st] = nil
	}
	for _, s := range scripts {
		if s.Type.Valid() {
			groups[s.Type] = append(groups[s.Type], s)
		}
	}
	return groups
}

// Text renders the script pack as plain text: a banner header, then each
// non-empty category in fixed order with a labeled header, 1-based
// numbered entries, full body text and a duration line. Empty categories
// are omitted entirely.
func Text(client *models.Client, scripts []models.Script, now time.Time) string {
	var b strings.Builder

	date := now.Format("January 2, 2006")
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "%s - 30-Day Script Pack\n", strings.ToUpper(client.BusinessName))
	fmt.Fprintf(&b, "Generated: %s\n", date)
	b.WriteString("================================\n\n")

	groups := GroupByType(scripts)
	for _, st := range models.ScriptTypes {
		group := groups[st]
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "--- %s (%d) ---\n\n", textGroupLabels[st], len(group))
		for i, s := range group {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, s.Title)
			b.WriteString(s.ScriptText)
			b.WriteString("\n")
			fmt.Fprintf(&b, "Duration: ~%d seconds\n\n", s.Duration())
		}
		b.WriteString("\n")
	}

	return b.String()
}

// jsonClient is the client identity block embedded in the JSON export.
type jsonClient struct {
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Niche        string `json:"niche"`
	Tone         string `json:"tone"`
}

// jsonScript is the flat per-script record in the JSON export.
type jsonScript struct {
	Type            models.ScriptType   `json:"type"`
	Title           string              `json:"title"`
	ScriptText      string              `json:"scriptText"`
	DurationSeconds int                 `json:"durationSeconds"`
	Status          models.ScriptStatus `json:"status"`
}

// jsonTypeEntry is one script in the per-type breakdown.
type jsonTypeEntry struct {
	Title           string `json:"title"`
	ScriptText      string `json:"scriptText"`
	DurationSeconds int    `json:"durationSeconds"`
}

// jsonExport is the top-level JSON export document.
type jsonExport struct {
	Client        jsonClient                             `json:"client"`
	ExportedAt    time.Time                              `json:"exportedAt"`
	Scripts       []jsonScript                           `json:"scripts"`
	ScriptsByType map[models.ScriptType][]jsonTypeEntry `json:"scriptsByType"`
}

// JSON renders the script pack as an indented JSON document: client
// identity, export timestamp, the flat script list, and a redundant
// per-type breakdown covering all six categories (empty ones as empty
// arrays).
func JSON(client *models.Client, scripts []models.Script, now time.Time) ([]byte, error) {
	doc := jsonExport{
		Client: jsonClient{
			BusinessName: client.BusinessName,
			ContactName:  client.ContactName,
			Email:        client.Email,
			Niche:        client.Niche,
			Tone:         client.Tone,
		},
		ExportedAt:    now.UTC(),
		Scripts:       make([]jsonScript, 0, len(scripts)),
		ScriptsByType: make(map[models.ScriptType][]jsonTypeEntry, len(models.ScriptTypes)),
	}

	for _, s := range scripts {
		doc.Scripts = append(doc.Scripts, jsonScript{
			Type:            s.Type,
			Title:           s.Title,
			ScriptText:      s.ScriptText,
			DurationSeconds: s.Duration(),
			Status:          s.Status,
		})
	}

	groups := GroupByType(scripts)
	for _, st := range models.ScriptTypes {
		entries := make([]jsonTypeEntry, 0, len(groups[st]))
		for _, s := range groups[st] {
			entries = append(entries, jsonTypeEntry{
				Title:           s.Title,
				ScriptText:      s.ScriptText,
				DurationSeconds: s.Duration(),
			})
		}
		doc.ScriptsByType[st] = entries
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal script export: %w", err)
	}
	return out, nil
}

// ClientsCSV renders the admin client list as CSV: one row per client
// with identity, package, payment and project-status columns.
func ClientsCSV(clients []models.Client) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"Business Name", "Contact Name", "Email", "Niche", "Tone",
		"Package", "Payment Status", "Project Status", "Created",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range clients {
		pkg := ""
		if c.Package != nil {
			pkg = *c.Package
		}
		row := []string{
			c.BusinessName, c.ContactName, c.Email, c.Niche, c.Tone,
			pkg, c.PaymentStatus, string(c.ProjectStatus),
			c.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return []byte(b.String()), nil
}

// Filename builds a download filename from the business name by replacing
// whitespace runs with underscores: "Acme Dental" -> "Acme_Dental_scripts.txt".
func Filename(businessName, suffix string) string {
	base := strings.Join(strings.Fields(businessName), "_")
	if base == "" {
		base = "client"
	}
	return base + suffix
}

// TotalDuration sums per-script durations (stored or estimated) and
// returns whole seconds plus the total rounded to the nearest minute.
func TotalDuration(scripts []models.Script) (seconds, minutes int) {
	for _, s := range scripts {
		seconds += s.Duration()
	}
	minutes = (seconds + 30) / 60
	return seconds, minutes
}

// HTML renders the script pack as a standalone HTML document for the
// external PDF renderer: a cover block with client identity and totals,
// then each non-empty category with numbered scripts. All layout beyond
// this semantic structure belongs to the renderer.
func HTML(client *models.Client, scripts []models.Script, now time.Time) string {
	var b strings.Builder

	_, minutes := TotalDuration(scripts)

	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(client.BusinessName))
	b.WriteString(" Scripts</title></head><body>\n")

	b.WriteString("<h1>" + html.EscapeString(client.BusinessName) + "</h1>\n")
	b.WriteString("<h2>30-Day Video Content Scripts</h2>\n")
	fmt.Fprintf(&b, "<p>Generated: %s<br>Total Scripts: %d<br>Total Duration: ~%d minutes</p>\n",
		now.Format("January 2, 2006"), len(scripts), minutes)
	fmt.Fprintf(&b, "<p>Contact: %s<br>Email: %s<br>Niche: %s<br>Tone: %s</p>\n",
		html.EscapeString(client.ContactName), html.EscapeString(client.Email),
		html.EscapeString(client.Niche), html.EscapeString(client.Tone))

	groups := GroupByType(scripts)
	for _, st := range models.ScriptTypes {
		group := groups[st]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<h2>%s Scripts (%d)</h2>\n", html.EscapeString(models.ScriptTypeLabels[st]), len(group))
		for i, s := range group {
			fmt.Fprintf(&b, "<h3>%d. %s</h3>\n", i+1, html.EscapeString(s.Title))
			fmt.Fprintf(&b, "<p><em>Status: %s | Duration: %s</em></p>\n",
				html.EscapeString(capitalize(string(s.Status))), models.FormatDuration(s.Duration()))
			b.WriteString("<p>" + html.EscapeString(s.ScriptText) + "</p>\n")
		}
	}

	b.WriteString("</body></html>\n")
	return b.String()
}

// capitalize upper-cases the first byte of an ASCII status string.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
