// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"brandvoice/internal/models"
)

// packSystemPrompt sets the model's role for pack generation. The JSON-only
// instruction is repeated in the user prompt because not every provider
// supports a structured response format.
const packSystemPrompt = "You are an expert short-form video scriptwriter for TikTok, Instagram Reels, and YouTube Shorts. Always respond with valid JSON only, no markdown formatting."

// GeneratedScript is one script as returned by the LLM.
type GeneratedScript struct {
	Title  string `json:"title"`
	Script string `json:"script"`
}

// PackResponse is the full 30-script pack structure the LLM must return.
type PackResponse struct {
	FAQs         []GeneratedScript `json:"faqs"`
	Services     []GeneratedScript `json:"services"`
	Promos       []GeneratedScript `json:"promos"`
	Testimonials []GeneratedScript `json:"testimonials"`
	Tips         []GeneratedScript `json:"tips"`
	Brand        []GeneratedScript `json:"brand"`
}

// BuildPackPrompt assembles the system and user prompts for generating a
// client's 30-day script pack from their profile and intake material.
func BuildPackPrompt(client *models.Client, intake *models.Intake) (system, user string) {
	var b strings.Builder

	b.WriteString("I will give you details about a business and its services. Your job is to generate 30 short video scripts that this business can use with an AI video spokesperson.\n\n")

	b.WriteString("Business info:\n")
	fmt.Fprintf(&b, "- Business name: %s\n", client.BusinessName)
	fmt.Fprintf(&b, "- Niche: %s\n", client.Niche)
	fmt.Fprintf(&b, "- Tone of voice: %s\n", client.Tone)
	fmt.Fprintf(&b, "- Main goals: %s\n", client.Goals)
	fmt.Fprintf(&b, "- Brand voice notes: %s\n", intake.BrandVoiceNotes)
	if client.Website != nil && *client.Website != "" {
		fmt.Fprintf(&b, "- Website: %s\n", *client.Website)
	}

	writeIntakeSection(&b, "Raw FAQs (from client)", intake.RawFAQs, "No FAQs provided")
	writeIntakeSection(&b, "Raw offers/services (from client)", intake.RawOffers, "No offers provided")
	writeIntakeSection(&b, "Raw testimonials (from client)", intake.RawTestimonials, "No testimonials provided")
	writeIntakeSection(&b, "Raw promos or special offers", intake.RawPromos, "No promos provided")
	writeIntakeSection(&b, "Additional references", intake.References, "No references provided")

	b.WriteString("\nTask:\n")
	b.WriteString("Generate exactly 30 short-form video scripts with this structure:\n")
	b.WriteString("- 8 FAQ scripts (address common questions customers might have)\n")
	b.WriteString("- 8 Service/Explainer scripts (highlight what the business offers and how it helps)\n")
	b.WriteString("- 4 Promo scripts (promote offers, discounts, or limited-time deals)\n")
	b.WriteString("- 4 Testimonial-style scripts (spoken by the AI spokesperson referencing real customer outcomes - use the testimonials provided as inspiration)\n")
	b.WriteString("- 4 Tip/Educational scripts (provide value and position the business as an expert)\n")
	b.WriteString("- 2 Brand/Credibility scripts (build trust, share credentials, highlight experience)\n")

	b.WriteString("\nRules:\n")
	b.WriteString("- Each script should be roughly 15-45 seconds when spoken (approximately 40-120 words).\n")
	fmt.Fprintf(&b, "- Use a %s tone that matches the %s niche.\n", client.Tone, client.Niche)
	b.WriteString("- Do not mention TikTok/Reels explicitly unless relevant; these should work on any social platform.\n")
	b.WriteString("- Always write in the first person as the business or its spokesperson.\n")
	b.WriteString("- Avoid jargon. Make it sound like someone talking naturally on camera.\n")
	b.WriteString("- Include a clear hook in the first line to grab attention.\n")
	b.WriteString("- End each script with a soft call-to-action when appropriate.\n")
	b.WriteString("- Use a short, catchy title for each script.\n")

	b.WriteString("\nOutput format:\n")
	b.WriteString("Return ONLY valid JSON with this exact structure (no markdown, no code blocks, just the JSON):\n")
	b.WriteString(`{"faqs": [{"title": "...", "script": "..."}] (8 items), "services": [...] (8 items), "promos": [...] (4 items), "testimonials": [...] (4 items), "tips": [...] (4 items), "brand": [...] (2 items)}`)
	b.WriteString("\n")

	return packSystemPrompt, b.String()
}

func writeIntakeSection(b *strings.Builder, heading, content, fallback string) {
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString(":\n")
	if strings.TrimSpace(content) == "" {
		content = fallback
	}
	b.WriteString(content)
	b.WriteString("\n")
}

// unmarshalLoose decodes LLM output into v. Markdown code fences are
// stripped when present, and as a last resort the outermost JSON object is
// extracted from surrounding prose.
func unmarshalLoose(content string, v any) error {
	raw := strings.TrimSpace(content)

	if strings.HasPrefix(raw, "```json") {
		raw = strings.TrimPrefix(raw, "```json")
	} else if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start == -1 || end <= start {
			return fmt.Errorf("ai: response is not valid JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(content[start:end+1]), v); err != nil {
			return fmt.Errorf("ai: response is not valid JSON: %w", err)
		}
	}
	return nil
}

// ParsePackResponse parses and validates LLM output into a PackResponse.
// The category counts must match the standard pack structure exactly.
func ParsePackResponse(content string) (*PackResponse, error) {
	var pack PackResponse
	if err := unmarshalLoose(content, &pack); err != nil {
		return nil, err
	}
	if err := pack.validate(); err != nil {
		return nil, err
	}
	return &pack, nil
}

func (p *PackResponse) validate() error {
	for _, group := range []struct {
		typ     models.ScriptType
		scripts []GeneratedScript
	}{
		{models.ScriptTypeFAQ, p.FAQs},
		{models.ScriptTypeService, p.Services},
		{models.ScriptTypePromo, p.Promos},
		{models.ScriptTypeTestimonial, p.Testimonials},
		{models.ScriptTypeTip, p.Tips},
		{models.ScriptTypeBrand, p.Brand},
	} {
		want := models.ContentStructure[group.typ]
		if len(group.scripts) != want {
			return fmt.Errorf("ai: expected %d %s scripts, got %d", want, group.typ, len(group.scripts))
		}
		for i, s := range group.scripts {
			if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Script) == "" {
				return fmt.Errorf("ai: %s script %d is missing a title or body", group.typ, i+1)
			}
		}
	}
	return nil
}

// ToScripts converts the pack into script rows for a client, in the fixed
// category order. Durations are estimated from the script text.
func (p *PackResponse) ToScripts(clientID uuid.UUID) []models.Script {
	byType := map[models.ScriptType][]GeneratedScript{
		models.ScriptTypeFAQ:         p.FAQs,
		models.ScriptTypeService:     p.Services,
		models.ScriptTypePromo:       p.Promos,
		models.ScriptTypeTestimonial: p.Testimonials,
		models.ScriptTypeTip:         p.Tips,
		models.ScriptTypeBrand:       p.Brand,
	}

	var scripts []models.Script
	for _, typ := range models.ScriptTypes {
		for _, g := range byType[typ] {
			duration := models.EstimateDuration(g.Script)
			scripts = append(scripts, models.Script{
				ClientID:        clientID,
				Type:            typ,
				Title:           g.Title,
				ScriptText:      g.Script,
				DurationSeconds: &duration,
				Status:          models.ScriptStatusDraft,
			})
		}
	}
	return scripts
}
