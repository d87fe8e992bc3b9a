// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package ai

import (
	"fmt"
	"strings"

	"brandvoice/internal/models"
)

// emailSystemPrompt sets the model's role for cold-email generation.
const emailSystemPrompt = "You are an expert B2B cold email copywriter specializing in AI and video marketing. Always respond with valid JSON only, no markdown formatting."

// adSystemPrompt sets the model's role for ad-copy generation.
const adSystemPrompt = "You are an expert Facebook ads copywriter. Always respond with valid JSON only, no markdown formatting."

// emailSendDays is the fixed cadence of the 5-email outreach sequence.
var emailSendDays = []int{1, 3, 5, 7, 10}

// SequenceEmail is one email in the cold outreach sequence.
type SequenceEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	SendDay int    `json:"sendDay"`
}

// EmailSequenceResponse is the 5-email sequence the LLM must return.
type EmailSequenceResponse struct {
	Emails []SequenceEmail `json:"emails"`
}

// adTypes are the four ad variations, in the order the prompt requests them.
var adTypes = []string{"Awareness", "Engagement", "Lead Gen", "Retargeting"}

// AdVariation is one Facebook ad copy variation.
type AdVariation struct {
	Type         string `json:"type"`
	Headline     string `json:"headline"`
	PrimaryText  string `json:"primaryText"`
	Description  string `json:"description"`
	CallToAction string `json:"callToAction"`
}

// AdResponse is the 4-variation ad set the LLM must return.
type AdResponse struct {
	Ads []AdVariation `json:"ads"`
}

// BuildEmailPrompt assembles the system and user prompts for generating a
// client's 5-email cold outreach sequence.
func BuildEmailPrompt(client *models.Client) (system, user string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a 5-email cold outreach sequence for %s, a business in the %s industry.\n\n", client.BusinessName, client.Niche)

	b.WriteString("Business Context:\n")
	fmt.Fprintf(&b, "- Business Name: %s\n", client.BusinessName)
	fmt.Fprintf(&b, "- Niche: %s\n", client.Niche)
	fmt.Fprintf(&b, "- Brand Tone: %s\n", client.Tone)
	fmt.Fprintf(&b, "- Goals: %s\n", client.Goals)

	b.WriteString("\nThe client has just created professional AI spokesperson videos (short-form video content featuring an AI-generated spokesperson) and wants to use them for marketing and client engagement.\n")

	b.WriteString("\nGenerate 5 emails with the following purposes:\n")
	b.WriteString("1. Introduction (Day 1) - Introduce the business and hint at the AI spokesperson content\n")
	b.WriteString("2. Value Proposition (Day 3) - Explain how AI spokesperson videos solve a problem for the prospect\n")
	b.WriteString("3. Social Proof (Day 5) - Share success stories or testimonials related to video marketing\n")
	b.WriteString("4. Urgency/Scarcity (Day 7) - Create urgency with limited-time offer or exclusive opportunity\n")
	b.WriteString("5. Final Follow-up (Day 10) - Last chance to engage, offer to answer questions\n")

	b.WriteString("\nEmail Requirements:\n")
	fmt.Fprintf(&b, "- Match the brand tone: %s\n", client.Tone)
	b.WriteString("- Keep emails concise (150-250 words max)\n")
	b.WriteString("- Include clear CTAs (call-to-action)\n")
	b.WriteString("- Reference AI spokesperson videos naturally\n")
	b.WriteString("- Be appropriate for cold B2B outreach\n")
	b.WriteString("- Use personalization placeholders like {{firstName}} and {{companyName}} where appropriate\n")
	b.WriteString("- Subject lines should be 40-60 characters\n")
	b.WriteString("- Avoid spam trigger words\n")

	b.WriteString("\nReturn the response as a JSON object with this exact structure:\n")
	b.WriteString(`{"emails": [{"subject": "Email subject line here", "body": "Email body text here", "sendDay": 1}]}`)
	b.WriteString("\n\nThe emails array should contain exactly 5 email objects with sendDay values of 1, 3, 5, 7, and 10.")

	return emailSystemPrompt, b.String()
}

// BuildAdPrompt assembles the system and user prompts for generating a
// client's 4 Facebook ad copy variations.
func BuildAdPrompt(client *models.Client) (system, user string) {
	var b strings.Builder

	b.WriteString("Generate 4 Facebook ad copy variations to promote AI spokesperson video services for this client:\n\n")
	fmt.Fprintf(&b, "Business: %s\n", client.BusinessName)
	fmt.Fprintf(&b, "Niche: %s\n", client.Niche)
	fmt.Fprintf(&b, "Brand Tone: %s\n", client.Tone)
	fmt.Fprintf(&b, "Goals: %s\n", client.Goals)

	b.WriteString("\nCreate 4 ad variations with these exact types:\n")
	b.WriteString("1. Awareness (building brand awareness)\n")
	b.WriteString("2. Engagement (encouraging interaction)\n")
	b.WriteString("3. Lead Gen (capturing leads)\n")
	b.WriteString("4. Retargeting (re-engaging past visitors)\n")

	b.WriteString("\nEach ad must follow Facebook's best practices and character limits:\n")
	b.WriteString("- headline: Maximum 40 characters (must be punchy and attention-grabbing)\n")
	b.WriteString("- primaryText: Maximum 125 characters (main ad copy, include value proposition)\n")
	b.WriteString("- description: Maximum 30 characters (supporting tagline)\n")
	b.WriteString(`- callToAction: One of these exact options: "Learn More", "Sign Up", "Watch Video", "Get Started", "Contact Us", "Shop Now", "Download", "Watch Demo"` + "\n")

	b.WriteString("\nThe ads should:\n")
	b.WriteString("- Promote the value of the client's AI spokesperson video content\n")
	fmt.Fprintf(&b, "- Match the client's brand tone (%s)\n", client.Tone)
	fmt.Fprintf(&b, "- Be appropriate for their niche (%s)\n", client.Niche)
	b.WriteString("- Include engaging hooks that stop the scroll\n")
	b.WriteString("- Focus on benefits and transformations\n")
	b.WriteString("- Use social proof or urgency where appropriate\n")

	b.WriteString("\nIMPORTANT: Respond with ONLY a JSON object in this exact format (no other text):\n")
	b.WriteString(`{"ads": [{"type": "Awareness", "headline": "...", "primaryText": "...", "description": "...", "callToAction": "..."}, {"type": "Engagement", ...}, {"type": "Lead Gen", ...}, {"type": "Retargeting", ...}]}`)
	b.WriteString("\n\nEnsure all character limits are strictly followed.")

	return adSystemPrompt, b.String()
}

// ParseEmailResponse parses and validates LLM output into an
// EmailSequenceResponse. The sequence must contain exactly 5 complete
// emails on the 1/3/5/7/10 cadence.
func ParseEmailResponse(content string) (*EmailSequenceResponse, error) {
	var seq EmailSequenceResponse
	if err := unmarshalLoose(content, &seq); err != nil {
		return nil, err
	}
	if len(seq.Emails) != len(emailSendDays) {
		return nil, fmt.Errorf("ai: expected %d emails, got %d", len(emailSendDays), len(seq.Emails))
	}
	for i, e := range seq.Emails {
		if strings.TrimSpace(e.Subject) == "" || strings.TrimSpace(e.Body) == "" {
			return nil, fmt.Errorf("ai: email %d is missing a subject or body", i+1)
		}
		if e.SendDay != emailSendDays[i] {
			return nil, fmt.Errorf("ai: email %d has sendDay %d, want %d", i+1, e.SendDay, emailSendDays[i])
		}
	}
	return &seq, nil
}

// ParseAdResponse parses and validates LLM output into an AdResponse. The
// set must contain exactly one complete variation per ad type, in order.
func ParseAdResponse(content string) (*AdResponse, error) {
	var resp AdResponse
	if err := unmarshalLoose(content, &resp); err != nil {
		return nil, err
	}
	if len(resp.Ads) != len(adTypes) {
		return nil, fmt.Errorf("ai: expected %d ad variations, got %d", len(adTypes), len(resp.Ads))
	}
	for i, ad := range resp.Ads {
		if ad.Type != adTypes[i] {
			return nil, fmt.Errorf("ai: ad %d has type %q, want %q", i+1, ad.Type, adTypes[i])
		}
		if strings.TrimSpace(ad.Headline) == "" || strings.TrimSpace(ad.PrimaryText) == "" ||
			strings.TrimSpace(ad.Description) == "" || strings.TrimSpace(ad.CallToAction) == "" {
			return nil, fmt.Errorf("ai: ad %d (%s) has empty copy fields", i+1, ad.Type)
		}
	}
	return &resp, nil
}
