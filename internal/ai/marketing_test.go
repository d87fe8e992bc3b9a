// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"strings"
	"testing"
)

func TestBuildEmailPrompt(t *testing.T) {
	system, user := BuildEmailPrompt(testClient())

	if !strings.Contains(system, "cold email copywriter") {
		t.Errorf("system prompt should set the copywriter role, got %q", system)
	}
	for _, want := range []string{
		"Rosie's Bakery",
		"artisan bakery",
		"warm and friendly",
		"more local foot traffic",
		"5-email cold outreach sequence",
		"sendDay values of 1, 3, 5, 7, and 10",
		"{{firstName}}",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestBuildAdPrompt(t *testing.T) {
	system, user := BuildAdPrompt(testClient())

	if !strings.Contains(system, "Facebook ads copywriter") {
		t.Errorf("system prompt should set the ads role, got %q", system)
	}
	for _, want := range []string{
		"Rosie's Bakery",
		"4 Facebook ad copy variations",
		"Awareness",
		"Engagement",
		"Lead Gen",
		"Retargeting",
		"Maximum 40 characters",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func mockMarketingJSON(t *testing.T, systemPrompt string) string {
	t.Helper()
	out, err := newMock().Generate(context.Background(), systemPrompt, "")
	if err != nil {
		t.Fatalf("mock generate: %v", err)
	}
	return out
}

func TestParseEmailResponse(t *testing.T) {
	raw := mockMarketingJSON(t, emailSystemPrompt)

	tests := []struct {
		name    string
		content string
	}{
		{"plain json", raw},
		{"json code fence", "```json\n" + raw + "\n```"},
		{"surrounding prose", "Here is the sequence:\n" + raw + "\nGood luck!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ParseEmailResponse(tt.content)
			if err != nil {
				t.Fatalf("ParseEmailResponse: %v", err)
			}
			if len(seq.Emails) != 5 {
				t.Fatalf("got %d emails, want 5", len(seq.Emails))
			}
			for i, day := range []int{1, 3, 5, 7, 10} {
				if seq.Emails[i].SendDay != day {
					t.Errorf("email %d sendDay = %d, want %d", i+1, seq.Emails[i].SendDay, day)
				}
			}
		})
	}
}

func TestParseEmailResponse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "sorry, I cannot help with that"},
		{"too few emails", `{"emails": [{"subject": "s", "body": "b", "sendDay": 1}]}`},
		{"empty subject", strings.Replace(mockMarketingJSON(t, emailSystemPrompt), "Quick question about your video content", "", 1)},
		{"wrong cadence", strings.Replace(mockMarketingJSON(t, emailSystemPrompt), `"sendDay":3`, `"sendDay":4`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEmailResponse(tt.content); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseAdResponse(t *testing.T) {
	resp, err := ParseAdResponse(mockMarketingJSON(t, adSystemPrompt))
	if err != nil {
		t.Fatalf("ParseAdResponse: %v", err)
	}
	if len(resp.Ads) != 4 {
		t.Fatalf("got %d ads, want 4", len(resp.Ads))
	}
	for i, typ := range []string{"Awareness", "Engagement", "Lead Gen", "Retargeting"} {
		if resp.Ads[i].Type != typ {
			t.Errorf("ad %d type = %q, want %q", i+1, resp.Ads[i].Type, typ)
		}
	}
}

func TestParseAdResponse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "no ads today"},
		{"too few ads", `{"ads": [{"type": "Awareness", "headline": "h", "primaryText": "p", "description": "d", "callToAction": "Learn More"}]}`},
		{"wrong type order", strings.Replace(mockMarketingJSON(t, adSystemPrompt), "Engagement", "Conversion", 1)},
		{"empty headline", strings.Replace(mockMarketingJSON(t, adSystemPrompt), "Meet Your AI Video Spokesperson", "", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAdResponse(tt.content); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
