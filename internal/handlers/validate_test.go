package handlers

import (
	"strings"
	"testing"
)

func TestValidateClientProfile(t *testing.T) {
	tests := []struct {
		name      string
		business  string
		contact   string
		email     string
		niche     string
		tone      string
		goals     string
		wantError bool
	}{
		{"valid", "Acme Plumbing", "Jo Smith", "jo@acme.test", "plumbing", "friendly", "more calls", false},
		{"empty business", "", "Jo", "jo@acme.test", "plumbing", "friendly", "", true},
		{"whitespace business", "   ", "Jo", "jo@acme.test", "plumbing", "friendly", "", true},
		{"business too long", strings.Repeat("a", 201), "Jo", "jo@acme.test", "plumbing", "friendly", "", true},
		{"empty contact", "Acme", "", "jo@acme.test", "plumbing", "friendly", "", true},
		{"bad email", "Acme", "Jo", "not-an-email", "plumbing", "friendly", "", true},
		{"empty niche", "Acme", "Jo", "jo@acme.test", "", "friendly", "", true},
		{"empty tone", "Acme", "Jo", "jo@acme.test", "plumbing", "", "", true},
		{"empty goals allowed", "Acme", "Jo", "jo@acme.test", "plumbing", "friendly", "", false},
		{"goals too long", "Acme", "Jo", "jo@acme.test", "plumbing", "friendly", strings.Repeat("a", 2_001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateClientProfile(tt.business, tt.contact, tt.email, tt.niche, tt.tone, tt.goals)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantError bool
	}{
		{"valid", "hello@brandvoice.studio", false},
		{"valid with name", "Jo Smith <jo@acme.test>", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"no at sign", "jo.acme.test", true},
		{"too long", strings.Repeat("a", 320) + "@x.test", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateEmail(tt.email)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateIntake(t *testing.T) {
	if msg := validateIntake(map[string]string{"rawFaqs": "Q: hours? A: 9-5"}); msg != "" {
		t.Errorf("unexpected error: %s", msg)
	}
	if msg := validateIntake(map[string]string{"rawFaqs": strings.Repeat("a", 20_001)}); msg == "" {
		t.Error("expected an error for an oversized field, got none")
	}
	if msg := validateIntake(nil); msg != "" {
		t.Errorf("unexpected error for empty intake: %s", msg)
	}
}

func TestValidateScriptEdit(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		body      string
		wantError bool
	}{
		{"valid", "Day 1: FAQ", "Hey there! Quick answer for you.", false},
		{"empty title", "", "body", true},
		{"title too long", strings.Repeat("a", 301), "body", true},
		{"empty body", "title", "", true},
		{"whitespace body", "title", "   ", true},
		{"body too long", "title", strings.Repeat("a", 10_001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateScriptEdit(tt.title, tt.body)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Final Cut v2.MP4", "final-cut-v2.mp4"},
		{"../../etc/passwd", "passwd"},
		{"weird  name!!.mov", "weird-name.mov"},
	}

	for _, tt := range tests {
		got := sanitizeFileName(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
