package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for client and script fields.
const (
	maxNameLen        = 200
	maxEmailLen       = 320
	maxFreeTextLen    = 2_000
	maxIntakeFieldLen = 20_000
	maxTitleLen       = 300
	maxScriptBodyLen  = 10_000
	maxNotesLen       = 5_000
)

// validateClientProfile checks the required client identity fields and
// returns the first error found, or "" when valid.
func validateClientProfile(businessName, contactName, email, niche, tone, goals string) string {
	if strings.TrimSpace(businessName) == "" {
		return "businessName is required"
	}
	if utf8.RuneCountInString(businessName) > maxNameLen {
		return "businessName is too long (max 200 characters)"
	}
	if strings.TrimSpace(contactName) == "" {
		return "contactName is required"
	}
	if utf8.RuneCountInString(contactName) > maxNameLen {
		return "contactName is too long (max 200 characters)"
	}
	if msg := validateEmail(email); msg != "" {
		return msg
	}
	if strings.TrimSpace(niche) == "" {
		return "niche is required"
	}
	if strings.TrimSpace(tone) == "" {
		return "tone is required"
	}
	for _, f := range []struct{ name, value string }{
		{"niche", niche}, {"tone", tone}, {"goals", goals},
	} {
		if utf8.RuneCountInString(f.value) > maxFreeTextLen {
			return f.name + " is too long (max 2,000 characters)"
		}
	}
	return ""
}

// validateEmail checks address syntax.
func validateEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "email is required"
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "email is too long"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "email is not a valid address"
	}
	return ""
}

// validateIntake checks the free-form intake fields.
func validateIntake(fields map[string]string) string {
	for name, value := range fields {
		if utf8.RuneCountInString(value) > maxIntakeFieldLen {
			return name + " is too long (max 20,000 characters)"
		}
	}
	return ""
}

// validateScriptEdit checks an edited script's fields.
func validateScriptEdit(title, scriptText string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if strings.TrimSpace(scriptText) == "" {
		return "scriptText is required"
	}
	if utf8.RuneCountInString(scriptText) > maxScriptBodyLen {
		return "scriptText is too long (max 10,000 characters)"
	}
	return ""
}
