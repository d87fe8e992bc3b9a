// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"brandvoice/internal/ai"
)

// marketingTimeout bounds a cold-email or ad-copy generation.
const marketingTimeout = 90 * time.Second

// GenerateEmails produces a 5-email cold outreach sequence promoting the
// client's spokesperson videos. The sequence is returned to the caller and
// not persisted; admins copy it into their outreach tool of choice.
func (a *Admin) GenerateEmails(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), marketingTimeout)
	defer cancel()

	system, user := ai.BuildEmailPrompt(client)
	raw, err := a.aiRegistry.Generate(ctx, system, user)
	if err != nil {
		slog.Error("email sequence generation failed", "error", err, "client", client.ID)
		writeError(w, http.StatusBadGateway, "email sequence generation failed")
		return
	}

	seq, err := ai.ParseEmailResponse(raw)
	if err != nil {
		slog.Error("email sequence invalid", "error", err, "client", client.ID, "provider", a.aiRegistry.ActiveName())
		writeError(w, http.StatusBadGateway, "the generated email sequence was malformed")
		return
	}

	writeJSON(w, http.StatusOK, seq)
}

// GenerateAds produces 4 Facebook ad copy variations (awareness,
// engagement, lead gen, retargeting) for the client. Like the email
// sequence, the copy is returned without being persisted.
func (a *Admin) GenerateAds(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), marketingTimeout)
	defer cancel()

	system, user := ai.BuildAdPrompt(client)
	raw, err := a.aiRegistry.Generate(ctx, system, user)
	if err != nil {
		slog.Error("ad copy generation failed", "error", err, "client", client.ID)
		writeError(w, http.StatusBadGateway, "ad copy generation failed")
		return
	}

	ads, err := ai.ParseAdResponse(raw)
	if err != nil {
		slog.Error("ad copy invalid", "error", err, "client", client.ID, "provider", a.aiRegistry.ActiveName())
		writeError(w, http.StatusBadGateway, "the generated ad copy was malformed")
		return
	}

	writeJSON(w, http.StatusOK, ads)
}
