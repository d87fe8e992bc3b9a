// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandvoice/internal/ai"
	"brandvoice/internal/export"
	"brandvoice/internal/models"
	"brandvoice/internal/workflow"
)

// generateTimeout bounds a full 30-script LLM generation.
const generateTimeout = 3 * time.Minute

// GenerateScripts builds the generation prompt from the client's profile
// and intake, calls the active LLM provider, and stores the resulting
// 30-script pack in one transaction. Requires a submitted intake.
func (a *Admin) GenerateScripts(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	intake, err := a.intakes.FindByClient(client.ID)
	if err != nil {
		serverError(w, "intake lookup failed", err)
		return
	}
	if intake == nil {
		writeError(w, http.StatusBadRequest, "client has no intake material yet")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	system, user := ai.BuildPackPrompt(client, intake)
	raw, err := a.aiRegistry.Generate(ctx, system, user)
	if err != nil {
		slog.Error("script generation failed", "error", err, "client", client.ID)
		writeError(w, http.StatusBadGateway, "script generation failed")
		return
	}

	pack, err := ai.ParsePackResponse(raw)
	if err != nil {
		slog.Error("script pack invalid", "error", err, "client", client.ID, "provider", a.aiRegistry.ActiveName())
		writeError(w, http.StatusBadGateway, "the generated script pack was malformed")
		return
	}

	created, err := a.scripts.CreateBatch(pack.ToScripts(client.ID))
	if err != nil {
		serverError(w, "store script pack failed", err)
		return
	}

	if err := a.activity.Record(client.ID, models.ActivityScriptGenerated, "Your 30-day script pack is ready", "30 new scripts are waiting for your review"); err != nil {
		slog.Error("record generation activity failed", "error", err, "client", client.ID)
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"scripts":  created,
		"count":    len(created),
		"provider": a.aiRegistry.ActiveName(),
	})
}

// loadScript fetches a script by the {scriptID} route parameter.
func (a *Admin) loadScript(w http.ResponseWriter, r *http.Request) *models.Script {
	id, err := uuid.Parse(chi.URLParam(r, "scriptID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid script id")
		return nil
	}
	script, err := a.scripts.FindByID(id)
	if err != nil {
		serverError(w, "script lookup failed", err)
		return nil
	}
	if script == nil {
		writeError(w, http.StatusNotFound, "script not found")
		return nil
	}
	return script
}

// GetScript returns a single script.
func (a *Admin) GetScript(w http.ResponseWriter, r *http.Request) {
	script := a.loadScript(w, r)
	if script == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"script": script})
}

type updateScriptRequest struct {
	Title      *string `json:"title"`
	ScriptText *string `json:"scriptText"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
}

// UpdateScript edits a script's text, status, or notes. Editing the body
// re-estimates the spoken duration. Status here is an admin force-set and
// may target any of the four statuses.
func (a *Admin) UpdateScript(w http.ResponseWriter, r *http.Request) {
	script := a.loadScript(w, r)
	if script == nil {
		return
	}

	var req updateScriptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title != nil {
		script.Title = *req.Title
	}
	if req.ScriptText != nil {
		script.ScriptText = *req.ScriptText
		duration := models.EstimateDuration(script.ScriptText)
		script.DurationSeconds = &duration
	}
	if req.Notes != nil {
		script.Notes = req.Notes
	}
	if req.Status != nil {
		status, err := workflow.ValidateForceSet(*req.Status)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		script.Status = status
	}

	if msg := validateScriptEdit(script.Title, script.ScriptText); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.scripts.Update(script); err != nil {
		serverError(w, "update script failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"script": script})
}

// DeleteScript removes a script.
func (a *Admin) DeleteScript(w http.ResponseWriter, r *http.Request) {
	script := a.loadScript(w, r)
	if script == nil {
		return
	}
	if err := a.scripts.Delete(script.ID); err != nil {
		serverError(w, "delete script failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type bulkUpdateRequest struct {
	ScriptIDs []string `json:"scriptIds"`
	Status    string   `json:"status"`
}

// BulkUpdate sets many scripts to one status in a single transaction and
// returns the number of rows updated. The operation is idempotent:
// repeating it converges on the same state and reports the same count.
func (a *Admin) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := workflow.ValidateBulkTarget(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.ScriptIDs))
	for _, raw := range req.ScriptIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid script id: "+raw)
			return
		}
		ids = append(ids, id)
	}

	count, err := a.scripts.BulkSetStatus(ids, status)
	if err != nil {
		serverError(w, "bulk status update failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// exportContext loads the client and scripts for an export endpoint.
func (a *Admin) exportContext(w http.ResponseWriter, r *http.Request) (*models.Client, []models.Script) {
	client := a.loadClient(w, r)
	if client == nil {
		return nil, nil
	}
	scripts, err := a.scripts.ListByClient(client.ID)
	if err != nil {
		serverError(w, "script lookup failed", err)
		return nil, nil
	}
	return client, scripts
}

// ExportTXT downloads a client's script pack as plain text.
func (a *Admin) ExportTXT(w http.ResponseWriter, r *http.Request) {
	client, scripts := a.exportContext(w, r)
	if client == nil {
		return
	}

	body := export.Text(client, scripts, time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(client.BusinessName, "_scripts.txt")+`"`)
	w.Write([]byte(body))
}

// ExportJSON downloads a client's script pack as JSON.
func (a *Admin) ExportJSON(w http.ResponseWriter, r *http.Request) {
	client, scripts := a.exportContext(w, r)
	if client == nil {
		return
	}

	body, err := export.JSON(client, scripts, time.Now())
	if err != nil {
		serverError(w, "json export failed", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(client.BusinessName, "_scripts.json")+`"`)
	w.Write(body)
}

// pdfTimeout bounds the remote HTML-to-PDF conversion.
const pdfTimeout = 60 * time.Second

// ExportPDF renders a client's script pack to PDF through the external
// renderer and streams the result.
func (a *Admin) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if !a.renderer.Configured() {
		writeError(w, http.StatusServiceUnavailable, "PDF rendering is not configured")
		return
	}

	client, scripts := a.exportContext(w, r)
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pdfTimeout)
	defer cancel()

	body, err := a.renderer.Render(ctx, export.HTML(client, scripts, time.Now()))
	if err != nil {
		slog.Error("pdf render failed", "error", err, "client", client.ID)
		writeError(w, http.StatusBadGateway, "PDF rendering failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(client.BusinessName, "_scripts.pdf")+`"`)
	w.Write(body)
}

// ExportClientsCSV downloads the full client list as CSV.
func (a *Admin) ExportClientsCSV(w http.ResponseWriter, r *http.Request) {
	clients, err := a.clients.List()
	if err != nil {
		serverError(w, "list clients failed", err)
		return
	}

	body, err := export.ClientsCSV(clients)
	if err != nil {
		serverError(w, "csv export failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="clients.csv"`)
	w.Write(body)
}

// reviewStatusCode maps workflow sentinel errors to HTTP statuses.
func reviewStatusCode(err error) int {
	switch {
	case errors.Is(err, workflow.ErrNotesRequired),
		errors.Is(err, workflow.ErrInvalidAction),
		errors.Is(err, workflow.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
