// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"brandvoice/internal/dashboard"
	"brandvoice/internal/middleware"
	"brandvoice/internal/models"
	"brandvoice/internal/store"
	"brandvoice/internal/workflow"
)

// Portal groups the client-facing API handlers. Every handler scopes its
// data to the clients linked to the authenticated portal user.
type Portal struct {
	users    *store.UserStore
	clients  *store.ClientStore
	scripts  *store.ScriptStore
	assets   *store.AssetStore
	activity *store.ActivityStore
}

// NewPortal creates a new Portal handler group.
func NewPortal(users *store.UserStore, clients *store.ClientStore, scripts *store.ScriptStore, assets *store.AssetStore, activity *store.ActivityStore) *Portal {
	return &Portal{
		users:    users,
		clients:  clients,
		scripts:  scripts,
		assets:   assets,
		activity: activity,
	}
}

// ownedClients returns the client records linked to the session user, in
// link order (oldest client first). The first entry is the primary client.
func (p *Portal) ownedClients(w http.ResponseWriter, r *http.Request) ([]models.Client, bool) {
	sess := middleware.SessionFromCtx(r.Context())

	ids, err := p.users.ClientIDs(sess.UserID)
	if err != nil {
		serverError(w, "portal client lookup failed", err)
		return nil, false
	}

	clients := make([]models.Client, 0, len(ids))
	for _, id := range ids {
		c, err := p.clients.FindByID(id)
		if err != nil {
			serverError(w, "portal client load failed", err)
			return nil, false
		}
		if c != nil {
			clients = append(clients, *c)
		}
	}
	return clients, true
}

// Dashboard returns the portal landing payload: the user's clients, the
// stats block, and the recent activity feed.
func (p *Portal) Dashboard(w http.ResponseWriter, r *http.Request) {
	clients, ok := p.ownedClients(w, r)
	if !ok {
		return
	}

	if len(clients) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{
			"hasClients": false,
			"clients":    []models.Client{},
			"stats":      dashboard.PortalSummary(nil, nil, nil),
			"activity":   []dashboard.ActivityEntry{},
		})
		return
	}

	var scripts []models.Script
	var videos []models.ClientAsset
	for _, c := range clients {
		cs, err := p.scripts.ListByClient(c.ID)
		if err != nil {
			serverError(w, "portal script load failed", err)
			return
		}
		scripts = append(scripts, cs...)

		assets, err := p.assets.ListByClient(c.ID)
		if err != nil {
			serverError(w, "portal asset load failed", err)
			return
		}
		for _, a := range assets {
			if a.IsVideo() {
				videos = append(videos, a)
			}
		}
	}

	primary := &clients[0]
	persisted, err := p.activity.ListRecent(primary.ID, 10)
	if err != nil {
		serverError(w, "portal activity load failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"hasClients": true,
		"clients":    clients,
		"stats":      dashboard.PortalSummary(primary, scripts, videos),
		"activity":   dashboard.RecentActivity(persisted, scripts, videos),
	})
}

// Scripts lists every script across the user's clients, grouped per
// client in link order.
func (p *Portal) Scripts(w http.ResponseWriter, r *http.Request) {
	clients, ok := p.ownedClients(w, r)
	if !ok {
		return
	}

	type clientScripts struct {
		Client  models.Client   `json:"client"`
		Scripts []models.Script `json:"scripts"`
	}

	groups := make([]clientScripts, 0, len(clients))
	for _, c := range clients {
		cs, err := p.scripts.ListByClient(c.ID)
		if err != nil {
			serverError(w, "portal script load failed", err)
			return
		}
		if cs == nil {
			cs = []models.Script{}
		}
		groups = append(groups, clientScripts{Client: c, Scripts: cs})
	}

	writeJSON(w, http.StatusOK, map[string]any{"clients": groups})
}

// loadOwnedScript fetches a script and verifies it belongs to one of the
// session user's clients. Scripts outside that set read as not found.
func (p *Portal) loadOwnedScript(w http.ResponseWriter, r *http.Request) *models.Script {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidFromParam(r, "scriptID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid script id")
		return nil
	}

	script, err := p.scripts.FindByID(id)
	if err != nil {
		serverError(w, "script lookup failed", err)
		return nil
	}
	if script == nil {
		writeError(w, http.StatusNotFound, "script not found")
		return nil
	}

	owns, err := p.users.HasClient(sess.UserID, script.ClientID)
	if err != nil {
		serverError(w, "script ownership check failed", err)
		return nil
	}
	if !owns {
		writeError(w, http.StatusNotFound, "script not found")
		return nil
	}
	return script
}

// GetScript returns one of the user's scripts.
func (p *Portal) GetScript(w http.ResponseWriter, r *http.Request) {
	script := p.loadOwnedScript(w, r)
	if script == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"script": script})
}

type reviewRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

// ReviewScript applies a client review decision: approve, or request a
// revision with notes. Re-approving an already approved script is a 409.
func (p *Portal) ReviewScript(w http.ResponseWriter, r *http.Request) {
	script := p.loadOwnedScript(w, r)
	if script == nil {
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	action := workflow.ReviewAction(req.Action)
	if action != workflow.ActionApprove && action != workflow.ActionRequestRevision {
		writeError(w, http.StatusBadRequest, "action must be approve or request_revision")
		return
	}

	result, err := workflow.ClientReview(script.Status, script.Notes, action, req.Notes)
	if err != nil {
		writeError(w, reviewStatusCode(err), err.Error())
		return
	}

	if err := p.scripts.SetStatus(script.ID, result.Status, result.Notes); err != nil {
		serverError(w, "apply review failed", err)
		return
	}

	if action == workflow.ActionApprove {
		if err := p.activity.Record(script.ClientID, models.ActivityScriptApproved, "Script approved", "\""+script.Title+"\" is ready for video production"); err != nil {
			slog.Error("record approval activity failed", "error", err, "script", script.ID)
		}
	}

	script.Status = result.Status
	script.Notes = result.Notes
	writeJSON(w, http.StatusOK, map[string]any{"script": script})
}

// Videos lists the user's uploaded video deliverables. URLs are presigned
// by the admin asset endpoints; the portal only surfaces metadata here.
func (p *Portal) Videos(w http.ResponseWriter, r *http.Request) {
	clients, ok := p.ownedClients(w, r)
	if !ok {
		return
	}

	videos := []models.ClientAsset{}
	for _, c := range clients {
		assets, err := p.assets.ListByClient(c.ID)
		if err != nil {
			serverError(w, "portal asset load failed", err)
			return
		}
		for _, a := range assets {
			if a.IsVideo() {
				videos = append(videos, a)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"videos": videos})
}
