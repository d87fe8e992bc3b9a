// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandvoice/internal/ai"
	"brandvoice/internal/dashboard"
	"brandvoice/internal/models"
	"brandvoice/internal/pdf"
	"brandvoice/internal/storage"
	"brandvoice/internal/store"
	"brandvoice/internal/workflow"
)

// Mailer is the subset of the email sender the admin surface uses.
// *email.Sender satisfies it.
type Mailer interface {
	SendWelcome(ctx context.Context, to, clientName, packageName string) error
	SendPaymentReceived(ctx context.Context, to, clientName string, amount float64) error
	SendPaymentFailed(ctx context.Context, to, clientName string) error
	SendWinBack(ctx context.Context, to, clientName, offerCode string) error
	SendDisputeAlert(ctx context.Context, clientName, caseID string, amount float64) error
}

// Admin groups the staff-facing API handlers: client management, script
// operations, exports, and asset uploads.
type Admin struct {
	clients    *store.ClientStore
	intakes    *store.IntakeStore
	scripts    *store.ScriptStore
	activity   *store.ActivityStore
	assets     *store.AssetStore
	users      *store.UserStore
	aiRegistry *ai.Registry
	mailer     Mailer
	renderer   *pdf.Renderer
	storage    *storage.Client
}

// NewAdmin creates a new Admin handler group. storage may be nil when S3
// is not configured; asset endpoints report that as unavailable.
func NewAdmin(
	clients *store.ClientStore,
	intakes *store.IntakeStore,
	scripts *store.ScriptStore,
	activity *store.ActivityStore,
	assets *store.AssetStore,
	users *store.UserStore,
	aiRegistry *ai.Registry,
	mailer Mailer,
	renderer *pdf.Renderer,
	storageClient *storage.Client,
) *Admin {
	return &Admin{
		clients:    clients,
		intakes:    intakes,
		scripts:    scripts,
		activity:   activity,
		assets:     assets,
		users:      users,
		aiRegistry: aiRegistry,
		mailer:     mailer,
		renderer:   renderer,
		storage:    storageClient,
	}
}

// uuidFromParam parses a UUID route parameter.
func uuidFromParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// clientIDParam parses the {clientID} route parameter.
func clientIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuidFromParam(r, "clientID")
	return id, err == nil
}

// loadClient fetches a client by route param, writing the error response
// itself when the client cannot be served.
func (a *Admin) loadClient(w http.ResponseWriter, r *http.Request) *models.Client {
	id, ok := clientIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return nil
	}
	client, err := a.clients.FindByID(id)
	if err != nil {
		serverError(w, "client lookup failed", err)
		return nil
	}
	if client == nil {
		writeError(w, http.StatusNotFound, "client not found")
		return nil
	}
	return client
}

type intakeInput struct {
	RawFAQs         string  `json:"rawFaqs"`
	RawOffers       string  `json:"rawOffers"`
	RawTestimonials string  `json:"rawTestimonials"`
	RawPromos       string  `json:"rawPromos"`
	BrandVoiceNotes string  `json:"brandVoiceNotes"`
	References      string  `json:"references"`
	BrandColors     *string `json:"brandColors"`
	LogoURL         *string `json:"logoUrl"`
}

func (in *intakeInput) validate() string {
	return validateIntake(map[string]string{
		"rawFaqs":         in.RawFAQs,
		"rawOffers":       in.RawOffers,
		"rawTestimonials": in.RawTestimonials,
		"rawPromos":       in.RawPromos,
		"brandVoiceNotes": in.BrandVoiceNotes,
		"references":      in.References,
	})
}

func (in *intakeInput) toModel(clientID uuid.UUID) *models.Intake {
	return &models.Intake{
		ClientID:        clientID,
		RawFAQs:         in.RawFAQs,
		RawOffers:       in.RawOffers,
		RawTestimonials: in.RawTestimonials,
		RawPromos:       in.RawPromos,
		BrandVoiceNotes: in.BrandVoiceNotes,
		References:      in.References,
		BrandColors:     in.BrandColors,
		LogoURL:         in.LogoURL,
	}
}

type createClientRequest struct {
	BusinessName   string       `json:"businessName"`
	ContactName    string       `json:"contactName"`
	Email          string       `json:"email"`
	Phone          *string      `json:"phone"`
	Website        *string      `json:"website"`
	Niche          string       `json:"niche"`
	Tone           string       `json:"tone"`
	Goals          string       `json:"goals"`
	Notes          *string      `json:"notes"`
	Package        *string      `json:"package"`
	PackagePrice   *float64     `json:"packagePrice"`
	IsSubscription bool         `json:"isSubscription"`
	AvatarID       *string      `json:"avatarId"`
	VoiceID        *string      `json:"voiceId"`
	Intake         *intakeInput `json:"intake"`
}

// ListClients returns every client, newest first.
func (a *Admin) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := a.clients.List()
	if err != nil {
		serverError(w, "list clients failed", err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

// CreateClient creates a client, optionally with their intake material,
// records the account activity, and sends the welcome email.
func (a *Admin) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if msg := validateClientProfile(req.BusinessName, req.ContactName, req.Email, req.Niche, req.Tone, req.Goals); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Intake != nil {
		if msg := req.Intake.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
	}

	client, err := a.clients.Create(&models.Client{
		BusinessName:   strings.TrimSpace(req.BusinessName),
		ContactName:    strings.TrimSpace(req.ContactName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		Website:        req.Website,
		Niche:          strings.TrimSpace(req.Niche),
		Tone:           strings.TrimSpace(req.Tone),
		Goals:          req.Goals,
		Notes:          req.Notes,
		Package:        req.Package,
		PackagePrice:   req.PackagePrice,
		IsSubscription: req.IsSubscription,
		AvatarID:       req.AvatarID,
		VoiceID:        req.VoiceID,
	})
	if err != nil {
		serverError(w, "create client failed", err)
		return
	}

	var intake *models.Intake
	if req.Intake != nil {
		intake, err = a.intakes.Upsert(req.Intake.toModel(client.ID))
		if err != nil {
			serverError(w, "save intake failed", err)
			return
		}
	}

	if err := a.activity.Record(client.ID, models.ActivityAccountCreated, "Welcome to BrandVoice Studio", "Your account was created"); err != nil {
		slog.Error("record account activity failed", "error", err, "client", client.ID)
	}

	packageName := "Starter"
	if client.Package != nil {
		packageName = *client.Package
	}
	if err := a.mailer.SendWelcome(r.Context(), client.Email, client.ContactName, packageName); err != nil {
		slog.Error("welcome email failed", "error", err, "client", client.ID)
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"client": client,
		"intake": intake,
	})
}

// GetClient returns a client with their intake, scripts, and script stats.
func (a *Admin) GetClient(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	intake, err := a.intakes.FindByClient(client.ID)
	if err != nil {
		serverError(w, "intake lookup failed", err)
		return
	}
	scripts, err := a.scripts.ListByClient(client.ID)
	if err != nil {
		serverError(w, "script lookup failed", err)
		return
	}
	if scripts == nil {
		scripts = []models.Script{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"client":  client,
		"intake":  intake,
		"scripts": scripts,
		"stats":   dashboard.Aggregate(scripts),
	})
}

type updateClientRequest struct {
	BusinessName   *string  `json:"businessName"`
	ContactName    *string  `json:"contactName"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Website        *string  `json:"website"`
	Niche          *string  `json:"niche"`
	Tone           *string  `json:"tone"`
	Goals          *string  `json:"goals"`
	Notes          *string  `json:"notes"`
	Package        *string  `json:"package"`
	PackagePrice   *float64 `json:"packagePrice"`
	IsSubscription *bool    `json:"isSubscription"`
	PaymentStatus  *string  `json:"paymentStatus"`
	PaymentAmount  *float64 `json:"paymentAmount"`
	AvatarID       *string  `json:"avatarId"`
	VoiceID        *string  `json:"voiceId"`
}

// validPaymentStatuses mirrors what the billing integration reports.
var validPaymentStatuses = map[string]bool{
	"pending":  true,
	"paid":     true,
	"failed":   true,
	"refunded": true,
	"disputed": true,
}

// UpdateClient applies a partial update to profile and commercial fields.
// Fields absent from the request are left unchanged. Project status has
// its own endpoint.
func (a *Admin) UpdateClient(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	var req updateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	prevPaymentStatus := client.PaymentStatus

	if req.BusinessName != nil {
		client.BusinessName = strings.TrimSpace(*req.BusinessName)
	}
	if req.ContactName != nil {
		client.ContactName = strings.TrimSpace(*req.ContactName)
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.Website != nil {
		client.Website = req.Website
	}
	if req.Niche != nil {
		client.Niche = strings.TrimSpace(*req.Niche)
	}
	if req.Tone != nil {
		client.Tone = strings.TrimSpace(*req.Tone)
	}
	if req.Goals != nil {
		client.Goals = *req.Goals
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}
	if req.Package != nil {
		client.Package = req.Package
	}
	if req.PackagePrice != nil {
		client.PackagePrice = req.PackagePrice
	}
	if req.IsSubscription != nil {
		client.IsSubscription = *req.IsSubscription
	}
	if req.PaymentStatus != nil {
		if !validPaymentStatuses[*req.PaymentStatus] {
			writeError(w, http.StatusBadRequest, "invalid payment status")
			return
		}
		client.PaymentStatus = *req.PaymentStatus
		if *req.PaymentStatus == "paid" {
			now := time.Now()
			client.PaymentDate = &now
		}
	}
	if req.PaymentAmount != nil {
		client.PaymentAmount = req.PaymentAmount
	}
	if req.AvatarID != nil {
		client.AvatarID = req.AvatarID
	}
	if req.VoiceID != nil {
		client.VoiceID = req.VoiceID
	}

	if msg := validateClientProfile(client.BusinessName, client.ContactName, client.Email, client.Niche, client.Tone, client.Goals); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.clients.Update(client); err != nil {
		serverError(w, "update client failed", err)
		return
	}

	a.notifyPaymentChange(r.Context(), client, prevPaymentStatus)

	writeJSON(w, http.StatusOK, map[string]any{"client": client})
}

// notifyPaymentChange sends payment lifecycle emails and records activity
// after a payment status transition. Re-asserting the current status sends
// nothing. Failures are logged, never surfaced.
func (a *Admin) notifyPaymentChange(ctx context.Context, client *models.Client, prevStatus string) {
	if client.PaymentStatus == prevStatus {
		return
	}

	amount := 0.0
	if client.PaymentAmount != nil {
		amount = *client.PaymentAmount
	}

	switch client.PaymentStatus {
	case "paid":
		if err := a.activity.Record(client.ID, models.ActivityPaymentReceived, "Payment received", "Thank you! Your payment has been processed"); err != nil {
			slog.Error("record payment activity failed", "error", err, "client", client.ID)
		}
		if err := a.mailer.SendPaymentReceived(ctx, client.Email, client.ContactName, amount); err != nil {
			slog.Error("payment received email failed", "error", err, "client", client.ID)
		}
	case "failed":
		if err := a.mailer.SendPaymentFailed(ctx, client.Email, client.ContactName); err != nil {
			slog.Error("payment failed email failed", "error", err, "client", client.ID)
		}
	case "refunded":
		// A refund marks a cancelled engagement; try to win the client back.
		if err := a.mailer.SendWinBack(ctx, client.Email, client.ContactName, ""); err != nil {
			slog.Error("win-back email failed", "error", err, "client", client.ID)
		}
	case "disputed":
		if err := a.mailer.SendDisputeAlert(ctx, client.BusinessName, client.ID.String(), amount); err != nil {
			slog.Error("dispute alert email failed", "error", err, "client", client.ID)
		}
	}
}

// DeleteClient removes a client and all dependent rows.
func (a *Admin) DeleteClient(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}
	if err := a.clients.Delete(client.ID); err != nil {
		serverError(w, "delete client failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// UpsertIntake creates or replaces a client's intake material.
func (a *Admin) UpsertIntake(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	var req intakeInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	intake, err := a.intakes.Upsert(req.toModel(client.ID))
	if err != nil {
		serverError(w, "save intake failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"intake": intake})
}

// GetStatus returns a client's project status with the annotated step
// path and progress percentage. Side states carry no steps or percent.
func (a *Admin) GetStatus(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}
	writeJSON(w, http.StatusOK, statusPayload(client))
}

func statusPayload(client *models.Client) map[string]any {
	payload := map[string]any{
		"status":       client.ProjectStatus,
		"startDate":    client.ProjectStartDate,
		"deliveryDate": client.ProjectDeliveryDate,
	}
	if pct, ok := workflow.Progress(client.ProjectStatus); ok {
		payload["progress"] = pct
	}
	if steps := workflow.Steps(client.ProjectStatus); steps != nil {
		payload["steps"] = steps
	}
	return payload
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a client to a new project status. Entering
// onboarding stamps the project start date once; entering delivered
// stamps the delivery date. Every change lands in the activity feed, and
// a dispute immediately alerts the studio admin.
func (a *Admin) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := workflow.ValidateStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var startDate, deliveryDate *time.Time
	now := time.Now()
	// The start date is stamped once, on the first move out of discovery.
	// Re-entering onboarding later must not rewrite it.
	if status == models.StatusOnboarding && client.ProjectStatus == models.StatusDiscovery && client.ProjectStartDate == nil {
		startDate = &now
	}
	if status == models.StatusDelivered {
		deliveryDate = &now
	}

	if err := a.clients.SetStatus(client.ID, status, startDate, deliveryDate); err != nil {
		serverError(w, "set client status failed", err)
		return
	}

	if status != client.ProjectStatus {
		desc := "Your project moved from " + string(client.ProjectStatus) + " to " + string(status)
		if err := a.activity.Record(client.ID, models.ActivityStatusChanged, "Project status updated", desc); err != nil {
			slog.Error("record status activity failed", "error", err, "client", client.ID)
		}
		if status == models.StatusDisputed {
			amount := 0.0
			if client.PaymentAmount != nil {
				amount = *client.PaymentAmount
			}
			if err := a.mailer.SendDisputeAlert(r.Context(), client.BusinessName, client.ID.String(), amount); err != nil {
				slog.Error("dispute alert email failed", "error", err, "client", client.ID)
			}
		}
	}

	updated, err := a.clients.FindByID(client.ID)
	if err != nil || updated == nil {
		serverError(w, "reload client failed", err)
		return
	}
	writeJSON(w, http.StatusOK, statusPayload(updated))
}

type linkPortalUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// LinkPortalUser creates (or reuses) a portal login for a client and
// links it to the client record. Linking the same account twice is a
// no-op.
func (a *Admin) LinkPortalUser(w http.ResponseWriter, r *http.Request) {
	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	var req linkPortalUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateEmail(req.Email); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	userEmail := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := a.users.FindByEmail(userEmail)
	if err != nil {
		serverError(w, "portal user lookup failed", err)
		return
	}

	if user == nil {
		if len(req.Password) < 8 {
			writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}
		displayName := strings.TrimSpace(req.DisplayName)
		if displayName == "" {
			displayName = client.ContactName
		}
		user, err = a.users.Create(userEmail, req.Password, displayName, models.RoleClient)
		if err != nil {
			serverError(w, "create portal user failed", err)
			return
		}
	} else if user.IsStaff() {
		writeError(w, http.StatusConflict, "email belongs to a staff account")
		return
	}

	if err := a.users.LinkClient(user.ID, client.ID); err != nil {
		serverError(w, "link portal user failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": userToPayload(user)})
}
