// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Routes
// are organized into the public site, the auth API, the staff API, and
// the client portal API, each with its own middleware stack.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"brandvoice/internal/handlers"
	"brandvoice/internal/middleware"
	"brandvoice/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, portal *handlers.Portal, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	r.Get("/health", public.Health)

	// Auth API. Login is rate limited per IP against credential stuffing.
	r.Route("/api/auth", func(r chi.Router) {
		loginLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.With(loginLimiter.Middleware).Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/me", auth.Me)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})
	})

	// Voice catalog and preview. Preview hits an external TTS provider
	// per miss, so it carries a strict per-IP limit.
	r.Get("/api/voices", public.Voices)
	previewLimiter := middleware.NewRateLimiter(5, time.Minute)
	r.With(previewLimiter.Middleware).Post("/api/voice-preview", public.VoicePreview)

	// Staff API. Requires a session plus completed two-factor.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireStaff)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", admin.ListClients)
				r.Post("/", admin.CreateClient)
				r.Get("/export-csv", admin.ExportClientsCSV)

				r.Route("/{clientID}", func(r chi.Router) {
					r.Get("/", admin.GetClient)
					r.Patch("/", admin.UpdateClient)
					r.Delete("/", admin.DeleteClient)
					r.Put("/intake", admin.UpsertIntake)
					r.Get("/status", admin.GetStatus)
					r.Patch("/status", admin.UpdateStatus)
					r.Post("/generate-scripts", admin.GenerateScripts)
				r.Post("/generate-emails", admin.GenerateEmails)
				r.Post("/generate-ads", admin.GenerateAds)
					r.Post("/portal-user", admin.LinkPortalUser)
					r.Get("/export-txt", admin.ExportTXT)
					r.Get("/export-json", admin.ExportJSON)
					r.Get("/export-pdf", admin.ExportPDF)
					r.Post("/assets", admin.UploadAsset)
					r.Get("/assets", admin.ListAssets)
					r.Delete("/assets/{assetID}", admin.DeleteAsset)
				})
			})

			r.Route("/scripts", func(r chi.Router) {
				r.Patch("/bulk-update", admin.BulkUpdate)
				r.Get("/{scriptID}", admin.GetScript)
				r.Patch("/{scriptID}", admin.UpdateScript)
				r.Delete("/{scriptID}", admin.DeleteScript)
			})
		})

		// Client portal API.
		r.Route("/portal", func(r chi.Router) {
			r.Use(middleware.RequireClient)

			r.Get("/dashboard", portal.Dashboard)
			r.Get("/scripts", portal.Scripts)
			r.Get("/scripts/{scriptID}", portal.GetScript)
			r.Patch("/scripts/{scriptID}", portal.ReviewScript)
			r.Get("/videos", portal.Videos)
		})
	})

	// Public marketing site.
	r.Get("/", public.Homepage)
	r.Get("/blog", public.BlogIndex)
	r.Get("/blog/{slug}", public.BlogPost)
	r.Get("/{slug}", public.Page)

	return r
}
