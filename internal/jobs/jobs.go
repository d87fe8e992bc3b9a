// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package jobs runs the studio's scheduled background work: the daily
// payment reminder sweep and the weekly admin digest.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"brandvoice/internal/email"
	"brandvoice/internal/models"
)

// ClientSource is the subset of the client store the jobs need.
type ClientSource interface {
	ListByPaymentStatus(status string) ([]models.Client, error)
	CountByStatus() (map[models.ProjectStatus]int, error)
}

// Mailer is the subset of the email sender the jobs need.
type Mailer interface {
	SendPaymentFailed(ctx context.Context, to, clientName string) error
	SendWeeklyDigest(ctx context.Context, data email.DigestData) error
}

// Manager owns the scheduler and the job dependencies.
type Manager struct {
	scheduler gocron.Scheduler
	clients   ClientSource
	mailer    Mailer
}

// NewManager creates a manager with both jobs registered but not started.
func NewManager(clients ClientSource, mailer Mailer) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("jobs: create scheduler: %w", err)
	}

	m := &Manager{
		scheduler: s,
		clients:   clients,
		mailer:    mailer,
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0))),
		gocron.NewTask(m.RunPaymentReminders),
		gocron.WithName("payment_reminder_sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("jobs: register payment reminders: %w", err)
	}

	_, err = s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(m.RunWeeklyDigest),
		gocron.WithName("weekly_digest"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("jobs: register weekly digest: %w", err)
	}

	return m, nil
}

// Start begins executing scheduled jobs.
func (m *Manager) Start() {
	m.scheduler.Start()
	slog.Info("background jobs started")
}

// Stop shuts the scheduler down, waiting for running jobs to finish.
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		slog.Error("scheduler shutdown failed", "error", err)
		return
	}
	slog.Info("background jobs stopped")
}

// RunPaymentReminders emails every client whose last payment failed.
// Send failures are logged per client and do not stop the sweep.
func (m *Manager) RunPaymentReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	failed, err := m.clients.ListByPaymentStatus("failed")
	if err != nil {
		slog.Error("payment reminder sweep failed", "error", err)
		return
	}

	sent := 0
	for _, c := range failed {
		if err := m.mailer.SendPaymentFailed(ctx, c.Email, c.ContactName); err != nil {
			slog.Error("payment reminder send failed", "client", c.ID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("payment reminder sweep complete", "failed_clients", len(failed), "reminders_sent", sent)
}

// RunWeeklyDigest mails the admin a summary of client and payment state.
func (m *Manager) RunWeeklyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	data, err := BuildDigest(m.clients, time.Now())
	if err != nil {
		slog.Error("weekly digest build failed", "error", err)
		return
	}

	if err := m.mailer.SendWeeklyDigest(ctx, data); err != nil {
		slog.Error("weekly digest send failed", "error", err)
		return
	}

	slog.Info("weekly digest sent", "active_clients", data.ActiveClients)
}

// BuildDigest assembles the weekly digest from current client counts.
// Delivered and side-state clients are not counted as active.
func BuildDigest(clients ClientSource, now time.Time) (email.DigestData, error) {
	counts, err := clients.CountByStatus()
	if err != nil {
		return email.DigestData{}, fmt.Errorf("jobs: count by status: %w", err)
	}

	failed, err := clients.ListByPaymentStatus("failed")
	if err != nil {
		return email.DigestData{}, fmt.Errorf("jobs: list failed payments: %w", err)
	}

	data := email.DigestData{
		WeekOf:          now.Format("Jan 2, 2006"),
		PendingPayments: len(failed),
	}

	for _, status := range models.AllStatuses {
		n := counts[status]
		if n == 0 {
			continue
		}
		if status != models.StatusDelivered && !status.IsSideState() {
			data.ActiveClients += n
		}
		data.StatusLines = append(data.StatusLines, fmt.Sprintf("%s: %d", status, n))
	}

	return data, nil
}
