// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package email sends transactional notifications through Resend: client
// onboarding, payment lifecycle messages, and internal dispute alerts.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// Sender sends templated HTML emails. When no API key is configured every
// send becomes a logged no-op so development environments never need
// Resend credentials.
type Sender struct {
	client     *resend.Client
	from       string
	adminEmail string
	baseURL    string
}

// New creates a Sender. from is the RFC 5322 sender ("Name <addr>");
// adminEmail receives internal alerts; baseURL is used for portal links.
func New(apiKey, from, adminEmail, baseURL string) *Sender {
	s := &Sender{
		from:       from,
		adminEmail: adminEmail,
		baseURL:    baseURL,
	}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// Enabled reports whether a Resend API key is configured.
func (s *Sender) Enabled() bool {
	return s.client != nil
}

func (s *Sender) send(ctx context.Context, to, subject, html string) error {
	if s.client == nil {
		slog.Info("email disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("email: send %q to %s: %w", subject, to, err)
	}

	slog.Info("email sent", "to", to, "subject", subject, "id", sent.Id)
	return nil
}

// SendWelcome greets a new client after their account is created.
func (s *Sender) SendWelcome(ctx context.Context, to, clientName, packageName string) error {
	html, err := renderShell("Welcome to BrandVoice Studio", welcomeTmpl, struct {
		S           bodyStyles
		ClientName  string
		PackageName string
		BaseURL     string
	}{styles, clientName, packageName, s.baseURL})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Welcome to BrandVoice Studio, %s!", clientName)
	return s.send(ctx, to, subject, html)
}

// SendPaymentReceived confirms a successful payment.
func (s *Sender) SendPaymentReceived(ctx context.Context, to, clientName string, amount float64) error {
	html, err := renderShell("Payment Received", paymentReceivedTmpl, struct {
		S          bodyStyles
		ClientName string
		Amount     string
		BaseURL    string
	}{styles, clientName, formatUSD(amount), s.baseURL})
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Payment Received - Thank You!", html)
}

// SendPaymentFailed asks a client to update their payment method.
func (s *Sender) SendPaymentFailed(ctx context.Context, to, clientName string) error {
	html, err := renderShell("Payment Failed", paymentFailedTmpl, struct {
		S          bodyStyles
		ClientName string
		UpdateLink string
	}{styles, clientName, s.baseURL + "/portal/billing"})
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Payment Failed - Action Required", html)
}

// SendWinBack nudges a lapsed client. offerCode is optional; when empty
// the discount block is omitted.
func (s *Sender) SendWinBack(ctx context.Context, to, clientName, offerCode string) error {
	html, err := renderShell("We Miss You!", winBackTmpl, struct {
		S          bodyStyles
		ClientName string
		OfferCode  string
		BaseURL    string
	}{styles, clientName, offerCode, s.baseURL})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("We Miss You, %s! Special Offer Inside", clientName)
	return s.send(ctx, to, subject, html)
}

// DigestData summarizes studio state for the weekly admin digest.
type DigestData struct {
	WeekOf          string
	ActiveClients   int
	PendingPayments int
	StatusLines     []string
}

// SendWeeklyDigest mails the studio admin a summary of client and
// payment state.
func (s *Sender) SendWeeklyDigest(ctx context.Context, data DigestData) error {
	html, err := renderShell("Weekly Studio Digest", weeklyDigestTmpl, struct {
		S bodyStyles
		DigestData
	}{styles, data})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("BrandVoice Weekly Digest - %s", data.WeekOf)
	return s.send(ctx, s.adminEmail, subject, html)
}

// SendDisputeAlert notifies the studio admin that a client opened a
// payment dispute.
func (s *Sender) SendDisputeAlert(ctx context.Context, clientName, caseID string, amount float64) error {
	html, err := renderShell("Payment Dispute Alert", disputeAlertTmpl, struct {
		S          bodyStyles
		ClientName string
		CaseID     string
		Amount     string
	}{styles, clientName, caseID, formatUSD(amount)})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("URGENT: Payment Dispute Alert - %s", clientName)
	return s.send(ctx, s.adminEmail, subject, html)
}
