// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// All templates use inline styles for email client compatibility. The
// shared fragments keep the five messages visually consistent.
const (
	styleContainer = `max-width: 600px; margin: 0 auto; padding: 40px 20px; font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif;`
	styleCard      = `background-color: #ffffff; border: 1px solid #e5e7eb; border-radius: 8px; padding: 40px; margin-bottom: 20px;`
	styleHeader    = `color: #2563eb; font-size: 28px; font-weight: bold; margin-bottom: 20px; margin-top: 0;`
	styleText      = `color: #4b5563; font-size: 16px; line-height: 1.6; margin-bottom: 16px;`
	styleButton    = `display: inline-block; background-color: #2563eb; color: #ffffff; text-decoration: none; padding: 14px 28px; border-radius: 6px; font-weight: 600; font-size: 16px; margin-top: 20px; margin-bottom: 20px;`
	styleAlert     = `background-color: #fee2e2; padding: 20px; border-radius: 6px; border-left: 4px solid #dc2626; margin: 20px 0;`
	styleSuccess   = `background-color: #d1fae5; padding: 20px; border-radius: 6px; border-left: 4px solid #059669; margin: 20px 0;`
	styleFooter    = `color: #9ca3af; font-size: 14px; text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #e5e7eb;`
)

const emailShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f9fafb;">
  <div style="{{.StyleContainer}}">
    <div style="{{.StyleCard}}">
{{.Body}}
    </div>
    <div style="{{.StyleFooter}}">
      <p>BrandVoice Studio - Amplify Your Brand with AI-Powered Video</p>
      <p>You're receiving this email because you have an account with BrandVoice Studio</p>
    </div>
  </div>
</body>
</html>`

var shellTmpl = template.Must(template.New("shell").Parse(emailShell))

type shellData struct {
	Title          string
	Body           template.HTML
	StyleContainer string
	StyleCard      string
	StyleFooter    string
}

// renderShell wraps a body fragment in the standard document frame.
func renderShell(title string, body *template.Template, data any) (string, error) {
	var inner bytes.Buffer
	if err := body.Execute(&inner, data); err != nil {
		return "", fmt.Errorf("email: render %s body: %w", title, err)
	}

	var out bytes.Buffer
	err := shellTmpl.Execute(&out, shellData{
		Title:          title,
		Body:           template.HTML(inner.String()),
		StyleContainer: styleContainer,
		StyleCard:      styleCard,
		StyleFooter:    styleFooter,
	})
	if err != nil {
		return "", fmt.Errorf("email: render %s shell: %w", title, err)
	}
	return out.String(), nil
}

type bodyStyles struct {
	Header  string
	Text    string
	Button  string
	Alert   string
	Success string
}

var styles = bodyStyles{
	Header:  styleHeader,
	Text:    styleText,
	Button:  styleButton,
	Alert:   styleAlert,
	Success: styleSuccess,
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
      <h1 style="{{.S.Header}}">Welcome to BrandVoice Studio, {{.ClientName}}!</h1>
      <p style="{{.S.Text}}">
        We're thrilled to have you on board! You've just taken the first step towards
        transforming your brand's digital presence with AI-powered spokesperson videos.
      </p>
      <div style="{{.S.Success}}">
        <strong style="color: #065f46;">Your {{.PackageName}} package is now active!</strong>
      </div>
      <p style="{{.S.Text}}">
        <strong>What happens next?</strong> Complete your intake form, book your strategy
        call, and we'll craft your first scripts. Most clients see their first videos
        within 7-10 business days after the strategy call.
      </p>
      <a href="{{.BaseURL}}/portal" style="{{.S.Button}}">Open Your Portal</a>
      <p style="{{.S.Text}}">
        Have questions? Reply to this email anytime. Our team is here to help!
      </p>`))

var paymentReceivedTmpl = template.Must(template.New("payment-received").Parse(`
      <h1 style="{{.S.Header}}">Payment Received - Thank You!</h1>
      <p style="{{.S.Text}}">Hi {{.ClientName}},</p>
      <div style="{{.S.Success}}">
        <strong style="color: #065f46;">We've received your payment of {{.Amount}}.</strong>
      </div>
      <p style="{{.S.Text}}">
        Your account is in good standing and your content production continues on
        schedule. You can track progress anytime in your portal.
      </p>
      <a href="{{.BaseURL}}/portal" style="{{.S.Button}}">View Your Dashboard</a>`))

var paymentFailedTmpl = template.Must(template.New("payment-failed").Parse(`
      <h1 style="color: #dc2626; font-size: 28px; font-weight: bold; margin-bottom: 20px; margin-top: 0;">Payment Failed - Action Required</h1>
      <p style="{{.S.Text}}">Hi {{.ClientName}},</p>
      <div style="{{.S.Alert}}">
        <strong style="color: #991b1b;">We couldn't process your latest payment.</strong>
      </div>
      <p style="{{.S.Text}}">
        This usually happens when a card expires or a bank declines the charge.
        Please update your payment method so your content production isn't interrupted.
      </p>
      <a href="{{.UpdateLink}}" style="{{.S.Button}}">Update Payment Method</a>
      <p style="{{.S.Text}}">
        If you believe this is a mistake, just reply to this email and we'll sort it out.
      </p>`))

var winBackTmpl = template.Must(template.New("win-back").Parse(`
      <h1 style="{{.S.Header}}">We Miss You, {{.ClientName}}!</h1>
      <p style="{{.S.Text}}">
        It's been a while since we've seen you at BrandVoice Studio, and we wanted to
        reach out to see how you're doing.
      </p>
      <p style="{{.S.Text}}">
        Your audience hasn't stopped scrolling. A fresh batch of spokesperson videos
        could put your brand right back in their feed.
      </p>
{{if .OfferCode}}      <div style="{{.S.Success}}">
        <strong style="color: #065f46;">Use code {{.OfferCode}} for a special welcome-back discount.</strong>
      </div>
{{end}}      <a href="{{.BaseURL}}" style="{{.S.Button}}">Come Back to BrandVoice</a>`))

var disputeAlertTmpl = template.Must(template.New("dispute-alert").Parse(`
      <h1 style="color: #dc2626; font-size: 28px; font-weight: bold; margin-bottom: 20px; margin-top: 0;">URGENT: Payment Dispute Alert</h1>
      <div style="{{.S.Alert}}">
        <strong style="color: #991b1b;">{{.ClientName}} has opened a payment dispute for {{.Amount}}.</strong>
      </div>
      <p style="{{.S.Text}}">
        Case reference: {{.CaseID}}
      </p>
      <p style="{{.S.Text}}">
        Disputes have a response deadline. Gather delivery evidence (approved scripts,
        uploaded videos, portal activity) and respond as soon as possible.
      </p>`))

var weeklyDigestTmpl = template.Must(template.New("weekly-digest").Parse(`
      <h1 style="{{.S.Header}}">Weekly Studio Digest</h1>
      <p style="{{.S.Text}}">Week of {{.WeekOf}}</p>
      <p style="{{.S.Text}}">
        <strong>{{.ActiveClients}}</strong> active clients,
        <strong>{{.PendingPayments}}</strong> with payment issues.
      </p>
      <ul style="color: #4b5563; font-size: 16px; line-height: 1.8; margin-bottom: 16px; padding-left: 20px;">
{{range .StatusLines}}        <li>{{.}}</li>
{{end}}      </ul>`))

// formatUSD renders an amount the way the billing provider displays it.
func formatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
