// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package pdf renders HTML documents to PDF through an external
// Gotenberg-compatible service. No layout logic lives in this process;
// the export package produces HTML and this client converts it.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// convertPath is Gotenberg's Chromium HTML conversion route.
const convertPath = "/forms/chromium/convert/html"

// Renderer converts HTML to PDF via a remote rendering service.
type Renderer struct {
	baseURL string
	http    *http.Client
}

// New creates a renderer pointed at a Gotenberg-compatible base URL.
// An empty baseURL yields a renderer whose Configured method reports
// false; callers should disable PDF export in that case.
func New(baseURL string) *Renderer {
	return &Renderer{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether a renderer URL is present.
func (r *Renderer) Configured() bool {
	return r.baseURL != ""
}

// Render converts an HTML document into PDF bytes. The document is sent
// as index.html, which is the entrypoint name the renderer expects.
func (r *Renderer) Render(ctx context.Context, html string) ([]byte, error) {
	if !r.Configured() {
		return nil, fmt.Errorf("pdf: renderer URL not configured")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, fmt.Errorf("pdf: build form: %w", err)
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, fmt.Errorf("pdf: write form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("pdf: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+convertPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("pdf: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdf: http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("pdf: renderer error (status %d): %s", resp.StatusCode, string(errBody))
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pdf: read response: %w", err)
	}
	return out, nil
}
