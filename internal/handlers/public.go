// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"brandvoice/internal/cache"
	"brandvoice/internal/content"
	"brandvoice/internal/markdown"
	"brandvoice/internal/voice"
)

// Public groups the unauthenticated handlers: the markdown marketing
// site, the blog, the voice catalog, and voice previews. Rendered pages
// go through the Valkey page cache; previews through the preview cache
// so repeated listens of the same text skip the TTS call.
type Public struct {
	pages    *cache.PageCache
	previews *cache.PreviewCache
	tts      *voice.Client
}

// NewPublic creates a new Public handler group.
func NewPublic(pages *cache.PageCache, previews *cache.PreviewCache, tts *voice.Client) *Public {
	return &Public{pages: pages, previews: previews, tts: tts}
}

// pageShell wraps rendered markdown in the site chrome. Body is
// goldmark output from trusted embedded sources, never user input.
var pageShell = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | BrandVoice Studio</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-white text-gray-900">
<header class="border-b border-gray-200">
<nav class="max-w-3xl mx-auto flex items-center justify-between px-4 py-4">
<a href="/" class="text-lg font-bold"><span class="text-indigo-600">Brand</span>Voice Studio</a>
<div class="space-x-4 text-sm text-gray-600">
<a href="/services" class="hover:text-gray-900">Services</a>
<a href="/pricing" class="hover:text-gray-900">Pricing</a>
<a href="/blog" class="hover:text-gray-900">Blog</a>
<a href="/about" class="hover:text-gray-900">About</a>
</div>
</nav>
</header>
<main class="max-w-3xl mx-auto px-4 py-10 prose prose-indigo">
{{.Body}}
</main>
<footer class="border-t border-gray-200 mt-10">
<div class="max-w-3xl mx-auto px-4 py-6 text-sm text-gray-500">&copy; 2026 BrandVoice Studio</div>
</footer>
</body>
</html>`))

type pageData struct {
	Title string
	Body  template.HTML
}

// renderPage converts a markdown page to the full HTML document.
func renderPage(p *content.Page) ([]byte, error) {
	body, err := markdown.ToHTML(p.Source)
	if err != nil {
		return nil, fmt.Errorf("render markdown for %q: %w", p.Slug, err)
	}
	title := p.Title
	if title == "" {
		title = p.Slug
	}
	var buf bytes.Buffer
	if err := pageShell.Execute(&buf, pageData{Title: title, Body: template.HTML(body)}); err != nil {
		return nil, fmt.Errorf("execute page shell for %q: %w", p.Slug, err)
	}
	return buf.Bytes(), nil
}

// servePage renders and caches a markdown page under the given cache key.
func (p *Public) servePage(w http.ResponseWriter, r *http.Request, key string, page *content.Page) {
	ctx := r.Context()

	rendered, err := renderPage(page)
	if err != nil {
		slog.Error("page render failed", "slug", page.Slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pages.Set(ctx, key, rendered)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}

// Homepage serves the marketing homepage from pages/home.md.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	if cached, ok := p.pages.Get(r.Context(), "home"); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	page, err := content.LoadPage("home")
	if err != nil || page == nil {
		if err != nil {
			slog.Error("load homepage failed", "error", err)
		}
		http.NotFound(w, r)
		return
	}
	p.servePage(w, r, "home", page)
}

// Page serves a marketing page by slug.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if cached, ok := p.pages.Get(r.Context(), slug); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	page, err := content.LoadPage(slug)
	if err != nil {
		slog.Error("load page failed", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}
	p.servePage(w, r, slug, page)
}

// BlogIndex lists all blog posts, newest first.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	if cached, ok := p.pages.Get(r.Context(), "blog"); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	posts, err := content.ListPosts()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var md strings.Builder
	md.WriteString("# Blog\n\n")
	for _, post := range posts {
		fmt.Fprintf(&md, "- [%s](/blog/%s)\n", post.Title, post.Slug)
	}

	p.servePage(w, r, "blog", &content.Page{Slug: "blog", Title: "Blog", Source: md.String()})
}

// BlogPost serves a single blog post by slug.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if cached, ok := p.pages.Get(r.Context(), "blog:"+slug); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	post, err := content.LoadPost(slug)
	if err != nil {
		slog.Error("load post failed", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}
	p.servePage(w, r, "blog:"+slug, post)
}

// Health reports liveness.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Voices returns the spokesperson voice catalog.
func (p *Public) Voices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"voices": voice.Catalog})
}

type voicePreviewRequest struct {
	VoiceID string `json:"voiceId"`
	Text    string `json:"text"`
}

// VoicePreview synthesizes a short sample of the requested voice saying
// the given text. Identical requests are served from the preview cache.
func (p *Public) VoicePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req voicePreviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if len(text) > voice.MaxPreviewTextLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("text must be at most %d characters", voice.MaxPreviewTextLength))
		return
	}

	v := voice.Find(req.VoiceID)
	if v == nil {
		writeError(w, http.StatusNotFound, "voice not found")
		return
	}

	if !p.tts.Configured() {
		writeError(w, http.StatusServiceUnavailable, "voice preview is not available")
		return
	}

	key := cache.PreviewKey(v.ID, text)
	audio, ok := p.previews.Get(ctx, key)
	if !ok {
		raw, err := p.tts.Synthesize(ctx, v.ID, text)
		if err != nil {
			slog.Error("voice preview synthesis failed", "voice", v.ID, "error", err)
			writeError(w, http.StatusBadGateway, "voice preview failed")
			return
		}
		audio = base64.StdEncoding.EncodeToString(raw)
		p.previews.Set(ctx, key, audio)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"audio": audio,
		"voice": map[string]string{"id": v.ID, "name": v.Name},
	})
}
