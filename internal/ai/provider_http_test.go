// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestServer creates an httptest.Server that responds with the given
// status code and body bytes. The caller must call Close on the returned
// server.
func newTestServer(t *testing.T, statusCode int, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(body)
	}))
}

// openAISuccessBody builds a JSON body matching the OpenAI chat completions
// response format with a single choice containing the given text.
func openAISuccessBody(text string) []byte {
	resp := openAIResponse{
		Choices: []openAIChoice{
			{Message: openAIMessage{Role: "assistant", Content: text}},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

// claudeSuccessBody builds a JSON body matching the Anthropic Messages
// response format with a single text content block.
func claudeSuccessBody(text string) []byte {
	resp := claudeResponse{
		Content: []claudeContentBlock{
			{Type: "text", Text: text},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

func TestOpenAIGenerate_Success(t *testing.T) {
	want := "Hello from OpenAI"
	srv := newTestServer(t, http.StatusOK, openAISuccessBody(want))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: srv.URL,
	})

	got, err := p.Generate(context.Background(), "You are helpful.", "Say hello")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestOpenAIGenerate_VerifiesRequest(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(openAISuccessBody("ok"))
	}))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{
		APIKey:  "sk-test-12345",
		Model:   "gpt-4o",
		BaseURL: srv.URL,
	})

	_, err := p.Generate(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	authHeader := capturedHeaders.Get("Authorization")
	if authHeader != "Bearer sk-test-12345" {
		t.Errorf("Authorization header: got %q, want %q", authHeader, "Bearer sk-test-12345")
	}

	var req openAIRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal captured body: %v", err)
	}
	if req.Model != "gpt-4o" {
		t.Errorf("model: got %q, want %q", req.Model, "gpt-4o")
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("messages: got %+v, want system then user", req.Messages)
	}
	if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format: got %+v, want json_object", req.ResponseFormat)
	}
}

func TestOpenAIGenerate_APIError(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, []byte(`{"error": {"message": "invalid key"}}`))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "bad-key", Model: "gpt-4o", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("Generate: expected error for 401 response, got nil")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should mention status code: %v", err)
	}
}

func TestOpenAIGenerate_NoChoices(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"choices": []}`))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "test-key", Model: "gpt-4o", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("Generate: expected error for empty choices, got nil")
	}
}

func TestClaudeGenerate_Success(t *testing.T) {
	want := "Hello from Claude"
	srv := newTestServer(t, http.StatusOK, claudeSuccessBody(want))
	defer srv.Close()

	p := newClaude(ProviderConfig{
		APIKey:  "test-key",
		Model:   "claude-sonnet-4-20250514",
		BaseURL: srv.URL,
	})

	got, err := p.Generate(context.Background(), "You are helpful.", "Say hello")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestClaudeGenerate_VerifiesRequest(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(claudeSuccessBody("ok"))
	}))
	defer srv.Close()

	p := newClaude(ProviderConfig{
		APIKey:  "sk-ant-test",
		Model:   "claude-sonnet-4-20250514",
		BaseURL: srv.URL,
	})

	_, err := p.Generate(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	if got := capturedHeaders.Get("x-api-key"); got != "sk-ant-test" {
		t.Errorf("x-api-key header: got %q, want %q", got, "sk-ant-test")
	}
	if got := capturedHeaders.Get("anthropic-version"); got != "2023-06-01" {
		t.Errorf("anthropic-version header: got %q, want %q", got, "2023-06-01")
	}

	var req claudeRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal captured body: %v", err)
	}
	if req.System != "system prompt" {
		t.Errorf("system: got %q, want %q", req.System, "system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
		t.Errorf("messages: got %+v, want single user message", req.Messages)
	}
	if req.MaxTokens != 4096 {
		t.Errorf("max_tokens: got %d, want 4096", req.MaxTokens)
	}
}

func TestClaudeGenerate_APIError(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, []byte(`{"error": {"type": "rate_limit_error"}}`))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "test-key", Model: "claude-sonnet-4-20250514", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("Generate: expected error for 429 response, got nil")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should mention status code: %v", err)
	}
}

func TestClaudeGenerate_NoTextContent(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"content": [{"type": "tool_use"}]}`))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "test-key", Model: "claude-sonnet-4-20250514", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("Generate: expected error when no text block present, got nil")
	}
}
