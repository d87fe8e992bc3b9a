package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	if len(Catalog) != 16 {
		t.Fatalf("catalog size = %d, want 16", len(Catalog))
	}

	seen := make(map[string]bool)
	for _, v := range Catalog {
		if v.ID == "" || v.Name == "" || v.Tone == "" || v.PreviewText == "" {
			t.Errorf("voice %q has empty fields: %+v", v.Name, v)
		}
		if seen[v.ID] {
			t.Errorf("duplicate voice ID %q", v.ID)
		}
		seen[v.ID] = true
		if !strings.HasPrefix(v.AudioURL, "/audio/voices/") {
			t.Errorf("voice %q audio URL %q should be a static path", v.Name, v.AudioURL)
		}
	}
}

func TestFind(t *testing.T) {
	v := Find("EXAVITQu4vr4xnSDxMaL")
	if v == nil {
		t.Fatal("Find: known voice not found")
	}
	if v.Name != "Sarah" {
		t.Errorf("Find: got %q, want Sarah", v.Name)
	}

	if Find("nope") != nil {
		t.Error("Find: unknown ID should return nil")
	}
}

func TestSynthesize(t *testing.T) {
	wantAudio := []byte("mp3-bytes-here")
	var gotPath string
	var gotHeaders http.Header
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(wantAudio)
	}))
	defer srv.Close()

	c := New("xi-test-key")
	c.baseURL = srv.URL

	audio, err := c.Synthesize(context.Background(), "voice-123", "Hello there")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !bytes.Equal(audio, wantAudio) {
		t.Errorf("audio = %q, want %q", audio, wantAudio)
	}
	if gotPath != "/text-to-speech/voice-123" {
		t.Errorf("path = %q, want /text-to-speech/voice-123", gotPath)
	}
	if gotHeaders.Get("xi-api-key") != "xi-test-key" {
		t.Errorf("xi-api-key = %q", gotHeaders.Get("xi-api-key"))
	}

	var req ttsRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("unmarshal request: %v", err)
	}
	if req.Text != "Hello there" {
		t.Errorf("text = %q", req.Text)
	}
	if req.ModelID != ttsModel {
		t.Errorf("model_id = %q, want %q", req.ModelID, ttsModel)
	}
	if req.VoiceSettings.Stability != 0.5 || req.VoiceSettings.SimilarityBoost != 0.75 {
		t.Errorf("voice_settings = %+v", req.VoiceSettings)
	}
}

func TestSynthesizeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "quota exceeded"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := New("xi-test-key")
	c.baseURL = srv.URL

	_, err := c.Synthesize(context.Background(), "voice-123", "Hello")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("error should mention status code: %v", err)
	}
}

func TestSynthesizeUnconfigured(t *testing.T) {
	c := New("")
	if c.Configured() {
		t.Error("Configured should be false without a key")
	}
	if _, err := c.Synthesize(context.Background(), "voice-123", "Hello"); err == nil {
		t.Error("Synthesize should fail without a key")
	}
}
