// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxPreviewTextLength caps custom preview text. Previews are billed per
// character, so the limit protects against accidental large requests.
const MaxPreviewTextLength = 500

// ttsModel is the ElevenLabs model used for previews. Turbo trades a
// little quality for much lower latency, which suits interactive previews.
const ttsModel = "eleven_turbo_v2_5"

// Client calls the ElevenLabs text-to-speech API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates an ElevenLabs client. An empty apiKey yields a client whose
// Configured method reports false; callers should surface that as a
// service-unavailable condition rather than attempt synthesis.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.elevenlabs.io/v1",
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type ttsRequest struct {
	Text          string           `json:"text"`
	ModelID       string           `json:"model_id"`
	VoiceSettings ttsVoiceSettings `json:"voice_settings"`
}

type ttsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize renders text as speech in the given voice and returns the
// MP3 audio bytes.
func (c *Client) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("voice: ElevenLabs API key not configured")
	}

	body := ttsRequest{
		Text:    text,
		ModelID: ttsModel,
		VoiceSettings: ttsVoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("voice: marshal request: %w", err)
	}

	url := c.baseURL + "/text-to-speech/" + voiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("voice: build request: %w", err)
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voice: http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("voice: ElevenLabs error (status %d): %s", resp.StatusCode, string(errBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("voice: read audio: %w", err)
	}
	return audio, nil
}
