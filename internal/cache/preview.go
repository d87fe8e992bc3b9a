// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// preview.go caches generated voice preview audio. ElevenLabs charges
// per character, so identical preview requests are served from Valkey
// instead of re-synthesizing.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	previewKeyPrefix = "voice-preview:"

	// DefaultPreviewTTL keeps synthesized previews for a day.
	DefaultPreviewTTL = 24 * time.Hour
)

// PreviewCache stores base64-encoded preview audio keyed by voice and text.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// PreviewKey derives a stable cache key from a voice ID and sample text.
func PreviewKey(voiceID, text string) string {
	sum := sha256.Sum256([]byte(voiceID + "\x00" + text))
	return voiceID + ":" + hex.EncodeToString(sum[:8])
}

// Get retrieves cached preview audio. Returns false on miss.
func (pc *PreviewCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := pc.client.Get(ctx, previewKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("preview cache get error", "key", key, "error", err)
		return "", false
	}
	return val, true
}

// Set stores base64-encoded preview audio with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, key, audioBase64 string) {
	if err := pc.client.Set(ctx, previewKeyPrefix+key, audioBase64, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "key", key, "error", err)
	}
}
