// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP API: staff administration, the
// client portal, authentication, and the public marketing endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxJSONBody caps request bodies on JSON endpoints. Script packs and
// intake forms are text; a megabyte is generous.
const maxJSONBody = 1 << 20

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError sends a JSON error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// serverError logs err and sends a generic 500 envelope. Internal detail
// never reaches the response body.
func serverError(w http.ResponseWriter, context string, err error) {
	slog.Error(context, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads a JSON request body into dst, rejecting unknown fields
// and oversized bodies.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	// A second document after the first is malformed input, not a stream.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body: unexpected trailing data")
	}
	return nil
}
