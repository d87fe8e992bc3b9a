package handlers

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"brandvoice/internal/models"
	"brandvoice/internal/slug"
	"brandvoice/internal/storage"
)

// maxAssetSize caps uploaded deliverables. Finished spokesperson videos
// run well under this.
const maxAssetSize = 500 << 20 // 500 MiB

// assetPayload is a ClientAsset plus its presigned download URL.
type assetPayload struct {
	models.ClientAsset
	DownloadURL string `json:"downloadUrl"`
}

// UploadAsset stores a deliverable in object storage and records it for
// the portal. The form field name is "file".
func (a *Admin) UploadAsset(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAssetSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	fileName := sanitizeFileName(header.Filename)
	if fileName == "" {
		writeError(w, http.StatusBadRequest, "file name is required")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.AssetKey(client.ID.String(), fileName)
	if err := a.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		serverError(w, "asset upload failed", err)
		return
	}

	asset, err := a.assets.Create(&models.ClientAsset{
		ClientID:   client.ID,
		FileName:   fileName,
		FileType:   contentType,
		SizeBytes:  header.Size,
		StorageKey: key,
	})
	if err != nil {
		// The object is already in S3; remove it so storage and database
		// stay consistent.
		if delErr := a.storage.Delete(r.Context(), key); delErr != nil {
			slog.Error("orphaned asset cleanup failed", "error", delErr, "key", key)
		}
		serverError(w, "record asset failed", err)
		return
	}

	if asset.IsVideo() {
		if err := a.activity.Record(client.ID, models.ActivityVideoUploaded, "New video uploaded", asset.FileName+" was added to your library"); err != nil {
			slog.Error("record upload activity failed", "error", err, "client", client.ID)
		}
	}

	url, err := a.storage.PresignedURL(r.Context(), asset.StorageKey, storage.DefaultURLExpiry)
	if err != nil {
		serverError(w, "presign asset failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"asset": assetPayload{ClientAsset: *asset, DownloadURL: url},
	})
}

// ListAssets returns a client's deliverables with presigned download
// URLs, newest first.
func (a *Admin) ListAssets(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	assets, err := a.assets.ListByClient(client.ID)
	if err != nil {
		serverError(w, "list assets failed", err)
		return
	}

	payload := make([]assetPayload, 0, len(assets))
	for _, asset := range assets {
		url, err := a.storage.PresignedURL(r.Context(), asset.StorageKey, storage.DefaultURLExpiry)
		if err != nil {
			serverError(w, "presign asset failed", err)
			return
		}
		payload = append(payload, assetPayload{ClientAsset: asset, DownloadURL: url})
	}

	writeJSON(w, http.StatusOK, map[string]any{"assets": payload})
}

// DeleteAsset removes a deliverable from storage and the database.
func (a *Admin) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	client := a.loadClient(w, r)
	if client == nil {
		return
	}

	id, err := uuidFromParam(r, "assetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := a.assets.FindByID(id)
	if err != nil {
		serverError(w, "asset lookup failed", err)
		return
	}
	if asset == nil || asset.ClientID != client.ID {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	if err := a.storage.Delete(r.Context(), asset.StorageKey); err != nil {
		serverError(w, "delete stored object failed", err)
		return
	}
	if err := a.assets.Delete(asset.ID); err != nil {
		serverError(w, "delete asset record failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// sanitizeFileName strips any path components and normalizes the base
// name into a slug while keeping the extension.
func sanitizeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	ext := strings.ToLower(path.Ext(base))
	stem := slug.Generate(strings.TrimSuffix(base, ext))
	if stem == "" {
		return ""
	}
	return stem + ext
}
