// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/imaging"
	"newsdesk/internal/models"
	"newsdesk/internal/storage"
	"newsdesk/internal/store"
)

// allowedUploadTypes maps accepted MIME types to the extension used for
// the stored object key.
var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/svg+xml":   ".svg",
	"video/mp4":       ".mp4",
	"application/pdf": ".pdf",
}

// MediaHandler serves the admin media library: listing, uploads, the
// usage check and guarded deletion.
type MediaHandler struct {
	media   *store.MediaStore
	storage *storage.Client // nil when object storage is not configured
	maxMB   int
}

// NewMediaHandler creates a MediaHandler. storage may be nil, which
// disables uploads and skips backing-file cleanup on delete.
func NewMediaHandler(media *store.MediaStore, st *storage.Client, maxMB int) *MediaHandler {
	return &MediaHandler{media: media, storage: st, maxMB: maxMB}
}

// List handles GET /api/admin/media with optional q, limit and offset.
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.media.ListWithCount(
		queryInt(r, "limit", 100),
		queryInt(r, "offset", 0),
		r.URL.Query().Get("q"),
	)
	if err != nil {
		slog.Error("list media", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list media")
		return
	}
	if items == nil {
		items = []models.MediaAsset{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

// Upload handles POST /api/admin/media: a multipart form with a "file"
// part plus optional alt_text, caption and credit fields.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	maxBytes := int64(h.maxMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	contentType := sniffContentType(header, data)
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported file type "+contentType)
		return
	}

	key := fmt.Sprintf("media/%s/%s%s", time.Now().Format("2006/01"), uuid.NewString(), ext)
	if err := h.storage.Upload(r.Context(), key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("upload media object", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	asset := &models.MediaAsset{
		Type:     mediaTypeFor(contentType),
		FileName: filepath.Base(header.Filename),
		URL:      h.storage.FileURL(key),
		MimeType: &contentType,
	}
	if strings.HasPrefix(contentType, "image/") && contentType != "image/svg+xml" {
		if width, height, err := imaging.Dimensions(data); err == nil {
			asset.Width = &width
			asset.Height = &height
		}
	}
	if v := r.FormValue("alt_text"); v != "" {
		asset.AltText = &v
	}
	if v := r.FormValue("caption"); v != "" {
		asset.Caption = &v
	}
	if v := r.FormValue("credit"); v != "" {
		asset.Credit = &v
	}

	created, err := h.media.Create(asset)
	if err != nil {
		slog.Error("create media record", "error", err)
		// Best-effort removal of the orphaned object.
		if delErr := h.storage.Delete(r.Context(), key); delErr != nil {
			slog.Warn("cleanup orphaned upload", "key", key, "error", delErr)
		}
		writeError(w, http.StatusInternalServerError, "failed to save media record")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CheckUsage handles GET /api/admin/media/{id}/usage: reports whether
// the asset can be deleted and which published articles block it.
func (h *MediaHandler) CheckUsage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	asset, err := h.media.FindByID(id)
	if err != nil {
		slog.Error("load media for usage check", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to check usage")
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "media not found")
		return
	}

	usage, err := h.media.UsageInPublished(asset)
	if err != nil {
		slog.Error("media usage query", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to check usage")
		return
	}
	writeJSON(w, http.StatusOK, usage)
}

// Delete handles DELETE /api/admin/media/{id}. Deletion is refused with
// 409 while any published article still references the asset's URL. The
// database row goes first; removing the backing object is best effort.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	asset, err := h.media.FindByID(id)
	if err != nil {
		slog.Error("load media for delete", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete media")
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "media not found")
		return
	}

	usage, err := h.media.UsageInPublished(asset)
	if err != nil {
		slog.Error("media usage query", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete media")
		return
	}
	if !usage.CanDelete {
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":    "media is referenced by published articles",
			"articles": usage.Articles,
		})
		return
	}

	deleted, err := h.media.Delete(id)
	if err != nil {
		slog.Error("delete media record", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete media")
		return
	}
	if deleted != nil && h.storage != nil {
		if key, ok := h.storage.KeyFromURL(deleted.URL); ok {
			if err := h.storage.Delete(r.Context(), key); err != nil {
				slog.Warn("delete media object", "key", key, "error", err)
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// sniffContentType prefers the detected type over the client-declared
// header, except for SVG which http.DetectContentType reports as plain
// XML or text.
func sniffContentType(header *multipart.FileHeader, data []byte) string {
	declared := header.Header.Get("Content-Type")
	detected := http.DetectContentType(data)
	if declared == "image/svg+xml" &&
		(strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "text/plain")) {
		return declared
	}
	if idx := strings.IndexByte(detected, ';'); idx != -1 {
		detected = detected[:idx]
	}
	return detected
}

// mediaTypeFor buckets a MIME type into the coarse media type column.
func mediaTypeFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "file"
	}
}
