// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"newsdesk/internal/models"
	"newsdesk/internal/store"
)

// SectionHandler serves homepage section reads and the admin section and
// placement CRUD.
type SectionHandler struct {
	sections *store.SectionStore
	articles *store.ArticleStore
}

// NewSectionHandler creates a SectionHandler.
func NewSectionHandler(sections *store.SectionStore, articles *store.ArticleStore) *SectionHandler {
	return &SectionHandler{sections: sections, articles: articles}
}

// List handles GET /api/sections.
func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sections.List()
	if err != nil {
		slog.Error("list sections", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list sections")
		return
	}
	if items == nil {
		items = []models.HomepageSection{}
	}
	writeJSON(w, http.StatusOK, items)
}

// sectionItemResponse pairs a placement with its resolved article.
type sectionItemResponse struct {
	models.HomepageSectionItem
	Pinned  bool            `json:"pinned"`
	Article *models.Article `json:"article,omitempty"`
}

// Items handles GET /api/sections/{key}/items: the section's placements
// in display order, with their articles resolved. Placements pointing at
// unpublished articles are filtered out; each item reports whether its
// pin window covers the current time.
func (h *SectionHandler) Items(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	section, err := h.sections.FindByKey(key)
	if err != nil {
		slog.Error("get section by key", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load section")
		return
	}
	if section == nil {
		writeError(w, http.StatusNotFound, "section not found")
		return
	}

	items, err := h.sections.ItemsForSection(section.ID, queryInt(r, "limit", 100), queryInt(r, "offset", 0))
	if err != nil {
		slog.Error("list section items", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load section")
		return
	}

	now := time.Now()
	out := make([]sectionItemResponse, 0, len(items))
	for i := range items {
		item := items[i]
		article, err := h.articles.FindByID(item.ArticleID)
		if err != nil {
			slog.Error("resolve section item article", "item_id", item.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load section")
			return
		}
		if article == nil || !article.IsPublished() {
			continue
		}
		out = append(out, sectionItemResponse{
			HomepageSectionItem: item,
			Pinned:              item.PinnedAt(now),
			Article:             article,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"section": section,
		"items":   out,
	})
}

type sectionRequest struct {
	Key        string  `json:"key"`
	Title      *string `json:"title"`
	LayoutType *string `json:"layout_type"`
}

// Create handles POST /api/admin/sections.
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	created, err := h.sections.Create(&models.HomepageSection{
		Key:        req.Key,
		Title:      req.Title,
		LayoutType: req.LayoutType,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a section with this key already exists")
			return
		}
		slog.Error("create section", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create section")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/sections/{id}.
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	section, err := h.sections.FindByID(id)
	if err != nil {
		slog.Error("load section for update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update section")
		return
	}
	if section == nil {
		writeError(w, http.StatusNotFound, "section not found")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for key, dst := range map[string]any{
		"key":         &section.Key,
		"title":       &section.Title,
		"layout_type": &section.LayoutType,
	} {
		if raw, present := fields[key]; present {
			if err := json.Unmarshal(raw, dst); err != nil {
				writeError(w, http.StatusBadRequest, "invalid value for "+key)
				return
			}
		}
	}
	if section.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	if err := h.sections.Update(section); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a section with this key already exists")
			return
		}
		slog.Error("update section", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update section")
		return
	}
	writeJSON(w, http.StatusOK, section)
}

// Delete handles DELETE /api/admin/sections/{id}. Placements cascade.
func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	section, err := h.sections.FindByID(id)
	if err != nil {
		slog.Error("load section for delete", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete section")
		return
	}
	if section == nil {
		writeError(w, http.StatusNotFound, "section not found")
		return
	}

	if err := h.sections.Delete(id); err != nil {
		slog.Error("delete section", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete section")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type sectionItemRequest struct {
	SectionID  uuid.UUID  `json:"section_id"`
	ArticleID  uuid.UUID  `json:"article_id"`
	OrderIndex int        `json:"order_index"`
	PinStartAt *time.Time `json:"pin_start_at"`
	PinEndAt   *time.Time `json:"pin_end_at"`
}

// CreateItem handles POST /api/admin/section-items.
func (h *SectionHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req sectionItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SectionID == uuid.Nil || req.ArticleID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "section_id and article_id are required")
		return
	}

	section, err := h.sections.FindByID(req.SectionID)
	if err != nil {
		slog.Error("resolve section for item", "section_id", req.SectionID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create section item")
		return
	}
	if section == nil {
		writeError(w, http.StatusBadRequest, "section does not exist")
		return
	}
	article, err := h.articles.FindByID(req.ArticleID)
	if err != nil {
		slog.Error("resolve article for item", "article_id", req.ArticleID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create section item")
		return
	}
	if article == nil {
		writeError(w, http.StatusBadRequest, "article does not exist")
		return
	}

	created, err := h.sections.CreateItem(&models.HomepageSectionItem{
		SectionID:  req.SectionID,
		ArticleID:  req.ArticleID,
		OrderIndex: req.OrderIndex,
		PinStartAt: req.PinStartAt,
		PinEndAt:   req.PinEndAt,
	})
	if err != nil {
		slog.Error("create section item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create section item")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateItem handles PUT /api/admin/section-items/{id}.
func (h *SectionHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	item, err := h.sections.FindItemByID(id)
	if err != nil {
		slog.Error("load section item for update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update section item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "section item not found")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for key, dst := range map[string]any{
		"section_id":   &item.SectionID,
		"article_id":   &item.ArticleID,
		"order_index":  &item.OrderIndex,
		"pin_start_at": &item.PinStartAt,
		"pin_end_at":   &item.PinEndAt,
	} {
		if raw, present := fields[key]; present {
			if err := json.Unmarshal(raw, dst); err != nil {
				writeError(w, http.StatusBadRequest, "invalid value for "+key)
				return
			}
		}
	}

	if err := h.sections.UpdateItem(item); err != nil {
		slog.Error("update section item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update section item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/admin/section-items/{id}.
func (h *SectionHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	item, err := h.sections.FindItemByID(id)
	if err != nil {
		slog.Error("load section item for delete", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete section item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "section item not found")
		return
	}

	if err := h.sections.DeleteItem(id); err != nil {
		slog.Error("delete section item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete section item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
