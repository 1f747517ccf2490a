// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/models"
	"newsdesk/internal/slug"
	"newsdesk/internal/store"
)

// TagHandler serves tag reads and the admin tag CRUD.
type TagHandler struct {
	tags *store.TagStore
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(tags *store.TagStore) *TagHandler {
	return &TagHandler{tags: tags}
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.tags.List()
	if err != nil {
		slog.Error("list tags", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list tags")
		return
	}
	if items == nil {
		items = []models.Tag{}
	}
	writeJSON(w, http.StatusOK, items)
}

type tagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Create handles POST /api/admin/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateName(req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateSlug(req.Slug); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Name)
	}

	created, err := h.tags.Create(&models.Tag{Name: req.Name, Slug: req.Slug})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a tag with this slug already exists")
			return
		}
		slog.Error("create tag", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create tag")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/tags/{id}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	tag, err := h.tags.FindByID(id)
	if err != nil {
		slog.Error("load tag for update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update tag")
		return
	}
	if tag == nil {
		writeError(w, http.StatusNotFound, "tag not found")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if raw, present := fields["name"]; present {
		if err := json.Unmarshal(raw, &tag.Name); err != nil {
			writeError(w, http.StatusBadRequest, "invalid value for name")
			return
		}
	}
	if raw, present := fields["slug"]; present {
		if err := json.Unmarshal(raw, &tag.Slug); err != nil {
			writeError(w, http.StatusBadRequest, "invalid value for slug")
			return
		}
	}

	if err := validateName(tag.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateSlug(tag.Slug); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if tag.Slug == "" {
		tag.Slug = slug.Generate(tag.Name)
	}

	if err := h.tags.Update(tag); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a tag with this slug already exists")
			return
		}
		slog.Error("update tag", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update tag")
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// Delete handles DELETE /api/admin/tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	tag, err := h.tags.FindByID(id)
	if err != nil {
		slog.Error("load tag for delete", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete tag")
		return
	}
	if tag == nil {
		writeError(w, http.StatusNotFound, "tag not found")
		return
	}

	if err := h.tags.Delete(id); err != nil {
		slog.Error("delete tag", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete tag")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
