// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/models"
	"newsdesk/internal/slug"
	"newsdesk/internal/store"
)

// CategoryHandler serves category reads and the admin category CRUD.
type CategoryHandler struct {
	categories *store.CategoryStore
	articles   *store.ArticleStore
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories *store.CategoryStore, articles *store.ArticleStore) *CategoryHandler {
	return &CategoryHandler{categories: categories, articles: articles}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List(queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		slog.Error("list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GetBySlug handles GET /api/categories/{slug}: the category plus its
// published articles.
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	categorySlug := chi.URLParam(r, "slug")

	category, err := h.categories.FindBySlug(categorySlug)
	if err != nil {
		slog.Error("get category by slug", "slug", categorySlug, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load category")
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	published := models.ArticleStatusPublished
	articles, err := h.articles.List(store.ListFilter{
		CategorySlug: categorySlug,
		Status:       &published,
		Limit:        queryInt(r, "limit", 20),
		Offset:       queryInt(r, "offset", 0),
	})
	if err != nil {
		slog.Error("list category articles", "slug", categorySlug, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load category")
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"articles": articles,
	})
}

type categoryRequest struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	OrderIndex int    `json:"order_index"`
	IsActive   *bool  `json:"is_active"`
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
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

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := h.categories.Create(&models.Category{
		Name:       req.Name,
		Slug:       req.Slug,
		OrderIndex: req.OrderIndex,
		IsActive:   isActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a category with this slug already exists")
			return
		}
		slog.Error("create category", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categories.FindByID(id)
	if err != nil {
		slog.Error("load category for update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for key, dst := range map[string]any{
		"name":        &category.Name,
		"slug":        &category.Slug,
		"order_index": &category.OrderIndex,
		"is_active":   &category.IsActive,
	} {
		if raw, present := fields[key]; present {
			if err := json.Unmarshal(raw, dst); err != nil {
				writeError(w, http.StatusBadRequest, "invalid value for "+key)
				return
			}
		}
	}

	if err := validateName(category.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateSlug(category.Slug); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if category.Slug == "" {
		category.Slug = slug.Generate(category.Name)
	}

	if err := h.categories.Update(category); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a category with this slug already exists")
			return
		}
		slog.Error("update category", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Delete handles DELETE /api/admin/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categories.FindByID(id)
	if err != nil {
		slog.Error("load category for delete", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	if err := h.categories.Delete(id); err != nil {
		slog.Error("delete category", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
