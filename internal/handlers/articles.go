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

	"newsdesk/internal/middleware"
	"newsdesk/internal/models"
	"newsdesk/internal/slug"
	"newsdesk/internal/store"
)

// ArticleHandler serves the public article reads and the admin article
// CRUD.
type ArticleHandler struct {
	articles *store.ArticleStore
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(articles *store.ArticleStore) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// articleResponse is an article together with its resolved category and
// tag sets.
type articleResponse struct {
	models.Article
	Categories []models.Category `json:"categories"`
	Tags       []models.Tag      `json:"tags"`
}

func (h *ArticleHandler) expand(a *models.Article) (*articleResponse, error) {
	categories, err := h.articles.CategoriesFor(a.ID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	tags, err := h.articles.TagsFor(a.ID)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return &articleResponse{Article: *a, Categories: categories, Tags: tags}, nil
}

// List handles GET /api/articles. Anonymous callers always see published
// articles only; admins may pass status=draft|published|archived|all.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.ListFilter{
		Limit:        queryInt(r, "limit", 20),
		Offset:       queryInt(r, "offset", 0),
		CategorySlug: q.Get("category"),
		TagSlug:      q.Get("tag"),
		IsHighlight:  queryBool(r, "is_highlight"),
		DateFrom:     q.Get("date_from"),
		DateTo:       q.Get("date_to"),
	}

	published := models.ArticleStatusPublished
	if middleware.IsAdmin(r.Context()) {
		switch requested := q.Get("status"); requested {
		case "", "all":
			// nil status, every state visible
		default:
			status := models.ArticleStatus(requested)
			if err := validateArticleStatus(status); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			filter.Status = &status
		}
	} else {
		filter.Status = &published
	}

	items, err := h.articles.List(filter)
	if err != nil {
		slog.Error("list articles", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list articles")
		return
	}

	out := make([]articleResponse, 0, len(items))
	for i := range items {
		resp, err := h.expand(&items[i])
		if err != nil {
			slog.Error("expand article relations", "article_id", items[i].ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to list articles")
			return
		}
		out = append(out, *resp)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetBySlug handles GET /api/articles/{slug}. Unpublished articles are
// hidden from anonymous callers as if they did not exist.
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	articleSlug := chi.URLParam(r, "slug")

	article, err := h.articles.FindBySlug(articleSlug)
	if err != nil {
		slog.Error("get article by slug", "slug", articleSlug, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	if !article.IsPublished() && !middleware.IsAdmin(r.Context()) {
		slog.Warn("anonymous access to unpublished article denied", "slug", articleSlug)
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	resp, err := h.expand(article)
	if err != nil {
		slog.Error("expand article relations", "article_id", article.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetByID handles GET /api/admin/articles/{id}.
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	article, err := h.articles.FindByID(id)
	if err != nil {
		slog.Error("get article by id", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	resp, err := h.expand(article)
	if err != nil {
		slog.Error("expand article relations", "article_id", article.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// createArticleRequest is the admin creation payload. A nil CategoryIDs
// slice means no category set was sent, which is distinct from sending
// an empty array.
type createArticleRequest struct {
	Status            models.ArticleStatus `json:"status"`
	Title             string               `json:"title"`
	Summary           *string              `json:"summary"`
	Body              *string              `json:"body"`
	Slug              string               `json:"slug"`
	PrimaryCategoryID *uuid.UUID           `json:"primary_category_id"`
	HeroImageURL      *string              `json:"hero_image_url"`
	IsBreaking        bool                 `json:"is_breaking"`
	IsHighlight       bool                 `json:"is_highlight"`
	IsFeatured        bool                 `json:"is_featured"`
	PublishedAt       *time.Time           `json:"published_at"`
	EmbargoAt         *time.Time           `json:"embargo_at"`
	UnpublishAt       *time.Time           `json:"unpublish_at"`
	CategoryIDs       []uuid.UUID          `json:"category_ids"`
	TagIDs            []uuid.UUID          `json:"tag_ids"`
}

// Create handles POST /api/admin/articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Status == "" {
		req.Status = models.ArticleStatusDraft
	}
	if err := validateArticleStatus(req.Status); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateTitle(req.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateSlug(req.Slug); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
		if req.Slug == "" {
			req.Slug = slug.WithSuffix("article")
		}
	}

	article := &models.Article{
		Status:            req.Status,
		Title:             req.Title,
		Summary:           req.Summary,
		Body:              req.Body,
		Slug:              req.Slug,
		PrimaryCategoryID: req.PrimaryCategoryID,
		HeroImageURL:      req.HeroImageURL,
		IsBreaking:        req.IsBreaking,
		IsHighlight:       req.IsHighlight,
		IsFeatured:        req.IsFeatured,
		PublishedAt:       req.PublishedAt,
		EmbargoAt:         req.EmbargoAt,
		UnpublishAt:       req.UnpublishAt,
	}

	created, err := h.articles.Create(article, req.CategoryIDs, req.TagIDs)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "an article with this slug already exists")
			return
		}
		slog.Error("create article", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create article")
		return
	}

	resp, err := h.expand(created)
	if err != nil {
		slog.Error("expand article relations", "article_id", created.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create article")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Update handles PUT /api/admin/articles/{id}. The payload is a partial
// document: only keys present in the JSON body change the stored row, so
// an explicit null clears a nullable field while an absent key leaves it
// alone.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	article, err := h.articles.FindByID(id)
	if err != nil {
		slog.Error("load article for update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var categoryIDs, tagIDs []uuid.UUID
	apply := func(key string, dst any) bool {
		raw, present := fields[key]
		if !present {
			return true
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			writeError(w, http.StatusBadRequest, "invalid value for "+key)
			return false
		}
		return true
	}

	if !apply("status", &article.Status) ||
		!apply("title", &article.Title) ||
		!apply("summary", &article.Summary) ||
		!apply("body", &article.Body) ||
		!apply("slug", &article.Slug) ||
		!apply("primary_category_id", &article.PrimaryCategoryID) ||
		!apply("hero_image_url", &article.HeroImageURL) ||
		!apply("is_breaking", &article.IsBreaking) ||
		!apply("is_highlight", &article.IsHighlight) ||
		!apply("is_featured", &article.IsFeatured) ||
		!apply("published_at", &article.PublishedAt) ||
		!apply("embargo_at", &article.EmbargoAt) ||
		!apply("unpublish_at", &article.UnpublishAt) {
		return
	}

	if raw, present := fields["category_ids"]; present {
		if err := json.Unmarshal(raw, &categoryIDs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid value for category_ids")
			return
		}
		if categoryIDs == nil {
			// Explicit null clears the set, same as an empty array.
			categoryIDs = []uuid.UUID{}
		}
	}
	if raw, present := fields["tag_ids"]; present {
		if err := json.Unmarshal(raw, &tagIDs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid value for tag_ids")
			return
		}
		if tagIDs == nil {
			tagIDs = []uuid.UUID{}
		}
	}

	if err := validateArticleStatus(article.Status); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateTitle(article.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateSlug(article.Slug); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if article.Slug == "" {
		article.Slug = slug.Generate(article.Title)
	}

	if err := h.articles.Update(article, categoryIDs, tagIDs); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "an article with this slug already exists")
			return
		}
		slog.Error("update article", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update article")
		return
	}

	updated, err := h.articles.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload article after update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update article")
		return
	}
	resp, err := h.expand(updated)
	if err != nil {
		slog.Error("expand article relations", "article_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update article")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/admin/articles/{id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	article, err := h.articles.FindByID(id)
	if err != nil {
		slog.Error("load article for delete", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	if err := h.articles.Delete(id); err != nil {
		slog.Error("delete article", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete article")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
