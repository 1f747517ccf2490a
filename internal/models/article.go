// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

// Article is a news story. It can belong to many categories and tags via
// junction tables; the primary category is a distinguished reference stored
// directly on the row and is expected to also be a member of the general
// category set (writers enforce the union, readers OR the two).
type Article struct {
	ID                uuid.UUID     `json:"id"`
	Status            ArticleStatus `json:"status"`
	Title             string        `json:"title"`
	Summary           *string       `json:"summary,omitempty"`
	Body              *string       `json:"body,omitempty"`
	Slug              string        `json:"slug"`
	PrimaryCategoryID *uuid.UUID    `json:"primary_category_id,omitempty"`
	HeroImageURL      *string       `json:"hero_image_url,omitempty"`
	IsBreaking        bool          `json:"is_breaking"`
	IsHighlight       bool          `json:"is_highlight"`
	IsFeatured        bool          `json:"is_featured"`
	PublishedAt       *time.Time    `json:"published_at,omitempty"`
	EmbargoAt         *time.Time    `json:"embargo_at,omitempty"`
	UnpublishAt       *time.Time    `json:"unpublish_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// IsPublished returns true if the article is publicly visible.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// ArticleRef is a minimal article projection used when enumerating the
// articles that block a media deletion.
type ArticleRef struct {
	ID     uuid.UUID     `json:"id"`
	Title  string        `json:"title"`
	Status ArticleStatus `json:"status"`
	Slug   string        `json:"slug"`
}
