// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"strings"

	"newsdesk/internal/models"
)

const (
	maxTitleLen = 500
	maxSlugLen  = 255
	maxNameLen  = 255
)

// validateArticleStatus accepts only the known publishing states.
func validateArticleStatus(status models.ArticleStatus) error {
	switch status {
	case models.ArticleStatusDraft, models.ArticleStatusPublished, models.ArticleStatusArchived:
		return nil
	}
	return errors.New("status must be one of: draft, published, archived")
}

// validateTitle enforces a non-empty, bounded title.
func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	if len(title) > maxTitleLen {
		return errors.New("title is too long")
	}
	return nil
}

// validateName enforces a non-empty, bounded display name.
func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > maxNameLen {
		return errors.New("name is too long")
	}
	return nil
}

// validateSlug rejects oversized or whitespace-bearing slugs. Empty is
// allowed where callers generate one from the title.
func validateSlug(slug string) error {
	if len(slug) > maxSlugLen {
		return errors.New("slug is too long")
	}
	if strings.ContainsAny(slug, " \t\n") {
		return errors.New("slug must not contain whitespace")
	}
	return nil
}

// validateRole accepts only the known account roles.
func validateRole(role models.Role) error {
	switch role {
	case models.RoleAdmin, models.RoleEditor:
		return nil
	}
	return errors.New("role must be one of: admin, editor")
}
