// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"newsdesk/internal/models"
)

func TestValidateArticleStatus(t *testing.T) {
	for _, status := range []models.ArticleStatus{
		models.ArticleStatusDraft, models.ArticleStatusPublished, models.ArticleStatusArchived,
	} {
		if err := validateArticleStatus(status); err != nil {
			t.Errorf("status %q should be valid: %v", status, err)
		}
	}
	if err := validateArticleStatus("retracted"); err == nil {
		t.Error("unknown status should be rejected")
	}
}

func TestValidateTitle(t *testing.T) {
	if err := validateTitle("A headline"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	if err := validateTitle("   "); err == nil {
		t.Error("whitespace-only title should be rejected")
	}
	if err := validateTitle(strings.Repeat("x", maxTitleLen+1)); err == nil {
		t.Error("oversized title should be rejected")
	}
}

func TestValidateSlug(t *testing.T) {
	if err := validateSlug("fine-slug"); err != nil {
		t.Errorf("valid slug rejected: %v", err)
	}
	if err := validateSlug(""); err != nil {
		t.Errorf("empty slug is allowed, generation fills it: %v", err)
	}
	if err := validateSlug("has space"); err == nil {
		t.Error("whitespace in slug should be rejected")
	}
	if err := validateSlug(strings.Repeat("a", maxSlugLen+1)); err == nil {
		t.Error("oversized slug should be rejected")
	}
}

func TestValidateRole(t *testing.T) {
	if err := validateRole(models.RoleAdmin); err != nil {
		t.Errorf("admin should be valid: %v", err)
	}
	if err := validateRole(models.RoleEditor); err != nil {
		t.Errorf("editor should be valid: %v", err)
	}
	if err := validateRole("superuser"); err == nil {
		t.Error("unknown role should be rejected")
	}
}

func TestMediaTypeFor(t *testing.T) {
	cases := map[string]string{
		"image/png":       "image",
		"image/svg+xml":   "image",
		"video/mp4":       "video",
		"application/pdf": "file",
	}
	for contentType, want := range cases {
		if got := mediaTypeFor(contentType); got != want {
			t.Errorf("mediaTypeFor(%q) = %q, want %q", contentType, got, want)
		}
	}
}
