// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestArticleIsPublished(t *testing.T) {
	for status, want := range map[ArticleStatus]bool{
		ArticleStatusDraft:     false,
		ArticleStatusPublished: true,
		ArticleStatusArchived:  false,
	} {
		a := Article{Status: status}
		if a.IsPublished() != want {
			t.Errorf("IsPublished() with status %q = %v, want %v", status, !want, want)
		}
	}
}

func TestMediaAssetIsImage(t *testing.T) {
	jpeg := "image/jpeg"
	pdf := "application/pdf"

	if !(&MediaAsset{MimeType: &jpeg}).IsImage() {
		t.Error("jpeg should be an image")
	}
	if (&MediaAsset{MimeType: &pdf}).IsImage() {
		t.Error("pdf is not an image")
	}
	if (&MediaAsset{}).IsImage() {
		t.Error("missing mime type is not an image")
	}
}

func TestSectionItemPinnedAt(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	open := HomepageSectionItem{}
	if open.PinnedAt(now) {
		t.Error("items without a window are not pinned")
	}

	active := HomepageSectionItem{PinStartAt: &before, PinEndAt: &after}
	if !active.PinnedAt(now) {
		t.Error("window covering now should be pinned")
	}
	if active.PinnedAt(after.Add(time.Minute)) {
		t.Error("pin_end_at is exclusive")
	}
	if !active.PinnedAt(before) {
		t.Error("pin_start_at is inclusive")
	}
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	data, err := json.Marshal(User{Name: "A", PasswordHash: "bcrypt-material"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "bcrypt-material") {
		t.Fatal("password hash must never serialize")
	}
}
