// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"newsdesk/internal/models"
)

func TestMediaUsageGuard(t *testing.T) {
	db := testDB(t)
	media := NewMediaStore(db)
	articles := NewArticleStore(db)

	url := "https://cdn.example.com/media/2026/08/" + uuid.NewString() + ".jpg"
	asset, err := media.Create(&models.MediaAsset{
		Type:     "image",
		FileName: "hero.jpg",
		URL:      url,
	})
	if err != nil {
		t.Fatalf("create media: %v", err)
	}

	usage, err := media.UsageInPublished(asset)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if !usage.CanDelete || len(usage.Articles) != 0 {
		t.Fatal("unused asset should be deletable")
	}

	article := mustCreateArticle(t, db, &models.Article{
		Status: models.ArticleStatusPublished,
		Title:  "Uses the image",
		Body:   strptr(`<img src="` + url + `">`),
	}, nil, nil)

	usage, err = media.UsageInPublished(asset)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.CanDelete || len(usage.Articles) != 1 {
		t.Fatalf("published reference should block deletion, got %+v", usage)
	}
	if usage.Articles[0].ID != article.ID {
		t.Fatal("blocking article should be reported")
	}

	// Unpublishing the article releases the guard.
	article.Status = models.ArticleStatusDraft
	if err := articles.Update(article, nil, nil); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	usage, err = media.UsageInPublished(asset)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if !usage.CanDelete {
		t.Fatal("draft references must not block deletion")
	}
}

func TestMediaUsageMatchesHeroImage(t *testing.T) {
	db := testDB(t)
	media := NewMediaStore(db)

	url := "https://cdn.example.com/media/2026/08/" + uuid.NewString() + ".png"
	asset, err := media.Create(&models.MediaAsset{
		Type:     "image",
		FileName: "lead.png",
		URL:      url,
	})
	if err != nil {
		t.Fatalf("create media: %v", err)
	}

	mustCreateArticle(t, db, &models.Article{
		Status:       models.ArticleStatusPublished,
		Title:        "Hero reference",
		HeroImageURL: &url,
	}, nil, nil)

	usage, err := media.UsageInPublished(asset)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.CanDelete {
		t.Fatal("hero image reference should block deletion")
	}
}

func TestMediaDeleteReturnsRow(t *testing.T) {
	db := testDB(t)
	media := NewMediaStore(db)

	asset, err := media.Create(&models.MediaAsset{
		Type:     "image",
		FileName: "gone.jpg",
		URL:      "https://cdn.example.com/media/gone.jpg",
	})
	if err != nil {
		t.Fatalf("create media: %v", err)
	}

	deleted, err := media.Delete(asset.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted == nil || deleted.URL != asset.URL {
		t.Fatal("delete should return the removed row")
	}

	again, err := media.Delete(asset.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if again != nil {
		t.Fatal("deleting a missing row should return nil, nil")
	}
}

func TestMediaListSearch(t *testing.T) {
	db := testDB(t)
	media := NewMediaStore(db)

	alt := "City skyline at night"
	if _, err := media.Create(&models.MediaAsset{
		Type: "image", FileName: "skyline.jpg",
		URL: "https://cdn.example.com/media/skyline.jpg", AltText: &alt,
	}); err != nil {
		t.Fatalf("create media: %v", err)
	}
	if _, err := media.Create(&models.MediaAsset{
		Type: "image", FileName: "harbor.jpg",
		URL: "https://cdn.example.com/media/harbor.jpg",
	}); err != nil {
		t.Fatalf("create media: %v", err)
	}

	items, total, err := media.ListWithCount(10, 0, "SKYLINE")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("case-insensitive search should match the skyline asset once, got %d/%d", len(items), total)
	}

	items, total, err = media.ListWithCount(10, 0, "night")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("alt text should be searched, got %d/%d", len(items), total)
	}

	items, total, err = media.ListWithCount(10, 0, "harbor")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected one harbor match, got %d/%d", len(items), total)
	}
}
