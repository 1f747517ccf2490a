// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"newsdesk/internal/models"
)

func TestCategoryCRUD(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	created, err := s.Create(&models.Category{
		Name: "World", Slug: "world", OrderIndex: 3, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := s.FindBySlug("world")
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatal("created category should be findable by slug")
	}

	created.Name = "World News"
	created.IsActive = false
	if err := s.Update(created); err != nil {
		t.Fatalf("update: %v", err)
	}
	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.Name != "World News" || found.IsActive {
		t.Fatalf("update not persisted: %+v", found)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if found != nil {
		t.Fatal("deleted category should be gone")
	}
}

func TestCategorySlugConflict(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	if _, err := s.Create(&models.Category{Name: "One", Slug: "shared", IsActive: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := s.Create(&models.Category{Name: "Two", Slug: "shared", IsActive: true})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate slug, got %v", err)
	}
}

func TestCategoryListOrder(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	for _, c := range []models.Category{
		{Name: "Zed", Slug: "zed", OrderIndex: 0, IsActive: true},
		{Name: "First", Slug: "first", OrderIndex: 0, IsActive: true},
		{Name: "Later", Slug: "later", OrderIndex: 5, IsActive: true},
	} {
		c := c
		if _, err := s.Create(&c); err != nil {
			t.Fatalf("create %s: %v", c.Slug, err)
		}
	}

	items, err := s.List(10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(items))
	}
	if items[0].Slug != "first" || items[1].Slug != "zed" || items[2].Slug != "later" {
		t.Fatalf("expected order_index then name ordering, got %s, %s, %s",
			items[0].Slug, items[1].Slug, items[2].Slug)
	}
}

func TestDeleteCategoryResetsPrimaryReference(t *testing.T) {
	db := testDB(t)
	categories := NewCategoryStore(db)
	articles := NewArticleStore(db)

	category := mustCreateCategory(t, db, "doomed")
	article := mustCreateArticle(t, db, &models.Article{
		Status:            models.ArticleStatusDraft,
		Title:             "Orphaned",
		PrimaryCategoryID: &category.ID,
	}, nil, nil)

	if err := categories.Delete(category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	found, err := articles.FindByID(article.ID)
	if err != nil {
		t.Fatalf("find article: %v", err)
	}
	if found.PrimaryCategoryID != nil {
		t.Fatal("primary category reference should be reset to NULL")
	}
}

func TestTagCRUD(t *testing.T) {
	db := testDB(t)
	s := NewTagStore(db)

	created, err := s.Create(&models.Tag{Name: "Economy", Slug: "economy"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Create(&models.Tag{Name: "Other", Slug: "economy"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate slug, got %v", err)
	}

	created.Name = "Economics"
	if err := s.Update(created); err != nil {
		t.Fatalf("update: %v", err)
	}
	found, err := s.FindBySlug("economy")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.Name != "Economics" {
		t.Fatalf("update not persisted: %+v", found)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty tag list, got %d", len(items))
	}
}
