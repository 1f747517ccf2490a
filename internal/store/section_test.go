// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"newsdesk/internal/models"
)

func TestSectionCRUDAndItems(t *testing.T) {
	db := testDB(t)
	s := NewSectionStore(db)

	title := "Top Stories"
	layout := "hero"
	section, err := s.Create(&models.HomepageSection{
		Key: "top-stories", Title: &title, LayoutType: &layout,
	})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}

	if _, err := s.Create(&models.HomepageSection{Key: "top-stories"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate key, got %v", err)
	}

	found, err := s.FindByKey("top-stories")
	if err != nil {
		t.Fatalf("find by key: %v", err)
	}
	if found == nil || found.ID != section.ID {
		t.Fatal("section should be findable by key")
	}

	first := mustCreateArticle(t, db, &models.Article{
		Status: models.ArticleStatusPublished, Title: "Lead",
	}, nil, nil)
	second := mustCreateArticle(t, db, &models.Article{
		Status: models.ArticleStatusPublished, Title: "Second",
	}, nil, nil)

	if _, err := s.CreateItem(&models.HomepageSectionItem{
		SectionID: section.ID, ArticleID: second.ID, OrderIndex: 2,
	}); err != nil {
		t.Fatalf("create item: %v", err)
	}
	lead, err := s.CreateItem(&models.HomepageSectionItem{
		SectionID: section.ID, ArticleID: first.ID, OrderIndex: 1,
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	items, err := s.ItemsForSection(section.ID, 10, 0)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 2 || items[0].ArticleID != first.ID {
		t.Fatalf("items should come back in order_index order, got %d items", len(items))
	}

	lead.OrderIndex = 9
	if err := s.UpdateItem(lead); err != nil {
		t.Fatalf("update item: %v", err)
	}
	items, err = s.ItemsForSection(section.ID, 10, 0)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if items[0].ArticleID != second.ID {
		t.Fatal("reordering should change the returned order")
	}

	// Deleting the section cascades to its items.
	if err := s.Delete(section.ID); err != nil {
		t.Fatalf("delete section: %v", err)
	}
	items, err = s.ItemsForSection(section.ID, 10, 0)
	if err != nil {
		t.Fatalf("items after delete: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items should cascade with the section, got %d", len(items))
	}
}

func TestDeleteArticleRemovesPlacements(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)
	articles := NewArticleStore(db)

	section, err := sections.Create(&models.HomepageSection{Key: "latest"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	article := mustCreateArticle(t, db, &models.Article{
		Status: models.ArticleStatusPublished, Title: "Placed",
	}, nil, nil)
	if _, err := sections.CreateItem(&models.HomepageSectionItem{
		SectionID: section.ID, ArticleID: article.ID,
	}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	if err := articles.Delete(article.ID); err != nil {
		t.Fatalf("delete article: %v", err)
	}
	items, err := sections.ItemsForSection(section.ID, 10, 0)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 0 {
		t.Fatal("placements should cascade when their article is deleted")
	}
}
