// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"newsdesk/internal/models"
)

// SectionStore manages homepage sections and their ordered items.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore returns a new SectionStore.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

const sectionColumns = `id, key, title, layout_type`

func scanSection(scanner interface{ Scan(...any) error }) (*models.HomepageSection, error) {
	var s models.HomepageSection
	if err := scanner.Scan(&s.ID, &s.Key, &s.Title, &s.LayoutType); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all homepage sections ordered by key.
func (s *SectionStore) List() ([]models.HomepageSection, error) {
	rows, err := s.db.Query(`SELECT ` + sectionColumns + ` FROM homepage_sections ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var items []models.HomepageSection
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		items = append(items, *sec)
	}
	return items, rows.Err()
}

// FindByID retrieves a section by ID. Returns nil if not found.
func (s *SectionStore) FindByID(id uuid.UUID) (*models.HomepageSection, error) {
	row := s.db.QueryRow(`SELECT `+sectionColumns+` FROM homepage_sections WHERE id = $1`, id)
	sec, err := scanSection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find section by id: %w", err)
	}
	return sec, nil
}

// FindByKey retrieves a section by its unique key. Returns nil if not found.
func (s *SectionStore) FindByKey(key string) (*models.HomepageSection, error) {
	row := s.db.QueryRow(`SELECT `+sectionColumns+` FROM homepage_sections WHERE key = $1`, key)
	sec, err := scanSection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find section by key: %w", err)
	}
	return sec, nil
}

// Create inserts a new section and returns it with the generated ID.
func (s *SectionStore) Create(sec *models.HomepageSection) (*models.HomepageSection, error) {
	row := s.db.QueryRow(`
		INSERT INTO homepage_sections (key, title, layout_type)
		VALUES ($1, $2, $3)
		RETURNING `+sectionColumns,
		sec.Key, sec.Title, sec.LayoutType,
	)
	created, err := scanSection(row)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", translateConflict(err))
	}
	return created, nil
}

// Update modifies an existing section.
func (s *SectionStore) Update(sec *models.HomepageSection) error {
	_, err := s.db.Exec(`
		UPDATE homepage_sections SET key = $1, title = $2, layout_type = $3 WHERE id = $4
	`, sec.Key, sec.Title, sec.LayoutType, sec.ID)
	if err != nil {
		return fmt.Errorf("update section: %w", translateConflict(err))
	}
	return nil
}

// Delete removes a section and, via cascade, its items.
func (s *SectionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM homepage_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

const sectionItemColumns = `id, section_id, article_id, order_index, pin_start_at, pin_end_at`

func scanSectionItem(scanner interface{ Scan(...any) error }) (*models.HomepageSectionItem, error) {
	var i models.HomepageSectionItem
	err := scanner.Scan(&i.ID, &i.SectionID, &i.ArticleID, &i.OrderIndex, &i.PinStartAt, &i.PinEndAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// ItemsForSection returns a section's items in display order.
func (s *SectionStore) ItemsForSection(sectionID uuid.UUID, limit, offset int) ([]models.HomepageSectionItem, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(`
		SELECT `+sectionItemColumns+`
		FROM homepage_section_items
		WHERE section_id = $1
		ORDER BY order_index
		LIMIT $2 OFFSET $3
	`, sectionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list section items: %w", err)
	}
	defer rows.Close()

	var items []models.HomepageSectionItem
	for rows.Next() {
		item, err := scanSectionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan section item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// FindItemByID retrieves a single section item. Returns nil if not found.
func (s *SectionStore) FindItemByID(id uuid.UUID) (*models.HomepageSectionItem, error) {
	row := s.db.QueryRow(`SELECT `+sectionItemColumns+` FROM homepage_section_items WHERE id = $1`, id)
	item, err := scanSectionItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find section item: %w", err)
	}
	return item, nil
}

// CreateItem places an article into a section.
func (s *SectionStore) CreateItem(item *models.HomepageSectionItem) (*models.HomepageSectionItem, error) {
	row := s.db.QueryRow(`
		INSERT INTO homepage_section_items (section_id, article_id, order_index, pin_start_at, pin_end_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+sectionItemColumns,
		item.SectionID, item.ArticleID, item.OrderIndex, item.PinStartAt, item.PinEndAt,
	)
	created, err := scanSectionItem(row)
	if err != nil {
		return nil, fmt.Errorf("create section item: %w", err)
	}
	return created, nil
}

// UpdateItem modifies an existing section item.
func (s *SectionStore) UpdateItem(item *models.HomepageSectionItem) error {
	_, err := s.db.Exec(`
		UPDATE homepage_section_items
		SET section_id = $1, article_id = $2, order_index = $3, pin_start_at = $4, pin_end_at = $5
		WHERE id = $6
	`, item.SectionID, item.ArticleID, item.OrderIndex, item.PinStartAt, item.PinEndAt, item.ID)
	if err != nil {
		return fmt.Errorf("update section item: %w", err)
	}
	return nil
}

// DeleteItem removes a single placement.
func (s *SectionStore) DeleteItem(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM homepage_section_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section item: %w", err)
	}
	return nil
}
