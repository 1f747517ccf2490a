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

// TagStore manages tags in the database.
type TagStore struct {
	db *sql.DB
}

// NewTagStore returns a new TagStore.
func NewTagStore(db *sql.DB) *TagStore {
	return &TagStore{db: db}
}

// List returns all tags ordered by name.
func (s *TagStore) List() ([]models.Tag, error) {
	rows, err := s.db.Query(`SELECT id, name, slug FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var items []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindByID retrieves a tag by ID. Returns nil if not found.
func (s *TagStore) FindByID(id uuid.UUID) (*models.Tag, error) {
	var t models.Tag
	err := s.db.QueryRow(`SELECT id, name, slug FROM tags WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by id: %w", err)
	}
	return &t, nil
}

// FindBySlug retrieves a tag by its unique slug. Returns nil if not found.
func (s *TagStore) FindBySlug(slug string) (*models.Tag, error) {
	var t models.Tag
	err := s.db.QueryRow(`SELECT id, name, slug FROM tags WHERE slug = $1`, slug).
		Scan(&t.ID, &t.Name, &t.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by slug: %w", err)
	}
	return &t, nil
}

// Create inserts a new tag and returns it with the generated ID.
func (s *TagStore) Create(t *models.Tag) (*models.Tag, error) {
	var created models.Tag
	err := s.db.QueryRow(`
		INSERT INTO tags (name, slug) VALUES ($1, $2)
		RETURNING id, name, slug
	`, t.Name, t.Slug).Scan(&created.ID, &created.Name, &created.Slug)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", translateConflict(err))
	}
	return &created, nil
}

// Update modifies an existing tag.
func (s *TagStore) Update(t *models.Tag) error {
	_, err := s.db.Exec(`UPDATE tags SET name = $1, slug = $2 WHERE id = $3`, t.Name, t.Slug, t.ID)
	if err != nil {
		return fmt.Errorf("update tag: %w", translateConflict(err))
	}
	return nil
}

// Delete removes a tag. Junction rows cascade.
func (s *TagStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
