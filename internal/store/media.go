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

// MediaStore handles all media-related database operations, including the
// usage guard consulted before deletion.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

// mediaColumns lists the columns selected in media queries.
const mediaColumns = `id, type, file_name, url, width, height, mime_type,
	alt_text, caption, credit, created_at`

// scanMedia scans a media row from the result set.
func scanMedia(scanner interface{ Scan(...any) error }) (*models.MediaAsset, error) {
	var m models.MediaAsset
	err := scanner.Scan(
		&m.ID, &m.Type, &m.FileName, &m.URL, &m.Width, &m.Height, &m.MimeType,
		&m.AltText, &m.Caption, &m.Credit, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new media record and returns it with the generated ID.
func (s *MediaStore) Create(m *models.MediaAsset) (*models.MediaAsset, error) {
	row := s.db.QueryRow(`
		INSERT INTO media_assets (type, file_name, url, width, height, mime_type,
			alt_text, caption, credit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+mediaColumns,
		m.Type, m.FileName, m.URL, m.Width, m.Height, m.MimeType,
		m.AltText, m.Caption, m.Credit,
	)
	created, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return created, nil
}

// FindByID retrieves a single media record by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.MediaAsset, error) {
	row := s.db.QueryRow(`SELECT `+mediaColumns+` FROM media_assets WHERE id = $1`, id)
	m, err := scanMedia(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// List returns media items newest first, optionally filtered by a
// case-insensitive search over file name, alt text, caption and credit.
func (s *MediaStore) List(limit, offset int, q string) ([]models.MediaAsset, error) {
	items, _, err := s.list(limit, offset, q, false)
	return items, err
}

// ListWithCount behaves like List and additionally reports the total
// number of matches ignoring pagination.
func (s *MediaStore) ListWithCount(limit, offset int, q string) ([]models.MediaAsset, int, error) {
	return s.list(limit, offset, q, true)
}

func (s *MediaStore) list(limit, offset int, q string, withCount bool) ([]models.MediaAsset, int, error) {
	if limit <= 0 {
		limit = 100
	}

	where := ""
	args := []any{}
	if q != "" {
		where = `WHERE file_name ILIKE $1 OR alt_text ILIKE $1 OR caption ILIKE $1 OR credit ILIKE $1`
		args = append(args, "%"+q+"%")
	}

	total := 0
	if withCount {
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM media_assets `+where, args...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count media: %w", err)
		}
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT `+mediaColumns+`
		FROM media_assets %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.MediaAsset
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, total, rows.Err()
}

// UsageInPublished scans published articles for textual occurrence of the
// asset's URL in the hero image reference or the rich-text body. The
// substring match is deliberately loose: a URL appearing anywhere in the
// text blocks deletion, false positives accepted.
func (s *MediaStore) UsageInPublished(m *models.MediaAsset) (*models.MediaUsage, error) {
	rows, err := s.db.Query(`
		SELECT id, title, status, slug
		FROM articles
		WHERE status = 'published'
		  AND (hero_image_url LIKE '%' || $1 || '%' OR body_richtext LIKE '%' || $1 || '%')
	`, m.URL)
	if err != nil {
		return nil, fmt.Errorf("media usage query: %w", err)
	}
	defer rows.Close()

	usage := &models.MediaUsage{Articles: []models.ArticleRef{}}
	for rows.Next() {
		var ref models.ArticleRef
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Status, &ref.Slug); err != nil {
			return nil, fmt.Errorf("scan blocking article: %w", err)
		}
		usage.Articles = append(usage.Articles, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	usage.CanDelete = len(usage.Articles) == 0
	return usage, nil
}

// Delete removes a media record and returns it so the caller can clean
// up the backing stored file. Returns nil if the row did not exist.
func (s *MediaStore) Delete(id uuid.UUID) (*models.MediaAsset, error) {
	row := s.db.QueryRow(`
		DELETE FROM media_assets WHERE id = $1
		RETURNING `+mediaColumns, id)
	m, err := scanMedia(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete media: %w", err)
	}
	return m, nil
}
