// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/models"
)

// ArticleStore handles all article-related database operations, including
// the junction tables to categories and tags.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// articleColumns lists the columns selected in article queries, qualified
// with the "a" alias used by every query in this file.
const articleColumns = `a.id, a.status, a.title, a.summary, a.body_richtext, a.slug,
	a.primary_category_id, a.hero_image_url, a.is_breaking, a.is_highlight, a.is_featured,
	a.published_at, a.embargo_at, a.unpublish_at, a.created_at, a.updated_at`

// scanArticle scans an article row from the result set.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ID, &a.Status, &a.Title, &a.Summary, &a.Body, &a.Slug,
		&a.PrimaryCategoryID, &a.HeroImageURL, &a.IsBreaking, &a.IsHighlight, &a.IsFeatured,
		&a.PublishedAt, &a.EmbargoAt, &a.UnpublishAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListFilter describes the composable predicate applied by List. All
// filters are optional and AND-combined, except the category clause which
// matches either a junction row or the article's primary category.
type ListFilter struct {
	Limit  int
	Offset int

	// CategorySlug and TagSlug are resolved before filtering; a slug that
	// resolves to nothing yields an empty result, not an error.
	CategorySlug string
	TagSlug      string

	// IsHighlight is three-valued: nil means no flag filter.
	IsHighlight *bool

	// Status is nil for "all statuses". Callers serving unprivileged
	// requests must force "published" before calling List.
	Status *models.ArticleStatus

	// DateFrom and DateTo bound published_at. DateFrom is inclusive;
	// DateTo covers the entire named calendar day. Malformed values are
	// ignored rather than rejected.
	DateFrom string
	DateTo   string
}

// dateFilterLayouts are the accepted formats for DateFrom/DateTo.
var dateFilterLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// parseDateFilter parses a date filter value. Returns nil for empty or
// malformed input; a bad date means "filter not applied".
func parseDateFilter(value string) *time.Time {
	for _, layout := range dateFilterLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// List returns a deduplicated page of articles matching the filter,
// ordered by publish date descending (nulls last) with creation date as
// the tie-break.
func (s *ArticleStore) List(f ListFilter) ([]models.Article, error) {
	var (
		joins []string
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CategorySlug != "" {
		category, err := s.categoryBySlug(f.CategorySlug)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, nil
		}
		p := arg(category.ID)
		joins = append(joins,
			"LEFT JOIN article_category ac ON ac.article_id = a.id AND ac.category_id = "+p)
		// Junction membership OR primary-category equality.
		conds = append(conds,
			"(ac.category_id IS NOT NULL OR a.primary_category_id = "+p+")")
	}

	if f.TagSlug != "" {
		tag, err := s.tagBySlug(f.TagSlug)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			return nil, nil
		}
		joins = append(joins,
			"JOIN article_tag att ON att.article_id = a.id AND att.tag_id = "+arg(tag.ID))
	}

	if f.Status != nil {
		conds = append(conds, "a.status = "+arg(*f.Status))
	}
	if f.IsHighlight != nil {
		conds = append(conds, "a.is_highlight = "+arg(*f.IsHighlight))
	}
	if from := parseDateFilter(f.DateFrom); from != nil {
		conds = append(conds, "a.published_at >= "+arg(*from))
	}
	if to := parseDateFilter(f.DateTo); to != nil {
		// Shift forward one day so the entire end date is included.
		conds = append(conds, "a.published_at < "+arg(to.AddDate(0, 0, 1)))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var b strings.Builder
	b.WriteString("SELECT DISTINCT " + articleColumns + "\nFROM articles a\n")
	if len(joins) > 0 {
		b.WriteString(strings.Join(joins, "\n") + "\n")
	}
	if len(conds) > 0 {
		b.WriteString("WHERE " + strings.Join(conds, " AND ") + "\n")
	}
	b.WriteString("ORDER BY a.published_at DESC NULLS LAST, a.created_at DESC\n")
	b.WriteString("LIMIT " + arg(limit) + " OFFSET " + arg(offset))

	rows, err := s.db.Query(b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindByID retrieves an article by its UUID. Returns nil if not found.
func (s *ArticleStore) FindByID(id uuid.UUID) (*models.Article, error) {
	row := s.db.QueryRow(`SELECT `+articleColumns+` FROM articles a WHERE a.id = $1`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// FindBySlug retrieves an article by its slug regardless of status.
// The caller decides whether a draft may be shown.
func (s *ArticleStore) FindBySlug(slug string) (*models.Article, error) {
	row := s.db.QueryRow(`SELECT `+articleColumns+` FROM articles a WHERE a.slug = $1`, slug)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// Create inserts an article and replaces its relation sets in a single
// transaction. categoryIDs == nil means "none requested"; the primary
// category, when set, is still forced into the association set.
func (s *ArticleStore) Create(a *models.Article, categoryIDs, tagIDs []uuid.UUID) (*models.Article, error) {
	if a.Status == models.ArticleStatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create article: begin: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`
		INSERT INTO articles (status, title, summary, body_richtext, slug,
			primary_category_id, hero_image_url, is_breaking, is_highlight, is_featured,
			published_at, embargo_at, unpublish_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+unaliased(articleColumns),
		a.Status, a.Title, a.Summary, a.Body, a.Slug,
		a.PrimaryCategoryID, a.HeroImageURL, a.IsBreaking, a.IsHighlight, a.IsFeatured,
		a.PublishedAt, a.EmbargoAt, a.UnpublishAt,
	)
	created, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", translateConflict(err))
	}

	if categoryIDs != nil || created.PrimaryCategoryID != nil {
		ids := unionPrimary(categoryIDs, created.PrimaryCategoryID)
		if len(ids) > 0 {
			if err := replaceCategories(tx, created.ID, ids); err != nil {
				return nil, err
			}
		}
	}
	if len(tagIDs) > 0 {
		if err := replaceTags(tx, created.ID, tagIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create article: commit: %w", err)
	}
	return created, nil
}

// Update writes an article's fields and, when relation sets are provided,
// replaces them, all within one transaction so a failure leaves the
// store untouched. A nil categoryIDs/tagIDs slice means "leave that
// relation alone"; an empty non-nil slice clears it (modulo the primary
// category, which is always kept in the category set).
func (s *ArticleStore) Update(a *models.Article, categoryIDs, tagIDs []uuid.UUID) error {
	if a.Status == models.ArticleStatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("update article: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE articles SET
			status = $1, title = $2, summary = $3, body_richtext = $4, slug = $5,
			primary_category_id = $6, hero_image_url = $7,
			is_breaking = $8, is_highlight = $9, is_featured = $10,
			published_at = $11, embargo_at = $12, unpublish_at = $13,
			updated_at = NOW()
		WHERE id = $14
	`, a.Status, a.Title, a.Summary, a.Body, a.Slug,
		a.PrimaryCategoryID, a.HeroImageURL,
		a.IsBreaking, a.IsHighlight, a.IsFeatured,
		a.PublishedAt, a.EmbargoAt, a.UnpublishAt, a.ID)
	if err != nil {
		return fmt.Errorf("update article: %w", translateConflict(err))
	}

	if categoryIDs != nil {
		if err := replaceCategories(tx, a.ID, unionPrimary(categoryIDs, a.PrimaryCategoryID)); err != nil {
			return err
		}
	}
	if tagIDs != nil {
		if err := replaceTags(tx, a.ID, tagIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update article: commit: %w", err)
	}
	return nil
}

// Delete removes an article. Junction rows and homepage placements go
// with it via ON DELETE CASCADE.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// CategoriesFor returns the article's junction-table categories ordered
// by their configured index. The primary category appears here only if a
// writer unioned it in (which create/update flows always do).
func (s *ArticleStore) CategoriesFor(articleID uuid.UUID) ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.slug, c.order_index, c.is_active
		FROM categories c
		JOIN article_category ac ON ac.category_id = c.id
		WHERE ac.article_id = $1
		ORDER BY c.order_index, c.name
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("categories for article: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.OrderIndex, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// TagsFor returns the article's tags ordered by name.
func (s *ArticleStore) TagsFor(articleID uuid.UUID) ([]models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.slug
		FROM tags t
		JOIN article_tag att ON att.tag_id = t.id
		WHERE att.article_id = $1
		ORDER BY t.name
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("tags for article: %w", err)
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

// SetCategories replaces the article's category set as its own unit of
// work. Create/Update fold the replacement into their transaction; this
// standalone form serves callers adjusting relations in isolation.
func (s *ArticleStore) SetCategories(articleID uuid.UUID, categoryIDs []uuid.UUID) error {
	return s.inTx(func(tx *sql.Tx) error {
		return replaceCategories(tx, articleID, categoryIDs)
	})
}

// SetTags replaces the article's tag set as its own unit of work.
func (s *ArticleStore) SetTags(articleID uuid.UUID, tagIDs []uuid.UUID) error {
	return s.inTx(func(tx *sql.Tx) error {
		return replaceTags(tx, articleID, tagIDs)
	})
}

func (s *ArticleStore) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// replaceCategories deletes every junction row for the article and
// inserts one per requested id. Ids that resolve to no category are
// skipped via the INSERT ... SELECT; duplicate pairs are absorbed by
// ON CONFLICT DO NOTHING, making the replacement idempotent.
func replaceCategories(tx *sql.Tx, articleID uuid.UUID, categoryIDs []uuid.UUID) error {
	if _, err := tx.Exec(`DELETE FROM article_category WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("clear article categories: %w", err)
	}
	for _, categoryID := range categoryIDs {
		_, err := tx.Exec(`
			INSERT INTO article_category (article_id, category_id)
			SELECT $1, id FROM categories WHERE id = $2
			ON CONFLICT DO NOTHING
		`, articleID, categoryID)
		if err != nil {
			return fmt.Errorf("link category %s: %w", categoryID, err)
		}
	}
	return nil
}

// replaceTags mirrors replaceCategories for the article_tag junction.
func replaceTags(tx *sql.Tx, articleID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := tx.Exec(`DELETE FROM article_tag WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("clear article tags: %w", err)
	}
	for _, tagID := range tagIDs {
		_, err := tx.Exec(`
			INSERT INTO article_tag (article_id, tag_id)
			SELECT $1, id FROM tags WHERE id = $2
			ON CONFLICT DO NOTHING
		`, articleID, tagID)
		if err != nil {
			return fmt.Errorf("link tag %s: %w", tagID, err)
		}
	}
	return nil
}

// unionPrimary prepends the primary category to the requested set when it
// is missing. The primary category must always also be a member of the
// general category set; readers rely on writers keeping this consistent.
func unionPrimary(categoryIDs []uuid.UUID, primary *uuid.UUID) []uuid.UUID {
	if primary == nil {
		return categoryIDs
	}
	for _, id := range categoryIDs {
		if id == *primary {
			return categoryIDs
		}
	}
	return append([]uuid.UUID{*primary}, categoryIDs...)
}

// categoryBySlug resolves a category slug for the listing filter.
func (s *ArticleStore) categoryBySlug(slug string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`
		SELECT id, name, slug, order_index, is_active FROM categories WHERE slug = $1
	`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.OrderIndex, &c.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve category slug: %w", err)
	}
	return &c, nil
}

// tagBySlug resolves a tag slug for the listing filter.
func (s *ArticleStore) tagBySlug(slug string) (*models.Tag, error) {
	var t models.Tag
	err := s.db.QueryRow(`SELECT id, name, slug FROM tags WHERE slug = $1`, slug).
		Scan(&t.ID, &t.Name, &t.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve tag slug: %w", err)
	}
	return &t, nil
}

// unaliased strips the "a." qualifier for use in RETURNING clauses.
func unaliased(columns string) string {
	return strings.ReplaceAll(columns, "a.", "")
}
