// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed inserts a default admin account and starter content when the
// database is empty. Intended for development environments only.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ('Admin', 'admin@example.com', $1, 'admin')`, string(hash))
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO categories (name, slug, order_index) VALUES
		('News', 'news', 0),
		('Politics', 'politics', 1),
		('Sports', 'sports', 2),
		('Culture', 'culture', 3)
		ON CONFLICT (slug) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO homepage_sections (key, title, layout_type) VALUES
		('top-stories', 'Top Stories', 'hero'),
		('latest', 'Latest', 'list')
		ON CONFLICT (key) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seed homepage sections: %w", err)
	}

	slog.Info("seeded development data", "admin", "admin@example.com")
	return nil
}
