// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the persistence layer: one store per entity,
// each holding a *sql.DB handle passed in by the caller. Lookups return
// (nil, nil) when the row does not exist; unique-key collisions surface
// as ErrConflict so the request layer can map them to a client error.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict marks a unique constraint violation (duplicate slug, email
// or section key). Check with errors.Is.
var ErrConflict = errors.New("unique constraint violation")

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// translateConflict rewrites unique violations into ErrConflict, leaving
// every other error untouched.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrConflict
	}
	return err
}
