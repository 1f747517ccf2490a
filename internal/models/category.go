// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// Category is a news section (Politics, Sports, ...). Articles relate to
// categories many-to-many; one of them may additionally be the article's
// primary category.
type Category struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
}
