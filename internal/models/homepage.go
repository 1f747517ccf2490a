// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// HomepageSection is a curated block on the homepage, identified by a
// unique key (e.g. "top-stories") and rendered according to its layout type.
type HomepageSection struct {
	ID         uuid.UUID `json:"id"`
	Key        string    `json:"key"`
	Title      *string   `json:"title,omitempty"`
	LayoutType *string   `json:"layout_type,omitempty"`
}

// HomepageSectionItem places one article inside a section. order_index
// determines display order; it carries no uniqueness constraint. The
// optional pin window marks when the placement is editorially pinned.
type HomepageSectionItem struct {
	ID         uuid.UUID  `json:"id"`
	SectionID  uuid.UUID  `json:"section_id"`
	ArticleID  uuid.UUID  `json:"article_id"`
	OrderIndex int        `json:"order_index"`
	PinStartAt *time.Time `json:"pin_start_at,omitempty"`
	PinEndAt   *time.Time `json:"pin_end_at,omitempty"`
}

// PinnedAt returns true if the item's pin window covers the given time.
// Items without a window are never considered pinned.
func (i *HomepageSectionItem) PinnedAt(t time.Time) bool {
	if i.PinStartAt == nil || i.PinEndAt == nil {
		return false
	}
	return !t.Before(*i.PinStartAt) && t.Before(*i.PinEndAt)
}
