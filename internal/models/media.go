// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaAsset is an uploaded file. The binary lives in object storage; this
// row holds its metadata and public URL. Articles reference media only by
// textual occurrence of the URL in their hero image or body fields; there
// is no foreign key.
type MediaAsset struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	FileName  string    `json:"file_name"`
	URL       string    `json:"url"`
	Width     *int      `json:"width,omitempty"`
	Height    *int      `json:"height,omitempty"`
	MimeType  *string   `json:"mime_type,omitempty"`
	AltText   *string   `json:"alt_text,omitempty"`
	Caption   *string   `json:"caption,omitempty"`
	Credit    *string   `json:"credit,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsImage returns true if the asset holds an image MIME type.
func (m *MediaAsset) IsImage() bool {
	return m.MimeType != nil && strings.HasPrefix(*m.MimeType, "image/")
}

// MediaUsage reports whether a media asset may be deleted and, when it may
// not, which published articles reference its URL.
type MediaUsage struct {
	CanDelete bool         `json:"can_delete"`
	Articles  []ArticleRef `json:"articles"`
}
