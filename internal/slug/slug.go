// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

// maxLen caps generated slugs so they stay well inside the column limit.
const maxLen = 200

var (
	// nonAlphanumeric matches anything that isn't a lowercase letter,
	// digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Breaking: Floods Hit The Capital!" → "breaking-floods-hit-the-capital"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if len(result) > maxLen {
		result = strings.Trim(result[:maxLen], "-")
	}
	return result
}

// WithSuffix appends a short random suffix, used to resolve collisions
// on the unique slug columns.
func WithSuffix(s string) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read on supported platforms never fails; keep the slug usable anyway.
		return s + "-x"
	}
	return s + "-" + hex.EncodeToString(buf)
}
