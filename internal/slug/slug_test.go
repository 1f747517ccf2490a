// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"Breaking: Floods Hit The Capital!", "breaking-floods-hit-the-capital"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"already-slugged", "already-slugged"},
		{"ALL CAPS TITLE", "all-caps-title"},
		{"---hyphens---", "hyphens"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		if got := Generate(tc.in); got != tc.want {
			t.Errorf("Generate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := Generate(long)
	if len(got) > maxLen {
		t.Fatalf("slug length %d exceeds cap %d", len(got), maxLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Fatal("truncated slug must not end with a hyphen")
	}
}

func TestWithSuffix(t *testing.T) {
	a := WithSuffix("story")
	b := WithSuffix("story")
	if !strings.HasPrefix(a, "story-") {
		t.Fatalf("suffix should extend the base slug, got %q", a)
	}
	if a == b {
		t.Fatal("two suffixed slugs should differ")
	}
}
