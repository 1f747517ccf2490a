// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseDateFilter(t *testing.T) {
	cases := []struct {
		in   string
		want string // empty means nil expected
	}{
		{"2026-08-01", "2026-08-01T00:00:00Z"},
		{"2026-08-01T12:30:00Z", "2026-08-01T12:30:00Z"},
		{"2026-08-01T12:30:00", "2026-08-01T12:30:00Z"},
		{"", ""},
		{"yesterday", ""},
		{"2026-13-40", ""},
	}

	for _, tc := range cases {
		got := parseDateFilter(tc.in)
		if tc.want == "" {
			if got != nil {
				t.Errorf("parseDateFilter(%q) = %v, want nil", tc.in, got)
			}
			continue
		}
		want, err := time.Parse(time.RFC3339, tc.want)
		if err != nil {
			t.Fatalf("bad expectation %q: %v", tc.want, err)
		}
		if got == nil || !got.Equal(want) {
			t.Errorf("parseDateFilter(%q) = %v, want %v", tc.in, got, want)
		}
	}
}

func TestUnionPrimary(t *testing.T) {
	primary := mustUUID(t, "11111111-1111-1111-1111-111111111111")
	other := mustUUID(t, "22222222-2222-2222-2222-222222222222")

	got := unionPrimary(nil, &primary)
	if len(got) != 1 || got[0] != primary {
		t.Fatalf("expected primary alone, got %v", got)
	}

	got = unionPrimary([]uuid.UUID{other}, &primary)
	if len(got) != 2 || got[0] != primary {
		t.Fatalf("expected primary prepended, got %v", got)
	}

	got = unionPrimary([]uuid.UUID{primary, other}, &primary)
	if len(got) != 2 {
		t.Fatalf("expected no duplicate primary, got %v", got)
	}

	got = unionPrimary([]uuid.UUID{other}, nil)
	if len(got) != 1 || got[0] != other {
		t.Fatalf("expected unchanged set without primary, got %v", got)
	}
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid: %v", err)
	}
	return id
}
