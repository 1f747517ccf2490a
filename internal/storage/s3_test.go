// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import "testing"

func TestNewUnconfiguredReturnsNil(t *testing.T) {
	c, err := New("", "us-east-1", "", "", "bucket", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Fatal("missing endpoint should yield a nil client")
	}
}

func TestFileURLAndKeyFromURL(t *testing.T) {
	c, err := New("https://s3.example.com/", "us-east-1", "ak", "sk", "media-bucket", "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	key := "media/2026/08/abc.jpg"
	url := c.FileURL(key)
	if url != "https://s3.example.com/media-bucket/media/2026/08/abc.jpg" {
		t.Fatalf("unexpected url %q", url)
	}

	got, ok := c.KeyFromURL(url)
	if !ok || got != key {
		t.Fatalf("KeyFromURL(%q) = %q, %v", url, got, ok)
	}

	if _, ok := c.KeyFromURL("https://elsewhere.example.com/x.jpg"); ok {
		t.Fatal("foreign urls should not resolve to a key")
	}
}

func TestKeyFromURLWithPublicURL(t *testing.T) {
	c, err := New("https://s3.example.com", "us-east-1", "ak", "sk", "media-bucket", "https://cdn.example.com/")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	key := "media/2026/08/xyz.png"
	url := c.FileURL(key)
	if url != "https://cdn.example.com/media/2026/08/xyz.png" {
		t.Fatalf("unexpected url %q", url)
	}

	got, ok := c.KeyFromURL(url)
	if !ok || got != key {
		t.Fatalf("KeyFromURL(%q) = %q, %v", url, got, ok)
	}

	// Endpoint-style urls still resolve for rows written before the CDN
	// was configured.
	got, ok = c.KeyFromURL("https://s3.example.com/media-bucket/" + key)
	if !ok || got != key {
		t.Fatalf("endpoint url should resolve, got %q, %v", got, ok)
	}
}
