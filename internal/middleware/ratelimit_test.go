// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiterLocal(t *testing.T) {
	limiter := NewLoginLimiter(3, time.Minute, nil)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"), "attempt %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))
}

func TestLoginLimiterSlidingWindow(t *testing.T) {
	limiter := NewLoginLimiter(2, 50*time.Millisecond, nil)

	assert.True(t, limiter.allowLocal("1.2.3.4"))
	assert.True(t, limiter.allowLocal("1.2.3.4"))
	assert.False(t, limiter.allowLocal("1.2.3.4"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, limiter.allowLocal("1.2.3.4"), "window should have slid")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	assert.Equal(t, "192.168.1.5", clientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.9")
	assert.Equal(t, "198.51.100.1", clientIP(req))
}
