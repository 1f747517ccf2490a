// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles authentication attempts per client IP. With a
// Redis client it uses a fixed window shared across instances; without
// one it falls back to an in-process sliding window.
type LoginLimiter struct {
	limit  int
	window time.Duration
	rdb    *redis.Client

	mu      sync.Mutex
	clients map[string][]time.Time
}

// NewLoginLimiter allows limit attempts per window for each client IP.
// rdb may be nil.
func NewLoginLimiter(limit int, window time.Duration, rdb *redis.Client) *LoginLimiter {
	return &LoginLimiter{
		limit:   limit,
		window:  window,
		rdb:     rdb,
		clients: make(map[string][]time.Time),
	}
}

// Middleware rejects over-limit clients with 429 Too Many Requests.
func (l *LoginLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(r) {
			writeAuthError(w, http.StatusTooManyRequests, "too many login attempts, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *LoginLimiter) allow(r *http.Request) bool {
	ip := clientIP(r)
	if l.rdb != nil {
		return l.allowRedis(r, ip)
	}
	return l.allowLocal(ip)
}

// allowRedis counts attempts in a fixed window keyed by IP. Redis being
// unreachable fails open: login availability beats throttling.
func (l *LoginLimiter) allowRedis(r *http.Request, ip string) bool {
	ctx := r.Context()
	key := "login_attempts:" + ip

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("login limiter redis unavailable", "error", err)
		return true
	}
	if count == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}
	return count <= int64(l.limit)
}

// allowLocal applies a sliding window over in-process timestamps.
func (l *LoginLimiter) allowLocal(ip string) bool {
	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.clients[ip][:0]
	for _, ts := range l.clients[ip] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.limit {
		l.clients[ip] = recent
		return false
	}
	l.clients[ip] = append(recent, now)

	// Drop stale entries for other clients once the map grows.
	if len(l.clients) > 1024 {
		for k, stamps := range l.clients {
			live := false
			for _, ts := range stamps {
				if ts.After(cutoff) {
					live = true
					break
				}
			}
			if !live {
				delete(l.clients, k)
			}
		}
	}
	return true
}

// clientIP extracts the client's IP address, honoring X-Forwarded-For
// and X-Real-IP for proxied requests.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

// ConnectRedis opens and pings a Redis client for the shared limiter
// backend. Callers treat a nil client as "local limiting only".
func ConnectRedis(host, port, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	slog.Info("redis connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return client, nil
}
