// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/internal/auth"
	"newsdesk/internal/config"
	"newsdesk/internal/database"
	"newsdesk/internal/handlers"
	"newsdesk/internal/middleware"
	"newsdesk/internal/router"
	"newsdesk/internal/storage"
	"newsdesk/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("migrate database", "error", err)
		os.Exit(1)
	}

	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("seed database", "error", err)
			os.Exit(1)
		}
	}

	st, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	if err != nil {
		slog.Error("init object storage", "error", err)
		os.Exit(1)
	}
	if st == nil {
		slog.Warn("object storage not configured, media uploads disabled")
	}

	var limiter *middleware.LoginLimiter
	if cfg.RedisHost != "" {
		rdb, err := middleware.ConnectRedis(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			slog.Warn("redis unavailable, using in-process rate limiting", "error", err)
			limiter = middleware.NewLoginLimiter(10, time.Minute, nil)
		} else {
			defer rdb.Close()
			limiter = middleware.NewLoginLimiter(10, time.Minute, rdb)
		}
	} else {
		limiter = middleware.NewLoginLimiter(10, time.Minute, nil)
	}

	articles := store.NewArticleStore(db)
	categories := store.NewCategoryStore(db)
	tags := store.NewTagStore(db)
	media := store.NewMediaStore(db)
	sections := store.NewSectionStore(db)
	users := store.NewUserStore(db)

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL())

	handler := router.New(router.Deps{
		Tokens:       tokens,
		LoginLimiter: limiter,
		Auth:         handlers.NewAuthHandler(users, tokens),
		Articles:     handlers.NewArticleHandler(articles),
		Categories:   handlers.NewCategoryHandler(categories, articles),
		Tags:         handlers.NewTagHandler(tags),
		Media:        handlers.NewMediaHandler(media, st, cfg.UploadMaxMB),
		Sections:     handlers.NewSectionHandler(sections, articles),
		Users:        handlers.NewUserHandler(users),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
