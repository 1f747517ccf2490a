// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config loads application settings from environment variables,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime settings. Every field maps to an uppercase
// environment variable of the same name (APP_PORT, POSTGRES_HOST, ...).
type Config struct {
	AppHost string `koanf:"app_host"`
	AppPort string `koanf:"app_port"`
	AppEnv  string `koanf:"app_env"`

	PostgresHost     string `koanf:"postgres_host"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresUser     string `koanf:"postgres_user"`
	PostgresPassword string `koanf:"postgres_password"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresSSLMode  string `koanf:"postgres_sslmode"`

	JWTSecret     string `koanf:"jwt_secret"`
	JWTExpSeconds int    `koanf:"jwt_exp_seconds"`

	S3Endpoint  string `koanf:"s3_endpoint"`
	S3Region    string `koanf:"s3_region"`
	S3AccessKey string `koanf:"s3_access_key"`
	S3SecretKey string `koanf:"s3_secret_key"`
	S3Bucket    string `koanf:"s3_bucket"`
	S3PublicURL string `koanf:"s3_public_url"`

	RedisHost     string `koanf:"redis_host"`
	RedisPort     string `koanf:"redis_port"`
	RedisPassword string `koanf:"redis_password"`

	UploadMaxMB int `koanf:"upload_max_mb"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppHost:         "0.0.0.0",
		AppPort:         "8080",
		AppEnv:          "development",
		PostgresHost:    "localhost",
		PostgresPort:    "5432",
		PostgresUser:    "postgres",
		PostgresDB:      "newsdesk",
		PostgresSSLMode: "disable",
		JWTSecret:       "change-me-in-production",
		JWTExpSeconds:   3600,
		S3Region:        "us-east-1",
		S3Bucket:        "newsdesk-media",
		RedisHost:       "",
		RedisPort:       "6379",
		UploadMaxMB:     25,
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWTExpSeconds <= 0 {
		cfg.JWTExpSeconds = 3600
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = 25
	}

	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser, c.PostgresPassword,
		c.PostgresHost, c.PostgresPort,
		c.PostgresDB, c.PostgresSSLMode)
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// TokenTTL returns the configured access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpSeconds) * time.Second
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool {
	return c.AppEnv == "development"
}
