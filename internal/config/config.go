// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache + session store)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// LLM provider settings for script generation
	AIProvider  string // "openai" or "claude"
	OpenAIKey   string
	OpenAIModel string
	ClaudeKey   string
	ClaudeModel string

	// ElevenLabs text-to-speech (voice previews)
	ElevenLabsKey string

	// External PDF renderer (Gotenberg-compatible)
	PDFRendererURL string

	// Resend transactional email
	ResendKey  string
	EmailFrom  string
	AdminEmail string

	// S3-compatible object storage for client assets
	S3Endpoint     string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3AssetsBucket string
}

// Load reads configuration from the environment, first merging in a .env
// file when one is present (development convenience; real deployments set
// variables directly). Applies development defaults and returns an error
// if critical values are missing in production mode.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "brandvoice"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "brandvoice"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider:  envOrDefault("AI_PROVIDER", "openai"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: envOrDefault("OPENAI_MODEL", "gpt-4o"),
		ClaudeKey:   os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel: envOrDefault("CLAUDE_MODEL", "claude-sonnet-4-20250514"),

		ElevenLabsKey: os.Getenv("ELEVENLABS_API_KEY"),

		PDFRendererURL: os.Getenv("PDF_RENDERER_URL"),

		ResendKey:  os.Getenv("RESEND_API_KEY"),
		EmailFrom:  envOrDefault("EMAIL_FROM", "BrandVoice Studio <hello@brandvoice.studio>"),
		AdminEmail: envOrDefault("ADMIN_EMAIL", "admin@brandvoice.studio"),

		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3Region:       envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		S3AssetsBucket: envOrDefault("S3_ASSETS_BUCKET", "brandvoice-assets"),
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
