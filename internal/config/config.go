package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Conversion settings
	DefaultList         string
	MaxListLength       int
	MaxInlineListLength int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("MD2INAO_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 4194304), // 4MB

		DefaultList:         envOr("DEFAULT_LIST", "disc"),
		MaxListLength:       envInt("MAX_LIST_LENGTH", 63),
		MaxInlineListLength: envInt("MAX_INLINE_LIST_LENGTH", 55),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 4194304
	}
	if cfg.DefaultList == "" {
		cfg.DefaultList = "disc"
	}
	if cfg.MaxListLength <= 0 {
		cfg.MaxListLength = 63
	}
	if cfg.MaxInlineListLength <= 0 {
		cfg.MaxInlineListLength = 55
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("MD2INAO_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
