package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	if cfg.JWTSecret != defaultJWTSecret {
		t.Fatalf("unexpected default secret: %q", cfg.JWTSecret)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("unexpected default ttl: %v", cfg.JWTTTL)
	}
	if cfg.StorageDriver != "local" {
		t.Fatalf("unexpected default storage driver: %q", cfg.StorageDriver)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default cors origins: %v", cfg.CORSOrigins)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")

	cfg := Load()
	if cfg.JWTTTL != 90*time.Minute {
		t.Fatalf("ttl override not applied: %v", cfg.JWTTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors list not parsed: %v", cfg.CORSOrigins)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("max upload override not applied: %d", cfg.MaxUploadBytes)
	}
	if cfg.RateLimitPerMinute != 20 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.RateLimitPerMinute)
	}
	if !cfg.CheckEmailDomain {
		t.Fatal("bool override not applied")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			StoreDriver:    "postgres",
			JWTSecret:      "secret",
			JWTTTL:         time.Hour,
			GinMode:        "release",
			StorageDriver:  "local",
			UploadDir:      "uploads",
			MaxUploadBytes: 1,
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "default secret in release", mutate: func(c *Config) { c.JWTSecret = defaultJWTSecret }, wantErr: true},
		{name: "default secret in debug", mutate: func(c *Config) { c.JWTSecret = defaultJWTSecret; c.GinMode = "debug" }},
		{name: "unknown store", mutate: func(c *Config) { c.StoreDriver = "mysql" }, wantErr: true},
		{name: "s3 without bucket", mutate: func(c *Config) { c.StorageDriver = "s3" }, wantErr: true},
		{name: "s3 with one key", mutate: func(c *Config) { c.StorageDriver = "s3"; c.S3.Bucket = "b"; c.S3.AccessKey = "k" }, wantErr: true},
		{name: "s3 with keys", mutate: func(c *Config) {
			c.StorageDriver = "s3"
			c.S3 = S3Config{Bucket: "b", AccessKey: "k", SecretKey: "s"}
		}},
		{name: "half seeded admin", mutate: func(c *Config) { c.SeedAdminEmail = "a@b.c" }, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
