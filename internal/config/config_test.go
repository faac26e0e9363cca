package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.SeedFile != "configs/seed.json" {
		t.Fatalf("expected default seed path, got %q", cfg.SeedFile)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EVENTEASE_ADDR", ":9999")
	t.Setenv("EVENTEASE_BCRYPT_COST", "12")
	t.Setenv("EVENTEASE_READ_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("addr override ignored: %q", cfg.Addr)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("bcrypt cost override ignored: %d", cfg.BcryptCost)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Fatalf("read timeout override ignored: %v", cfg.ReadTimeout)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("EVENTEASE_BCRYPT_COST", "not-an-int")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed integer")
	}
}
