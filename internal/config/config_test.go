package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://pokeapi.co/api/v2/" {
		t.Errorf("wrong base URL default: %q", cfg.BaseURL)
	}
	if cfg.PageSize != 15 {
		t.Errorf("wrong page size default: %d", cfg.PageSize)
	}
	if cfg.DBPath != "data/favorites.db" {
		t.Errorf("wrong db path default: %q", cfg.DBPath)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("wrong timeout default: %v", cfg.HTTPTimeout)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EXPLORER_BASE_URL", "http://localhost:9999/api/")
	t.Setenv("EXPLORER_PAGE_SIZE", "20")
	t.Setenv("EXPLORER_HTTP_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "http://localhost:9999/api/" {
		t.Errorf("base URL override ignored: %q", cfg.BaseURL)
	}
	if cfg.PageSize != 20 {
		t.Errorf("page size override ignored: %d", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("timeout override ignored: %v", cfg.HTTPTimeout)
	}
}
