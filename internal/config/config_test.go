package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")

	if _, err := Load(zerolog.Nop()); err == nil {
		t.Fatal("expected error when RIOT_API_KEY is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("ACCOUNT_REGION", "")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RiotAPIKey != "RGAPI-test" {
		t.Errorf("RiotAPIKey = %q", cfg.RiotAPIKey)
	}
	if cfg.AccountRegion != "americas" {
		t.Errorf("AccountRegion = %q, want americas", cfg.AccountRegion)
	}
}

func TestLoadRegionOverride(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("ACCOUNT_REGION", "europe")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AccountRegion != "europe" {
		t.Errorf("AccountRegion = %q, want europe", cfg.AccountRegion)
	}
}
