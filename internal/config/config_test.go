package config

import (
	"reflect"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{
		"MODE", "HTTP_ADDR", "PROFILE_STORE", "DATA_DIR",
		"LLM_PROVIDER", "ENABLE_REPLENISH", "CORS_ORIGINS_OFFLINE",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if cfg.Mode != ModeOffline {
		t.Errorf("mode = %q, want offline", cfg.Mode)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.ProfileStore != "fs" {
		t.Errorf("store = %q, want fs", cfg.ProfileStore)
	}
	if !cfg.EnableReplenish {
		t.Error("replenish should default on")
	}
	if cfg.MinPoolSize != 5 {
		t.Errorf("min pool = %d, want 5", cfg.MinPoolSize)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("PROFILE_STORE", "sql")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("LLM_PROVIDER", "mock")
	t.Setenv("ENABLE_REPLENISH", "false")
	t.Setenv("CORS_ORIGINS_ONLINE", "https://a.example, https://b.example")

	cfg := FromEnv()
	if cfg.Mode != ModeOnline {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if cfg.HTTPAddr != ":9999" || cfg.ProfileStore != "sql" || cfg.DBDriver != "postgres" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LLMProvider != "mock" {
		t.Errorf("provider = %q", cfg.LLMProvider)
	}
	if cfg.EnableReplenish {
		t.Error("replenish should be off")
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOriginsOnline, want) {
		t.Errorf("origins = %v, want %v", cfg.CORSOriginsOnline, want)
	}
}

func TestEnvBool(t *testing.T) {
	cases := map[string]bool{"1": true, "true": true, "YES": true, "0": false, "no": false, "garbage": true}
	for v, want := range cases {
		t.Setenv("ENABLE_REPLENISH", v)
		if got := envBool("ENABLE_REPLENISH", true); got != want {
			t.Errorf("envBool(%q) = %v, want %v", v, got, want)
		}
	}
}
