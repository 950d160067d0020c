package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Export.OutputDir != "out" {
		t.Errorf("expected default output_dir %q, got %q", "out", cfg.Export.OutputDir)
	}
	if !cfg.Analytics.Enabled || cfg.Analytics.RetentionDays != 365 {
		t.Errorf("unexpected analytics defaults: %+v", cfg.Analytics)
	}
	if cfg.Relay.Enabled() {
		t.Error("relay should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")

	original := DefaultConfig()
	original.Server.Port = 3000
	original.Site.BasePath = "/portfolio"
	original.Site.APIURL = "https://api.example.com"
	original.Relay = RelayConfig{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk"}
	original.Analytics.Enabled = false

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 3000 {
		t.Errorf("port: got %d, want 3000", loaded.Server.Port)
	}
	if loaded.Site.BasePath != "/portfolio" {
		t.Errorf("base_path: got %q", loaded.Site.BasePath)
	}
	if loaded.Site.APIURL != "https://api.example.com" {
		t.Errorf("api_url: got %q", loaded.Site.APIURL)
	}
	if !loaded.Relay.Enabled() {
		t.Errorf("relay should round-trip: %+v", loaded.Relay)
	}
	if loaded.Analytics.Enabled {
		t.Error("analytics.enabled should round-trip as false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nonexistent.yml"))
	if err != nil {
		t.Fatalf("missing file should return defaults, got error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")
	if err := os.WriteFile(path, []byte("site:\n  base_path: /from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORTFOLIO_SITE__BASE_PATH", "portfolio/")
	t.Setenv("PORTFOLIO_SERVER__MODE", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.BasePath != "/portfolio" {
		t.Errorf("env should override file and be normalized, got %q", cfg.Site.BasePath)
	}
	if cfg.Server.Mode != "debug" {
		t.Errorf("mode: got %q, want debug", cfg.Server.Mode)
	}
}

func TestPortEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("PORT should set server.port, got %d", cfg.Server.Port)
	}

	t.Setenv("PORT", "eighty")
	if _, err := Load(filepath.Join(t.TempDir(), "none.yml")); err == nil {
		t.Error("non-numeric PORT should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"bad mode", func(c *Config) { c.Server.Mode = "verbose" }, true},
		{"base path with query", func(c *Config) { c.Site.BasePath = "/p?x=1" }, true},
		{"relative api url", func(c *Config) { c.Site.APIURL = "api.example.com" }, true},
		{"path api url", func(c *Config) { c.Site.APIURL = "/backend" }, false},
		{"no output dir", func(c *Config) { c.Export.OutputDir = "" }, true},
		{"analytics without db", func(c *Config) { c.Analytics.DBPath = "" }, true},
		{"disabled analytics without db", func(c *Config) {
			c.Analytics.Enabled = false
			c.Analytics.DBPath = ""
		}, false},
		{"negative retention", func(c *Config) { c.Analytics.RetentionDays = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"/":           "",
		"portfolio":   "/portfolio",
		"/portfolio/": "/portfolio",
		" /a/b/ ":     "/a/b",
	}
	for in, want := range tests {
		if got := NormalizeBasePath(in); got != want {
			t.Errorf("NormalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
