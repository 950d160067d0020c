package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spriy4nshu/portfolio/internal/config"
	"github.com/spriy4nshu/portfolio/web"
)

func exists(t *testing.T, p string) bool {
	t.Helper()
	_, err := os.Stat(p)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return err == nil
}

func TestRunEmbeddedSite(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Site.BasePath = "/portfolio"
	out := filepath.Join(t.TempDir(), "out")

	opts := OptionsFromConfig(cfg)
	opts.OutputDir = out
	res, err := Run(context.Background(), cfg, web.FS, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Pages != 1 || res.Assets == 0 {
		t.Errorf("result = %+v", res)
	}

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`href="/portfolio/static/css/site.css"`,
		`src="/portfolio/static/js/site.js"`,
		`hx-post="/portfolio/contact"`,
	} {
		if !strings.Contains(string(page), want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	for _, f := range []string{
		"static/css/site.css",
		"static/js/site.js",
		"static/img/project-ai.svg",
		"static/resume.pdf",
		".nojekyll",
	} {
		if !exists(t, filepath.Join(out, f)) {
			t.Errorf("%s not exported", f)
		}
	}
}

func TestRunWarnsAboutUnreachableRelay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Relay = config.RelayConfig{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}

	opts := OptionsFromConfig(cfg)
	opts.OutputDir = filepath.Join(t.TempDir(), "out")
	res, err := Run(context.Background(), cfg, web.FS, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "site.api_url") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
}

func TestWarnings(t *testing.T) {
	relay := config.RelayConfig{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}
	tests := []struct {
		name  string
		relay config.RelayConfig
		api   string
		want  int
	}{
		{"nothing configured", config.RelayConfig{}, "", 0},
		{"relay without api", relay, "", 1},
		{"relay with api", relay, "https://api.example.com", 0},
		{"api without relay", config.RelayConfig{}, "https://api.example.com", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Relay = tt.relay
			cfg.Site.APIURL = tt.api
			if got := Warnings(cfg); len(got) != tt.want {
				t.Errorf("Warnings = %v, want %d", got, tt.want)
			}
		})
	}
}

func TestRunExcludesAndClean(t *testing.T) {
	assets := fstest.MapFS{
		"templates/index.html":    {Data: []byte(`<link href="{{url "/static/a.css"}}">`)},
		"static/a.css":            {Data: []byte("body{}")},
		"static/a.css.map":        {Data: []byte("{}")},
		"static/x/.DS_Store":      {Data: []byte("junk")},
		"static/img/raw.psd":      {Data: []byte("psd")},
		"static/drafts/notes.txt": {Data: []byte("wip")},
	}
	cfg := config.DefaultConfig()
	cfg.Export.Exclude = []string{"drafts/**"}

	out := t.TempDir()
	stale := filepath.Join(out, "stale.html")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := OptionsFromConfig(cfg)
	opts.OutputDir = out
	opts.Clean = true
	res, err := Run(context.Background(), cfg, assets, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Assets != 1 {
		t.Errorf("Assets = %d, want 1", res.Assets)
	}
	if len(res.Skipped) != 4 {
		t.Errorf("Skipped = %v", res.Skipped)
	}
	if !exists(t, filepath.Join(out, "static", "a.css")) {
		t.Error("a.css not exported")
	}
	for _, f := range []string{"static/a.css.map", "static/x/.DS_Store", "static/img/raw.psd", "static/drafts/notes.txt"} {
		if exists(t, filepath.Join(out, filepath.FromSlash(f))) {
			t.Errorf("%s should be excluded", f)
		}
	}
	if exists(t, stale) {
		t.Error("clean should remove stale files")
	}

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(page) != `<link href="/static/a.css">` {
		t.Errorf("index.html = %q", page)
	}
}

func TestRunRequiresOutputDir(t *testing.T) {
	if _, err := Run(context.Background(), config.DefaultConfig(), web.FS, Options{}); err == nil {
		t.Error("expected error without an output dir")
	}
}

func TestRunBrokenTemplates(t *testing.T) {
	assets := fstest.MapFS{
		"templates/index.html": {Data: []byte(`{{.NoSuchField}}`)},
		"static/a.css":         {Data: []byte("")},
	}
	opts := Options{OutputDir: t.TempDir()}
	if _, err := Run(context.Background(), config.DefaultConfig(), assets, opts); err == nil {
		t.Error("expected render error")
	}
}

func TestExcluded(t *testing.T) {
	tests := []struct {
		rel      string
		patterns []string
		want     bool
	}{
		{".DS_Store", DefaultExclude, true},
		{"img/.DS_Store", DefaultExclude, true},
		{"js/site.js.map", DefaultExclude, true},
		{"js/site.js", DefaultExclude, false},
		{"img/a.png", []string{"img/**"}, true},
		{"css/a.css", []string{"img/**"}, false},
		{"css/a.css", []string{"*.css"}, true},
		{"css/a.css", nil, false},
	}
	for _, tt := range tests {
		if got := Excluded(tt.rel, tt.patterns); got != tt.want {
			t.Errorf("Excluded(%q, %v) = %v, want %v", tt.rel, tt.patterns, got, tt.want)
		}
	}
}

func TestCleanRefusesWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := clean(wd); err == nil {
		t.Error("expected refusal to clean the working directory")
	}
	if err := clean("/"); err == nil {
		t.Error("expected refusal to clean the filesystem root")
	}
}
