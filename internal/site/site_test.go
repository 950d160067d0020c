package site

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/spriy4nshu/portfolio/internal/config"
	"github.com/spriy4nshu/portfolio/internal/content"
)

func TestNewPage(t *testing.T) {
	opts := Options{
		Relay: config.RelayConfig{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"},
		Now:   func() time.Time { return time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC) },
	}
	page, err := NewPage(content.Default(), opts)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}

	if page.Year() != 2031 {
		t.Errorf("Year = %d, want 2031", page.Year())
	}
	if !strings.HasPrefix(page.Title, page.Profile.Name) {
		t.Errorf("Title = %q", page.Title)
	}
	if len(page.About) != 2 {
		t.Fatalf("About has %d paragraphs, want 2", len(page.About))
	}
	if !strings.HasPrefix(string(page.About[0]), "<p>") || !strings.Contains(string(page.About[0]), "<strong>") {
		t.Errorf("About[0] not rendered as markdown: %s", page.About[0])
	}
	if got := len(page.Headline); got != len(strings.Fields(page.Profile.Headline)) {
		t.Errorf("Headline has %d words", got)
	}
	if len(page.Shapes) != 5 {
		t.Errorf("Shapes = %d, want 5", len(page.Shapes))
	}
	if !page.Relay.Enabled() {
		t.Error("relay should be carried through")
	}
	if page.PhoneURL != "tel:+17325226490" {
		t.Errorf("PhoneURL = %q", page.PhoneURL)
	}
	if page.Form.Error != "" || page.Form.Name != "" {
		t.Errorf("form should start empty: %+v", page.Form)
	}
}

func TestPageYearFollowsClock(t *testing.T) {
	now := time.Date(2030, 12, 31, 23, 59, 0, 0, time.UTC)
	page, err := NewPage(content.Default(), Options{Now: func() time.Time { return now }})
	if err != nil {
		t.Fatal(err)
	}
	if page.Year() != 2030 {
		t.Fatalf("Year = %d, want 2030", page.Year())
	}
	now = now.Add(2 * time.Minute)
	if page.Year() != 2031 {
		t.Errorf("Year after rollover = %d, want 2031", page.Year())
	}
}

func TestPhoneURL(t *testing.T) {
	if got := phoneURL("tel:+15550100"); got != "tel:+15550100" {
		t.Errorf("phoneURL = %q", got)
	}
	for _, bad := range []string{"javascript:alert(1)", "tel:1\" onclick=x", ""} {
		if got := phoneURL(bad); got != "" {
			t.Errorf("phoneURL(%q) = %q, want empty", bad, got)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		base, p, want string
	}{
		{"", "/static/css/site.css", "/static/css/site.css"},
		{"/portfolio", "/static/css/site.css", "/portfolio/static/css/site.css"},
		{"/portfolio", "static/x.js", "/portfolio/static/x.js"},
		{"/portfolio", "#about", "#about"},
		{"/portfolio", "https://github.com/x", "https://github.com/x"},
		{"/portfolio", "mailto:a@b.c", "mailto:a@b.c"},
		{"/portfolio", "tel:+1", "tel:+1"},
		{"https://api.example.com", "/contact", "https://api.example.com/contact"},
	}
	for _, tt := range tests {
		if got := Join(tt.base, tt.p); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.base, tt.p, got, tt.want)
		}
	}
}

func TestRenderParagraphs(t *testing.T) {
	got, err := RenderParagraphs("First **bold**.\r\n\r\n\n\nSecond with [link](https://x.dev).\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(got))
	}
	if string(got[0]) != "<p>First <strong>bold</strong>.</p>" {
		t.Errorf("got[0] = %s", got[0])
	}
	if !strings.Contains(string(got[1]), `<a href="https://x.dev">link</a>`) {
		t.Errorf("got[1] = %s", got[1])
	}

	none, err := RenderParagraphs("  \n\n ")
	if err != nil || len(none) != 0 {
		t.Errorf("blank input = %v, %v", none, err)
	}
}

func TestRevealAttrs(t *testing.T) {
	attr, err := revealAttrs("project", 2)
	if err != nil {
		t.Fatal(err)
	}
	s := string(attr)
	for _, want := range []string{"data-reveal", "data-reveal-once", `data-reveal-margin="-50px"`, "--reveal-delay:0.2s"} {
		if !strings.Contains(s, want) {
			t.Errorf("project attrs %q missing %q", s, want)
		}
	}

	if _, err := revealAttrs("skill-chip", 1, 3); err != nil {
		t.Errorf("skill-chip: %v", err)
	}
	if _, err := revealAttrs("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestSpringStyle(t *testing.T) {
	css, err := springStyle("confirm")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(css), "--spring-duration:0.4s") {
		t.Errorf("confirm spring = %q", css)
	}
	if _, err := springStyle("wobbly"); err == nil {
		t.Error("expected error for unknown spring")
	}
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	if err != nil {
		t.Fatal(err)
	}
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("dict = %v", m)
	}
	if _, err := dict("a"); err == nil {
		t.Error("expected error for odd arguments")
	}
	if _, err := dict(1, 2); err == nil {
		t.Error("expected error for non-string key")
	}
}

func TestParse(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/index.html": {Data: []byte(`<link href="{{url "/static/css/site.css"}}"><form hx-post="{{api "/contact"}}"></form><h1 {{reveal "hero-title"}}>{{.Profile.Name}}</h1>`)},
	}
	tmpl, err := Parse(fsys, Options{BasePath: "/portfolio"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	page, err := NewPage(content.Default(), Options{BasePath: "/portfolio"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, IndexTemplate, page); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`href="/portfolio/static/css/site.css"`, `hx-post="/portfolio/contact"`, "data-reveal", "Priyanshu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseAPIURL(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/index.html": {Data: []byte(`{{api "/contact"}}`)},
	}
	tmpl, err := Parse(fsys, Options{BasePath: "/portfolio", APIURL: "https://api.example.com"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, IndexTemplate, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "https://api.example.com/contact" {
		t.Errorf("api url = %q", buf.String())
	}
}

func TestParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/a.html": {Data: []byte(`{{define "broken"}}{{end`)},
	}
	if _, err := Parse(fsys, Options{}); err == nil {
		t.Error("expected parse error")
	}
}
