// Package site composes the single-page portfolio: it turns the display
// content into the view model consumed by the templates in web/.
package site

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/spriy4nshu/portfolio/internal/config"
	"github.com/spriy4nshu/portfolio/internal/contact"
	"github.com/spriy4nshu/portfolio/internal/content"
	"github.com/spriy4nshu/portfolio/internal/motion"
)

// Options controls how the page references assets and endpoints.
type Options struct {
	BasePath string
	APIURL   string
	Relay    config.RelayConfig
	Now      func() time.Time
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BasePath: cfg.Site.BasePath,
		APIURL:   cfg.Site.APIURL,
		Relay:    cfg.Relay,
	}
}

// Page is the view model for index.html.
type Page struct {
	content.Site
	Title       string
	Description string
	Headline    []motion.Word
	About       []template.HTML
	PhoneURL    template.URL
	Shapes      []motion.Shape
	Scroll      motion.Shape
	Form        contact.FormState
	Relay       config.RelayConfig

	now func() time.Time
}

// NewPage builds the page view model.
func NewPage(s content.Site, opts Options) (*Page, error) {
	about, err := RenderParagraphs(s.Profile.About)
	if err != nil {
		return nil, fmt.Errorf("rendering about section: %w", err)
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	return &Page{
		Site:        s,
		Title:       s.Profile.Name + " | " + s.Profile.Headline,
		Description: s.Profile.Tagline,
		Headline:    motion.Words(s.Profile.Headline, 1, false),
		About:       about,
		PhoneURL:    phoneURL(s.Profile.PhoneHref),
		Shapes:      motion.Shapes(5),
		Scroll:      motion.ScrollIndicator,
		Relay:       opts.Relay,
		now:         now,
	}, nil
}

// Year is the copyright year, read from the clock on every render.
func (p *Page) Year() int {
	return p.now().Year()
}

// phoneURL marks a tel: link as safe. Anything else is left for the
// template escaper to check.
func phoneURL(href string) template.URL {
	if !strings.HasPrefix(href, "tel:") || strings.ContainsAny(href, "\"'<> ") {
		return ""
	}
	return template.URL(href)
}

// Join prefixes p with base. Absolute URLs and in-page anchors are
// returned unchanged.
func Join(base, p string) string {
	if strings.HasPrefix(p, "#") || strings.Contains(p, "://") || strings.HasPrefix(p, "mailto:") || strings.HasPrefix(p, "tel:") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}
