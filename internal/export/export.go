// Package export writes the portfolio as a static site: the rendered page
// plus the static assets, ready for any static host.
package export

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/spriy4nshu/portfolio/internal/config"
	"github.com/spriy4nshu/portfolio/internal/server"
)

// DefaultExclude lists asset globs that are never exported.
var DefaultExclude = []string{"**/.DS_Store", "**/*.map", "**/*.psd", "**/.gitkeep"}

// Options controls a single export run.
type Options struct {
	OutputDir string
	Exclude   []string
	// Clean removes OutputDir before writing.
	Clean bool
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		OutputDir: cfg.Export.OutputDir,
		Exclude:   append(append([]string{}, DefaultExclude...), cfg.Export.Exclude...),
	}
}

// Result summarizes an export.
type Result struct {
	Pages    int
	Assets   int
	Skipped  []string
	Warnings []string
}

// Warnings lists configuration that produces an export which builds but
// cannot work once deployed.
func Warnings(cfg *config.Config) []string {
	var out []string
	if cfg.Relay.Enabled() && cfg.Site.APIURL == "" {
		out = append(out, "email relay is configured but site.api_url is empty: the exported form posts to the static host, "+
			"so submissions fail before the relay runs")
	}
	return out
}

// Run renders the page through the HTTP engine and writes it, together with
// every non-excluded static asset, into opts.OutputDir.
func Run(ctx context.Context, cfg *config.Config, assets fs.FS, opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}

	// The exported page never records visits and never logs in debug mode.
	c := *cfg
	c.Server.Mode = "release"
	srv, err := server.New(&c, server.Deps{Assets: assets})
	if err != nil {
		return nil, fmt.Errorf("building site: %w", err)
	}

	page, err := render(ctx, srv.Handler(), c.Site.BasePath+"/")
	if err != nil {
		return nil, err
	}

	if opts.Clean {
		if err := clean(opts.OutputDir); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	res := &Result{Warnings: Warnings(&c)}
	for _, w := range res.Warnings {
		log.Printf("Warning: %s", w)
	}
	if err := os.WriteFile(filepath.Join(opts.OutputDir, "index.html"), page, 0o644); err != nil {
		return nil, fmt.Errorf("writing index.html: %w", err)
	}
	res.Pages++

	err = fs.WalkDir(assets, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if Excluded(strings.TrimPrefix(p, "static/"), opts.Exclude) {
			res.Skipped = append(res.Skipped, p)
			return nil
		}
		if err := copyFile(assets, p, filepath.Join(opts.OutputDir, filepath.FromSlash(p))); err != nil {
			return err
		}
		res.Assets++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copying assets: %w", err)
	}

	// Keep GitHub Pages from running Jekyll over the output.
	if err := os.WriteFile(filepath.Join(opts.OutputDir, ".nojekyll"), nil, 0o644); err != nil {
		return nil, fmt.Errorf("writing .nojekyll: %w", err)
	}

	log.Printf("Exported %d page and %d assets to %s (base path %q)", res.Pages, res.Assets, opts.OutputDir, c.Site.BasePath)
	return res, nil
}

func render(ctx context.Context, h http.Handler, target string) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return nil, fmt.Errorf("rendering %s: status %d", target, w.Code)
	}
	// A template execution error leaves gin's default 200 with no body.
	if w.Body.Len() == 0 {
		return nil, fmt.Errorf("rendering %s: empty page", target)
	}
	return w.Body.Bytes(), nil
}

func clean(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving output dir: %w", err)
	}
	wd, _ := os.Getwd()
	if abs == filepath.Dir(abs) || abs == wd {
		return fmt.Errorf("refusing to clean %s", abs)
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("cleaning output dir: %w", err)
	}
	return nil
}

func copyFile(fsys fs.FS, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}

// Excluded reports whether rel, a slash-separated path relative to the
// static directory, matches any of the patterns. Patterns are tried against
// the full path and the base name.
func Excluded(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
