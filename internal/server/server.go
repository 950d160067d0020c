// Package server wires the portfolio page, the contact endpoints and the
// static assets into a gin engine.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/spriy4nshu/portfolio/internal/analytics"
	"github.com/spriy4nshu/portfolio/internal/config"
	"github.com/spriy4nshu/portfolio/internal/contact"
	"github.com/spriy4nshu/portfolio/internal/content"
	"github.com/spriy4nshu/portfolio/internal/site"
	"github.com/spriy4nshu/portfolio/web"
)

// Deps are the collaborators a Server is built from. Zero values fall back
// to the embedded assets, the default content and the acknowledging
// receiver.
type Deps struct {
	Assets   fs.FS // must contain templates/ and static/
	Content  *content.Site
	Receiver contact.Receiver
	Tracker  *analytics.Tracker // nil disables visitor tracking
}

// Server serves the portfolio over HTTP.
type Server struct {
	cfg        *config.Config
	engine     *gin.Engine
	handler    http.Handler
	page       *site.Page
	httpServer *http.Server
}

// Assets returns the asset tree selected by cfg: the on-disk directory when
// site.assets_dir is set, the embedded copy otherwise.
func Assets(cfg *config.Config) (fs.FS, error) {
	if cfg.Site.AssetsDir == "" {
		return web.FS, nil
	}
	info, err := os.Stat(cfg.Site.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("reading assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s is not a directory", cfg.Site.AssetsDir)
	}
	return os.DirFS(cfg.Site.AssetsDir), nil
}

// New builds the engine and its routes.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Assets == nil {
		deps.Assets = web.FS
	}
	if deps.Content == nil {
		c := content.Default()
		deps.Content = &c
	}
	if deps.Receiver == nil {
		deps.Receiver = contact.NewAcknowledger()
	}

	opts := site.OptionsFromConfig(cfg)
	page, err := site.NewPage(*deps.Content, opts)
	if err != nil {
		return nil, err
	}
	tmpl, err := site.Parse(deps.Assets, opts)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(deps.Assets, "static")
	if err != nil {
		return nil, fmt.Errorf("opening static assets: %w", err)
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID(), SecurityHeaders())
	if deps.Tracker != nil {
		r.Use(deps.Tracker.Middleware())
	}
	r.SetHTMLTemplate(tmpl)

	s := &Server{cfg: cfg, engine: r, page: page}

	base := cfg.Site.BasePath
	g := r.Group(base)
	g.GET("/", s.index)
	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	g.StaticFS("/static", http.FS(static))
	contact.NewHandler(deps.Receiver).Register(g)

	if base != "" {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, base+"/")
		})
	}

	s.handler = cors.Handler(corsOptions(cfg.Server.AllowedOrigins))(r)
	return s, nil
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger", "HX-Trigger-Name"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, site.IndexTemplate, s.page)
}

// Handler returns the root HTTP handler, including CORS.
func (s *Server) Handler() http.Handler { return s.handler }

// Engine returns the underlying gin engine.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Portfolio listening on %s%s/", addr, s.cfg.Site.BasePath)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
