package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Tracker hashes client IPs and records page views.
type Tracker struct {
	store    *Store
	salt     string
	basePath string
	skip     []string
}

// NewTracker creates a Tracker. An empty salt is replaced with a random
// one, so hashes are then only stable for the life of the process.
func NewTracker(store *Store, salt, basePath string) (*Tracker, error) {
	if salt == "" {
		var err error
		if salt, err = randomSalt(); err != nil {
			return nil, err
		}
	}
	t := &Tracker{store: store, salt: salt, basePath: basePath}
	for _, p := range []string{"/static/", "/api/", "/healthz", "/contact", "/favicon"} {
		t.skip = append(t.skip, basePath+p)
	}
	return t, nil
}

func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns a salted hash of ip, consistent per salt.
func (t *Tracker) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + t.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// ShouldTrack reports whether a request for path should be recorded.
func (t *Tracker) ShouldTrack(method, path, dnt string) bool {
	if method != "GET" || dnt == "1" {
		return false
	}
	for _, p := range t.skip {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Track records a single view synchronously.
func (t *Tracker) Track(ctx context.Context, ip, userAgent, path string) error {
	return t.store.Record(ctx, t.HashIP(ip), userAgent, path)
}

// Middleware records page views off the request path.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !t.ShouldTrack(c.Request.Method, path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.Track(ctx, ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// Cleanup prunes visits older than retentionDays. Zero keeps everything.
func (t *Tracker) Cleanup(ctx context.Context, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	n, err := t.store.Prune(ctx, time.Duration(retentionDays)*24*time.Hour)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than %d days", n, retentionDays)
	}
}
