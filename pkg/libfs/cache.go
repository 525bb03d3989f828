package libfs

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of file bodies kept between rebuilds.
const DefaultCacheSize = 1024

// Caching wraps an FS with an LRU cache of file contents so repeated index
// rebuilds do not re-read an unchanged tree. Directory listings are not
// cached; they are cheap and staleness there is more visible.
type Caching struct {
	inner FS
	files *lru.Cache[string, string]
	log   *slog.Logger
}

// NewCaching wraps inner with a content cache of the given size.
// A size <= 0 uses DefaultCacheSize. A nil logger disables cache logging.
func NewCaching(inner FS, size int, logger *slog.Logger) (*Caching, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create file cache: %w", err)
	}
	return &Caching{inner: inner, files: cache, log: logger}, nil
}

func (c *Caching) ReadDir(path string) ([]Entry, error) {
	return c.inner.ReadDir(path)
}

func (c *Caching) ReadFile(path string) (string, error) {
	if text, ok := c.files.Get(path); ok {
		return text, nil
	}
	text, err := c.inner.ReadFile(path)
	if err != nil {
		return "", err
	}
	if evicted := c.files.Add(path, text); evicted {
		c.log.Debug("file cache eviction", "path", path)
	}
	return text, nil
}

// Purge drops all cached contents. The watcher calls this when the library
// tree changes so the next build re-reads from disk.
func (c *Caching) Purge() {
	c.files.Purge()
}
