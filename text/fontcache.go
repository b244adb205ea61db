package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
)

// FontCache caches parsed fonts by file path. font.Font is read-only and
// safe for concurrent use, so one parsed font is shared by all shaping
// calls; the per-call font.Face wrappers are created by the shaper.
type FontCache struct {
	mu    sync.RWMutex
	fonts map[string]*font.Font
}

// NewFontCache returns an empty font cache.
func NewFontCache() *FontCache {
	return &FontCache{fonts: make(map[string]*font.Font)}
}

// Load returns the parsed font for path, reading and parsing the file on
// first use. Concurrent callers for the same path parse at most once.
func (c *FontCache) Load(path string) (*font.Font, error) {
	if path == "" {
		return nil, ErrNoFontPath
	}

	c.mu.RLock()
	if f, ok := c.fonts[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock.
	if f, ok := c.fonts[path]; ok {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontLoad, path, err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontLoad, path, err)
	}

	c.fonts[path] = face.Font
	return face.Font, nil
}

// Evict removes the cached font for path.
func (c *FontCache) Evict(path string) {
	c.mu.Lock()
	delete(c.fonts, path)
	c.mu.Unlock()
}

// Clear drops all cached fonts.
func (c *FontCache) Clear() {
	c.mu.Lock()
	c.fonts = make(map[string]*font.Font)
	c.mu.Unlock()
}
