// Package assets handles model loading and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/fbxmesh/internal/engine/model"
	"github.com/Faultbox/fbxmesh/pkg/formats"
)

// Options configures a Manager.
type Options struct {
	// Log receives import summaries and, with VerboseParse, per-block parse
	// diagnostics. Nil disables logging.
	Log *zap.Logger
	// VerboseParse forwards the logger into the FBX parser.
	VerboseParse bool
	// NameFromFile derives model names from the file base name.
	NameFromFile bool
}

// Manager loads models from disk with an in-memory cache.
//
// The import pipeline itself is stateless and re-entrant; the cache is the
// only shared state and is safe for concurrent use.
type Manager struct {
	opts  Options
	cache *Cache
}

// NewManager creates a new model manager.
func NewManager(opts Options) *Manager {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Manager{
		opts:  opts,
		cache: NewCache(),
	}
}

// LoadModel imports the FBX file at path, returning a cached model if the
// path was loaded before. The returned model is shared with the cache and
// must be treated as read-only.
func (m *Manager) LoadModel(path string) (*model.Model, error) {
	if cached, ok := m.cache.Get(path); ok {
		return cached, nil
	}

	mdl, err := m.importModel(path)
	if err != nil {
		return nil, err
	}

	m.cache.Set(path, mdl)
	return mdl, nil
}

// importModel runs the full pipeline: read, gate, parse, build, finalize.
func (m *Manager) importModel(path string) (*model.Model, error) {
	doc, err := m.parseFile(path)
	if err != nil {
		m.opts.Log.Error("model import failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	name := ""
	if m.opts.NameFromFile {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	mdl, err := model.BuildModel(doc, model.BuildOptions{Name: name})
	if err != nil {
		m.opts.Log.Error("model build failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("building model from %s: %w", path, err)
	}

	m.opts.Log.Info("model imported",
		zap.String("path", path),
		zap.String("name", mdl.Name),
		zap.Int("vertices", mdl.VertexCount()),
		zap.Int("triangles", mdl.TriangleCount()),
		zap.Float32("radius", mdl.Radius))

	return mdl, nil
}

// parseFile reads and parses an FBX file without building a model.
// Used directly by validate-style callers.
func (m *Manager) parseFile(path string) (*formats.FBX, error) {
	var parseLog *zap.Logger
	if m.opts.VerboseParse {
		parseLog = m.opts.Log
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := formats.ParseFBXWithOptions(data, formats.ParseOptions{Log: parseLog})
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// readFile reads the whole model file into one contiguous buffer.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening model file: %w", err)
	}
	return data, nil
}

// Validate parses the file at path without building a model.
func (m *Manager) Validate(path string) error {
	_, err := m.parseFile(path)
	return err
}

// CacheStats returns cache hit/miss counts.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// ClearCache drops all cached models.
func (m *Manager) ClearCache() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for imported models.
type Cache struct {
	models map[string]*model.Model
	mu     sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		models: make(map[string]*model.Model),
	}
}

// Get retrieves a model from cache.
func (c *Cache) Get(key string) (*model.Model, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mdl, ok := c.models[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return mdl, ok
}

// Set stores a model in cache.
func (c *Cache) Set(key string, mdl *model.Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models[key] = mdl
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models = make(map[string]*model.Model)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
