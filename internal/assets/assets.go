// Package assets loads the demo's fixed resources from disk.
package assets

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no search directory holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager loads files from a list of directories and caches their bytes.
type Manager struct {
	dirs  []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager searching the given directories.
func NewManager(dirs ...string) *Manager {
	return &Manager{
		dirs:  dirs,
		cache: NewCache(),
	}
}

// AddDir adds a search directory.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "adding asset dir %s", dir)
	}
	if !info.IsDir() {
		return errors.Errorf("adding asset dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()

	return nil
}

// Load loads a file by name. Absolute paths bypass the search directories.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	if filepath.IsAbs(name) {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		m.cache.Set(name, data)
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(m.dirs[i], name))
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
	}

	return nil, errors.Wrap(ErrNotFound, name)
}

// Stats returns the cache hit and miss counts since the last Close.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops cached data.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
