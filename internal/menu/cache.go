// Package menu provides the read-through cache fronting the menu build.
package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"launchbox/internal/config"
	"launchbox/internal/models"
	"launchbox/internal/scanner"
)

// cacheFileName is the name of the menu cache file
const cacheFileName = "menu.json"

// Cache serves the application menu from disk, rebuilding on demand
type Cache struct {
	cfg     *config.Config
	scanner *scanner.Scanner
}

// New creates a Cache for the given configuration
func New(cfg *config.Config) *Cache {
	return &Cache{cfg: cfg, scanner: scanner.New(cfg)}
}

// Path returns the cache file location
func (c *Cache) Path() string {
	return filepath.Join(c.cfg.CacheDir, cacheFileName)
}

// Get returns the cached menu, rebuilding it on a miss or when refresh is
// set. A fresh build is persisted before it is returned; cached results
// never expire on their own.
func (c *Cache) Get(refresh bool) (*models.Menu, error) {
	if !refresh {
		m, err := c.load()
		if err == nil {
			return m, nil
		}
		log.Debug("menu cache miss", "path", c.Path(), "err", err)
	}

	m := &models.Menu{Apps: c.scanner.Build()}
	if err := c.save(m); err != nil {
		return nil, err
	}
	log.Debug("menu rebuilt", "apps", len(m.Apps), "path", c.Path())
	return m, nil
}

func (c *Cache) load() (*models.Menu, error) {
	data, err := os.ReadFile(c.Path())
	if err != nil {
		return nil, err
	}

	var m models.Menu
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// save writes the menu cache. A write failing because the cache directory
// is missing gets one retry after MkdirAll; any other failure is fatal to
// the build and surfaces the path and underlying error.
func (c *Cache) save(m *models.Menu) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode menu cache: %w", err)
	}

	path := c.Path()
	err = os.WriteFile(path, data, 0644)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return fmt.Errorf("create cache directory for %s: %w", path, mkErr)
		}
		err = os.WriteFile(path, data, 0644)
	}
	if err != nil {
		return fmt.Errorf("write menu cache %s: %w", path, err)
	}
	return nil
}
