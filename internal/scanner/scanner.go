// Package scanner discovers desktop entries and builds the menu list.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"launchbox/internal/config"
	"launchbox/internal/desktop"
	"launchbox/internal/icons"
	"launchbox/internal/models"
)

// descriptorSuffix marks desktop entry files
const descriptorSuffix = ".desktop"

// Scanner walks the configured application directories
type Scanner struct {
	cfg      *config.Config
	resolver *icons.Resolver
}

// New creates a Scanner for the given configuration
func New(cfg *config.Config) *Scanner {
	return &Scanner{
		cfg:      cfg,
		resolver: icons.New(cfg.IconThemeDirs, cfg.PixmapDir),
	}
}

// Discover enumerates descriptor files across dirs in order, deduplicating
// by filename so that earlier directories override later ones. Unreadable
// directories are skipped.
func Discover(dirs []string) []string {
	seen := make(map[string]bool)
	var paths []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, descriptorSuffix) || seen[name] {
				continue
			}
			seen[name] = true
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

// Build parses every discovered descriptor into the final menu order.
// Display order equals discovery order; no sorting is applied.
func (s *Scanner) Build() []models.App {
	var apps []models.App
	for _, path := range Discover(s.cfg.SearchDirs) {
		app, err := desktop.ParseFile(path, s.resolver)
		if err != nil {
			log.Debug("skipping desktop entry", "path", path, "err", err)
			continue
		}
		if app != nil {
			apps = append(apps, *app)
		}
	}
	return apps
}
