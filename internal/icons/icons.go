// Package icons resolves desktop-entry icon names to files on disk.
//
// Lookup follows the usual theme layout: <root>/<theme>/<size>/<context>/,
// with the flat pixmap directory as the final fallback. A name that cannot
// be resolved is returned as-is so callers can still display something.
package icons

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	// Size buckets in preference order, largest raster first
	sizes = []string{"48x48", "32x32", "24x24", "16x16", "scalable"}

	// Context subdirectories that hold application icons
	contexts = []string{"apps", "applications"}

	// Extensions tried for every candidate
	extensions = []string{".svg", ".png", ".xpm"}
)

// Resolver probes icon directories for concrete icon files
type Resolver struct {
	themeDirs []string
	pixmapDir string
}

// New creates a Resolver over the given themed roots and pixmap directory
func New(themeDirs []string, pixmapDir string) *Resolver {
	return &Resolver{themeDirs: themeDirs, pixmapDir: pixmapDir}
}

// Resolve maps an icon name to an existing file path. Absolute paths that
// exist are returned unchanged. When nothing matches, the extension-stripped
// input is returned so the caller can treat it as unresolved.
func (r *Resolver) Resolve(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) && exists(name) {
		return name
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))

	for _, dir := range r.themeDirs {
		if path := searchThemes(dir, base); path != "" {
			return path
		}
	}

	for _, ext := range extensions {
		path := filepath.Join(r.pixmapDir, base+ext)
		if exists(path) {
			return path
		}
	}

	return base
}

// searchThemes probes every theme under root for the icon, hicolor first
func searchThemes(root, base string) string {
	for _, theme := range themeNames(root) {
		for _, size := range sizes {
			for _, context := range contexts {
				for _, ext := range extensions {
					path := filepath.Join(root, theme, size, context, base+ext)
					if exists(path) {
						return path
					}
				}
			}
		}
	}
	return ""
}

// themeNames lists theme subdirectories with hicolor forced to the front,
// whether or not it is present on disk
func themeNames(root string) []string {
	names := []string{"hicolor"}

	entries, err := os.ReadDir(root)
	if err != nil {
		return names
	}
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != "hicolor" {
			names = append(names, entry.Name())
		}
	}
	return names
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
