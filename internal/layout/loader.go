package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}

		lay, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		layouts = append(layouts, lay)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(layouts)
	return layouts, nil
}

// LoadFile loads a single layout file.
func (l *Loader) LoadFile(p string) (Layout, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	lay, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	lay.FilePath = p
	return lay, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}
	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// Builtin returns all layouts shipped with the binary, sorted by ID.
func Builtin() ([]Layout, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in layouts: %w", err)
	}

	layouts := make([]Layout, 0, len(entries))
	for _, entry := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading built-in layout %s: %w", entry.Name(), err)
		}
		lay, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing built-in layout %s: %w", entry.Name(), err)
		}
		layouts = append(layouts, lay)
	}

	sortByID(layouts)
	return layouts, nil
}

// BuiltinByID returns the built-in layout with the given ID.
func BuiltinByID(id string) (Layout, error) {
	layouts, err := Builtin()
	if err != nil {
		return Layout{}, err
	}
	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

func sortByID(layouts []Layout) {
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
