// Package levels reads and writes hexslide level files.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/hexslide/levels/formats"
)

// File is a level loaded from disk.
type File struct {
	ID       string
	Name     string
	Level    core.Level
	Metadata map[string]string
	FilePath string
}

// Loader handles loading and saving levels in a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// IDFor returns the canonical ID of a level number.
func IDFor(number int) string {
	return fmt.Sprintf("level-%04d", number)
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]File, error) {
	var files []File

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		f, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ID < files[j].ID
	})
	return files, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return File{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return File{
		ID:       id,
		Name:     parsed.Name,
		Level:    parsed.Level,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (File, error) {
	files, err := l.LoadAll()
	if err != nil {
		return File{}, err
	}
	for _, f := range files {
		if f.ID == id {
			return f, nil
		}
	}
	return File{}, fmt.Errorf("level not found: %s", id)
}

// Save writes a level to <root>/<id>.yaml and returns the path.
func (l *Loader) Save(lvl core.Level, name string) (string, error) {
	if err := os.MkdirAll(l.Root, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", l.Root, err)
	}

	id := IDFor(lvl.Number)
	data, err := formats.MarshalYAML(formats.Level{ID: id, Name: name, Level: lvl})
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", id, err)
	}

	path := filepath.Join(l.Root, id+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
