// Package loader reads paintr configuration sources into plain maps.
//
// File loaders parse TOML or YAML into map[string]any. The environment
// loader turns PAINTR_* variables into the same shape so every source can
// be combined with DeepMerge.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for config files with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// parser decodes one file format.
type parser func(data []byte, v any) error

// FileLoader loads one configuration file, choosing the parser from the
// file extension.
type FileLoader struct {
	fs    FileSystem
	path  string
	parse parser
}

// ForPath returns a loader for path. Supported extensions are .toml,
// .yaml and .yml.
func ForPath(path string) (*FileLoader, error) {
	return ForPathWithFS(DefaultFS(), path)
}

// ForPathWithFS is ForPath with a custom file system.
func ForPathWithFS(fsys FileSystem, path string) (*FileLoader, error) {
	var p parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		p = parseTOML
	case ".yaml", ".yml":
		p = parseYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return &FileLoader{fs: fsys, path: path, parse: p}, nil
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string { return l.path }

// Load reads and parses the file. A missing file yields nil, nil.
func (l *FileLoader) Load() (map[string]any, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return l.Parse(data)
}

// Parse decodes data in the loader's format.
func (l *FileLoader) Parse(data []byte) (map[string]any, error) {
	var config map[string]any
	if err := l.parse(data, &config); err != nil {
		return nil, newParseError(l.path, err)
	}
	return config, nil
}

// DeepMerge recursively merges src into dst.
// Values in src override values in dst.
// Maps are merged recursively; other types are replaced.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}

// Clone creates a deep copy of a configuration map.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, val := range src {
		dst[key] = cloneValue(val)
	}
	return dst
}

func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return Clone(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}
