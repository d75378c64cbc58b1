package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

// Gateway implements domain.FileSystem on top of an afero filesystem.
// Relative paths are resolved against base.
type Gateway struct {
	fs   afero.Fs
	base string
}

// New returns a Gateway over the real filesystem rooted at the process
// working directory.
func New() (*Gateway, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return NewWithFs(afero.NewOsFs(), wd), nil
}

// NewWithFs returns a Gateway over fs that resolves relative paths against base.
func NewWithFs(fs afero.Fs, base string) *Gateway {
	return &Gateway{fs: fs, base: base}
}

func (g *Gateway) FileExists(path string) bool {
	info, err := g.fs.Stat(g.Abs(path))
	return err == nil && !info.IsDir()
}

func (g *Gateway) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(g.fs, g.Abs(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &domain.NotFoundError{Kind: "file", Path: path}
		}
		return "", &domain.IOError{Path: path, Err: err}
	}
	return string(data), nil
}

// ListFiles matches pattern against file names case-insensitively. Results
// are joined to dir as given and sorted by name.
func (g *Gateway) ListFiles(dir, pattern string) ([]string, error) {
	entries, err := afero.ReadDir(g.fs, g.Abs(dir))
	if err != nil {
		return nil, &domain.IOError{Path: dir, Err: err}
	}

	lowerPattern := strings.ToLower(pattern)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(lowerPattern, strings.ToLower(e.Name()))
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func (g *Gateway) Dir(path string) string { return filepath.Dir(path) }

// Join joins parts starting from the last absolute one, so an absolute
// part replaces everything before it.
func (g *Gateway) Join(parts ...string) string {
	start := 0
	for i, p := range parts {
		if filepath.IsAbs(p) {
			start = i
		}
	}
	return filepath.Join(parts[start:]...)
}

func (g *Gateway) Abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(g.base, path)
}

func (g *Gateway) CurrentDir() string { return g.base }
