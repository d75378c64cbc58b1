package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

// YAMLLoader implements domain.ConfigLoader by reading .validate-slnf.yaml.
type YAMLLoader struct {
	fs afero.Fs
}

// New creates a YAMLLoader reading from fs.
func New(fs afero.Fs) *YAMLLoader { return &YAMLLoader{fs: fs} }

// Load reads .validate-slnf.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg, err := l.read(filepath.Join(dir, domain.ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads an explicitly named config file, which must exist.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	return l.read(path)
}

func (l *YAMLLoader) read(path string) (domain.Config, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	// Validate the raw input before defaults hide a typo.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg.WithDefaults(), nil
}
