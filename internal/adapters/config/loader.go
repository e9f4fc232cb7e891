// Package config provides the configuration loader for quill.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var styles = []string{"nested", "expanded", "compact", "compressed"}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds quill.yaml in cwd or the nearest parent directory. Without one, the
// defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(filepath.Clean(cwd)), nil
	}

	var quillfile Quillfile
	if err := readAndUnmarshalYAML(configPath, &quillfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return l.build(configPath, &quillfile)
}

func (l *Loader) build(configPath string, quillfile *Quillfile) (*domain.Config, error) {
	configDir := filepath.Dir(configPath)
	cfg := domain.DefaultConfig(resolvePath(configDir, quillfile.Root))

	if quillfile.Style != "" {
		if !slices.Contains(styles, quillfile.Style) {
			return nil, zerr.With(domain.ErrInvalidStyle, "style", quillfile.Style)
		}
		cfg.Style = quillfile.Style
	}

	for _, p := range quillfile.LoadPaths {
		abs := resolvePath(configDir, p)
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			l.Logger.Warn(fmt.Sprintf("load path %s is not a directory and will not match any import", abs))
		}
		if !slices.Contains(cfg.LoadPaths, abs) {
			cfg.LoadPaths = append(cfg.LoadPaths, abs)
		}
	}

	for _, pattern := range quillfile.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidIgnorePattern.Error()), "pattern", pattern)
		}
	}
	cfg.Ignore = quillfile.Ignore

	switch quillfile.Cache.Store {
	case "":
	case domain.StoreMemory, domain.StoreFile:
		cfg.Cache.Store = quillfile.Cache.Store
	default:
		return nil, zerr.With(domain.ErrUnknownStore, "store", quillfile.Cache.Store)
	}
	if quillfile.Cache.Dir != "" {
		cfg.Cache.Dir = resolvePath(configDir, quillfile.Cache.Dir)
	}
	cfg.Cache.Compress = quillfile.Cache.Compress

	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// resolvePath resolves a configured path against the directory of the config file.
func resolvePath(configDir, configured string) string {
	if configured == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
