// Package config loads the user's mode-line configuration file.
//
// The file supplies alias overrides that are merged additively into the
// mode dictionary at startup; user entries always win over built-ins.
// TOML and JSON are supported, chosen by file extension. A missing file
// is not an error: most users have no configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// Config is the user-facing configuration surface.
type Config struct {
	// Aliases maps Emacs mode names to native language identifiers.
	Aliases map[string]string `toml:"aliases"`
}

// FileSystem is the file access the loader needs. It allows in-memory
// file systems in tests.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Load reads the configuration at path. A nonexistent file yields
// nil, nil. An empty path yields nil, nil as well: configuration is
// optional everywhere it is consumed.
func Load(path string) (*Config, error) {
	return LoadWithFS(DefaultFS(), path)
}

// LoadWithFS reads the configuration through a custom file system.
func LoadWithFS(fs FileSystem, path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".toml":
		return parseTOML(path, data)
	case ".json":
		return parseJSON(path, data)
	default:
		return nil, fmt.Errorf("config file %s: unsupported format %q", path, filepath.Ext(path))
	}
}

func parseTOML(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

func parseJSON(path string, data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing config file %s: invalid JSON", path)
	}

	cfg := Config{Aliases: make(map[string]string)}
	gjson.GetBytes(data, "aliases").ForEach(func(key, value gjson.Result) bool {
		cfg.Aliases[key.String()] = value.String()
		return true
	})
	return &cfg, nil
}
