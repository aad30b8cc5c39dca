// Package config loads nodeedit settings from a TOML file.
//
// The default location follows the XDG base directory convention:
// $XDG_CONFIG_HOME/nodeedit/config.toml, falling back to
// ~/.config/nodeedit/config.toml. A missing file is not an error; the
// defaults returned by [Default] apply.
//
//	[store]
//	backend = "redis"
//
//	[store.redis]
//	addr = "localhost:6379"
//	prefix = "nodeedit:"
//
//	[editor]
//	close_on_error = false
//	theme = "monokai"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/nodeedit/pkg/errors"
)

// appName is used for the config directory.
const appName = "nodeedit"

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the full nodeedit configuration.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Editor EditorConfig `toml:"editor"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Backend string      `toml:"backend"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures the Redis document store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// MongoConfig configures the MongoDB document store.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// EditorConfig configures the node dialog.
type EditorConfig struct {
	// CloseOnError closes the editor when a save fails instead of keeping
	// the draft open with the error shown inline.
	CloseOnError bool   `toml:"close_on_error"`
	LineNumbers  bool   `toml:"line_numbers"`
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Theme        string `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: appName + ":",
			},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   appName,
				Collection: "documents",
			},
		},
		Editor: EditorConfig{
			LineNumbers: true,
			Width:       72,
			Height:      16,
			Theme:       "monokai",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path on top of the defaults.
// An empty path means DefaultPath. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping values the data does not set,
// and validates the result.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}
	if c.Editor.Width <= 0 || c.Editor.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "editor width and height must be positive")
	}
	if c.Store.Backend == BackendRedis && c.Store.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store.redis.addr is required")
	}
	if c.Store.Backend == BackendMongo && (c.Store.Mongo.URI == "" || c.Store.Mongo.Database == "" || c.Store.Mongo.Collection == "") {
		return errors.New(errors.ErrCodeInvalidConfig, "store.mongo requires uri, database and collection")
	}
	return nil
}

// Encode writes cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
