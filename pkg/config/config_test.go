package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/nodeedit/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Store.Backend, BackendFile)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[store]
backend = "redis"

[store.redis]
addr = "cache:6380"
db = 2

[editor]
close_on_error = true
theme = "dracula"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store.Backend != BackendRedis {
		t.Errorf("Backend = %q, want %q", cfg.Store.Backend, BackendRedis)
	}
	if cfg.Store.Redis.Addr != "cache:6380" || cfg.Store.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Store.Redis)
	}
	if cfg.Store.Redis.Prefix != "nodeedit:" {
		t.Errorf("Prefix = %q, want default kept", cfg.Store.Redis.Prefix)
	}
	if !cfg.Editor.CloseOnError || cfg.Editor.Theme != "dracula" {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.Editor.Width != 72 {
		t.Errorf("Width = %d, want default 72", cfg.Editor.Width)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `[store`},
		{"unknown backend", "[store]\nbackend = \"s3\""},
		{"unknown key", "[editor]\nfont = \"mono\""},
		{"bad size", "[editor]\nwidth = 0"},
		{"redis without addr", "[store]\nbackend = \"redis\"\n[store.redis]\naddr = \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(tt.data), &cfg)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestDefaultPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	want := filepath.Join(dir, "nodeedit", "config.toml")
	if got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Default().Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), "backend = \"file\"") {
		t.Errorf("Encode() output missing backend:\n%s", data)
	}

	var cfg Config
	if err := Parse(data, &cfg); err != nil {
		t.Fatalf("Parse(Encode()) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip = %+v, want %+v", cfg, Default())
	}
}
