// Package config loads user settings from a YAML file, an optional .env file
// and SYMPTOQUIZ_* environment variables.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/symptoquiz/internal/store"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://symptoquiz/config.json"

// Config holds user settings.
type Config struct {
	DBPath      string      `yaml:"db_path"`
	SaveHistory bool        `yaml:"save_history"`
	Log         LogConfig   `yaml:"log"`
	Share       ShareConfig `yaml:"share"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ShareConfig configures the share fallback file.
type ShareConfig struct {
	File string `yaml:"file"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		SaveHistory: true,
		Log:         LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/symptoquiz/config.yaml, falling back
// to ~/.config/symptoquiz/config.yaml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "symptoquiz", "config.yaml"), nil
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// Path is the config file. Empty means DefaultPath, where a missing
	// file is not an error.
	Path string

	// DotEnv is an optional .env file loaded before env overrides.
	// Variables already set in the environment win.
	DotEnv string
}

// Load reads, validates and decodes the config, then applies env overrides.
func Load(opts LoadOptions) (*Config, error) {
	if opts.DotEnv != "" {
		if err := godotenv.Load(opts.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", opts.DotEnv, err)
		}
	}

	cfg := Default()

	path := opts.Path
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file; defaults apply.
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse validates YAML data against the config schema and decodes it into cfg.
// Fields absent from data keep their current values.
func Parse(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return nil
	}
	if err := validate(doc); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SYMPTOQUIZ_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SYMPTOQUIZ_LOG_LEVEL"); v != "" {
		// Same enum as log.level in the file.
		if err := validate(map[string]any{"log": map[string]any{"level": v}}); err != nil {
			return fmt.Errorf("SYMPTOQUIZ_LOG_LEVEL: %w", err)
		}
		cfg.Log.Level = v
	}
	if v := os.Getenv("SYMPTOQUIZ_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("SYMPTOQUIZ_SHARE_FILE"); v != "" {
		cfg.Share.File = v
	}
	if v := os.Getenv("SYMPTOQUIZ_SAVE_HISTORY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SYMPTOQUIZ_SAVE_HISTORY: %w", err)
		}
		cfg.SaveHistory = b
	}
	return nil
}

// Resolve fills empty paths: the database path from store.DefaultDBPath,
// and the log and share files next to the database.
func (c *Config) Resolve() error {
	if c.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		c.DBPath = p
	} else if err := store.EnsureDir(c.DBPath); err != nil {
		return fmt.Errorf("create DB dir: %w", err)
	}

	dir := filepath.Dir(c.DBPath)
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dir, "symptoquiz.log")
	}
	if c.Share.File == "" {
		c.Share.File = filepath.Join(dir, "shared.txt")
	}
	return nil
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks a decoded YAML document against the config schema.
func validate(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so the validator sees JSON-native types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert config: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("convert config: %w", err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
