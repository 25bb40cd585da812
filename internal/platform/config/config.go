package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"

	FileName = "config.yaml"
)

type Config struct {
	DataDir       string
	DBPath        string
	StateDir      string
	DatasetPath   string
	Backend       string
	PruneStaleIDs bool
	Verbose       bool
}

// fileConfig mirrors the optional config.yaml in the data directory.
type fileConfig struct {
	Backend       string `yaml:"backend"`
	Dataset       string `yaml:"dataset"`
	PruneStaleIDs *bool  `yaml:"prune_stale_ids"`
	Verbose       *bool  `yaml:"verbose"`
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, "patterns.db"),
		StateDir: filepath.Join(dataDir, "state"),
		Backend:  BackendSQLite,
	}, nil
}

// Load builds defaults for dataDir and overlays <dataDir>/config.yaml when it
// exists. A missing file is not an error.
func Load(dataDir string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(filepath.Join(dataDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if fc.Backend != "" {
		cfg.Backend = fc.Backend
	}
	if fc.Dataset != "" {
		cfg.DatasetPath = fc.Dataset
		if !filepath.IsAbs(cfg.DatasetPath) {
			cfg.DatasetPath = filepath.Join(dataDir, cfg.DatasetPath)
		}
	}
	if fc.PruneStaleIDs != nil {
		cfg.PruneStaleIDs = *fc.PruneStaleIDs
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
		return nil
	default:
		return fmt.Errorf("unsupported backend %q", c.Backend)
	}
}

// DefaultDataDir resolves ~/.patterns.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".patterns"), nil
}
