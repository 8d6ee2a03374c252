package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv overrides the configuration directory when set.
const HomeEnv = "FORTRESS_HOME"

const (
	dirName  = ".fortress"
	fileName = "config.json"
	dataDir  = "data"
)

// Store reads and writes config.json inside Dir.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at $FORTRESS_HOME, or ~/.fortress.
func NewStore() (*Store, error) {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return &Store{Dir: dir}, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not find home directory: %w", err)
	}
	return &Store{Dir: filepath.Join(homeDir, dirName)}, nil
}

// Path returns the location of config.json.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, fileName)
}

// DataDir returns the directory reserved for local guild data.
func (s *Store) DataDir() string {
	return filepath.Join(s.Dir, dataDir)
}

// Ensure makes sure the config directory and file exist, writing defaults
// when the file is missing, and returns the parsed configuration. The file is
// read from disk on every call.
//
// A file that exists but does not parse is reported as an error and left
// untouched.
func (s *Store) Ensure() (Config, error) {
	if err := os.MkdirAll(s.DataDir(), 0o755); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := s.Path()
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := s.Save(Default()); err != nil {
			return Config{}, err
		}
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Save writes cfg to config.json, replacing its previous contents.
func (s *Store) Save(cfg Config) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0o600 keeps the file readable by the owner only; it may hold an API key.
	if err := os.WriteFile(s.Path(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
