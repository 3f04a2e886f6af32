// Package config persists the board settings chosen in the menu as a
// key=value file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// File keys.
const (
	KeyRows    = "rows"
	KeyColumns = "columns"
	KeySet     = "set"
	KeyPlayers = "players"
)

// Config holds the settings for the next match.
type Config struct {
	Rows    int
	Columns int
	ArtSet  int
	Players int
}

// Default returns a 3x4 board with art set 1 and one player.
func Default() Config {
	return Config{Rows: 3, Columns: 4, ArtSet: 1, Players: 1}
}

// Clamp replaces out-of-range values with their defaults.
func (c Config) Clamp() Config {
	d := Default()
	if c.Rows < 3 || c.Rows > 4 {
		c.Rows = d.Rows
	}
	if c.Columns < 4 || c.Columns > 5 {
		c.Columns = d.Columns
	}
	if c.ArtSet < 1 || c.ArtSet > 2 {
		c.ArtSet = d.ArtSet
	}
	if c.Players < 1 || c.Players > 2 {
		c.Players = d.Players
	}
	return c
}

// Load reads the config file at path. A missing file yields the defaults;
// unknown keys are ignored and bad values are clamped.
func Load(path string) (Config, error) {
	cfg := Default()
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}

	set := func(key string, dst *int) {
		if v, ok := values[key]; ok {
			// atoi semantics: garbage reads as zero and is clamped below.
			n, _ := strconv.Atoi(v)
			*dst = n
		}
	}
	set(KeyRows, &cfg.Rows)
	set(KeyColumns, &cfg.Columns)
	set(KeySet, &cfg.ArtSet)
	set(KeyPlayers, &cfg.Players)

	return cfg.Clamp(), nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := godotenv.Write(cfg.values(), path); err != nil {
		return fmt.Errorf("could not write config %s: %w", path, err)
	}
	return nil
}

// Set assigns a single key given as text.
func (c *Config) Set(key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %q is not a number", key, value)
	}
	switch key {
	case KeyRows:
		c.Rows = n
	case KeyColumns:
		c.Columns = n
	case KeySet:
		c.ArtSet = n
	case KeyPlayers:
		c.Players = n
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func (c Config) values() map[string]string {
	return map[string]string{
		KeyRows:    strconv.Itoa(c.Rows),
		KeyColumns: strconv.Itoa(c.Columns),
		KeySet:     strconv.Itoa(c.ArtSet),
		KeyPlayers: strconv.Itoa(c.Players),
	}
}

// String renders the config the way it is stored.
func (c Config) String() string {
	s, _ := godotenv.Marshal(c.values())
	return s
}

// DefaultPath returns ~/.config/go-memotest/config.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "go-memotest", "config"), nil
}
