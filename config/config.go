package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"customgrid/log"
	"customgrid/ui/layout"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".customgrid"
)

// Direction names accepted in the config file.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Tile is one child of the demo grid.
type Tile struct {
	Label string `json:"label"`
	// Size is the tile's side length in dp.
	Size float64 `json:"size_dp"`
}

// Config represents the application configuration
type Config struct {
	// Columns is the grid's column count. Values <= 0 lay out as one column.
	Columns int `json:"columns"`
	// HorizontalSpacing is the gap between columns in dp.
	HorizontalSpacing float64 `json:"horizontal_spacing_dp"`
	// VerticalSpacing is the gap between rows in dp.
	VerticalSpacing float64 `json:"vertical_spacing_dp"`
	// DensityScale is the number of terminal columns per dp.
	DensityScale float64 `json:"density_scale"`
	// CellAspect is the height/width ratio of a terminal cell.
	CellAspect float64 `json:"cell_aspect"`
	// Direction is "ltr" or "rtl".
	Direction string `json:"direction"`
	// Tiles are the grid's children in order.
	Tiles []Tile `json:"tiles"`
}

// DefaultTiles reproduces the ten images of the reference preview.
func DefaultTiles() []Tile {
	sizes := []float64{100, 110, 90, 120, 100, 80, 100, 120, 100, 90}
	tiles := make([]Tile, len(sizes))
	for i, size := range sizes {
		tiles[i] = Tile{Label: fmt.Sprintf("cat %d", i+1), Size: size}
	}
	return tiles
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Columns:           3,
		HorizontalSpacing: 0,
		VerticalSpacing:   0,
		DensityScale:      layout.DefaultDensity.Scale,
		CellAspect:        layout.DefaultDensity.CellAspect,
		Direction:         DirectionLTR,
		Tiles:             DefaultTiles(),
	}
}

// Grid returns the grid configuration.
func (c *Config) Grid() layout.Grid {
	return layout.Grid{
		Columns:           c.Columns,
		HorizontalSpacing: layout.Dp(c.HorizontalSpacing),
		VerticalSpacing:   layout.Dp(c.VerticalSpacing),
	}
}

// Density returns the dp-to-cell conversion, falling back to the default
// for unset or invalid values.
func (c *Config) Density() layout.Density {
	d := layout.DefaultDensity
	if c.DensityScale > 0 {
		d.Scale = c.DensityScale
	}
	if c.CellAspect > 0 {
		d.CellAspect = c.CellAspect
	}
	return d
}

// LayoutDirection returns the configured reading direction.
func (c *Config) LayoutDirection() layout.Direction {
	dir, err := ParseDirection(c.Direction)
	if err != nil {
		log.WarningLog.Printf("%v, using %s", err, DirectionLTR)
	}
	return dir
}

// ParseDirection parses "ltr" or "rtl". The empty string means "ltr".
func ParseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", DirectionLTR:
		return layout.LeftToRight, nil
	case DirectionRTL:
		return layout.RightToLeft, nil
	default:
		return layout.LeftToRight, fmt.Errorf("invalid direction: %q (must be '%s' or '%s')", s, DirectionLTR, DirectionRTL)
	}
}

// LoadConfig reads the config file. A missing file is created with the
// defaults; an unreadable or corrupt one falls back to the defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	// The lock file lives in configDir, so it must exist on first run.
	if err := os.MkdirAll(configDir, 0755); err != nil {
		log.WarningLog.Printf("failed to create config directory: %v", err)
	}

	lock := NewFileLock(configPath)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := writeConfig(configDir, defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return config
}

// SaveConfig writes config to disk under an exclusive lock.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(filepath.Join(configDir, ConfigFileName))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	return writeConfig(configDir, config)
}

// ResetConfig overwrites the config file with the defaults.
func ResetConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := SaveConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to reset config: %w", err)
	}
	return cfg, nil
}

// writeConfig writes without locking; callers hold the lock.
func writeConfig(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0644)
}
