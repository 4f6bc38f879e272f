// Package config loads CLI settings from defaults, an optional TOML file
// and TESSERACT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage  StorageConfig
	Scramble ScrambleConfig
	Log      LogConfig
	View     ViewConfig
}

// StorageConfig holds sqlite settings.
type StorageConfig struct {
	Path string
}

// ScrambleConfig holds scramble defaults.
type ScrambleConfig struct {
	PuzzleMoves int    `mapstructure:"puzzle_moves"`
	CubeMoves   int    `mapstructure:"cube_moves"`
	Seed        uint64 // 0 means time based
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string
	Development bool
}

// ViewConfig holds projection settings.
type ViewConfig struct {
	WDistance float64 `mapstructure:"w_distance"`
	WAngle    float64 `mapstructure:"w_angle"`
	XYAngle   float64 `mapstructure:"xy_angle"`
}

// DefaultPath returns $TESSERACT_CONFIG or ~/.config/tesseract/config.toml.
func DefaultPath() string {
	if p := os.Getenv("TESSERACT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".config", "tesseract", "config.toml")
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv("HOME")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.path", filepath.Join(homeDir(), ".tesseract", "tesseract.db"))
	v.SetDefault("scramble.puzzle_moves", 30)
	v.SetDefault("scramble.cube_moves", 25)
	v.SetDefault("scramble.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("view.w_distance", 4.0)
	v.SetDefault("view.w_angle", 15.0)
	v.SetDefault("view.xy_angle", 22.5)
}

// Load reads configuration from path (DefaultPath when empty) and env.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("TESSERACT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Scramble.PuzzleMoves < 0 || c.Scramble.CubeMoves < 0 {
		return Config{}, errors.New("scramble lengths must be non-negative")
	}
	if c.View.WDistance <= 0 {
		return Config{}, fmt.Errorf("view.w_distance must be positive, got %v", c.View.WDistance)
	}
	return c, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("scramble.puzzle_moves", cfg.Scramble.PuzzleMoves)
	v.Set("scramble.cube_moves", cfg.Scramble.CubeMoves)
	v.Set("scramble.seed", cfg.Scramble.Seed)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.development", cfg.Log.Development)
	v.Set("view.w_distance", cfg.View.WDistance)
	v.Set("view.w_angle", cfg.View.WAngle)
	v.Set("view.xy_angle", cfg.View.XYAngle)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
