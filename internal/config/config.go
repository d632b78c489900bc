package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/balkashynov/logbook/internal/models"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	DataDir string `toml:"data_dir"`
	DBFile  string `toml:"db_file"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	LogToStdout bool   `toml:"log_to_stdout"`
	LogJSON     bool   `toml:"log_json"`
	// IANA zone name used for calendar days, "Local" for the system zone
	Timezone string `toml:"timezone"`

	Tracker Tracker `toml:"tracker"`
}

// Tracker customises the items tracker
type Tracker struct {
	AppName            string          `toml:"app_name"`
	ItemName           string          `toml:"item_name"`
	ItemNamePlural     string          `toml:"item_name_plural"`
	DefaultUnit        string          `toml:"default_unit"`
	EnableTimeline     bool            `toml:"enable_timeline"`
	EnableAchievements bool            `toml:"enable_achievements"`
	EnableReports      bool            `toml:"enable_reports"`
	EnableExport       bool            `toml:"enable_export"`
	Presets            []models.Preset `toml:"presets"`
	Achievements       []Achievement   `toml:"achievements"`
}

// Achievement is an achievement definition as written in the config file
type Achievement struct {
	ID           string  `toml:"id"`
	Title        string  `toml:"title"`
	Description  string  `toml:"description"`
	Icon         string  `toml:"icon"`
	CriteriaType string  `toml:"criteria_type"`
	Target       float64 `toml:"target"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		DataDir:     defaultDataDir(),
		DBFile:      "logbook.db",
		LogLevel:    "info",
		LogFile:     "logbook.log",
		LogToStdout: false,
		Timezone:    "Local",
		Tracker: Tracker{
			AppName:            "Tracker App",
			ItemName:           "Item",
			ItemNamePlural:     "Items",
			DefaultUnit:        "units",
			EnableTimeline:     true,
			EnableAchievements: true,
			EnableReports:      true,
			EnableExport:       true,
		},
	}
}

// Load reads the TOML file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the config file path inside the default data dir
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.toml")
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is required", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: timezone: %s", ErrInvalidConfig, err)
	}
	for i, p := range c.Tracker.Presets {
		if p.ID == "" || p.Name == "" {
			return fmt.Errorf("%w: preset #%d needs an id and a name", ErrInvalidConfig, i+1)
		}
	}
	for i, a := range c.Tracker.Achievements {
		if a.ID == "" {
			return fmt.Errorf("%w: achievement #%d needs an id", ErrInvalidConfig, i+1)
		}
		switch a.CriteriaType {
		case "streak", "total", "limit", "custom":
		default:
			return fmt.Errorf("%w: achievement %s: unknown criteria type %q", ErrInvalidConfig, a.ID, a.CriteriaType)
		}
	}
	return nil
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// AppConfig converts the tracker section into the items tracker configuration
func (c *Config) AppConfig() models.AppConfig {
	t := c.Tracker
	achievements := make([]models.Achievement, 0, len(t.Achievements))
	for _, a := range t.Achievements {
		achievements = append(achievements, models.Achievement{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Criteria: models.AchievementCriteria{
				Type:   a.CriteriaType,
				Target: a.Target,
			},
		})
	}
	presets := make([]models.Preset, len(t.Presets))
	copy(presets, t.Presets)

	return models.AppConfig{
		AppName:            t.AppName,
		ItemName:           t.ItemName,
		ItemNamePlural:     t.ItemNamePlural,
		DefaultUnit:        t.DefaultUnit,
		EnableTimeline:     t.EnableTimeline,
		EnableAchievements: t.EnableAchievements,
		EnableReports:      t.EnableReports,
		EnableExport:       t.EnableExport,
		DefaultPresets:     presets,
		Achievements:       achievements,
	}
}

// DBPath is the database file location
func (c *Config) DBPath() string {
	return c.resolve(c.DBFile, "logbook.db")
}

// LogPath is the log file location, empty when logging to a file is disabled
func (c *Config) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	return c.resolve(c.LogFile, "logbook.log")
}

func (c *Config) resolve(file, fallback string) string {
	if file == "" {
		file = fallback
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".logbook"
	}
	return filepath.Join(homeDir, ".logbook")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}
	return path
}
