package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/balkashynov/logbook/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Tracker App", cfg.Tracker.AppName)
	assert.Equal(t, "units", cfg.Tracker.DefaultUnit)
	assert.Equal(t, filepath.Join(cfg.DataDir, "logbook.db"), cfg.DBPath())
}

func TestLoad_File(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, `
data_dir = "`+dataDir+`"
log_level = "debug"
log_file = ""
timezone = "UTC"

[tracker]
app_name = "Caffeine"
item_name = "Drink"
item_name_plural = "Drinks"
default_unit = "mg"

[[tracker.presets]]
id = "espresso"
name = "Espresso"
category = "coffee"
default_amount = 63
unit = "mg"

[[tracker.achievements]]
id = "week-under-limit"
title = "Steady week"
description = "Stay under the limit for 7 days"
criteria_type = "streak"
target = 7
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.LogPath())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	app := cfg.AppConfig()
	assert.Equal(t, "Caffeine", app.AppName)
	assert.Equal(t, "Drinks", app.ItemNamePlural)
	require.Len(t, app.DefaultPresets, 1)
	assert.Equal(t, "Espresso", app.DefaultPresets[0].Name)
	assert.Equal(t, 63.0, app.DefaultPresets[0].DefaultAmount)
	require.Len(t, app.Achievements, 1)
	assert.Equal(t, "streak", app.Achievements[0].Criteria.Type)
	assert.Equal(t, 7.0, app.Achievements[0].Criteria.Target)
	assert.False(t, app.Achievements[0].Unlocked)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := map[string]string{
		"bad timezone": `timezone = "Mars/Olympus"`,
		"preset without name": `
[[tracker.presets]]
id = "x"
unit = "mg"`,
		"unknown criteria": `
[[tracker.achievements]]
id = "a"
criteria_type = "vibes"`,
	}

	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, content))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.Load(writeConfig(t, `log_level = `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}
