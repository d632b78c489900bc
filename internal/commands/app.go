package commands

import (
	"fmt"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/balkashynov/logbook/internal/config"
	"github.com/balkashynov/logbook/internal/db"
	"github.com/balkashynov/logbook/internal/logging"
	"github.com/balkashynov/logbook/internal/tracker"
	"github.com/balkashynov/logbook/internal/workout"
)

// appContext holds everything a command needs, opened once per invocation
type appContext struct {
	cfg     *config.Config
	kv      *db.KVStore
	tracker *tracker.Store
	workout *workout.Store

	logCloser io.Closer
}

var app *appContext

// openApp loads the config, sets up logging and opens both stores
func openApp() error {
	path := configPath
	if path == "" {
		if dataDir != "" {
			path = filepath.Join(dataDir, "config.toml")
		} else {
			path = config.DefaultPath()
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logCloser := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogPath(),
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})

	kv, err := db.Open(cfg.DBPath())
	if err != nil {
		return multierr.Append(fmt.Errorf("failed to open database: %w", err), logCloser.Close())
	}
	log.Debugf("opened %s", cfg.DBPath())

	a := &appContext{
		cfg:       cfg,
		kv:        kv,
		tracker:   tracker.New(kv, cfg.AppConfig(), tracker.WithLocation(loc)),
		workout:   workout.New(kv, workout.WithLocation(loc)),
		logCloser: logCloser,
	}

	if err := a.tracker.Load(); err != nil {
		return multierr.Combine(err, a.close())
	}
	if err := a.workout.Load(); err != nil {
		return multierr.Combine(err, a.close())
	}

	app = a
	return nil
}

func closeApp() error {
	if app == nil {
		return nil
	}
	err := app.close()
	app = nil
	return err
}

func (a *appContext) close() error {
	return multierr.Combine(a.kv.Close(), a.logCloser.Close())
}

// requireFeature reports whether a tracker feature is switched on in the config
func requireFeature(enabled bool, feature string) bool {
	if !enabled {
		fmt.Printf("%s disabled. Set enable_%s = true under [tracker] in your config file.\n", capitalize(feature), feature)
	}
	return enabled
}
