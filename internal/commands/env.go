package commands

import (
	"io"

	"github.com/charmbracelet/log"

	"habitbox/internal/config"
	"habitbox/internal/goal"
	"habitbox/internal/habit"
	"habitbox/internal/kv"
	"habitbox/internal/logging"
)

// env is everything a command needs once the config has been read.
type env struct {
	cfg   config.Config
	store kv.Store
	log   *log.Logger

	logCloser io.Closer
}

// open loads the config, builds the logger (writing to logOut unless a
// log_file is configured) and opens the configured kv backend.
func (ro *rootOptions) open(logOut io.Writer) (*env, error) {
	path := ro.ConfigPath
	if path == "" {
		path = config.ResolveConfigPath()
	} else {
		path = config.ExpandPath(path)
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, err
	}
	if ro.Ephemeral {
		cfg.Backend = config.BackendMemory
	}

	logger, closer, err := logging.Open(cfg, logOut)
	if err != nil {
		return nil, err
	}
	store, err := kv.Open(cfg)
	if err != nil {
		closer.Close()
		return nil, err
	}
	logger.Debug("opened store", "backend", cfg.Backend, "config", path)
	return &env{cfg: cfg, store: store, log: logger, logCloser: closer}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", "err", err)
	}
	_ = e.logCloser.Close()
}

func (e *env) habits() (*habit.Store, error) {
	return habit.Load(e.store,
		habit.WithLogger(e.log),
		habit.WithPinGuard(e.cfg.PinBlocksRemove),
	)
}

func (e *env) goals() (*goal.Store, error) {
	if !e.cfg.PersistGoals {
		return goal.New(), nil
	}
	return goal.LoadPersistent(e.store, e.log)
}
