package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "habitbox.db"
	DefaultGoalsTitle     = "Achieve Before 2027"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "HABITBOX_CONFIG"
)

const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Pin        string `toml:"pin"`
	Delete     string `toml:"delete"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	Timeline   string `toml:"timeline"`
	Goals      string `toml:"goals"`
	SwitchPane string `toml:"switch_pane"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type Config struct {
	Backend         string `toml:"backend"`
	DBPath          string `toml:"db_path"`
	DiskvDir        string `toml:"diskv_dir"`
	Redis           Redis  `toml:"redis"`
	DefaultTimeline string `toml:"default_timeline"`
	PinBlocksRemove bool   `toml:"pin_blocks_remove"`
	PersistGoals    bool   `toml:"persist_goals"`
	GoalsTitle      string `toml:"goals_title"`
	LogLevel        string `toml:"log_level"`
	LogFile         string `toml:"log_file"`
	Keys            Keymap `toml:"keys"`
}

// ResolveConfigPath picks the config file: $HABITBOX_CONFIG, then
// $XDG_CONFIG_HOME/habitbox, then ~/.config/habitbox. It falls back to the
// working directory when no home directory can be found.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return ExpandPath(p)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "habitbox", DefaultConfigFileName)
	}
	home, err := homedir.Dir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(home, ".config", "habitbox", DefaultConfigFileName)
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(p string) string {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return expanded
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist yet. Relative data paths are resolved against the
// config file's directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) normalize(dir string) {
	defaults := Default(dir)
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	c.Backend = strings.ToLower(c.Backend)
	if c.DBPath == "" {
		c.DBPath = defaults.DBPath
	}
	if c.DiskvDir == "" {
		c.DiskvDir = defaults.DiskvDir
	}
	if c.DefaultTimeline == "" {
		c.DefaultTimeline = defaults.DefaultTimeline
	}
	if c.GoalsTitle == "" {
		c.GoalsTitle = defaults.GoalsTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	c.DBPath = resolve(dir, c.DBPath)
	c.DiskvDir = resolve(dir, c.DiskvDir)
	if c.LogFile != "" {
		c.LogFile = resolve(dir, c.LogFile)
	}
	c.Keys.fill(defaults.Keys)
}

func resolve(dir, p string) string {
	if strings.HasPrefix(p, "file:") {
		return p
	}
	p = ExpandPath(p)
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

func (k *Keymap) fill(d Keymap) {
	set := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	set(&k.Quit, d.Quit)
	set(&k.Add, d.Add)
	set(&k.Up, d.Up)
	set(&k.Down, d.Down)
	set(&k.Toggle, d.Toggle)
	set(&k.Pin, d.Pin)
	set(&k.Delete, d.Delete)
	set(&k.Confirm, d.Confirm)
	set(&k.Cancel, d.Cancel)
	set(&k.Timeline, d.Timeline)
	set(&k.Goals, d.Goals)
	set(&k.SwitchPane, d.SwitchPane)
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the configuration written on first launch, with data files
// placed in dir.
func Default(dir string) Config {
	return Config{
		Backend:         BackendSQLite,
		DBPath:          filepath.Join(dir, DefaultDBName),
		DiskvDir:        filepath.Join(dir, "data"),
		Redis:           Redis{Addr: "localhost:6379", Prefix: "habitbox:"},
		DefaultTimeline: "week",
		GoalsTitle:      DefaultGoalsTitle,
		LogLevel:        "info",
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Pin:        "p",
			Delete:     "d",
			Confirm:    "enter",
			Cancel:     "esc",
			Timeline:   "t",
			Goals:      "g",
			SwitchPane: "tab",
		},
	}
}
