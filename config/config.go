// Package config loads toylog settings from a file and the environment
// using Viper.
package config

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/trickstertwo/toylog"
)

// AppName is used for the config file name, the search directory under
// $XDG_CONFIG_HOME and the environment prefix.
const AppName = "toylog"

// ErrUnknownLevel is returned for a levels.<name> key that names no level.
var ErrUnknownLevel = errors.Wrap(toylog.ErrUnknownLevel, "config")

// ErrDuplicateLevel is returned when two levels.<name> keys name the same
// level, e.g. warn and warning.
var ErrDuplicateLevel = errors.New("config: level configured twice")

var sectionKeys = []string{"single_line", "format", "use_console", "use_stack_trace", "separator"}

// Section mirrors toylog.Override. Absent keys stay nil.
type Section struct {
	SingleLine    *bool   `mapstructure:"single_line" yaml:"single_line"`
	Format        *string `mapstructure:"format" yaml:"format"`
	UseConsole    *bool   `mapstructure:"use_console" yaml:"use_console"`
	UseStackTrace *bool   `mapstructure:"use_stack_trace" yaml:"use_stack_trace"`
	Separator     *string `mapstructure:"separator" yaml:"separator"`
}

// Override converts s into a toylog.Override.
func (s Section) Override() toylog.Override {
	return toylog.Override{
		SingleLine:    s.SingleLine,
		Format:        s.Format,
		UseConsole:    s.UseConsole,
		UseStackTrace: s.UseStackTrace,
		Separator:     s.Separator,
	}
}

// File represents the top-level configuration structure.
type File struct {
	Defaults       Section            `mapstructure:"defaults" yaml:"defaults"`
	Levels         map[string]Section `mapstructure:"levels" yaml:"levels"`
	LegacyLevelTag bool               `mapstructure:"legacy_level_tag" yaml:"legacy_level_tag"`

	// Path is the file that was read; empty when only defaults and the
	// environment were used.
	Path string `mapstructure:"-" yaml:"-"`
}

// SearchPaths lists the directories searched for toylog.{yaml,toml,json}
// when no explicit path is given, in order of precedence.
func SearchPaths() []string {
	return []string{".", filepath.Join(xdg.ConfigHome, AppName)}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}
	}

	// TOYLOG_DEFAULTS_FORMAT, TOYLOG_LEVELS_WARN_USE_STACK_TRACE, ...
	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env values for keys Viper already knows.
	_ = v.BindEnv("legacy_level_tag")
	for _, k := range sectionKeys {
		_ = v.BindEnv("defaults." + k)
		for _, l := range toylog.Levels() {
			_ = v.BindEnv("levels." + strings.ToLower(l.String()) + "." + k)
		}
	}
	return v
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches SearchPaths and falls back to defaults
// (plus environment) when no file is found.
func Load(path string) (*File, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit search: defaults are fine.
		case errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	f.Path = v.ConfigFileUsed()
	if _, err := f.ToConfig(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return &f, nil
}

// ToConfig converts f into a toylog.Config. Console, Clock and Metrics are
// left for the caller.
func (f *File) ToConfig() (toylog.Config, error) {
	cfg := toylog.Config{
		Defaults:       f.Defaults.Override(),
		LegacyLevelTag: f.LegacyLevelTag,
	}
	if len(f.Levels) == 0 {
		return cfg, nil
	}
	names := make([]string, 0, len(f.Levels))
	for name := range f.Levels {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg.Levels = make(map[toylog.Level]toylog.LevelConfig, len(f.Levels))
	seen := make(map[toylog.Level]string, len(f.Levels))
	for _, name := range names {
		level, err := toylog.ParseLevel(name)
		if err != nil {
			return toylog.Config{}, errors.Wrapf(ErrUnknownLevel, "levels.%s", name)
		}
		if prev, ok := seen[level]; ok {
			return toylog.Config{}, errors.Wrapf(ErrDuplicateLevel, "levels.%s and levels.%s", prev, name)
		}
		seen[level] = name
		cfg.Levels[level] = toylog.LevelConfig{Override: f.Levels[name].Override()}
	}
	return cfg, nil
}
