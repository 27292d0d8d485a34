// Package config resolves settings from flags, TODOVIEW_* environment variables
// and an optional .todoview.yaml file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todoview/internal/backend/placeholder"
	"github.com/idilsaglam/todoview/internal/ui"
)

const (
	// AppName names the config file (.todoview.yaml) and the env prefix.
	AppName = "todoview"

	// DefaultLogFile receives debug logs while the TUI owns the terminal.
	DefaultLogFile = "todoview.log"
)

// Keys shared by viper, env and flags (flags use dashes).
const (
	KeyBaseURL = "base_url"
	KeyTimeout = "timeout"
	KeyFile    = "file"
	KeyTheme   = "theme"
	KeyNoColor = "no_color"
	KeyDebug   = "debug"
	KeyLogFile = "log_file"
)

// Config holds resolved settings.
type Config struct {
	// BaseURL is the root of the remote todo API.
	BaseURL string

	// Timeout bounds one retrieval.
	Timeout time.Duration

	// File, when set, serves todos from a local JSON array instead of HTTP.
	File string

	Theme   string
	NoColor bool

	// Debug enables logging to LogFile.
	Debug   bool
	LogFile string
}

// ErrInvalid marks a setting that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// BindFlags registers the persistent flags every command shares.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(flagName(KeyBaseURL), placeholder.DefaultBaseURL, "Base URL of the todo API")
	fs.Duration(flagName(KeyTimeout), placeholder.DefaultTimeout, "Deadline for a single retrieval")
	fs.String(flagName(KeyFile), "", "Serve todos from a local JSON file instead of the API")
	fs.String(flagName(KeyTheme), "classic", "Output theme ("+strings.Join(ui.Themes, "|")+")")
	fs.Bool(flagName(KeyNoColor), false, "Disable colored output")
	fs.Bool(flagName(KeyDebug), false, "Write debug logs to --log-file")
	fs.String(flagName(KeyLogFile), DefaultLogFile, "Debug log destination")
}

// Load resolves settings with precedence flag > env > config file > default.
// configDirs are searched for .todoview.yaml; when empty, ./ and ~/ are used.
func Load(fs *pflag.FlagSet, configDirs ...string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyBaseURL, placeholder.DefaultBaseURL)
	v.SetDefault(KeyTimeout, placeholder.DefaultTimeout)
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyLogFile, DefaultLogFile)

	v.SetConfigName("." + AppName) // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.AutomaticEnv()

	if len(configDirs) == 0 {
		configDirs = []string{"."}
		if home, err := homedir.Dir(); err == nil {
			configDirs = append(configDirs, home)
		}
	}
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for _, k := range []string{KeyBaseURL, KeyTimeout, KeyFile, KeyTheme, KeyNoColor, KeyDebug, KeyLogFile} {
			if f := fs.Lookup(flagName(k)); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	cfg := &Config{
		BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString(KeyBaseURL)), "/"),
		Timeout: v.GetDuration(KeyTimeout),
		File:    strings.TrimSpace(v.GetString(KeyFile)),
		Theme:   v.GetString(KeyTheme),
		NoColor: v.GetBool(KeyNoColor),
		Debug:   v.GetBool(KeyDebug),
		LogFile: strings.TrimSpace(v.GetString(KeyLogFile)),
	}
	if cfg.File != "" {
		p, err := homedir.Expand(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("%w: file: %v", ErrInvalid, err)
		}
		cfg.File = filepath.Clean(p)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if c.BaseURL == "" && c.File == "" {
		return fmt.Errorf("%w: base URL is empty", ErrInvalid)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}
	theme := strings.ToLower(strings.TrimSpace(c.Theme))
	known := theme == ""
	for _, t := range ui.Themes {
		if t == theme {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	if c.Debug && c.LogFile == "" {
		return fmt.Errorf("%w: --debug needs a log file", ErrInvalid)
	}
	return nil
}

func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }
