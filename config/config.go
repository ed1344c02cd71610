// Package config resolves docsummary settings with viper.
// Precedence: defaults < config file < DOCSUMMARY_* env < flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Formats lists the accepted values of the format key.
var Formats = []string{"html", "markdown", "terminal", "json", "pdf"}

// ConfigOption describes one configuration key and its default.
type ConfigOption struct {
	Key     string
	Value   any
	Comment string
}

// Config is the resolved configuration.
type Config struct {
	Format    string
	OutputDir string
	LogLevel  slog.Level
	Style     string
	WordWrap  int
	LinkBase  string
}

// GetConfigOptions returns the configuration keys with their defaults.
// This is the single source of truth for default values.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "format", Value: "html", Comment: "Output format: html, markdown, terminal, json or pdf"},
		{Key: "output_dir", Value: "", Comment: "Directory for rendered files (default: current directory)"},
		{Key: "log_level", Value: "warn", Comment: "Log level: debug, info, warn or error"},
		{Key: "style", Value: "dracula", Comment: "glamour style for terminal output"},
		{Key: "word_wrap", Value: 80, Comment: "Word wrap width for terminal output"},
		{Key: "link_base", Value: "", Comment: "Base URL for internal references; empty leaves them unresolved"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Value)
	}
}

// Load merges defaults, the config file (if any) and the environment into v.
// A config file named explicitly with SetConfigFile must exist and parse;
// the search-path file is optional.
func Load(v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("docsummary")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "docsummary"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "docsummary"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("docsummary")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.Set("format", strings.ToLower(strings.TrimSpace(v.GetString("format"))))
	return nil
}

// CheckConfigValidity reports every invalid key in one error.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error
	if f := v.GetString("format"); !slices.Contains(Formats, f) {
		errs = append(errs, fmt.Errorf("format %q must be one of %s", f, strings.Join(Formats, ", ")))
	}
	if _, err := ParseLevel(v.GetString("log_level")); err != nil {
		errs = append(errs, err)
	}
	if v.GetInt("word_wrap") <= 0 {
		errs = append(errs, fmt.Errorf("word_wrap must be greater than 0"))
	}
	if base := v.GetString("link_base"); base != "" &&
		!strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") && !strings.HasPrefix(base, "/") {
		errs = append(errs, fmt.Errorf("link_base %q must be an http(s) URL or an absolute path", base))
	}
	return errors.Join(errs...)
}

// FromViper validates v and returns the resolved Config.
func FromViper(v *viper.Viper) (Config, error) {
	if err := CheckConfigValidity(v); err != nil {
		return Config{}, err
	}
	level, _ := ParseLevel(v.GetString("log_level"))
	return Config{
		Format:    v.GetString("format"),
		OutputDir: v.GetString("output_dir"),
		LogLevel:  level,
		Style:     v.GetString("style"),
		WordWrap:  v.GetInt("word_wrap"),
		LinkBase:  v.GetString("link_base"),
	}, nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level %q must be debug, info, warn or error", s)
	}
	return level, nil
}
