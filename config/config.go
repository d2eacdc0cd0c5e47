// Package config resolves cookpipe settings with Viper.
// Precedence, lowest first: defaults < config file < COOKPIPE_* env < flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/cookpipe/core/section"
)

// ConfigOption is one known key with its default and meaning.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "headings.level", Default: 2, Comment: "Markdown heading level (1-6) for section headings"},
		{Key: "headings.ingredients", Default: "Ingredients", Comment: "Ingredients section heading"},
		{Key: "headings.cookware", Default: "Cookware", Comment: "Cookware section heading"},
		{Key: "headings.steps", Default: "Steps", Comment: "Steps section heading"},
		{Key: "headings.image", Default: "Image", Comment: "Image section heading"},
		{Key: "steps.style", Default: string(section.StepsOrdered), Comment: "Step layout: ordered, unordered or paragraphs"},
		{Key: "note.language", Default: "cooklang", Comment: "Fence info string of recipe blocks inside markdown notes"},
		{Key: "output_dir", Default: "", Comment: "Output directory; empty means the current directory"},
		{Key: "log.level", Default: "info", Comment: "Log level: debug, info, warn or error"},
		{Key: "log.format", Default: "text", Comment: "Log format: text or json"},
		{Key: "terminal.style", Default: "dark", Comment: "glamour style for --terminal output"},
		{Key: "terminal.width", Default: 80, Comment: "Word wrap width for --terminal output"},
	}
}

// Settings is the typed view of a resolved configuration.
type Settings struct {
	Render        section.Options
	NoteLanguage  string
	OutputDir     string
	LogLevel      slog.Level
	LogFormat     string
	TerminalStyle string
	TerminalWidth int
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration into v and returns the typed settings.
// A missing config file is fine; a malformed one is an error.
func Load(v *viper.Viper) (*Settings, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("cookpipe")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "cookpipe"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cookpipe"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("cookpipe")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Resolve(v)
}

// BindFlags binds flags that share a name with a config key, mapping
// dashes and underscores in flag names to dots in keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	known := make(map[string]bool)
	for _, o := range GetConfigOptions() {
		known[o.Key] = true
	}
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if !known[key] {
			key = strings.ReplaceAll(strings.ReplaceAll(f.Name, "-", "."), "_", ".")
		}
		if !known[key] {
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// Resolve validates the values in v and builds Settings.
func Resolve(v *viper.Viper) (*Settings, error) {
	level := v.GetInt("headings.level")
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("headings.level must be between 1 and 6, got %d", level)
	}

	style := section.StepStyle(strings.ToLower(strings.TrimSpace(v.GetString("steps.style"))))
	if !style.Valid() {
		return nil, fmt.Errorf("steps.style must be ordered, unordered or paragraphs, got %q", style)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	logFormat := strings.ToLower(v.GetString("log.format"))
	if logFormat != "text" && logFormat != "json" {
		return nil, fmt.Errorf("log.format must be text or json, got %q", logFormat)
	}

	lang := strings.TrimSpace(v.GetString("note.language"))
	if lang == "" {
		lang = "cooklang"
	}

	return &Settings{
		Render: section.Options{
			HeadingLevel: level,
			Headings: section.Headings{
				Ingredients: v.GetString("headings.ingredients"),
				Cookware:    v.GetString("headings.cookware"),
				Steps:       v.GetString("headings.steps"),
				Image:       v.GetString("headings.image"),
			},
			StepStyle: style,
		},
		NoteLanguage:  lang,
		OutputDir:     v.GetString("output_dir"),
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		TerminalStyle: v.GetString("terminal.style"),
		TerminalWidth: v.GetInt("terminal.width"),
	}, nil
}

// NewLogger builds the process logger described by s.
func (s *Settings) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.LogLevel}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
