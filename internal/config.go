package internal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/docfront/internal/walker"
	"github.com/starford/docfront/internal/watch"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultDocsRoot is the docs directory of an Astro Starlight site.
const DefaultDocsRoot = "src/content/docs"

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Docs  DocsConfig        `yaml:"docs"`
	Watch WatchConfig       `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Docs.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// DocsConfig describes the documentation tree to normalize.
type DocsConfig struct {
	Root       string   `yaml:"root"`
	Extensions []string `yaml:"extensions"`
}

// Validate validates the docs configuration.
func (c *DocsConfig) Validate() error {
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), walker.DefaultExtensions...)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Extensions, validation.Each(validation.Required, validation.By(isExtension))),
	)
}

func isExtension(value interface{}) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, ".") || len(s) < 2 {
		return fmt.Errorf("extension %q must start with a dot", s)
	}
	return nil
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	// Debounce is how long a document must go without events before it is fixed.
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	if c.Debounce == 0 {
		c.Debounce = watch.DefaultDebounce
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Min(10*time.Millisecond)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		Docs: DocsConfig{
			Root:       DefaultDocsRoot,
			Extensions: append([]string(nil), walker.DefaultExtensions...),
		},
		Watch: WatchConfig{
			Debounce: watch.DefaultDebounce,
		},
	}
}
