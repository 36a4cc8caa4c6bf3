package internal

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.Docs.Root != "src/content/docs" {
		t.Errorf("root = %q", cfg.Docs.Root)
	}
	if cfg.App.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v", cfg.App.LogLevel)
	}
}

func TestApplicationConfig_EmptyFormatDefaultsText(t *testing.T) {
	cfg := ApplicationConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty format should default to text: %v", err)
	}
	if cfg.LogFormat != LogFormatText {
		t.Errorf("format = %q, want %q", cfg.LogFormat, LogFormatText)
	}
}

func TestApplicationConfig_InvalidFormat(t *testing.T) {
	cfg := ApplicationConfig{LogFormat: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid format should fail validation")
	}
}

func TestDocsConfig_RootRequired(t *testing.T) {
	cfg := DocsConfig{Root: ""}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty root should fail validation")
	}
}

func TestDocsConfig_EmptyExtensionsDefault(t *testing.T) {
	cfg := DocsConfig{Root: "docs"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != ".md" || cfg.Extensions[1] != ".mdx" {
		t.Errorf("extensions = %v", cfg.Extensions)
	}
}

func TestDocsConfig_BadExtension(t *testing.T) {
	cfg := DocsConfig{Root: "docs", Extensions: []string{".md", "mdx"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("extension without dot should fail")
	}
	if !strings.Contains(err.Error(), "must start with a dot") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFullConfig_DocsValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Docs.Root = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch docs error")
	}
}

func TestWatchConfig_DefaultDebounce(t *testing.T) {
	cfg := WatchConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Debounce != time.Second {
		t.Errorf("debounce = %v, want 1s", cfg.Debounce)
	}
}

func TestWatchConfig_TooShort(t *testing.T) {
	cfg := WatchConfig{Debounce: time.Millisecond}
	if err := cfg.Validate(); err == nil {
		t.Fatal("1ms debounce should fail validation")
	}
}
