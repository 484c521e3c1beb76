package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/folio/internal/catalog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FetchAllLatency != catalog.DefaultFetchAllLatency {
		t.Fatalf("FetchAllLatency = %v, want %v", cfg.FetchAllLatency, catalog.DefaultFetchAllLatency)
	}
	if cfg.FetchOneLatency != catalog.DefaultFetchOneLatency {
		t.Fatalf("FetchOneLatency = %v, want %v", cfg.FetchOneLatency, catalog.DefaultFetchOneLatency)
	}
	if cfg.RefreshInterval != 0 {
		t.Fatalf("RefreshInterval = %v, want 0", cfg.RefreshInterval)
	}

	wantLogPath, err := ExpandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLogPath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("log settings = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestDefault_StoreOptionsMatchCatalogDefaults(t *testing.T) {
	got := Default().StoreOptions()
	want := catalog.DefaultOptions()
	if got.FetchAllLatency != want.FetchAllLatency || got.FetchOneLatency != want.FetchOneLatency {
		t.Fatalf("StoreOptions() = %v/%v, want %v/%v",
			got.FetchAllLatency, got.FetchOneLatency, want.FetchAllLatency, want.FetchOneLatency)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
fetch_all_latency = " 50ms "
fetch_one_latency = "10ms"
refresh_interval = "1m"
log_path = "  ~/logs/folio.log  "
log_level = " DEBUG "
log_format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FetchAllLatency != 50*time.Millisecond {
		t.Fatalf("FetchAllLatency = %v, want 50ms", cfg.FetchAllLatency)
	}
	if cfg.FetchOneLatency != 10*time.Millisecond {
		t.Fatalf("FetchOneLatency = %v, want 10ms", cfg.FetchOneLatency)
	}
	if cfg.RefreshInterval != time.Minute {
		t.Fatalf("RefreshInterval = %v, want 1m", cfg.RefreshInterval)
	}
	if cfg.LogPath != filepath.Join(home, "logs", "folio.log") {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoad_ZeroLatencyIsAllowed(t *testing.T) {
	cfg, err := Load(writeConfig(t, `fetch_all_latency = "0s"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FetchAllLatency != 0 {
		t.Fatalf("FetchAllLatency = %v, want 0", cfg.FetchAllLatency)
	}
	opts := cfg.StoreOptions()
	if opts.FetchAllLatency != 0 || opts.FetchOneLatency != catalog.DefaultFetchOneLatency {
		t.Fatalf("StoreOptions = %+v, want zero fetch-all and default fetch-one", opts)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `
fetch_all_latency = "   "
log_path = ""
log_level = ""
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FetchAllLatency != catalog.DefaultFetchAllLatency {
		t.Fatalf("FetchAllLatency = %v, want %v", cfg.FetchAllLatency, catalog.DefaultFetchAllLatency)
	}
	wantLogPath, err := ExpandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLogPath)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"invalid toml", `log_path = [`, "parse config"},
		{"bad duration", `fetch_all_latency = "soon"`, "fetch_all_latency"},
		{"negative duration", `refresh_interval = "-5s"`, "refresh_interval"},
		{"unknown log format", `log_format = "pretty"`, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
