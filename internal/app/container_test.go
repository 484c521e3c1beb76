package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/do/v2"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/logger"
	"github.com/five82/folio/internal/state"
)

func writeConfig(t *testing.T, body string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "folio.log")
	path := filepath.Join(dir, "config.toml")
	content := "log_path = \"" + logPath + "\"\n" + body
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path, logPath
}

func TestContainerBuildsSession(t *testing.T) {
	path, logPath := writeConfig(t, "fetch_all_latency = \"0s\"\nfetch_one_latency = \"0s\"\nlog_level = \"debug\"\n")
	injector := newContainer(Options{ConfigPath: path})

	log := do.MustInvoke[*logger.Logger](injector)
	t.Cleanup(func() { _ = log.Close() })

	session, err := do.Invoke[*state.Session](injector)
	if err != nil {
		t.Fatalf("invoke session: %v", err)
	}
	if err := session.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if got := len(session.Snapshot().Books); got != 6 {
		t.Fatalf("books = %d, want 6", got)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "catalog ready") || !strings.Contains(string(data), session.ID()) {
		t.Fatalf("log missing startup records:\n%s", data)
	}
}

func TestContainerRefreshOverride(t *testing.T) {
	path, _ := writeConfig(t, "refresh_interval = \"1m\"\n")

	cfg := do.MustInvoke[*config.Config](newContainer(Options{ConfigPath: path}))
	if cfg.RefreshInterval != time.Minute {
		t.Fatalf("RefreshInterval = %v, want 1m", cfg.RefreshInterval)
	}

	cfg = do.MustInvoke[*config.Config](newContainer(Options{ConfigPath: path, RefreshEvery: 5 * time.Second}))
	if cfg.RefreshInterval != 5*time.Second {
		t.Fatalf("RefreshInterval = %v, want 5s", cfg.RefreshInterval)
	}
}

func TestContainerConfigError(t *testing.T) {
	path, _ := writeConfig(t, "fetch_all_latency = \"soon\"\n")

	_, err := do.Invoke[*state.Session](newContainer(Options{ConfigPath: path}))
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if !strings.Contains(err.Error(), "fetch_all_latency") {
		t.Fatalf("error = %v, want mention of fetch_all_latency", err)
	}
}
