package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"sublink/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("SUBLINK_STATE_DIR", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	home := isolateEnv(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "sublink", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if want := filepath.Join(home, ".local", "state", "sublink"); cfg.Paths.StateDir != want {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, want)
	}
	if cfg.Links.Relative {
		t.Fatal("expected absolute link targets by default")
	}
	if cfg.Workflow.Workers != 1 {
		t.Fatalf("expected one worker by default, got %d", cfg.Workflow.Workers)
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.LedgerPath() != filepath.Join(cfg.Paths.StateDir, "ledger.db") {
		t.Fatalf("unexpected ledger path %q", cfg.LedgerPath())
	}
	if cfg.LockPath() != filepath.Join(cfg.Paths.StateDir, "sublink.lock") {
		t.Fatalf("unexpected lock path %q", cfg.LockPath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "sublink.toml")

	type payload struct {
		Paths struct {
			StateDir string `toml:"state_dir"`
		} `toml:"paths"`
		Links struct {
			Relative bool `toml:"relative"`
		} `toml:"links"`
		Workflow struct {
			Workers int `toml:"workers"`
		} `toml:"workflow"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.StateDir = filepath.Join(tempDir, "state")
	custom.Links.Relative = true
	custom.Workflow.Workers = 4
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.StateDir != custom.Paths.StateDir {
		t.Fatalf("expected state dir from file, got %q", cfg.Paths.StateDir)
	}
	if !cfg.Links.Relative {
		t.Fatal("expected relative links from file")
	}
	if cfg.Workflow.Workers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.Workflow.Workers)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadFallsBackToProjectFile(t *testing.T) {
	isolateEnv(t)
	if err := os.WriteFile("sublink.toml", []byte("[workflow]\nworkers = 3\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "sublink.toml" {
		t.Fatalf("expected project config to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Workflow.Workers != 3 {
		t.Fatalf("expected workers from project config, got %d", cfg.Workflow.Workers)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[links]\nhardlink = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestStateDirEnvironmentOverrides(t *testing.T) {
	isolateEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_STATE_HOME", xdg)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(xdg, "sublink"); cfg.Paths.StateDir != want {
		t.Fatalf("expected XDG state dir %q, got %q", want, cfg.Paths.StateDir)
	}

	explicit := t.TempDir()
	t.Setenv("SUBLINK_STATE_DIR", explicit)
	cfg, _, _, err = config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.StateDir != explicit {
		t.Fatalf("expected SUBLINK_STATE_DIR to win, got %q", cfg.Paths.StateDir)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[links]") {
		t.Fatalf("sample config missing links section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.StateDir, "sublink") {
		t.Fatalf("expected state dir to contain sublink, got %q", cfg.Paths.StateDir)
	}
	if cfg.Workflow.Workers != 1 || !cfg.Ledger.Enabled {
		t.Fatalf("sample config should mirror defaults, got %+v", cfg)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty state dir")
	}

	cfg = config.Default()
	cfg.Workflow.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative workers")
	}

	cfg = config.Default()
	cfg.Workflow.Workers = 1000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for excessive workers")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestEnsureDirectoriesCreatesStateDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(t.TempDir(), "a", "b")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.StateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
}

func TestExpandPathHandlesTilde(t *testing.T) {
	home := isolateEnv(t)
	got, err := config.ExpandPath("~/media")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "media") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
