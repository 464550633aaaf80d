package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	stateDir   string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("SUBLINK_STATE_DIR", "")
	t.Setenv("NO_COLOR", "1")
	t.Chdir(base)

	stateDir := filepath.Join(base, "state")
	configPath := filepath.Join(base, "sublink-test.toml")
	writeTestConfig(t, configPath, stateDir, "")

	return &cliTestEnv{
		baseDir:    base,
		stateDir:   stateDir,
		configPath: configPath,
	}
}

func writeTestConfig(t *testing.T, path, stateDir, extra string) {
	t.Helper()
	content := "[paths]\nstate_dir = \"" + stateDir + "\"\n\n[logging]\nformat = \"json\"\nlevel = \"info\"\n" + extra
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// movieDir lays out a film folder with one video and the given subtitle files under Subs/.
func (e *cliTestEnv) movieDir(t *testing.T, name string, subtitles ...string) string {
	t.Helper()
	dir := filepath.Join(e.baseDir, "library", name)
	paths := []string{filepath.Join(dir, name+".mkv")}
	for _, sub := range subtitles {
		paths = append(paths, filepath.Join(dir, "Subs", sub))
	}
	for _, path := range paths {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", needle, haystack)
	}
}

func requireNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output not to contain %q\noutput:\n%s", needle, haystack)
	}
}
