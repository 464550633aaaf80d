package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"sublink/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if result.Problem != ProblemNone {
		t.Fatalf("expected no problem, got %q", result.Problem)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
	if result.Problem != ProblemMissing {
		t.Fatalf("expected missing problem, got %q", result.Problem)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
	if result.Problem != ProblemNotDirectory {
		t.Fatalf("expected not_directory problem, got %q", result.Problem)
	}
}

func TestCheckDirectoryAccess_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	result := CheckDirectoryAccess("test", dir)
	if result.Passed {
		t.Fatal("expected failure for read-only dir")
	}
	if result.Problem != ProblemPermission {
		t.Fatalf("expected permission problem, got %q", result.Problem)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil results for nil config, got %v", results)
	}
}

func TestRunAll_CreatesStateDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(t.TempDir(), "state")

	results := RunAll(&cfg)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("expected state dir check to pass, got: %s", results[0].Detail)
	}
	if _, err := os.Stat(cfg.Paths.StateDir); err != nil {
		t.Fatalf("expected state dir to be created: %v", err)
	}
}
