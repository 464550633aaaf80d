package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"sublink/internal/config"
)

// Problem classifies why a check failed.
type Problem string

const (
	ProblemNone         Problem = ""
	ProblemMissing      Problem = "missing"
	ProblemNotDirectory Problem = "not_directory"
	ProblemPermission   Problem = "permission"
	ProblemStat         Problem = "stat"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string
	Passed  bool
	Detail  string
	Problem Problem
}

// RunAll executes the checks that apply to the configuration itself.
// The state directory is created when missing so a fresh install passes.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return []Result{{
			Name:    "State directory",
			Detail:  fmt.Sprintf("%s (error: %v)", cfg.Paths.StateDir, err),
			Problem: ProblemPermission,
		}}
	}
	return []Result{CheckDirectoryAccess("State directory", cfg.Paths.StateDir)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path), Problem: ProblemMissing}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err), Problem: ProblemStat}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path), Problem: ProblemNotDirectory}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err), Problem: ProblemPermission}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
