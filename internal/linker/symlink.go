package linker

import (
	"errors"
	"fmt"
	"os"

	"sublink/internal/fileutil"
)

// Outcome classifies what Apply did with an assignment.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeExists    Outcome = "exists"
	OutcomeFailed    Outcome = "failed"
	OutcomePlanned   Outcome = "planned"
)

// ErrLinkExists reports a file or foreign symlink already occupying a link path.
var ErrLinkExists = errors.New("link path already in use")

// Result is the outcome of applying one assignment.
type Result struct {
	Assignment Assignment
	Outcome    Outcome
	Target     string
	Err        error
}

// Linker creates symlinks for assignments.
type Linker struct {
	// Relative writes targets relative to the link's directory.
	Relative bool
	// DryRun reports what would be created without touching the filesystem.
	DryRun bool
}

// Apply creates the symlink for a. An existing link to the same source is
// left alone and reported unchanged; anything else at the path is never
// replaced and is reported as exists.
func (l Linker) Apply(a Assignment) Result {
	result := Result{Assignment: a}

	target, err := fileutil.LinkTarget(a.LinkPath, a.Source, l.Relative)
	if err != nil {
		return l.fail(result, err)
	}
	result.Target = target

	if outcome, occupied, err := l.inspect(a); occupied {
		result.Outcome, result.Err = outcome, err
		return result
	}

	if l.DryRun {
		result.Outcome = OutcomePlanned
		return result
	}

	if err := os.Symlink(target, a.LinkPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			if outcome, occupied, existErr := l.inspect(a); occupied {
				result.Outcome, result.Err = outcome, existErr
				return result
			}
		}
		return l.fail(result, fmt.Errorf("create symlink %s: %w", a.LinkPath, err))
	}
	result.Outcome = OutcomeCreated
	return result
}

// inspect checks what already occupies the link path. occupied is false when
// the path is free.
func (l Linker) inspect(a Assignment) (Outcome, bool, error) {
	if _, err := os.Lstat(a.LinkPath); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return OutcomeFailed, true, fmt.Errorf("inspect %s: %w", a.LinkPath, err)
	}
	same, err := fileutil.SymlinkPointsTo(a.LinkPath, a.Source)
	if err != nil {
		return OutcomeFailed, true, fmt.Errorf("inspect %s: %w", a.LinkPath, err)
	}
	if same {
		return OutcomeUnchanged, true, nil
	}
	return OutcomeExists, true, fmt.Errorf("%w: %s", ErrLinkExists, a.LinkPath)
}

func (l Linker) fail(result Result, err error) Result {
	result.Outcome = OutcomeFailed
	result.Err = err
	return result
}
