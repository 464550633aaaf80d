package workflow

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"

	"sublink/internal/config"
)

// ErrLocked is returned when another sublink run holds the state lock.
var ErrLocked = errors.New("another sublink run is already in progress")

// RunLock is the advisory lock serializing runs that share a state directory.
type RunLock struct {
	path string
	lock *flock.Flock
}

// AcquireLock takes the run lock without waiting. It returns ErrLocked when
// another process holds it.
func AcquireLock(cfg *config.Config) (*RunLock, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	path := cfg.LockPath()
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	return &RunLock{path: path, lock: lock}, nil
}

// Path returns the lock file location.
func (l *RunLock) Path() string {
	return l.path
}

// Release unlocks the run lock. It is safe to call on a nil lock.
func (l *RunLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
