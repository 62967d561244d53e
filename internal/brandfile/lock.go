package brandfile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// lockPollInterval is how often a busy output file lock is retried.
const lockPollInterval = 100 * time.Millisecond

// errLockBusy is returned when another writer still holds the output file.
var errLockBusy = errors.New("output file is locked by another writer")

// FileLock serialises writers of one branding output file, including
// writers in other processes. The lock lives next to the output file.
type FileLock struct {
	flock *flock.Flock
}

// NewFileLock returns the lock guarding the output file at path.
func NewFileLock(path string) *FileLock {
	return &FileLock{flock: flock.New(path + ".lock")}
}

// Lock blocks until the output file is free or ctx is done.
func (l *FileLock) Lock(ctx context.Context) error {
	ok, err := l.flock.TryLockContext(ctx, lockPollInterval)
	switch {
	case err != nil:
		return fmt.Errorf("lock %s: %w", l.flock.Path(), err)
	case !ok:
		return fmt.Errorf("lock %s: %w", l.flock.Path(), errLockBusy)
	}
	return nil
}

// Unlock lets the next writer in.
func (l *FileLock) Unlock() error {
	return l.flock.Unlock()
}
