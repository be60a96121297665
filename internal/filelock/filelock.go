// Package filelock coordinates access to caller-owned files (defect ledgers)
// shared between inspectors, using advisory flock locks and atomic writes.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockSuffix is appended to a data file's path to form its lock file path.
const LockSuffix = ".lock"

// FileLock wraps a flock lock guarding one data file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a lock for the given lock file path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// ForFile returns the lock guarding dataPath ("<dataPath>.lock").
func ForFile(dataPath string) *FileLock {
	return NewFileLock(dataPath + LockSuffix)
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock acquires an exclusive lock, blocking until it is available.
func (fl *FileLock) Lock() error {
	if err := fl.ensureDir(); err != nil {
		return err
	}
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// RLock acquires a shared lock, blocking while a writer holds the lock.
func (fl *FileLock) RLock() error {
	if err := fl.ensureDir(); err != nil {
		return err
	}
	if err := fl.flock.RLock(); err != nil {
		return fmt.Errorf("failed to acquire read lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock attempts to acquire an exclusive lock without blocking.
// Returns false if another holder has the lock.
func (fl *FileLock) TryLock() (bool, error) {
	if err := fl.ensureDir(); err != nil {
		return false, err
	}
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

func (fl *FileLock) ensureDir() error {
	dir := filepath.Dir(fl.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create lock directory %s: %w", dir, err)
	}
	return nil
}

// WithLock runs fn while holding the exclusive lock for dataPath.
func WithLock(dataPath string, fn func() error) error {
	lock := ForFile(dataPath)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}

// WithReadLock runs fn while holding the shared lock for dataPath.
func WithReadLock(dataPath string, fn func() error) error {
	lock := ForFile(dataPath)
	if err := lock.RLock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}

// AtomicWrite writes data to path through a temp file in the same directory
// and a rename, so readers never observe a partially written ledger.
// On failure the previous file, if any, is left unchanged.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	// Renamed into place; nothing to clean up.
	tempFile = nil
	return nil
}

// LockAndWrite atomically writes data to path while holding its exclusive lock.
func LockAndWrite(path string, data []byte) error {
	return WithLock(path, func() error {
		return AtomicWrite(path, data)
	})
}
