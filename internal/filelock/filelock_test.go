package filelock

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
)

func TestForFile(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "ledger.json")
	lock := ForFile(dataPath)

	if lock.Path() != dataPath+".lock" {
		t.Errorf("expected lock path %s, got %s", dataPath+".lock", lock.Path())
	}
}

func TestLockUnlock(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "nested", "ledger.lock"))

	if err := lock.Lock(); err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}
}

func TestTryLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "ledger.lock")

	holder := NewFileLock(lockPath)
	if err := holder.Lock(); err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}

	other := NewFileLock(lockPath)
	acquired, err := other.TryLock()
	if err != nil {
		t.Fatalf("TryLock returned error: %v", err)
	}
	if acquired {
		t.Error("expected TryLock to fail while another lock is held")
	}

	if err := holder.Unlock(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}

	acquired, err = other.TryLock()
	if err != nil {
		t.Fatalf("TryLock returned error: %v", err)
	}
	if !acquired {
		t.Error("expected TryLock to succeed after release")
	}
	other.Unlock()
}

func TestSharedReadLocks(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "ledger.json")

	first := ForFile(dataPath)
	second := ForFile(dataPath)
	if err := first.RLock(); err != nil {
		t.Fatalf("first RLock: %v", err)
	}
	defer first.Unlock()

	done := make(chan error, 1)
	go func() {
		err := second.RLock()
		if err == nil {
			second.Unlock()
		}
		done <- err
	}()
	if err := <-done; err != nil {
		t.Fatalf("second RLock should not block on a shared lock: %v", err)
	}
}

func TestWithLock_Serializes(t *testing.T) {
	dir := t.TempDir()
	counterPath := filepath.Join(dir, "counter.txt")
	if err := os.WriteFile(counterPath, []byte("0"), 0644); err != nil {
		t.Fatal(err)
	}

	const goroutines = 5
	const iterations = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				err := WithLock(counterPath, func() error {
					data, err := os.ReadFile(counterPath)
					if err != nil {
						return err
					}
					n, err := strconv.Atoi(string(data))
					if err != nil {
						return err
					}
					return AtomicWrite(counterPath, []byte(strconv.Itoa(n+1)))
				})
				if err != nil {
					t.Errorf("locked increment failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(counterPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != strconv.Itoa(goroutines*iterations) {
		t.Errorf("expected counter %d, got %s", goroutines*iterations, data)
	}
}

func TestWithLock_ReturnsCallbackError(t *testing.T) {
	sentinel := errors.New("boom")
	err := WithLock(filepath.Join(t.TempDir(), "ledger.json"), func() error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "ledger.json")

	if err := AtomicWrite(path, []byte("[]")); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}
	if err := AtomicWrite(path, []byte(`[{"category":"Fabric"}]`)); err != nil {
		t.Fatalf("AtomicWrite overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"category":"Fabric"}]` {
		t.Errorf("unexpected content: %s", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("expected permissions 0644, got %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "ledger.json" {
			t.Errorf("unexpected leftover file %s", e.Name())
		}
	}
}

func TestLockAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := LockAndWrite(path, []byte("[]")); err != nil {
		t.Fatalf("LockAndWrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("unexpected content: %s", data)
	}
}
