package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetHomeWithEnvVar(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)

	got, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if got != home {
		t.Errorf("GetHome() = %q, want %q", got, home)
	}

	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(home, "config.yaml") {
		t.Errorf("DefaultConfigPath() = %q", path)
	}
}

func TestGetHomeDefaultsToWorkingDir(t *testing.T) {
	t.Setenv(HomeEnv, "")
	dir := t.TempDir()
	t.Chdir(dir)

	got, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}

	cwd, _ := os.Getwd()
	if got != filepath.Join(cwd, ".garmentqc") {
		t.Errorf("GetHome() = %q, want %q", got, filepath.Join(cwd, ".garmentqc"))
	}
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Error("GetHome should not create the directory")
	}
}

func TestResolveLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "runs")

	got, err := ResolveLogDir(dir)
	if err != nil {
		t.Fatalf("ResolveLogDir() error = %v", err)
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Errorf("expected %s to be created", got)
	}
}

func TestResolveLogDirRelativeToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)
	t.Chdir(t.TempDir())

	got, err := ResolveLogDir("logs")
	if err != nil {
		t.Fatalf("ResolveLogDir() error = %v", err)
	}
	want := filepath.Join(home, "logs")
	if got != want {
		t.Errorf("ResolveLogDir() = %q, want %q", got, want)
	}
	if info, err := os.Stat(want); err != nil || !info.IsDir() {
		t.Errorf("expected %s to be created", want)
	}
}
