package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f := Open("")
	if _, ok := f.Get("theme"); ok {
		t.Fatal("Get(theme) ok = true on missing file, want false")
	}
	if f.Path() != DefaultPath() {
		t.Fatalf("Path = %q, want %q", f.Path(), DefaultPath())
	}
}

func TestOpen_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "floorboard")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte("theme = \"dark\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, ok := Open("").Get("theme")
	if !ok || got != "dark" {
		t.Fatalf("Get(theme) = %q, %v; want dark, true", got, ok)
	}
}

func TestSet_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	f := Open(path)
	if err := f.Set("theme", "dark"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, ok := Open(path).Get("theme")
	if !ok || got != "dark" {
		t.Fatalf("reloaded theme = %q, %v; want dark, true", got, ok)
	}
}

func TestSet_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"light\"\nlayout = \"wide\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f := Open(path)
	if err := f.Set("theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reloaded := Open(path)
	if v, _ := reloaded.Get("layout"); v != "wide" {
		t.Fatalf("layout = %q, want wide", v)
	}
	if v, _ := reloaded.Get("theme"); v != "dark" {
		t.Fatalf("theme = %q, want dark", v)
	}
}

func TestOpen_InvalidTOMLIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := Open(path).Get("theme"); ok {
		t.Fatal("Get(theme) ok = true for invalid TOML, want false")
	}
}

func TestOpen_NonStringValuesIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, ok := Open(path).Get("theme"); ok {
		t.Fatal("numeric theme should be ignored")
	}
}

func TestSet_WriteFailureKeepsValue(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// A regular file in place of the parent directory makes MkdirAll fail.
	f := Open(filepath.Join(blocker, "prefs.toml"))
	if err := f.Set("theme", "dark"); err == nil {
		t.Fatal("Set returned nil error, want failure")
	}
	if v, _ := f.Get("theme"); v != "dark" {
		t.Fatalf("Get(theme) = %q after failed write, want dark", v)
	}
}

func TestMemory_SetErr(t *testing.T) {
	boom := errors.New("boom")
	m := &Memory{SetErr: boom}
	if err := m.Set("theme", "dark"); !errors.Is(err, boom) {
		t.Fatalf("Set error = %v, want boom", err)
	}
	if v, ok := m.Get("theme"); !ok || v != "dark" {
		t.Fatalf("Get = %q, %v; want dark, true", v, ok)
	}
}
