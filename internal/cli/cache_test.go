package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	if dir == "" {
		t.Error("cacheDir() returned empty string")
	}

	// Should be under home directory
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	// Should end with "pictoplace"
	if !strings.HasSuffix(dir, "pictoplace") {
		t.Errorf("cacheDir() = %q, should end with 'pictoplace'", dir)
	}

	// Should contain ".cache" in path
	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	want := filepath.Join(base, "pictoplace")
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheClear(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir := filepath.Join(base, "pictoplace", "placement")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "entry.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newCacheClearCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "entry.json")); !os.IsNotExist(err) {
		t.Error("cache clear should have removed the entry")
	}
}

func TestCacheClearEmpty(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cmd := newCacheClearCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear on empty cache failed: %v", err)
	}
}
