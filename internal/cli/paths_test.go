package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/ustar/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestCLICacheDirPrefersConfig(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	c := &CLI{Config: DefaultConfig()}
	dir, _ := c.cacheDir()
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want XDG default %q", dir, want)
	}

	c.Config.Cache.Dir = "/srv/ustar"
	if dir, _ := c.cacheDir(); dir != "/srv/ustar" {
		t.Errorf("cacheDir() = %q, want configured dir", dir)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.Config.Cache.Enabled = false

	store, err := c.newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(cache.NullCache); !ok {
		t.Errorf("newCache() = %T, want cache.NullCache", store)
	}
}
