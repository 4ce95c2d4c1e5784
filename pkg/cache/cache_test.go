package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get() = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = %v, %v; want miss", hit, err)
	}

	if err := c.Set(ctx, "report:abc", []byte(`{"nodes":3}`), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, hit, err := c.Get(ctx, "report:abc")
	if err != nil || !hit || string(data) != `{"nodes":3}` {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "report:abc"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "report:abc"); hit {
		t.Error("Get() after Delete hit")
	}
	if err := c.Delete(ctx, "report:abc"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry hit")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = %v, %v; want miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get() after Clear hit")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("cache dir removed: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}

	hr, err := HashReader(strings.NewReader("hello"))
	if err != nil || hr != h1 {
		t.Errorf("HashReader() = %s, %v; want %s", hr, err, h1)
	}

	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if hf, err := HashFile(path); err != nil || hf != h1 {
		t.Errorf("HashFile() = %s, %v; want %s", hf, err, h1)
	}
	if _, err := HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("HashFile(missing) succeeded")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	r1 := k.ReportKey("h", ReportKeyOpts{KmerSize: 31})
	r2 := k.ReportKey("h", ReportKeyOpts{KmerSize: 31, RoundTrip: true})
	if r1 == r2 {
		t.Error("Different ReportKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(r1, "report:") {
		t.Errorf("ReportKey unexpected: %s", r1)
	}
	if k.ReportKey("other", ReportKeyOpts{KmerSize: 31}) == r1 {
		t.Error("Different input hashes should produce different keys")
	}

	c1 := k.CoverKey("h", CoverKeyOpts{KmerSize: 31, Policy: "first"})
	c2 := k.CoverKey("h", CoverKeyOpts{KmerSize: 31, Policy: "random"})
	if c1 == c2 {
		t.Error("Different CoverKeyOpts should produce different keys")
	}

	a1 := k.ArtifactKey("h", ArtifactKeyOpts{KmerSize: 31, Format: "svg"})
	a2 := k.ArtifactKey("h", ArtifactKeyOpts{KmerSize: 31, Format: "png"})
	if a1 == a2 || !strings.HasPrefix(a1, "artifact:svg:") {
		t.Errorf("ArtifactKey unexpected: %s, %s", a1, a2)
	}
	if k.ArtifactKey("h", ArtifactKeyOpts{KmerSize: 31, Format: "svg", Detailed: true}) == a1 {
		t.Error("Detailed should change the artifact key")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "v1.0.0:")
	plain := NewDefaultKeyer()

	opts := ReportKeyOpts{KmerSize: 31}
	if got, want := scoped.ReportKey("h", opts), "v1.0.0:"+plain.ReportKey("h", opts); got != want {
		t.Errorf("ReportKey = %s, want %s", got, want)
	}
	if got := scoped.CoverKey("h", CoverKeyOpts{}); !strings.HasPrefix(got, "v1.0.0:cover:") {
		t.Errorf("CoverKey should be prefixed: %s", got)
	}
	if got := NewScopedKeyer(nil, "p:").ArtifactKey("h", ArtifactKeyOpts{Format: "dot"}); !strings.HasPrefix(got, "p:artifact:dot:") {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}
