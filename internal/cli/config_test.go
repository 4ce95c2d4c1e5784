package cli

import (
	"strings"
	"testing"

	errs "github.com/matzehuels/ustar/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     Config
		wantCode errs.Code
	}{
		{
			name:    "overrides",
			content: "kmer_size = 21\nallow_even_k = true\n[cache]\nenabled = false\ndir = \"/tmp/ustar\"\n",
			want: Config{
				KmerSize:   21,
				MaxLineLen: DefaultConfig().MaxLineLen,
				AllowEvenK: true,
				Cache:      CacheConfig{Enabled: false, Dir: "/tmp/ustar"},
			},
		},
		{
			name:    "partial file keeps defaults",
			content: "max_line_len = 4096\n",
			want: Config{
				KmerSize:   31,
				MaxLineLen: 4096,
				Cache:      CacheConfig{Enabled: true},
			},
		},
		{
			name:     "unknown key",
			content:  "kmersize = 21\n",
			wantCode: errs.ErrCodeInvalidInput,
		},
		{
			name:     "syntax error",
			content:  "kmer_size = \n",
			wantCode: errs.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "ustar.toml", tt.content)
			got, used, err := loadConfig(path)
			if tt.wantCode != "" {
				if !errs.Is(err, tt.wantCode) {
					t.Fatalf("loadConfig() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error: %v", err)
			}
			if used != path {
				t.Errorf("loadConfig() path = %q, want %q", used, path)
			}
			if got != tt.want {
				t.Errorf("loadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := loadConfig("")
	if err != nil || used != "" || cfg != DefaultConfig() {
		t.Errorf("loadConfig(\"\") = %+v, %q, %v; want defaults", cfg, used, err)
	}

	_, _, err = loadConfig("nope.toml")
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("loadConfig(nope.toml) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "kmer_size = 31") {
		t.Errorf("config output:\n%s", out)
	}

	path := writeFile(t, "ustar.toml", "kmer_size = 21\n")
	out, err = run(t, "config", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "kmer_size = 21") {
		t.Errorf("config output with file:\n%s", out)
	}

	out, err = run(t, "config", "--config", path, "-k", "15")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "kmer_size = 15") {
		t.Errorf("flag should override file:\n%s", out)
	}
}

func TestCachePathCommand(t *testing.T) {
	path := writeFile(t, "ustar.toml", "[cache]\ndir = \"/var/cache/ustar-test\"\n")
	out, err := run(t, "cache", "path", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "/var/cache/ustar-test" {
		t.Errorf("cache path = %q", out)
	}
}
