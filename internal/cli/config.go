package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ustar/pkg/bcalm"
	errs "github.com/matzehuels/ustar/pkg/errors"
	"github.com/matzehuels/ustar/pkg/pipeline"
)

// Config is the contents of ustar.toml.
type Config struct {
	KmerSize   int         `toml:"kmer_size"`
	MaxLineLen int         `toml:"max_line_len"`
	AllowEvenK bool        `toml:"allow_even_k"`
	Cache      CacheConfig `toml:"cache"`
}

// CacheConfig controls the result cache.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	// Dir overrides the XDG cache directory.
	Dir string `toml:"dir"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{
		KmerSize:   pipeline.DefaultKmerSize,
		MaxLineLen: bcalm.DefaultMaxLineLen,
		Cache:      CacheConfig{Enabled: true},
	}
}

// loadConfig decodes the config file at path over the defaults. An empty
// path means ./ustar.toml, which may be absent. It returns the path that
// was actually read, or "" if none.
func loadConfig(path string) (Config, string, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = configFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), "", nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, "", errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, "", errs.Wrap(errs.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, "", errs.New(errs.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, path, nil
}

// writeConfig encodes cfg as TOML.
func writeConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// configCommand creates the config command, which prints the effective
// configuration after file and flag overrides.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeConfig(cmd.OutOrStdout(), c.Config); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}
