package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const _defaultConfigFile = "grimdark.toml"

type Config struct {
	LibraryDir string `toml:"library_dir"`
	Output     string `toml:"output"`
	Verbose    bool   `toml:"verbose"`
	Listen     string `toml:"listen"`
}

func defaultConfig() Config {
	return Config{
		LibraryDir: "./library/",
		Output:     "yaml",
		Listen:     ":8080",
	}
}

// loadConfig reads path over the defaults. An empty path falls back to
// grimdark.toml in the working directory when it exists.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		if _, err := os.Stat(_defaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		path = _defaultConfigFile
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Output {
	case "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
}
