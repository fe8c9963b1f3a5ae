// Package config loads promptman CLI configuration with layered priority:
// built-in defaults, then the first config file found, then explicitly set
// command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// Config is the promptman CLI configuration.
type Config struct {
	Dir    string `koanf:"dir"`
	Strict bool   `koanf:"strict"`
}

// Default returns the built-in configuration values.
// internal/command mirrors these as flag defaults; keep them in sync here.
func Default() Config {
	return Config{
		Dir:    "prompts",
		Strict: true,
	}
}

// Paths returns the config file search paths, first match wins.
func Paths() []string {
	paths := []string{
		"promptman.yaml",
		filepath.Join("config", "promptman.yaml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".promptman.yaml"))
	}
	return paths
}

// Load merges defaults, the first config file found, and CLI flags the user
// explicitly set.
func Load(cmd *cli.Command) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	for _, path := range Paths() {
		if err := k.Load(file.Provider(path), yaml.Parser()); err == nil {
			break
		}
	}
	applyFlags(cmd, k)
	return unmarshal(k)
}

// LoadBytes parses a raw YAML config over the defaults, without touching the
// filesystem or flags.
func LoadBytes(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// applyFlags overrides config keys with flags the user explicitly set.
func applyFlags(cmd *cli.Command, k *koanf.Koanf) {
	if cmd == nil {
		return
	}
	if cmd.IsSet("dir") {
		_ = k.Set("dir", cmd.String("dir"))
	}
	if cmd.IsSet("strict") {
		_ = k.Set("strict", cmd.Bool("strict"))
	}
}
