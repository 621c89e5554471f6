// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/GermanBionicSystems/ddcci/ddcci"
)

// configEnv overrides the default config file location.
const configEnv = "DDCCTL_CONFIG"

// Config is the content of config.toml.
type Config struct {
	// Models restricts the commands to monitors reporting one of these
	// models. Empty means every monitor.
	Models       []string `toml:"models"`
	Bus          string   `toml:"bus"`
	ReplyDelayMS int      `toml:"reply_delay_ms"`
	WriteDelayMS int      `toml:"write_delay_ms"`
	DebugLogging bool     `toml:"debug_logging"`
}

// DefaultConfig is used for the fields the file does not set.
var DefaultConfig = Config{
	ReplyDelayMS: int(ddcci.DefaultOpts.ReplyDelay / time.Millisecond),
	WriteDelayMS: int(ddcci.DefaultOpts.WriteDelay / time.Millisecond),
}

// configPath returns flag if set, else $DDCCTL_CONFIG, else the file in the
// user config directory.
func configPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := os.Getenv(configEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config directory: %w", err)
	}
	return filepath.Join(dir, "ddcctl", "config.toml"), nil
}

// LoadConfig reads the file at path on top of DefaultConfig. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	if cfg.ReplyDelayMS < 0 || cfg.WriteDelayMS < 0 {
		return cfg, fmt.Errorf("config %s: delays must not be negative", path)
	}
	return cfg, nil
}

// Opts returns the transport options.
func (c *Config) Opts() *ddcci.Opts {
	o := ddcci.DefaultOpts
	o.ReplyDelay = time.Duration(c.ReplyDelayMS) * time.Millisecond
	o.WriteDelay = time.Duration(c.WriteDelayMS) * time.Millisecond
	return &o
}

// Allowed reports whether model passes the allow-list.
func (c *Config) Allowed(model string) bool {
	if len(c.Models) == 0 {
		return true
	}
	for _, m := range c.Models {
		if m == model {
			return true
		}
	}
	return false
}
