// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration and applies sources in precedence order
// (flags are applied later by the caller). If configPath is provided, it
// loads from that specific file. Otherwise it searches standard locations:
//   - .stagehand.yaml (current directory)
//   - .stagehand.yml (current directory)
//   - ~/.stagehand/config.yaml
//   - ~/.stagehand/config.yml
//
// Environment variables are applied after the config file, allowing runtime
// overrides. Returns an error if an explicitly named config file cannot be
// loaded, but succeeds with defaults when no file is found in the standard
// locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".stagehand.yaml",
			".stagehand.yml",
			filepath.Join(os.Getenv("HOME"), ".stagehand", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".stagehand", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if remote := os.Getenv("STAGEHAND_REMOTE"); remote != "" {
		cfg.Git.Remote = remote
	}
	if branch := os.Getenv("STAGEHAND_BRANCH"); branch != "" {
		cfg.Git.Branch = branch
	}
	if push := os.Getenv("STAGEHAND_PUSH"); push != "" {
		cfg.Git.Push = parseBool(push)
	}
	if msg := os.Getenv("STAGEHAND_DEFAULT_MESSAGE"); msg != "" {
		cfg.Commit.DefaultMessage = msg
	}
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Validate checks the configuration for values that cannot name a real
// remote or branch. This should be called after loading configuration to
// catch invalid settings early.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Git.Remote, " \t") {
		return fmt.Errorf("remote name cannot contain whitespace: %q", c.Git.Remote)
	}
	if strings.ContainsAny(c.Git.Branch, " \t") {
		return fmt.Errorf("branch name cannot contain whitespace: %q", c.Git.Branch)
	}
	return nil
}
