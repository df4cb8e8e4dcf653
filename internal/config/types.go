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

// Package config types define the configuration structures for stagehand.
// These represent settings that can be loaded from YAML configuration
// files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for stagehand. It
// consolidates settings from various sources into a single immutable value
// threaded through the workflow at construction time.
type Config struct {
	Git    GitConfig    `yaml:"git"`
	Commit CommitConfig `yaml:"commit"`
}

// GitConfig names the push target. An empty Branch means the currently
// checked-out branch; an empty Remote falls back to the configured upstream.
type GitConfig struct {
	Remote string `yaml:"remote"`
	Branch string `yaml:"branch"`
	Push   bool   `yaml:"push"`
}

// CommitConfig controls message defaults. When DefaultMessage is set it is
// used for runs that supply no message, instead of the timestamped default.
type CommitConfig struct {
	DefaultMessage string `yaml:"default_message"`
}

// DefaultConfig returns a Config with sensible defaults: push to origin on
// the current branch, no preset message.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Remote: "origin",
			Push:   true,
		},
	}
}
