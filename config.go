// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".phonebook.yaml"
	configEnvVar   = "PHONEBOOK_CONFIG"
)

// Number policies applied when a number is longer than max_number_length.
const (
	PolicyReject   = "reject"
	PolicyTruncate = "truncate"
)

// UI modes for the interactive session.
const (
	UIModeMenu = "menu"
	UIModeTUI  = "tui"
)

type ContactsConfig struct {
	MaxNameLength   int    `yaml:"max_name_length"`
	MaxNumberLength int    `yaml:"max_number_length"`
	NumberPolicy    string `yaml:"number_policy"`
	MaxEntries      int    `yaml:"max_entries"` // 0 means unbounded
}

type LookupConfig struct {
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	BloomSize   uint          `yaml:"bloom_size"`
	BloomHashes uint          `yaml:"bloom_hashes"`
}

type UIConfig struct {
	Mode string `yaml:"mode"`
}

type Config struct {
	Contacts ContactsConfig `yaml:"contacts"`
	Lookup   LookupConfig   `yaml:"lookup"`
	UI       UIConfig       `yaml:"ui"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Contacts: ContactsConfig{
			MaxNameLength:   99,
			MaxNumberLength: 12,
			NumberPolicy:    PolicyReject,
			MaxEntries:      0,
		},
		Lookup: LookupConfig{
			CacheTTL:    10 * time.Minute,
			BloomSize:   1 << 16,
			BloomHashes: 5,
		},
		UI: UIConfig{
			Mode: UIModeMenu,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Contacts.MaxNameLength <= 0:
		return errors.Wrap(ErrInvalidConfig, "contacts.max_name_length must be positive")
	case c.Contacts.MaxNumberLength <= 0:
		return errors.Wrap(ErrInvalidConfig, "contacts.max_number_length must be positive")
	case c.Contacts.NumberPolicy != PolicyReject && c.Contacts.NumberPolicy != PolicyTruncate:
		return errors.Wrapf(ErrInvalidConfig, "contacts.number_policy %q is not one of %s, %s",
			c.Contacts.NumberPolicy, PolicyReject, PolicyTruncate)
	case c.Contacts.MaxEntries < 0:
		return errors.Wrap(ErrInvalidConfig, "contacts.max_entries must not be negative")
	case c.Lookup.CacheTTL <= 0:
		return errors.Wrap(ErrInvalidConfig, "lookup.cache_ttl must be positive")
	case c.Lookup.BloomSize == 0 || c.Lookup.BloomHashes == 0:
		return errors.Wrap(ErrInvalidConfig, "lookup.bloom_size and lookup.bloom_hashes must be positive")
	case c.UI.Mode != UIModeMenu && c.UI.Mode != UIModeTUI:
		return errors.Wrapf(ErrInvalidConfig, "ui.mode %q is not one of %s, %s", c.UI.Mode, UIModeMenu, UIModeTUI)
	}
	return nil
}

// resolveConfigPath picks the config file: an explicit path first, then
// $PHONEBOOK_CONFIG, then ~/.phonebook.yaml.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(configEnvVar); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads path from fs. A missing file yields the defaults. Keys absent
// from the file keep their default values. On a read, parse or validation
// error the defaults are returned together with the error.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	config := DefaultConfig()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		defaults := DefaultConfig()
		return &defaults, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		defaults := DefaultConfig()
		return &defaults, errors.Wrapf(err, "parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		defaults := DefaultConfig()
		return &defaults, errors.Wrapf(err, "config %s", path)
	}

	return &config, nil
}

func createDefaultConfigFile(fs afero.Fs, path string) error {
	config := DefaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return errors.Wrap(err, "marshal default config")
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrap(err, "write config file")
	}
	return nil
}

func displaySettings(w io.Writer, fs afero.Fs, configPath string) {
	configExists, err := afero.Exists(fs, configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to check config path: %v\n", err)
		return
	}

	if !configExists {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(fs, configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(fs, configPath)
	if err != nil {
		fmt.Fprintf(w, "⚠️  %v. Showing defaults.\n\n", err)
	}

	fmt.Fprintf(w, "🔧 Phonebook Configuration Settings\n")
	fmt.Fprintf(w, "════════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Fprintf(w, "📇 %sContacts:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %smax_name_length%s: %d\n", Green, Reset, config.Contacts.MaxNameLength)
	fmt.Fprintf(w, "  • %smax_number_length%s: %d\n", Green, Reset, config.Contacts.MaxNumberLength)
	fmt.Fprintf(w, "  • %snumber_policy%s: %s\n", Green, Reset, config.Contacts.NumberPolicy)
	if config.Contacts.NumberPolicy == PolicyTruncate {
		fmt.Fprintf(w, "    Longer numbers are cut to max_number_length\n")
	} else {
		fmt.Fprintf(w, "    Longer numbers are refused\n")
	}
	if config.Contacts.MaxEntries == 0 {
		fmt.Fprintf(w, "  • %smax_entries%s: unlimited\n\n", Green, Reset)
	} else {
		fmt.Fprintf(w, "  • %smax_entries%s: %d\n\n", Green, Reset, config.Contacts.MaxEntries)
	}

	fmt.Fprintf(w, "🔍 %sLookup:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scache_ttl%s: %s\n", Green, Reset, config.Lookup.CacheTTL)
	fmt.Fprintf(w, "  • %sbloom_size%s: %d\n", Green, Reset, config.Lookup.BloomSize)
	fmt.Fprintf(w, "  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Lookup.BloomHashes)

	fmt.Fprintf(w, "🖥  %sUI:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %smode%s: %s\n", Green, Reset, config.UI.Mode)
}
