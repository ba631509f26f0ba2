/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config holds the user-editable configuration persisted to a YAML
// file. Environment variables are treated as read-only overrides at runtime.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AssetsConfig locates the external registries and font files.
// Empty paths mean "use the embedded defaults".
type AssetsConfig struct {
	ColorsFile string `yaml:"colors_file"` // JSON color registry
	FontsFile  string `yaml:"fonts_file"`  // JSON font registry
	FontDir    string `yaml:"font_dir"`    // directory holding the TTF files
}

// ServerConfig configures the HTTP render service.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig mirrors internal/log.Options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// AppConfig is the top-level configuration document.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Assets        AssetsConfig  `yaml:"assets"`
	Server        ServerConfig  `yaml:"server"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Assets:        AssetsConfig{ColorsFile: "", FontsFile: "", FontDir: "assets/fonts"},
		Server:        ServerConfig{Addr: ":8080"},
		Logging:       LoggingConfig{Level: "info", Format: "console", File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvColorsFile = "MC_COLORS_FILE"
	EnvFontsFile  = "MC_FONTS_FILE"
	EnvFontDir    = "MC_FONT_DIR"
	EnvServerAddr = "MC_SERVER_ADDR"
	EnvLogLevel   = "MC_LOG_LEVEL"
	EnvLogFormat  = "MC_LOG_FORMAT"
	EnvLogFile    = "MC_LOG_FILE"
)

// Load reads the config file at path (if present), applies defaults, and
// merges environment overrides. A missing file is not an error.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var fileCfg AppConfig
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return cfg, err
			}
			mergeInto(&cfg, &fileCfg)
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the config YAML to path.
func Save(cfg AppConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if strings.TrimSpace(src.Assets.ColorsFile) != "" {
		dst.Assets.ColorsFile = src.Assets.ColorsFile
	}
	if strings.TrimSpace(src.Assets.FontsFile) != "" {
		dst.Assets.FontsFile = src.Assets.FontsFile
	}
	if strings.TrimSpace(src.Assets.FontDir) != "" {
		dst.Assets.FontDir = src.Assets.FontDir
	}
	if strings.TrimSpace(src.Server.Addr) != "" {
		dst.Server.Addr = src.Server.Addr
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvColorsFile)); v != "" {
		cfg.Assets.ColorsFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontsFile)); v != "" {
		cfg.Assets.FontsFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontDir)); v != "" {
		cfg.Assets.FontDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvServerAddr)); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
