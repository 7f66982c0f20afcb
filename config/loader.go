/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvPrefix is used by Load when envPrefix is empty.
const DefaultEnvPrefix = "APPERR"

// Load reads the YAML file at path (optional when empty), applies
// environment overrides and validates the result.
//
// Environment variables use envPrefix and upper-case, underscore-separated
// keys: APPERR_LOG_LEVEL overrides log.level.
func Load(path, envPrefix string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if envPrefix == "" {
		envPrefix = DefaultEnvPrefix
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %s not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("render.include_developer_messages", d.Render.IncludeDeveloperMessages)
	v.SetDefault("render.include_details", d.Render.IncludeDetails)
	v.SetDefault("render.include_attributes", d.Render.IncludeAttributes)
	v.SetDefault("render.include_path", d.Render.IncludePath)
	v.SetDefault("render.generic_message", d.Render.GenericMessage)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
