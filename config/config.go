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

// Package config loads the edge configuration of an application that uses
// apperr: how errors are rendered, how they are logged and which transport
// statuses they map to. The core packages read no configuration.
package config

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
	"dirpx.dev/apperr/httpx"
	"dirpx.dev/apperr/mapper"
)

// Config is the root configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Status StatusConfig `mapstructure:"status" yaml:"status"`
}

// RenderConfig selects the optional sections of HTTP error bodies.
type RenderConfig struct {
	IncludeDeveloperMessages bool   `mapstructure:"include_developer_messages" yaml:"include_developer_messages"`
	IncludeDetails           bool   `mapstructure:"include_details" yaml:"include_details"`
	IncludeAttributes        bool   `mapstructure:"include_attributes" yaml:"include_attributes"`
	IncludePath              bool   `mapstructure:"include_path" yaml:"include_path"`
	GenericMessage           string `mapstructure:"generic_message" yaml:"generic_message" validate:"max=200"`
}

// LogConfig configures the logrus logger used by the transport adapters.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
}

// StatusConfig adjusts the status mapper. Keys are code names (or numbers)
// and category names; viper lower-cases them, which Parse tolerates.
type StatusConfig struct {
	// HTTP overrides the HTTP status of registered codes.
	HTTP map[string]int `mapstructure:"http" yaml:"http" validate:"dive,keys,required,endkeys,gte=400,lt=600"`

	// GRPC overrides the gRPC status of registered codes. Values are gRPC
	// code names such as NOT_FOUND or NotFound.
	GRPC map[string]string `mapstructure:"grpc" yaml:"grpc" validate:"dive,keys,required,endkeys,required"`

	// Categories replaces the HTTP default for unregistered codes of a
	// category.
	Categories map[string]int `mapstructure:"categories" yaml:"categories" validate:"dive,keys,required,endkeys,gte=400,lt=600"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Render: RenderConfig{
			IncludeDeveloperMessages: true,
			IncludeDetails:           true,
			IncludeAttributes:        true,
			IncludePath:              true,
			GenericMessage:           httpx.DefaultGenericMessage,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Options converts the section into renderer options.
func (r RenderConfig) Options() httpx.Options {
	return httpx.Options{
		OmitDeveloperMessages: !r.IncludeDeveloperMessages,
		OmitDetails:           !r.IncludeDetails,
		OmitAttributes:        !r.IncludeAttributes,
		OmitPath:              !r.IncludePath,
		GenericMessage:        r.GenericMessage,
	}
}

// NewLogger builds a logrus logger writing to w (stderr when nil).
func (l LogConfig) NewLogger(w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	log := logrus.New()
	log.SetLevel(lvl)
	if w != nil {
		log.SetOutput(w)
	}
	switch l.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("config: unknown log format %q", l.Format)
	}
	return log, nil
}

// MapperOptions converts the section into mapper options. Keys are applied
// in sorted order so the result is deterministic.
func (s StatusConfig) MapperOptions() ([]mapper.Option, error) {
	var opts []mapper.Option
	for _, k := range slices.Sorted(maps.Keys(s.HTTP)) {
		c, err := code.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("config: status.http: %w", err)
		}
		opts = append(opts, mapper.WithHTTPOverride(c, s.HTTP[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(s.GRPC)) {
		c, err := code.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("config: status.grpc: %w", err)
		}
		g, err := ParseGRPCCode(s.GRPC[k])
		if err != nil {
			return nil, fmt.Errorf("config: status.grpc.%s: %w", k, err)
		}
		opts = append(opts, mapper.WithGRPCOverride(c, g))
	}
	for _, k := range slices.Sorted(maps.Keys(s.Categories)) {
		cat, err := code.ParseCategory(k)
		if err != nil {
			return nil, fmt.Errorf("config: status.categories: %w", err)
		}
		opts = append(opts, mapper.WithCategoryHTTP(cat, s.Categories[k]))
	}
	return opts, nil
}

// Mapper builds the status mapper described by the section.
func (s StatusConfig) Mapper() (apis.Mapper, error) {
	opts, err := s.MapperOptions()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}

// ParseGRPCCode resolves a gRPC code name case-insensitively, with or without
// underscores: "NOT_FOUND", "NotFound" and "not_found" are equivalent.
func ParseGRPCCode(s string) (codes.Code, error) {
	want := squash(s)
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		if squash(c.String()) == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown gRPC code %q", s)
}

func squash(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
}
