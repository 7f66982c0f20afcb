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

package mapper

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
)

// ErrInvalidOption is wrapped by every error New reports for a rejected option.
var ErrInvalidOption = errors.New("mapper: invalid option")

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with per-category defaults derived from code.FallbackStatus.
//  2. Apply user-provided options (overrides, category defaults).
//  3. Report every rejected option at once (unknown code, status out of range,
//     invalid category).
//  4. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	return &mapper{
		httpOverride: maps.Clone(b.httpOverride),
		grpcOverride: maps.Clone(b.grpcOverride),
		categoryHTTP: maps.Clone(b.categoryHTTP),
	}, nil
}

// MustNew is like New but panics on error. Use it for package-level mappers
// built from constant options.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Default returns a mapper built with no options. It resolves exactly the
// registry statuses.
func Default() apis.Mapper { return std }

var std = MustNew()

// mapper is an immutable mapper implementation. Lookups are map reads and
// safe for concurrent use once constructed.
type mapper struct {
	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// categoryHTTP holds defaults for unregistered codes, keyed by category.
	categoryHTTP map[code.Category]int
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. registry per-entry status;
//  3. per-category default;
//  4. code.FallbackStatus (never zero).
func (m *mapper) HTTPStatus(c code.Code) int {
	s, _ := m.resolveHTTP(c)
	return s
}

// GRPCStatus resolves a gRPC status for the given code.
//
// Resolution order:
//  1. exact per-code override;
//  2. per-code library default;
//  3. derived from HTTPStatus(c);
//  4. codes.Internal.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	g, _ := m.resolveGRPC(c)
	return g
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for c.
//
// Example output:
//
//	code="DATA_NOT_FOUND" value=4003 category="DATA"
//	http: source=registry -> 404
//	grpc: source=http status=404 -> NOT_FOUND(5)
//
// HTTP sources are override, registry, category and fallback. gRPC sources
// are override, default, http and fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	var cat string
	if v, err := code.CategoryOf(c); err == nil {
		cat = v.String()
	}
	_, _ = fmt.Fprintf(&b, "code=%q value=%d category=%q\n", c.Name(), int(c), cat)

	hs, hsrc := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hs)

	gs, gsrc := m.resolveGRPC(c)
	if gsrc == "http" {
		_, _ = fmt.Fprintf(&b, "grpc: source=http status=%d -> %s", hs, grpcName(gs))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", gsrc, grpcName(gs))
	}
	return b.String()
}

func (m *mapper) resolveHTTP(c code.Code) (int, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override"
	}
	if d, ok := c.Definition(); ok && d.HTTPStatus != 0 {
		return d.HTTPStatus, "registry"
	}
	if cat, err := code.CategoryOf(c); err == nil {
		if v, ok := m.categoryHTTP[cat]; ok {
			return v, "category"
		}
	}
	return code.FallbackStatus(c), "fallback"
}

func (m *mapper) resolveGRPC(c code.Code) (codes.Code, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override"
	}
	if v, ok := defaultGRPC[c]; ok {
		return v, "default"
	}
	if v, ok := httpToGRPC[m.HTTPStatus(c)]; ok {
		return v, "http"
	}
	return codes.Internal, "fallback"
}

// grpcName renders a gRPC code as NOT_FOUND(5).
func grpcName(c codes.Code) string {
	var b strings.Builder
	var prev rune
	for _, r := range c.String() {
		if r >= 'A' && r <= 'Z' && prev >= 'a' && prev <= 'z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
		prev = r
	}
	return fmt.Sprintf("%s(%d)", strings.ToUpper(b.String()), uint32(c))
}
