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
	"google.golang.org/grpc/codes"

	"dirpx.dev/apperr/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over the registry status. The code must be
// registered and the status must lie in [400, 600).
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) {
		if !c.Known() {
			b.fail("HTTP override for unknown code %d", int(c))
			return
		}
		if !validHTTP(status) {
			b.fail("HTTP override %d for %s is not an error status", status, c)
			return
		}
		b.httpOverride[c] = status
	}
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// The code must be registered and grpc must be a non-OK canonical code.
func WithGRPCOverride(c code.Code, grpc codes.Code) Option {
	return func(b *builder) {
		if !c.Known() {
			b.fail("gRPC override for unknown code %d", int(c))
			return
		}
		if !validGRPC(grpc) {
			b.fail("gRPC override %d for %s is not an error code", uint32(grpc), c)
			return
		}
		b.grpcOverride[c] = grpc
	}
}

// WithCategoryHTTP replaces the default HTTP status used for unregistered
// codes of the given category.
func WithCategoryHTTP(cat code.Category, status int) Option {
	return func(b *builder) {
		if !cat.Valid() {
			b.fail("unknown category %d", uint8(cat))
			return
		}
		if !validHTTP(status) {
			b.fail("category default %d for %s is not an error status", status, cat)
			return
		}
		b.categoryHTTP[cat] = status
	}
}
