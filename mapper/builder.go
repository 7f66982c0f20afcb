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
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/apperr/code"
)

type builder struct {
	// httpOverride holds exact per-code HTTP overrides.
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides.
	grpcOverride map[code.Code]codes.Code

	// categoryHTTP holds per-category defaults for codes without a registry entry.
	categoryHTTP map[code.Category]int

	// errs collects option validation failures; New reports them together.
	errs []error
}

// newBuilder creates a builder seeded with the library's category defaults.
func newBuilder() *builder {
	b := &builder{
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),
		categoryHTTP: make(map[code.Category]int, len(code.Categories())),
	}
	for _, cat := range code.Categories() {
		// Raw HTTP codes pass through FallbackStatus unchanged.
		if cat == code.CategoryHTTP {
			continue
		}
		b.categoryHTTP[cat] = code.FallbackStatus(code.Code(cat.Min()))
	}
	return b
}

func (b *builder) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...)))
}

// validHTTP reports whether s is an HTTP error status.
func validHTTP(s int) bool {
	return s >= http.StatusBadRequest && s < 600
}

// validGRPC reports whether c is a non-OK canonical gRPC code.
func validGRPC(c codes.Code) bool {
	return c > codes.OK && c <= codes.Unauthenticated
}
