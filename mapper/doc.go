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

// Package mapper provides deterministic, immutable mappings from error codes
// (dirpx.dev/apperr/code) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// Every registered code carries an explicit HTTP status in the registry.
// Transport layers (HTTP handlers, REST gateways, gRPC servers) still need a
// place to adjust that policy per deployment and to derive the gRPC status.
// Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can replace the status of any registered code;
//   - total: unregistered codes still resolve through category defaults;
//   - dual: HTTP and gRPC are resolved from the same inputs.
//
// # Resolution model
//
// HTTP statuses resolve in the following order:
//
//  1. exact per-code override;
//  2. the per-entry status from the code registry;
//  3. per-category default (seeded from code.FallbackStatus, adjustable);
//  4. code.FallbackStatus, which passes raw 4xx/5xx values through and
//     yields 500 for everything else.
//
// gRPC statuses resolve as:
//
//  1. exact per-code override;
//  2. per-code library default (e.g. duplicates map to AlreadyExists);
//  3. derived from the resolved HTTP status;
//  4. codes.Internal.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.BusinessDuplicateEntry, 422),
//	    mapper.WithCategoryHTTP(code.CategoryIntegration, 503),
//	)
//	if err != nil {
//	    // unknown code, status out of range, etc.
//	}
//
//	st := m.Status(code.DataNotFound)
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which tier matched. It is
// intended for inspection and logging, not for stable machine parsing.
package mapper
