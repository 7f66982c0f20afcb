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

package apperr

import (
	"context"
	"maps"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// now is replaced in tests.
var now = time.Now

// Context is the diagnostic context of an error: where it happened, how to
// correlate it, and operation-specific attributes.
//
// A Context is a plain value. The Error that receives it copies Attributes,
// so later changes to the caller's map are not observed.
type Context struct {
	// Path is the request path or logical operation path.
	Path string

	// TraceID correlates the error with distributed traces and logs.
	TraceID string

	// Attributes is free-form diagnostic data.
	Attributes map[string]any

	// Timestamp is when the error was raised. Zero means "now".
	Timestamp time.Time
}

// NewContext builds a Context for path, taking the trace id from the
// OpenTelemetry span carried by ctx (if any) and stamping the current time.
func NewContext(ctx context.Context, path string, attrs map[string]any) Context {
	return Context{
		Path:       path,
		TraceID:    TraceIDFromContext(ctx),
		Attributes: maps.Clone(attrs),
		Timestamp:  now(),
	}
}

// TraceIDFromContext returns the hex trace id of the span in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
