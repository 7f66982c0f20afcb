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
	"time"

	"dirpx.dev/apperr/apis"
)

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithKindOption sets the family on construction.
func WithKindOption(k Kind) Option {
	return func(e *Error) *Error { return e.WithKind(k) }
}

// WithContextOption applies a diagnostic context on construction.
func WithContextOption(c Context) Option {
	return func(e *Error) *Error { return e.WithContext(c) }
}

// WithPathOption sets the request path on construction.
func WithPathOption(path string) Option {
	return func(e *Error) *Error { return e.WithPath(path) }
}

// WithTraceIDOption sets the trace id on construction.
func WithTraceIDOption(id string) Option {
	return func(e *Error) *Error { return e.WithTraceID(id) }
}

// WithTimestampOption sets the raise time on construction.
func WithTimestampOption(t time.Time) Option {
	return func(e *Error) *Error { return e.WithTimestamp(t) }
}

// WithAttributeOption adds a single attribute on construction.
func WithAttributeOption(k string, v any) Option {
	return func(e *Error) *Error { return e.WithAttribute(k, v) }
}

// WithAttributesOption merges attributes on construction.
func WithAttributesOption(kv map[string]any) Option {
	return func(e *Error) *Error { return e.WithAttributes(kv) }
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}

// WithDeveloperMessagesOption appends developer messages on construction.
func WithDeveloperMessagesOption(msgs ...DeveloperMessage) Option {
	return func(e *Error) *Error { return e.WithDeveloperMessages(msgs...) }
}

// WithDetailsOption appends details on construction.
func WithDetailsOption(details ...apis.Detail) Option {
	return func(e *Error) *Error { return e.WithDetails(details...) }
}
