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

package apis

import "time"

// ViewProvider is implemented by errors that carry a ready-made,
// client-safe representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a snapshot of the error. The snapshot is built when
	// the error is constructed and never changes afterwards.
	ErrorView() ErrorView
}

// ErrorView is the JSON body of an error response.
//
// It never contains the underlying cause or a stack trace. Attributes are
// diagnostic context chosen by the code that raised the error; renderers may
// drop them.
type ErrorView struct {
	// Timestamp is when the error was raised.
	Timestamp time.Time `json:"timestamp"`

	// Status is the HTTP status.
	Status int `json:"status"`

	// Code is the numeric error code.
	Code int `json:"code"`

	// CodeName is the symbolic code name, e.g. "DATA_NOT_FOUND".
	CodeName string `json:"codeName"`

	// Category is the category name, e.g. "DATA".
	Category string `json:"category"`

	// Error is the category description, e.g. "Data Error".
	Error string `json:"error"`

	// Message is the human message.
	Message string `json:"message"`

	// Path is the request path, when known.
	Path string `json:"path,omitempty"`

	// TraceID correlates the response with server-side logs.
	TraceID string `json:"traceId,omitempty"`

	// Details holds per-field failures.
	Details []Detail `json:"details,omitempty"`

	// DeveloperMessages holds supplementary developer-oriented messages.
	DeveloperMessages []DeveloperMessage `json:"developerMessages,omitempty"`

	// Attributes holds free-form diagnostic context.
	Attributes map[string]any `json:"attributes,omitempty"`
}
