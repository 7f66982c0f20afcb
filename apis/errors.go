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

import "dirpx.dev/apperr/code"

// CodedError is an error classified by a registered numeric code.
//
// Adapters use the code to resolve transport statuses. Errors that do not
// implement CodedError are treated as internal server errors at the boundary.
type CodedError interface {
	error

	// ErrorCode returns the code of the error. It is never code.Unknown for
	// errors produced by this module.
	ErrorCode() code.Code
}

// DetailedError exposes zero or more structured details, typically one per
// failing field.
//
// The returned slice belongs to the caller. Returning nil means "no details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError exposes the direct underlying cause of an error.
//
// The cause is for server-side diagnostics only. Adapters must never copy it
// into a client-visible payload.
type CausedError interface {
	error

	// Cause returns the underlying error, or nil.
	Cause() error
}
