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

package validation

import (
	"fmt"
	"maps"
	"reflect"
	"strings"

	"dirpx.dev/apperr/code"
)

// Error is one validation failure: a registered code, a resolved message and
// free-form diagnostic metadata.
//
// Error is a value. The metadata map is copied on the way in and on the way
// out, so an Error cannot be changed after construction.
type Error struct {
	code     code.Code
	message  string
	metadata map[string]any
}

// MetaField is the metadata key holding the name of the offending field.
const MetaField = "field"

// NewError builds an Error. An empty message falls back to the default
// message of c.
func NewError(c code.Code, message string, metadata map[string]any) Error {
	if message == "" {
		message = c.Message()
	}
	return Error{code: c, message: message, metadata: maps.Clone(metadata)}
}

// FieldError builds an Error tagged with the offending field name.
func FieldError(c code.Code, field, message string) Error {
	return NewError(c, message, map[string]any{MetaField: field})
}

// Code returns the error code.
func (e Error) Code() code.Code { return e.code }

// Message returns the resolved message.
func (e Error) Message() string { return e.message }

// Metadata returns a copy of the diagnostic metadata. It is nil when the error
// carries none.
func (e Error) Metadata() map[string]any { return maps.Clone(e.metadata) }

// Value returns a single metadata entry.
func (e Error) Value(key string) (any, bool) {
	v, ok := e.metadata[key]
	return v, ok
}

// Field returns the offending field name, or "" when the error is not bound to
// a field.
func (e Error) Field() string {
	s, _ := e.metadata[MetaField].(string)
	return s
}

// Equal reports structural equality: same code, same message, deeply equal
// metadata. A nil and an empty metadata map are considered equal.
func (e Error) Equal(o Error) bool {
	if e.code != o.code || e.message != o.message {
		return false
	}
	if len(e.metadata) == 0 && len(o.metadata) == 0 {
		return true
	}
	return reflect.DeepEqual(e.metadata, o.metadata)
}

// Error implements error as "NAME: message".
func (e Error) Error() string {
	return e.code.Name() + ": " + e.message
}

// Result is the outcome of validating one input: either valid, or invalid with
// an ordered, non-empty list of errors.
//
// A Result is valid if and only if it holds no errors. The zero value is the
// valid result.
type Result struct {
	errs []Error
}

// Valid returns the valid result.
func Valid() Result { return Result{} }

// Invalid returns a result carrying a copy of errs in the given order.
//
// Invalid with no errors returns Valid(): validity and emptiness never
// disagree.
func Invalid(errs ...Error) Result {
	if len(errs) == 0 {
		return Valid()
	}
	cp := make([]Error, len(errs))
	copy(cp, errs)
	return Result{errs: cp}
}

// IsValid reports whether no error was recorded.
func (r Result) IsValid() bool { return len(r.errs) == 0 }

// IsInvalid is the negation of IsValid.
func (r Result) IsInvalid() bool { return !r.IsValid() }

// Len returns the number of errors.
func (r Result) Len() int { return len(r.errs) }

// Errors returns a copy of the errors in the order they were produced. The
// caller may modify the returned slice freely.
func (r Result) Errors() []Error {
	if len(r.errs) == 0 {
		return nil
	}
	cp := make([]Error, len(r.errs))
	copy(cp, r.errs)
	return cp
}

// First returns the first error, if any.
func (r Result) First() (Error, bool) {
	if len(r.errs) == 0 {
		return Error{}, false
	}
	return r.errs[0], true
}

// Codes returns the code of every error, in order.
func (r Result) Codes() []code.Code {
	if len(r.errs) == 0 {
		return nil
	}
	out := make([]code.Code, len(r.errs))
	for i, e := range r.errs {
		out[i] = e.code
	}
	return out
}

// Merge returns a result holding the errors of r followed by the errors of
// each of others.
func (r Result) Merge(others ...Result) Result {
	n := len(r.errs)
	for _, o := range others {
		n += len(o.errs)
	}
	if n == len(r.errs) {
		return r
	}
	all := make([]Error, 0, n)
	all = append(all, r.errs...)
	for _, o := range others {
		all = append(all, o.errs...)
	}
	return Result{errs: all}
}

// Equal reports whether both results hold structurally equal errors in the
// same order.
func (r Result) Equal(o Result) bool {
	if len(r.errs) != len(o.errs) {
		return false
	}
	for i := range r.errs {
		if !r.errs[i].Equal(o.errs[i]) {
			return false
		}
	}
	return true
}

// String renders the result for logs and test failures.
func (r Result) String() string {
	if r.IsValid() {
		return "valid"
	}
	parts := make([]string, len(r.errs))
	for i, e := range r.errs {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("invalid(%d): %s", len(r.errs), strings.Join(parts, "; "))
}
