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
	"reflect"
	"strings"

	"dirpx.dev/apperr/code"
)

// Required builds a validator that fails with code.ValidationMissingField when
// the extracted value is empty according to IsEmpty.
func Required[T, F any](extract func(T) F, name string) (*Field[T, F], error) {
	return NewField(extract, name, checkRequired[F])
}

// MustRequired is the panic-on-error variant of Required.
func MustRequired[T, F any](extract func(T) F, name string) *Field[T, F] {
	return must(Required(extract, name))
}

func checkRequired[F any](name string, value F) Result {
	if !IsEmpty(value) {
		return Valid()
	}
	return Invalid(FieldError(code.ValidationMissingField, name, fmt.Sprintf("Field '%s' is required", name)))
}

// lener is satisfied by collection-like types such as bytes.Buffer or custom
// sets.
type lener interface {
	Len() int
}

// IsEmpty reports whether v carries no usable value:
//
//   - nil, or a nil pointer, map, slice, channel, function or interface;
//   - text that is empty after trimming white space;
//   - a slice, array or map with zero entries;
//   - a value whose Len method returns 0.
//
// Pointers are followed. Every other value, including numeric zero and false,
// is considered present.
func IsEmpty(v any) bool {
	rv := reflect.ValueOf(v)
	for {
		if !rv.IsValid() {
			return true
		}
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return true
			}
			if n, ok := lenOf(rv); ok {
				return n == 0
			}
			rv = rv.Elem()
			continue
		case reflect.String:
			return strings.TrimSpace(rv.String()) == ""
		case reflect.Slice, reflect.Map, reflect.Array:
			return rv.Len() == 0
		case reflect.Chan, reflect.Func:
			return rv.IsNil()
		}
		if n, ok := lenOf(rv); ok {
			return n == 0
		}
		return false
	}
}

func lenOf(rv reflect.Value) (int, bool) {
	if !rv.CanInterface() {
		return 0, false
	}
	if l, ok := rv.Interface().(lener); ok {
		return l.Len(), true
	}
	return 0, false
}
