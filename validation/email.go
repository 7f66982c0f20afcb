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
	"regexp"

	"dirpx.dev/apperr/code"
)

// emailPattern accepts a local part of alphanumerics separated by single '.',
// '_', '+' or '-' characters, then '@', then dot-separated labels of
// alphanumerics and hyphens ending in a label of at least two letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[._+-][A-Za-z0-9]+)*@[A-Za-z0-9][A-Za-z0-9-]*(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)

// IsEmail reports whether s is, in its entirety, an email address.
// Surrounding white space is not trimmed.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Email builds a validator that fails with code.ValidationInvalidEmail when
// the extracted string is not an email address.
func Email[T any](extract func(T) string, name string) (*Field[T, string], error) {
	return NewField(extract, name, checkEmail)
}

// MustEmail is the panic-on-error variant of Email.
func MustEmail[T any](extract func(T) string, name string) *Field[T, string] {
	return must(Email(extract, name))
}

// EmailPtr is Email for optional fields. A nil pointer is invalid.
func EmailPtr[T any](extract func(T) *string, name string) (*Field[T, *string], error) {
	return NewField(extract, name, func(name string, v *string) Result {
		if v == nil {
			return invalidEmail(name)
		}
		return checkEmail(name, *v)
	})
}

func checkEmail(name, value string) Result {
	if IsEmail(value) {
		return Valid()
	}
	return invalidEmail(name)
}

func invalidEmail(name string) Result {
	return Invalid(FieldError(code.ValidationInvalidEmail, name, fmt.Sprintf("Invalid email format for field %s", name)))
}
