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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code is a stable numeric identifier for one error condition.
//
// Codes are unique across the whole system. The numeric value is what
// clients see in the "code" field of an error response; the symbolic name
// (e.g. "VALIDATION_INVALID_EMAIL") is what humans and configuration files use.
//
// The zero value is Unknown and is never registered.
type Code int

// Unknown is the zero-value code. It is considered "not provided".
const Unknown Code = 0

// Definition is the immutable registry record behind a Code.
type Definition struct {
	// Name is the symbolic, upper-case name, e.g. "DATA_NOT_FOUND".
	Name string `json:"name" yaml:"name"`

	// Code is the numeric identifier.
	Code Code `json:"code" yaml:"code"`

	// Category is the declared category. Check verifies that it matches the
	// category derived from Name and Code.
	Category Category `json:"category" yaml:"category"`

	// HTTPStatus is the explicit status for this entry. It is authoritative;
	// FallbackStatus is only used for codes without a definition.
	HTTPStatus int `json:"httpStatus" yaml:"httpStatus"`

	// Message is the default human message.
	Message string `json:"message" yaml:"message"`
}

var (
	// ErrCodeUnknown is returned when a name or number does not resolve to a
	// registered code.
	ErrCodeUnknown = errors.New("apperr: unknown code")

	// ErrCategoryUnknown is returned when a category cannot be derived or
	// parsed.
	ErrCategoryUnknown = errors.New("apperr: unknown category")

	// ErrRegistryInvalid is wrapped by every failure reported by Check.
	ErrRegistryInvalid = errors.New("apperr: invalid code registry")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// httpPrefix marks names that belong to the HTTP category regardless of
// their numeric value.
const httpPrefix = "HTTP_"

// Normalize brings an arbitrary name closer to the canonical form:
// surrounding spaces trimmed, upper-cased, '-', '.' and inner spaces replaced
// with '_'. It does not check that the result is registered.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(s)
	return s
}

// Parse resolves a symbolic name (or a decimal number) to a registered Code.
//
//	code.Parse("validation-invalid-email") // ValidationInvalidEmail
//	code.Parse("1003")                     // ValidationInvalidEmail
func Parse(s string) (Code, error) {
	n := Normalize(s)
	if n == "" {
		return Unknown, fmt.Errorf("%w: empty name", ErrCodeUnknown)
	}
	if i, err := strconv.Atoi(n); err == nil {
		if _, ok := byCode[Code(i)]; ok {
			return Code(i), nil
		}
		return Unknown, fmt.Errorf("%w: %d", ErrCodeUnknown, i)
	}
	if c, ok := byName[n]; ok {
		return c, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrCodeUnknown, s)
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Int returns the numeric value.
func (c Code) Int() int { return int(c) }

// Known reports whether c is registered.
func (c Code) Known() bool {
	_, ok := byCode[c]
	return ok
}

// Definition returns the registry record for c.
func (c Code) Definition() (Definition, bool) {
	d, ok := byCode[c]
	return d, ok
}

// Name returns the symbolic name, or "CODE_<n>" for unregistered codes.
func (c Code) Name() string {
	if d, ok := byCode[c]; ok {
		return d.Name
	}
	return "CODE_" + strconv.Itoa(int(c))
}

// String returns the symbolic name.
func (c Code) String() string { return c.Name() }

// Message returns the default human message. Unregistered codes yield the
// description of their derived category, or an empty string.
func (c Code) Message() string {
	if d, ok := byCode[c]; ok {
		return d.Message
	}
	if cat, err := CategoryOf(c); err == nil {
		return cat.Description()
	}
	return ""
}

// Category returns the category of c, or zero if it cannot be derived.
func (c Code) Category() Category {
	cat, _ := CategoryOf(c)
	return cat
}

// HTTPStatus returns the explicit per-entry status for registered codes and
// FallbackStatus(c) for everything else.
func (c Code) HTTPStatus() int {
	if d, ok := byCode[c]; ok && d.HTTPStatus != 0 {
		return d.HTTPStatus
	}
	return FallbackStatus(c)
}

// IsClientError reports whether the resolved status is in [400, 500).
func (c Code) IsClientError() bool {
	s := c.HTTPStatus()
	return s >= 400 && s < 500
}

// IsServerError reports whether the resolved status is in [500, 600).
func (c Code) IsServerError() bool {
	s := c.HTTPStatus()
	return s >= 500 && s < 600
}

// MarshalText implements encoding.TextMarshaler using the symbolic name.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Known() {
		return nil, fmt.Errorf("%w: %d", ErrCodeUnknown, int(c))
	}
	return []byte(c.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts names and
// decimal numbers.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryOf derives the category of c.
//
// Registered codes whose name starts with "HTTP_" belong to CategoryHTTP
// regardless of their numeric value. Every other code is classified by its
// thousands digit: 1→VALIDATION, 2→BUSINESS, 3→SECURITY, 4→DATA,
// 5→INTEGRATION, 9→SYSTEM. Unregistered codes in 400..599 are treated as HTTP.
func CategoryOf(c Code) (Category, error) {
	if d, ok := byCode[c]; ok {
		return deriveCategory(d)
	}
	if CategoryHTTP.Contains(int(c)) {
		return CategoryHTTP, nil
	}
	return deriveCategory(Definition{Code: c})
}

// FallbackStatus derives an HTTP status arithmetically from the numeric range
// of c. It is used for codes that carry no explicit status.
//
//	400..599   -> the code itself
//	1000..1999 -> 400
//	2000..2999 -> 422
//	3000..3999 -> 403
//	4000..4999 -> 409
//	5000..5999 -> 502
//	otherwise  -> 500
func FallbackStatus(c Code) int {
	n := int(c)
	switch {
	case n >= 400 && n < 600:
		return n
	case n >= 1000 && n < 2000:
		return 400
	case n >= 2000 && n < 3000:
		return 422
	case n >= 3000 && n < 4000:
		return 403
	case n >= 4000 && n < 5000:
		return 409
	case n >= 5000 && n < 6000:
		return 502
	default:
		return 500
	}
}
