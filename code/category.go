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
	"fmt"
	"strings"
)

// Category is a named, closed numeric range that groups related codes.
//
// The set of categories is fixed at compile time. Every registered Code
// belongs to exactly one Category and the ranges of distinct categories never
// intersect (see Check).
type Category uint8

const (
	// CategoryHTTP mirrors raw HTTP 4xx/5xx semantics (400..599).
	CategoryHTTP Category = iota + 1
	// CategoryValidation covers malformed, missing or invalid input (1000..1999).
	CategoryValidation
	// CategoryBusiness covers invalid state, transitions, duplicates and rule
	// violations (2000..2999).
	CategoryBusiness
	// CategorySecurity covers authentication, token and permission failures
	// (3000..3999).
	CategorySecurity
	// CategoryData covers integrity, staleness and not-found conditions
	// (4000..4999).
	CategoryData
	// CategoryIntegration covers external dependency failures and timeouts
	// (5000..5999).
	CategoryIntegration
	// CategorySystem covers internal, configuration and resource exhaustion
	// failures (9000..9999).
	CategorySystem
)

type categoryInfo struct {
	name        string
	label       string
	description string
	min, max    int
}

// categories is indexed by Category. Index 0 is the invalid zero value.
var categories = [...]categoryInfo{
	{},
	CategoryHTTP:        {"HTTP_STANDARD", "HTTP", "HTTP Standard Error", 400, 599},
	CategoryValidation:  {"VALIDATION", "VAL", "Validation Error", 1000, 1999},
	CategoryBusiness:    {"BUSINESS", "BUS", "Business Error", 2000, 2999},
	CategorySecurity:    {"SECURITY", "SEC", "Security Error", 3000, 3999},
	CategoryData:        {"DATA", "DATA", "Data Error", 4000, 4999},
	CategoryIntegration: {"INTEGRATION", "INT", "Integration Error", 5000, 5999},
	CategorySystem:      {"SYSTEM", "SYS", "System Error", 9000, 9999},
}

// thousands maps floor(code/1000) to the category owning that block.
// HTTP codes are excluded: they are recognised by the "HTTP_" name prefix.
var thousands = map[int]Category{
	1: CategoryValidation,
	2: CategoryBusiness,
	3: CategorySecurity,
	4: CategoryData,
	5: CategoryIntegration,
	9: CategorySystem,
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categories)-1)
	for i := 1; i < len(categories); i++ {
		out = append(out, Category(i))
	}
	return out
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c > 0 && int(c) < len(categories)
}

// String returns the upper-case category name, e.g. "VALIDATION".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categories[c].name
}

// Label returns the short category label used in log lines, e.g. "VAL".
func (c Category) Label() string {
	if !c.Valid() {
		return ""
	}
	return categories[c].label
}

// Description returns the human label rendered as the "error" field of an
// error response, e.g. "Validation Error".
func (c Category) Description() string {
	if !c.Valid() {
		return ""
	}
	return categories[c].description
}

// Min returns the inclusive lower bound of the category range.
func (c Category) Min() int {
	if !c.Valid() {
		return 0
	}
	return categories[c].min
}

// Max returns the inclusive upper bound of the category range.
func (c Category) Max() int {
	if !c.Valid() {
		return 0
	}
	return categories[c].max
}

// Contains reports whether the numeric code n lies inside [Min, Max].
func (c Category) Contains(n int) bool {
	return c.Valid() && n >= categories[c].min && n <= categories[c].max
}

// ParseCategory resolves a category by name or label, case-insensitively.
// Both "validation" and "VAL" resolve to CategoryValidation.
func ParseCategory(s string) (Category, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i := 1; i < len(categories); i++ {
		if categories[i].name == s || categories[i].label == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrCategoryUnknown, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrCategoryUnknown, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
