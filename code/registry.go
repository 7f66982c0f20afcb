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
	"errors"
	"fmt"
	"strings"
)

var (
	byCode map[Code]Definition
	byName map[string]Code
)

func init() {
	byCode = make(map[Code]Definition, len(definitions))
	byName = make(map[string]Code, len(definitions))
	for _, d := range definitions {
		byCode[d.Code] = d
		byName[d.Name] = d.Code
	}
	// A broken registry is a programming error; refuse to start.
	if err := Check(); err != nil {
		panic(err)
	}
}

// All returns a copy of every registered definition in catalogue order.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// InCategory returns the definitions that belong to cat, in catalogue order.
func InCategory(cat Category) []Definition {
	var out []Definition
	for _, d := range definitions {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Lookup returns the definition registered under the numeric code n.
func Lookup(n int) (Definition, bool) {
	d, ok := byCode[Code(n)]
	return d, ok
}

// Check runs the exhaustive self-check over the category table and every
// registered code. It returns nil when all invariants hold:
//
//   - every category has Min < Max;
//   - no two category ranges intersect;
//   - no two definitions share a numeric code or a name;
//   - every definition's declared category equals its derived category and
//     that category contains the code;
//   - every explicit status is an HTTP error status in [400, 600).
//
// All violations are reported together, each wrapping ErrRegistryInvalid.
func Check() error {
	return check(definitions)
}

func check(defs []Definition) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrRegistryInvalid, fmt.Sprintf(format, args...)))
	}

	cats := Categories()
	for _, c := range cats {
		if c.Min() >= c.Max() {
			fail("category %s has min %d >= max %d", c, c.Min(), c.Max())
		}
	}
	for i := 0; i < len(cats); i++ {
		for j := i + 1; j < len(cats); j++ {
			a, b := cats[i], cats[j]
			if a.Min() <= b.Max() && b.Min() <= a.Max() {
				fail("categories %s and %s overlap", a, b)
			}
		}
	}

	seenCode := make(map[Code]string, len(defs))
	seenName := make(map[string]Code, len(defs))
	for _, d := range defs {
		if prev, ok := seenCode[d.Code]; ok {
			fail("code %d registered twice (%s, %s)", int(d.Code), prev, d.Name)
		}
		seenCode[d.Code] = d.Name
		if prev, ok := seenName[d.Name]; ok {
			fail("name %s registered twice (%d, %d)", d.Name, int(prev), int(d.Code))
		}
		seenName[d.Name] = d.Code

		derived, err := deriveCategory(d)
		if err != nil {
			fail("%s: %v", d.Name, err)
			continue
		}
		if derived != d.Category {
			fail("%s: declared category %s, derived %s", d.Name, d.Category, derived)
		}
		if !derived.Contains(int(d.Code)) {
			fail("%s: code %d outside category %s [%d, %d]", d.Name, int(d.Code), derived, derived.Min(), derived.Max())
		}
		if d.HTTPStatus != 0 && (d.HTTPStatus < 400 || d.HTTPStatus >= 600) {
			fail("%s: status %d is not an HTTP error status", d.Name, d.HTTPStatus)
		}
	}
	return errors.Join(errs...)
}

// deriveCategory applies the CategoryOf rule to a definition that may not be
// registered (used by check on arbitrary tables).
func deriveCategory(d Definition) (Category, error) {
	if strings.HasPrefix(d.Name, httpPrefix) {
		return CategoryHTTP, nil
	}
	if d.Code > 0 {
		if cat, ok := thousands[int(d.Code)/1000]; ok {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("%w: no category for code %d", ErrCategoryUnknown, int(d.Code))
}

// Discrepancy describes a registered code whose explicit status differs from
// the arithmetic FallbackStatus derivation.
type Discrepancy struct {
	Definition Definition
	Fallback   int
}

// Discrepancies lists every registered code whose explicit status disagrees
// with FallbackStatus. The explicit status stays authoritative; this exists so
// tooling can surface the difference instead of hiding it.
func Discrepancies() []Discrepancy {
	var out []Discrepancy
	for _, d := range definitions {
		if fb := FallbackStatus(d.Code); d.HTTPStatus != 0 && fb != d.HTTPStatus {
			out = append(out, Discrepancy{Definition: d, Fallback: fb})
		}
	}
	return out
}
