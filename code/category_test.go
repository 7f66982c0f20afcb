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
	"testing"
)

func TestCategories_RangesAreConsistent(t *testing.T) {
	for _, c := range Categories() {
		if c.Min() >= c.Max() {
			t.Fatalf("%s: min %d >= max %d", c, c.Min(), c.Max())
		}
	}
}

func TestCategories_DoNotOverlap(t *testing.T) {
	cats := Categories()
	for i := range cats {
		for j := range cats {
			if i == j {
				continue
			}
			a, b := cats[i], cats[j]
			if a.Min() <= b.Max() && b.Min() <= a.Max() {
				t.Fatalf("%s [%d,%d] overlaps %s [%d,%d]", a, a.Min(), a.Max(), b, b.Min(), b.Max())
			}
		}
	}
}

func TestCategory_Accessors(t *testing.T) {
	tests := []struct {
		cat   Category
		name  string
		label string
		desc  string
		min   int
		max   int
	}{
		{CategoryHTTP, "HTTP_STANDARD", "HTTP", "HTTP Standard Error", 400, 599},
		{CategoryValidation, "VALIDATION", "VAL", "Validation Error", 1000, 1999},
		{CategoryBusiness, "BUSINESS", "BUS", "Business Error", 2000, 2999},
		{CategorySecurity, "SECURITY", "SEC", "Security Error", 3000, 3999},
		{CategoryData, "DATA", "DATA", "Data Error", 4000, 4999},
		{CategoryIntegration, "INTEGRATION", "INT", "Integration Error", 5000, 5999},
		{CategorySystem, "SYSTEM", "SYS", "System Error", 9000, 9999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cat.String(); got != tt.name {
				t.Fatalf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.cat.Label(); got != tt.label {
				t.Fatalf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.cat.Description(); got != tt.desc {
				t.Fatalf("Description() = %q, want %q", got, tt.desc)
			}
			if tt.cat.Min() != tt.min || tt.cat.Max() != tt.max {
				t.Fatalf("range = [%d,%d], want [%d,%d]", tt.cat.Min(), tt.cat.Max(), tt.min, tt.max)
			}
			if !tt.cat.Contains(tt.min) || !tt.cat.Contains(tt.max) {
				t.Fatalf("range bounds must be inclusive")
			}
			if tt.cat.Contains(tt.min-1) || tt.cat.Contains(tt.max+1) {
				t.Fatalf("Contains must reject values outside the range")
			}
		})
	}
}

func TestCategory_ZeroValue(t *testing.T) {
	var c Category
	if c.Valid() {
		t.Fatalf("zero Category must be invalid")
	}
	if c.Contains(1000) {
		t.Fatalf("zero Category must contain nothing")
	}
	if got := c.String(); got != "Category(0)" {
		t.Fatalf("String() = %q", got)
	}
	if _, err := c.MarshalText(); !errors.Is(err, ErrCategoryUnknown) {
		t.Fatalf("MarshalText() err = %v, want ErrCategoryUnknown", err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"validation", CategoryValidation},
		{"VAL", CategoryValidation},
		{"  sys ", CategorySystem},
		{"http_standard", CategoryHTTP},
		{"http", CategoryHTTP},
		{"data", CategoryData},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if err != nil {
			t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCategory(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseCategory("nope"); !errors.Is(err, ErrCategoryUnknown) {
		t.Fatalf("ParseCategory(nope) err = %v, want ErrCategoryUnknown", err)
	}
}

func TestCategory_TextRoundTrip(t *testing.T) {
	b, err := CategoryIntegration.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var c Category
	if err := c.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", b, err)
	}
	if c != CategoryIntegration {
		t.Fatalf("round trip = %s, want %s", c, CategoryIntegration)
	}
}
