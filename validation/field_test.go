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
	"bytes"
	"errors"
	"testing"

	"dirpx.dev/apperr/code"
)

type account struct {
	Name    string
	Email   string
	Backup  *string
	Tags    []string
	Labels  map[string]string
	Note    *string
	Profile *profile
}

type profile struct {
	Bio string
}

func TestNewField_RejectsProgrammerErrors(t *testing.T) {
	ok := func(string, string) Result { return Valid() }
	extract := func(a account) string { return a.Name }

	tests := []struct {
		name    string
		extract func(account) string
		field   string
		check   Check[string]
	}{
		{"nil extractor", nil, "name", ok},
		{"empty name", extract, "", ok},
		{"blank name", extract, "   ", ok},
		{"nil check", extract, "name", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewField(tt.extract, tt.field, tt.check)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
			if f != nil {
				t.Fatalf("validator must be nil on error")
			}
		})
	}
}

func TestMustField_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustField must panic on a nil extractor")
		}
	}()
	MustField[account, string](nil, "name", func(string, string) Result { return Valid() })
}

func TestField_PassesNameAndValue(t *testing.T) {
	var gotName, gotValue string
	f := MustField(func(a account) string { return a.Name }, "name", func(n, v string) Result {
		gotName, gotValue = n, v
		return Valid()
	})
	if f.Name() != "name" {
		t.Fatalf("Name() = %q", f.Name())
	}
	if r := f.Validate(account{Name: "ada"}); !r.IsValid() {
		t.Fatalf("Validate = %v", r)
	}
	if gotName != "name" || gotValue != "ada" {
		t.Fatalf("check saw (%q, %q)", gotName, gotValue)
	}
}

func TestField_ExtractorPanicPropagates(t *testing.T) {
	f := MustRequired(func(a *account) string { return a.Profile.Bio }, "bio")
	defer func() {
		if recover() == nil {
			t.Fatalf("a panic in the extractor must reach the caller")
		}
	}()
	f.Validate(&account{})
}

func TestRequired_Boundaries(t *testing.T) {
	str := func(s string) Result {
		return MustRequired(func(v string) string { return v }, "f").Validate(s)
	}
	list := func(l []string) Result {
		return MustRequired(func(v []string) []string { return v }, "f").Validate(l)
	}
	dict := func(m map[string]string) Result {
		return MustRequired(func(v map[string]string) map[string]string { return v }, "f").Validate(m)
	}
	ptr := func(p *string) Result {
		return MustRequired(func(v *string) *string { return v }, "f").Validate(p)
	}
	x := "x"
	blank := "  "

	invalid := map[string]Result{
		"nil pointer":  ptr(nil),
		"empty string": str(""),
		"blank string": str("   "),
		"nil list":     list(nil),
		"empty list":   list([]string{}),
		"nil map":      dict(nil),
		"empty map":    dict(map[string]string{}),
		"ptr to blank": ptr(&blank),
	}
	for name, r := range invalid {
		if r.IsValid() {
			t.Fatalf("%s: expected invalid", name)
		}
		e, _ := r.First()
		if e.Code() != code.ValidationMissingField {
			t.Fatalf("%s: code = %s", name, e.Code())
		}
		if e.Message() != "Field 'f' is required" || e.Field() != "f" {
			t.Fatalf("%s: error = %v (field %q)", name, e, e.Field())
		}
	}

	valid := map[string]Result{
		"text":        str("x"),
		"list":        list([]string{"x"}),
		"map":         dict(map[string]string{"k": "v"}),
		"ptr to text": ptr(&x),
	}
	for name, r := range valid {
		if !r.IsValid() {
			t.Fatalf("%s: expected valid, got %v", name, r)
		}
	}
}

type set map[string]struct{}

type counter struct{ n int }

func (c *counter) Len() int { return c.n }

func TestIsEmpty(t *testing.T) {
	var nilIface error
	var nilCounter *counter
	var nilFunc func()
	s := "text"

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, true},
		{"nil interface", nilIface, true},
		{"nil pointer", (*int)(nil), true},
		{"nil Len implementer", nilCounter, true},
		{"nil func", nilFunc, true},
		{"empty string", "", true},
		{"tabs and newlines", "\t\n ", true},
		{"empty array", [0]int{}, true},
		{"empty named map", set{}, true},
		{"empty buffer", &bytes.Buffer{}, true},
		{"Len zero", &counter{}, true},
		{"pointer to empty slice", &[]int{}, true},

		{"text", "x", false},
		{"pointer to text", &s, false},
		{"array", [1]int{}, false},
		{"named map", set{"a": {}}, false},
		{"buffer", bytes.NewBufferString("x"), false},
		{"Len positive", &counter{n: 2}, false},
		{"zero int", 0, false},
		{"false", false, false},
		{"struct", profile{}, false},
		{"func", func() {}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.in); got != tt.want {
				t.Fatalf("IsEmpty(%#v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
