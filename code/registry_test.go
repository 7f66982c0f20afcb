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
	"strings"
	"testing"
)

func TestCheck_RegistryIsConsistent(t *testing.T) {
	if err := Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}
}

func TestRegistry_ExhaustiveContainment(t *testing.T) {
	for _, d := range All() {
		cat, err := CategoryOf(d.Code)
		if err != nil {
			t.Fatalf("%s: %v", d.Name, err)
		}
		if !cat.Contains(int(d.Code)) {
			t.Fatalf("%s: %d not contained in %s", d.Name, int(d.Code), cat)
		}
		if cat != d.Category {
			t.Fatalf("%s: derived %s, declared %s", d.Name, cat, d.Category)
		}
	}
}

func TestRegistry_UniqueCodesAndNames(t *testing.T) {
	codes := map[Code]bool{}
	names := map[string]bool{}
	for _, d := range All() {
		if codes[d.Code] {
			t.Fatalf("duplicate code %d", int(d.Code))
		}
		if names[d.Name] {
			t.Fatalf("duplicate name %s", d.Name)
		}
		codes[d.Code] = true
		names[d.Name] = true
	}
}

func TestRegistry_Counts(t *testing.T) {
	want := map[Category]int{
		CategoryHTTP:        18,
		CategoryValidation:  9,
		CategoryBusiness:    6,
		CategorySecurity:    7,
		CategoryData:        7,
		CategoryIntegration: 5,
		CategorySystem:      5,
	}
	total := 0
	for cat, n := range want {
		if got := len(InCategory(cat)); got != n {
			t.Fatalf("InCategory(%s) = %d entries, want %d", cat, got, n)
		}
		total += n
	}
	if got := len(All()); got != total {
		t.Fatalf("All() = %d entries, want %d", got, total)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "MUTATED"
	if All()[0].Name == "MUTATED" {
		t.Fatalf("All must return a copy")
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup(4003)
	if !ok || d.Name != "DATA_NOT_FOUND" {
		t.Fatalf("Lookup(4003) = %+v, %v", d, ok)
	}
	if _, ok := Lookup(4999); ok {
		t.Fatalf("Lookup(4999) must miss")
	}
}

func TestCheck_ReportsEveryViolation(t *testing.T) {
	bad := []Definition{
		{Name: "VALIDATION_A", Code: 1000, Category: CategoryValidation, HTTPStatus: 400},
		{Name: "VALIDATION_B", Code: 1000, Category: CategoryValidation, HTTPStatus: 400},
		{Name: "VALIDATION_A", Code: 1001, Category: CategoryValidation, HTTPStatus: 400},
		{Name: "BUSINESS_WRONG", Code: 2001, Category: CategoryData, HTTPStatus: 409},
		{Name: "HTTP_FAKE", Code: 1234, Category: CategoryHTTP, HTTPStatus: 400},
		{Name: "ORPHAN", Code: 7000, Category: CategorySystem, HTTPStatus: 500},
		{Name: "SYSTEM_OK_STATUS", Code: 9100, Category: CategorySystem, HTTPStatus: 200},
	}
	err := check(bad)
	if err == nil {
		t.Fatalf("check(bad) = nil, want error")
	}
	if !errors.Is(err, ErrRegistryInvalid) {
		t.Fatalf("check(bad) must wrap ErrRegistryInvalid: %v", err)
	}
	msg := err.Error()
	for _, want := range []string{
		"code 1000 registered twice",
		"name VALIDATION_A registered twice",
		"BUSINESS_WRONG: declared category DATA, derived BUSINESS",
		"HTTP_FAKE: code 1234 outside category HTTP_STANDARD",
		"ORPHAN:",
		"SYSTEM_OK_STATUS: status 200",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("check(bad) missing %q in:\n%s", want, msg)
		}
	}
}

func TestDiscrepancies(t *testing.T) {
	ds := Discrepancies()
	if len(ds) == 0 {
		t.Fatalf("expected the explicit and arithmetic rules to disagree somewhere")
	}
	found := false
	for _, d := range ds {
		if d.Definition.HTTPStatus == d.Fallback {
			t.Fatalf("%s listed although statuses agree", d.Definition.Name)
		}
		if d.Definition.Code == BusinessDuplicateEntry {
			found = true
			if d.Definition.HTTPStatus != 409 || d.Fallback != 422 {
				t.Fatalf("BUSINESS_DUPLICATE_ENTRY = %d vs %d", d.Definition.HTTPStatus, d.Fallback)
			}
		}
	}
	if !found {
		t.Fatalf("BUSINESS_DUPLICATE_ENTRY must be reported")
	}
	// The explicit status is still the one returned.
	if BusinessDuplicateEntry.HTTPStatus() != 409 {
		t.Fatalf("explicit status must stay authoritative")
	}
}
