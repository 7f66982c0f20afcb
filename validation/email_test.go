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
	"testing"

	"dirpx.dev/apperr/code"
)

func TestIsEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"test.name+label@example.com",
		"a_b-c@sub.domain.org",
		"x1@a-b.io",
	}
	for _, s := range valid {
		if !IsEmail(s) {
			t.Fatalf("IsEmail(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"test",
		"@example.com",
		"test@",
		"test@.com",
		"test@domain",
		"test..name@domain.com",
		".test@domain.com",
		"test.@domain.com",
		" test@domain.com",
		"test@domain.com ",
		"test@domain.c",
		"test@domain.c0m",
		"te st@domain.com",
		"test@@domain.com",
		"prefix test@domain.com suffix",
	}
	for _, s := range invalid {
		if IsEmail(s) {
			t.Fatalf("IsEmail(%q) = true, want false", s)
		}
	}
}

func TestEmail_Validator(t *testing.T) {
	v := MustEmail(func(a account) string { return a.Email }, "email")

	if r := v.Validate(account{Email: "test@example.com"}); !r.IsValid() {
		t.Fatalf("valid address rejected: %v", r)
	}

	r := v.Validate(account{Email: "bad"})
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	e, _ := r.First()
	if e.Code() != code.ValidationInvalidEmail {
		t.Fatalf("code = %s", e.Code())
	}
	if e.Message() != "Invalid email format for field email" {
		t.Fatalf("message = %q", e.Message())
	}
	if e.Field() != "email" {
		t.Fatalf("field = %q", e.Field())
	}
}

func TestEmailPtr_Validator(t *testing.T) {
	v, err := EmailPtr(func(a account) *string { return a.Backup }, "backup")
	if err != nil {
		t.Fatalf("EmailPtr: %v", err)
	}

	if r := v.Validate(account{}); r.IsValid() {
		t.Fatalf("nil address must be invalid")
	}
	bad := "nope"
	if r := v.Validate(account{Backup: &bad}); r.IsValid() {
		t.Fatalf("%q must be invalid", bad)
	}
	good := "backup@example.com"
	if r := v.Validate(account{Backup: &good}); !r.IsValid() {
		t.Fatalf("%q must be valid: %v", good, r)
	}
}

func TestEmail_RejectsBlankName(t *testing.T) {
	if _, err := Email(func(a account) string { return a.Email }, " "); err == nil {
		t.Fatalf("Email with blank name must fail")
	}
}
