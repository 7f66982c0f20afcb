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

package apperr

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"dirpx.dev/apperr/code"
)

func TestConstructors(t *testing.T) {
	retry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cause := errors.New("connection reset")

	tests := []struct {
		name  string
		err   *Error
		code  code.Code
		kind  Kind
		msg   string
		attrs map[string]any
	}{
		{
			"invalid format", InvalidFormat("birthDate", "31/12", "yyyy-MM-dd"),
			code.ValidationInvalidFormat, KindValidation,
			"Invalid format for field 'birthDate': '31/12'. Expected format: yyyy-MM-dd",
			map[string]any{AttrField: "birthDate", AttrInvalidValue: "31/12", AttrExpectedFormat: "yyyy-MM-dd"},
		},
		{
			"invalid format with example", InvalidFormatExample("birthDate", "31/12", "yyyy-MM-dd", "1990-01-31"),
			code.ValidationInvalidFormat, KindValidation,
			"Invalid format for field 'birthDate': '31/12'. Expected format: yyyy-MM-dd (Example: 1990-01-31)",
			map[string]any{AttrField: "birthDate", AttrInvalidValue: "31/12", AttrExpectedFormat: "yyyy-MM-dd", AttrExample: "1990-01-31"},
		},
		{
			"invalid input", InvalidInput("age", -1, "must be positive"),
			code.ValidationInvalidParameter, KindValidation,
			"Invalid value '-1' for field 'age': must be positive",
			map[string]any{AttrField: "age", AttrInvalidValue: -1, AttrReason: "must be positive"},
		},
		{
			"invalid choice", InvalidChoice("plan", "gold", []string{"free", "pro"}),
			code.ValidationInvalidParameter, KindValidation,
			"Invalid value 'gold' for field 'plan'. Allowed values are: free, pro",
			map[string]any{AttrField: "plan", AttrInvalidValue: "gold", AttrAllowedValues: []string{"free", "pro"}},
		},
		{
			"not found", ResourceNotFound("User", "42"),
			code.DataNotFound, KindResource,
			"User with ID '42' not found",
			map[string]any{AttrResourceType: "User", AttrResourceID: "42"},
		},
		{
			"not found by", ResourceNotFoundBy("User", "email", "a@b.io"),
			code.DataNotFound, KindResource,
			"User with email 'a@b.io' not found",
			map[string]any{AttrResourceType: "User", AttrField: "email", AttrValue: "a@b.io"},
		},
		{
			"already exists", ResourceAlreadyExists("User", "a@b.io"),
			code.BusinessDuplicateEntry, KindResource,
			"User already exists with this identifier: a@b.io",
			map[string]any{AttrResourceType: "User", AttrIdentifier: "a@b.io"},
		},
		{
			"already exists with", ResourceAlreadyExistsWith("Account", map[string]any{"iban": "DE00"}),
			code.BusinessDuplicateEntry, KindResource,
			"Account already exists with provided identifiers",
			map[string]any{AttrResourceType: "Account", AttrIdentifiers: map[string]any{"iban": "DE00"}},
		},
		{
			"state conflict", ResourceStateConflict("Order", "7", "CANCELLED", "OPEN"),
			code.BusinessInvalidState, KindResource,
			"Order (ID: 7) is in state 'CANCELLED', but requires state 'OPEN'",
			map[string]any{AttrResourceType: "Order", AttrResourceID: "7", AttrCurrentState: "CANCELLED", AttrRequiredState: "OPEN"},
		},
		{
			"operation conflict", ResourceOperationConflict("Order", "7", "SHIPPED", "cancel", "already left the warehouse"),
			code.BusinessInvalidState, KindResource,
			"Cannot perform 'cancel' on Order (ID: 7) in state 'SHIPPED': already left the warehouse",
			map[string]any{AttrResourceType: "Order", AttrResourceID: "7", AttrCurrentState: "SHIPPED", AttrOperation: "cancel", AttrReason: "already left the warehouse"},
		},
		{
			"transition", InvalidStateTransition("Order", "7", "SHIPPED", "PENDING", ""),
			code.BusinessInvalidTransition, KindOperation,
			"Cannot transition Order (ID: 7) from 'SHIPPED' to 'PENDING'",
			map[string]any{AttrEntityType: "Order", AttrEntityID: "7", AttrCurrentState: "SHIPPED", AttrTargetState: "PENDING"},
		},
		{
			"transition with reason", InvalidStateTransition("Order", "7", "SHIPPED", "PENDING", "no way back"),
			code.BusinessInvalidTransition, KindOperation,
			"Cannot transition Order (ID: 7) from 'SHIPPED' to 'PENDING': no way back",
			map[string]any{AttrEntityType: "Order", AttrEntityID: "7", AttrCurrentState: "SHIPPED", AttrTargetState: "PENDING", AttrReason: "no way back"},
		},
		{
			"batch", BatchFailed("import", []string{"a", "b"}, map[string]string{"a": "dup", "b": "bad"}),
			code.BusinessInvalidOperation, KindOperation,
			"Batch operation 'import' failed for 2 items",
			map[string]any{AttrOperation: "import", AttrFailedItems: []string{"a", "b"}, AttrItemErrors: map[string]string{"a": "dup", "b": "bad"}, AttrTotalFailed: 2},
		},
		{
			"batch partial", BatchPartiallyFailed("import", 10, 3, map[string]string{"x": "bad"}),
			code.BusinessInvalidOperation, KindOperation,
			"Batch operation 'import' failed: 3/10 items failed",
			map[string]any{AttrOperation: "import", AttrTotalItems: 10, AttrFailedCount: 3, AttrSuccessCount: 7, AttrErrors: map[string]string{"x": "bad"}},
		},
		{
			"processing", ProcessingFailed("invoice", "template missing"),
			code.SystemError, KindOperation,
			"Failed to process operation 'invoice': template missing",
			map[string]any{AttrOperation: "invoice", AttrReason: "template missing"},
		},
		{
			"processing with cause", ProcessingFailedWith("invoice", cause),
			code.SystemError, KindOperation,
			code.SystemError.Message(),
			map[string]any{AttrOperation: "invoice"},
		},
		{
			"internal with cause", InternalError("decode", cause),
			code.HTTPInternalServerError, KindSystem,
			code.HTTPInternalServerError.Message(),
			map[string]any{AttrOperation: "decode"},
		},
		{
			"internal", Internal("decode", "unexpected tag"),
			code.HTTPInternalServerError, KindSystem,
			"Internal error during 'decode': unexpected tag",
			map[string]any{AttrOperation: "decode", AttrReason: "unexpected tag"},
		},
		{
			"unavailable", ServiceUnavailable("billing", "circuit open"),
			code.HTTPServiceUnavailable, KindSystem,
			"Service 'billing' is currently unavailable: circuit open",
			map[string]any{AttrServiceName: "billing", AttrReason: "circuit open"},
		},
		{
			"unavailable until", ServiceUnavailableUntil("billing", "maintenance", retry),
			code.HTTPServiceUnavailable, KindSystem,
			"Service 'billing' is temporarily unavailable: maintenance. Please retry after 2025-06-01T12:00:00Z",
			map[string]any{AttrServiceName: "billing", AttrReason: "maintenance", AttrRetryAfter: retry},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Fatalf("Code() = %s, want %s", tt.err.Code(), tt.code)
			}
			if tt.err.Kind() != tt.kind {
				t.Fatalf("Kind() = %s, want %s", tt.err.Kind(), tt.kind)
			}
			if tt.err.Message() != tt.msg {
				t.Fatalf("Message() = %q\nwant %q", tt.err.Message(), tt.msg)
			}
			if !reflect.DeepEqual(tt.err.Attributes(), tt.attrs) {
				t.Fatalf("Attributes() = %#v\nwant %#v", tt.err.Attributes(), tt.attrs)
			}
		})
	}
}

func TestConstructors_CauseStaysServerSide(t *testing.T) {
	cause := errors.New("pq: password authentication failed for user admin@10.0.0.5")
	for _, e := range []*Error{
		InternalError("save", cause),
		ProcessingFailedWith("save", cause),
	} {
		if !errors.Is(e, cause) {
			t.Fatalf("%s: cause must stay reachable", e.Code())
		}
		body, err := json.Marshal(e.ErrorView())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(body), "password") || strings.Contains(string(body), "errorString") {
			t.Fatalf("%s: view leaks the cause: %s", e.Code(), body)
		}
	}
}

func TestConstructors_CopyInputs(t *testing.T) {
	items := []string{"a"}
	errs := map[string]string{"a": "dup"}
	e := BatchFailed("import", items, errs)
	items[0] = "z"
	errs["a"] = "changed"

	got, _ := e.Attribute(AttrFailedItems)
	if got.([]string)[0] != "a" {
		t.Fatalf("failedItems must be copied")
	}
	gotErrs, _ := e.Attribute(AttrItemErrors)
	if gotErrs.(map[string]string)["a"] != "dup" {
		t.Fatalf("itemErrors must be copied")
	}
}

func TestConstructors_AcceptOptions(t *testing.T) {
	e := ResourceNotFound("User", "42", WithPathOption("/users/42"), WithAttributeOption(AttrResourceID, "override"))
	if e.Path() != "/users/42" {
		t.Fatalf("Path() = %q", e.Path())
	}
	if v, _ := e.Attribute(AttrResourceID); v != "override" {
		t.Fatalf("caller options must apply after the constructor's attributes, got %v", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	e := InvalidInputs(map[string]string{"name": "required", "email": "malformed"})
	if e.Message() != "Multiple validation errors occurred" {
		t.Fatalf("Message() = %q", e.Message())
	}
	if n, _ := e.Attribute(AttrErrorCount); n != 2 {
		t.Fatalf("errorCount = %v", n)
	}
	devs := e.DeveloperMessages()
	if len(devs) != 2 || devs[0].Field != "email" || devs[1].Field != "name" {
		t.Fatalf("developer messages = %+v, want sorted by field", devs)
	}
	if devs[0].Code != FieldValidationCode || devs[0].Message != "malformed" {
		t.Fatalf("developer message = %+v", devs[0])
	}
}

func TestRetryAfter(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got, ok := RetryAfter(ServiceUnavailableUntil("s", "r", at)); !ok || !got.Equal(at) {
		t.Fatalf("RetryAfter = %v, %v", got, ok)
	}
	if _, ok := RetryAfter(ServiceUnavailable("s", "r")); ok {
		t.Fatalf("RetryAfter without attribute must miss")
	}
	if _, ok := RetryAfter(nil); ok {
		t.Fatalf("RetryAfter(nil) must miss")
	}
}
