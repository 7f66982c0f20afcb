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

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_Commands(t *testing.T) {
	want := map[string]bool{"list": false, "check": false, "explain": false}
	for _, c := range NewRootCommand().Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("%s command not registered", name)
		}
	}
}

func TestList_Table(t *testing.T) {
	out, err := run(t, "list", "--category", "SEC")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+len(code.InCategory(code.CategorySecurity)) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "CODE") || !strings.Contains(lines[1], "SECURITY_TOKEN_EXPIRED") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if !strings.Contains(lines[1], "Unauthenticated") {
		t.Fatalf("gRPC column missing:\n%s", out)
	}
}

func TestList_JSON(t *testing.T) {
	out, err := run(t, "list", "--format", "json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var ds []apis.ErrorDescriptor
	if err := json.Unmarshal([]byte(out), &ds); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(ds) != len(code.All()) {
		t.Fatalf("got %d entries, want %d", len(ds), len(code.All()))
	}
	if ds[0].Name != "HTTP_BAD_REQUEST" || ds[0].HTTPStatus != 400 {
		t.Fatalf("first entry = %+v", ds[0])
	}
}

func TestList_YAML(t *testing.T) {
	out, err := run(t, "list", "--category", "data", "--format", "yaml")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var ds []apis.ErrorDescriptor
	if err := yaml.Unmarshal([]byte(out), &ds); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(ds) != 7 || ds[3].Name != "DATA_NOT_FOUND" || ds[3].HTTPStatus != 404 {
		t.Fatalf("entries = %+v", ds)
	}
}

func TestList_Errors(t *testing.T) {
	if _, err := run(t, "list", "--category", "misc"); err == nil {
		t.Fatalf("unknown category must fail")
	}
	if _, err := run(t, "list", "--format", "xml"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("unknown format must fail, got %v", err)
	}
}

func TestList_Config(t *testing.T) {
	p := filepath.Join(t.TempDir(), "apperr.yaml")
	body := "status:\n  http:\n    BUSINESS_DUPLICATE_ENTRY: 422\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "list", "--category", "business", "--format", "json", "--config", p)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var ds []apis.ErrorDescriptor
	if err := json.Unmarshal([]byte(out), &ds); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ds[0].Name != "BUSINESS_DUPLICATE_ENTRY" || ds[0].HTTPStatus != 422 {
		t.Fatalf("override not applied: %+v", ds[0])
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	want := fmt.Sprintf("registry OK: %d codes in 7 categories", len(code.All()))
	if !strings.Contains(out, want) {
		t.Fatalf("output = %q, want %q", out, want)
	}
	if strings.Contains(out, "warning:") {
		t.Fatalf("warnings are listed only with --strict:\n%s", out)
	}
}

func TestCheck_Strict(t *testing.T) {
	out, err := run(t, "check", "--strict")
	if err != nil {
		t.Fatalf("check --strict: %v", err)
	}
	if n := strings.Count(out, "warning:"); n != len(code.Discrepancies()) {
		t.Fatalf("got %d warnings, want %d:\n%s", n, len(code.Discrepancies()), out)
	}
	if !strings.Contains(out, "warning: BUSINESS_DUPLICATE_ENTRY (2000) status 409 differs from range fallback 422") {
		t.Fatalf("missing duplicate-entry warning:\n%s", out)
	}
}

func TestExplain(t *testing.T) {
	out, err := run(t, "explain", "data-not-found")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	for _, frag := range []string{
		`code="DATA_NOT_FOUND" value=4003 category="DATA"`,
		"http: source=registry -> 404",
		"grpc: source=http status=404 -> NOT_FOUND(5)",
		"message: Required data was not found",
	} {
		if !strings.Contains(out, frag) {
			t.Fatalf("output missing %q:\n%s", frag, out)
		}
	}
}

func TestExplain_Errors(t *testing.T) {
	if _, err := run(t, "explain"); err == nil {
		t.Fatalf("explain without CODE must fail")
	}
	if _, err := run(t, "explain", "NO_SUCH_CODE"); err == nil {
		t.Fatalf("unknown code must fail")
	}
	if _, err := run(t, "explain", "1000", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing config must fail")
	}
}
