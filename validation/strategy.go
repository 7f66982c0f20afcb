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
	"encoding"
	"fmt"
	"strings"
)

// Strategy selects how a Chained validator reacts to a failing child.
type Strategy uint8

const (
	// FailFast stops at the first invalid child and returns only its errors.
	FailFast Strategy = iota + 1
	// ValidateAll runs every child and concatenates all errors in child order.
	ValidateAll
)

var (
	_ encoding.TextMarshaler   = Strategy(0)
	_ encoding.TextUnmarshaler = (*Strategy)(nil)
)

// String returns "FAIL_FAST" or "VALIDATE_ALL".
func (s Strategy) String() string {
	switch s {
	case FailFast:
		return "FAIL_FAST"
	case ValidateAll:
		return "VALIDATE_ALL"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Valid reports whether s is a declared strategy.
func (s Strategy) Valid() bool {
	return s == FailFast || s == ValidateAll
}

// ParseStrategy accepts "FAIL_FAST", "fail-fast", "validate_all" and similar
// spellings.
func ParseStrategy(s string) (Strategy, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, "-", "_")
	switch n {
	case "FAIL_FAST":
		return FailFast, nil
	case "VALIDATE_ALL":
		return ValidateAll, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
