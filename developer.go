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
	"fmt"
	"strings"
	"time"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
)

// FieldValidationCode is the developer message code used by FieldMessage.
const FieldValidationCode = "FIELD_VALIDATION_ERROR"

// DeveloperMessage is a supplementary message aimed at the developers of an
// API client: which field was wrong, which internal code applies, what to do.
// It is a value; WithDetail returns a modified copy.
type DeveloperMessage struct {
	Code      string
	Message   string
	Field     string
	Detail    string
	Timestamp time.Time
}

// NewDeveloperMessage builds a message with an arbitrary code string.
func NewDeveloperMessage(codeName, message string) DeveloperMessage {
	return DeveloperMessage{Code: codeName, Message: message, Timestamp: now()}
}

// DeveloperMessageFor builds a message for a registered code. An empty
// message falls back to the default message of c.
func DeveloperMessageFor(c code.Code, message string) DeveloperMessage {
	if message == "" {
		message = c.Message()
	}
	return NewDeveloperMessage(c.Name(), message)
}

// FieldMessage builds a FIELD_VALIDATION_ERROR message bound to field.
func FieldMessage(field, message string) DeveloperMessage {
	m := NewDeveloperMessage(FieldValidationCode, message)
	m.Field = field
	return m
}

// WithField returns a copy bound to field.
func (m DeveloperMessage) WithField(field string) DeveloperMessage {
	m.Field = field
	return m
}

// WithDetail returns a copy carrying a longer developer-oriented explanation.
func (m DeveloperMessage) WithDetail(detail string) DeveloperMessage {
	m.Detail = detail
	return m
}

// String renders "message (Field: f) - detail [Code: c]", omitting the parts
// that are empty.
func (m DeveloperMessage) String() string {
	var b strings.Builder
	b.WriteString(m.Message)
	if m.Field != "" {
		fmt.Fprintf(&b, " (Field: %s)", m.Field)
	}
	if m.Detail != "" {
		fmt.Fprintf(&b, " - %s", m.Detail)
	}
	fmt.Fprintf(&b, " [Code: %s]", m.Code)
	return b.String()
}

func (m DeveloperMessage) view() apis.DeveloperMessage {
	return apis.DeveloperMessage{
		Code:      m.Code,
		Message:   m.Message,
		Field:     m.Field,
		Detail:    m.Detail,
		Timestamp: m.Timestamp,
	}
}
