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

package apis

import "time"

// Detail is one structured piece of information attached to an error, small
// enough to survive JSON and protobuf round-trips.
type Detail struct {
	// Type is a short classifier such as "field" or "attribute".
	Type string `json:"type,omitempty"`

	// Field is the path of the failing field, e.g. "address.city".
	Field string `json:"field,omitempty"`

	// Reason is the symbolic code name of the failure, e.g.
	// "VALIDATION_INVALID_EMAIL".
	Reason string `json:"reason,omitempty"`

	// Description is the human message of this particular failure.
	Description string `json:"description,omitempty"`

	// Info carries extra string data such as allowed values or limits.
	Info map[string]string `json:"info,omitempty"`
}

// DeveloperMessage is the wire form of a supplementary message aimed at API
// consumers' developers rather than end users.
type DeveloperMessage struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
	Detail    string    `json:"developerMessage,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
