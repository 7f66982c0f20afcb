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

// Package apperr provides the structured application error used across a
// backend: a registered code, a human message, a diagnostic context and
// optional developer messages, all immutable after construction.
//
// # Raising errors
//
// Most call sites use one of the condition constructors:
//
//	return apperr.ResourceNotFound("User", id)
//	return apperr.InvalidStateTransition("Order", id, "SHIPPED", "PENDING", "")
//	return apperr.ServiceUnavailableUntil("billing", "maintenance", until)
//
// Anything else is raised from a code directly:
//
//	return apperr.E(code.DataStale, "order was modified concurrently",
//	    apperr.WithAttributeOption("orderId", id),
//	)
//
// Validation results translate with FromValidation, which returns nil for
// valid results.
//
// # Context
//
// NewContext captures the request path, the OpenTelemetry trace id and a
// timestamp; WithContextOption attaches it. Attributes are diagnostic data for
// logs and, at the renderer's discretion, for clients.
//
// # Immutability
//
// Every WithX method returns a new *Error. The client-facing view
// (apis.ErrorView) is built when the value is created and never changes. The
// wrapped cause is reachable through errors.Unwrap but never appears in the
// view.
//
// # Kinds
//
// Kind is a closed enumeration of error families (validation, resource,
// operation, system, generic). A renderer can switch over Kinds() to pick
// defaults; constructors set the kind explicitly.
package apperr
