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
	"maps"
	"slices"
	"strings"
	"time"

	"dirpx.dev/apperr/code"
)

// Attribute keys set by the constructors in this file.
const (
	AttrField            = "field"
	AttrInvalidValue     = "invalidValue"
	AttrReason           = "reason"
	AttrExpectedFormat   = "expectedFormat"
	AttrExample          = "example"
	AttrAllowedValues    = "allowedValues"
	AttrValidationErrors = "validationErrors"
	AttrErrorCount       = "errorCount"
	AttrResourceType     = "resourceType"
	AttrResourceID       = "resourceId"
	AttrValue            = "value"
	AttrIdentifier       = "identifier"
	AttrIdentifiers      = "identifiers"
	AttrCurrentState     = "currentState"
	AttrRequiredState    = "requiredState"
	AttrTargetState      = "targetState"
	AttrEntityType       = "entityType"
	AttrEntityID         = "entityId"
	AttrOperation        = "operation"
	AttrFailedItems      = "failedItems"
	AttrItemErrors       = "itemErrors"
	AttrTotalFailed      = "totalFailed"
	AttrTotalItems       = "totalItems"
	AttrFailedCount      = "failedCount"
	AttrSuccessCount     = "successCount"
	AttrErrors           = "errors"
	AttrServiceName      = "serviceName"
	AttrRetryAfter       = "retryAfter"
)

func raise(c code.Code, k Kind, msg string, attrs map[string]any, opts []Option) *Error {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithKindOption(k), WithAttributesOption(attrs))
	all = append(all, opts...)
	return E(c, msg, all...)
}

// InvalidFormat reports a value that does not follow the expected format.
func InvalidFormat(field, value, expectedFormat string, opts ...Option) *Error {
	return raise(code.ValidationInvalidFormat, KindValidation,
		fmt.Sprintf("Invalid format for field '%s': '%s'. Expected format: %s", field, value, expectedFormat),
		map[string]any{AttrField: field, AttrInvalidValue: value, AttrExpectedFormat: expectedFormat},
		opts)
}

// InvalidFormatExample is InvalidFormat with an example of a valid value.
func InvalidFormatExample(field, value, expectedFormat, example string, opts ...Option) *Error {
	return raise(code.ValidationInvalidFormat, KindValidation,
		fmt.Sprintf("Invalid format for field '%s': '%s'. Expected format: %s (Example: %s)", field, value, expectedFormat, example),
		map[string]any{AttrField: field, AttrInvalidValue: value, AttrExpectedFormat: expectedFormat, AttrExample: example},
		opts)
}

// InvalidInput reports a single rejected value.
func InvalidInput(field string, value any, reason string, opts ...Option) *Error {
	return raise(code.ValidationInvalidParameter, KindValidation,
		fmt.Sprintf("Invalid value '%v' for field '%s': %s", value, field, reason),
		map[string]any{AttrField: field, AttrInvalidValue: value, AttrReason: reason},
		opts)
}

// InvalidInputs reports several rejected fields at once. fieldErrors maps a
// field name to its problem; each entry also becomes a field developer
// message, in field-name order.
func InvalidInputs(fieldErrors map[string]string, opts ...Option) *Error {
	fields := slices.Sorted(maps.Keys(fieldErrors))
	devs := make([]DeveloperMessage, 0, len(fields))
	for _, f := range fields {
		devs = append(devs, FieldMessage(f, fieldErrors[f]))
	}
	all := append([]Option{WithDeveloperMessagesOption(devs...)}, opts...)
	return raise(code.ValidationInvalidParameter, KindValidation,
		"Multiple validation errors occurred",
		map[string]any{AttrValidationErrors: maps.Clone(fieldErrors), AttrErrorCount: len(fieldErrors)},
		all)
}

// InvalidChoice reports a value outside a closed set of allowed values.
func InvalidChoice(field string, value any, allowed []string, opts ...Option) *Error {
	return raise(code.ValidationInvalidParameter, KindValidation,
		fmt.Sprintf("Invalid value '%v' for field '%s'. Allowed values are: %s", value, field, strings.Join(allowed, ", ")),
		map[string]any{AttrField: field, AttrInvalidValue: value, AttrAllowedValues: slices.Clone(allowed)},
		opts)
}

// ResourceNotFound reports a resource missing by id.
func ResourceNotFound(resourceType, id string, opts ...Option) *Error {
	return raise(code.DataNotFound, KindResource,
		fmt.Sprintf("%s with ID '%s' not found", resourceType, id),
		map[string]any{AttrResourceType: resourceType, AttrResourceID: id},
		opts)
}

// ResourceNotFoundBy reports a resource missing by an arbitrary field.
func ResourceNotFoundBy(resourceType, field string, value any, opts ...Option) *Error {
	return raise(code.DataNotFound, KindResource,
		fmt.Sprintf("%s with %s '%v' not found", resourceType, field, value),
		map[string]any{AttrResourceType: resourceType, AttrField: field, AttrValue: value},
		opts)
}

// ResourceAlreadyExists reports a duplicate on a single identifier.
func ResourceAlreadyExists(resourceType, identifier string, opts ...Option) *Error {
	return raise(code.BusinessDuplicateEntry, KindResource,
		fmt.Sprintf("%s already exists with this identifier: %s", resourceType, identifier),
		map[string]any{AttrResourceType: resourceType, AttrIdentifier: identifier},
		opts)
}

// ResourceAlreadyExistsWith reports a duplicate on a set of identifiers.
func ResourceAlreadyExistsWith(resourceType string, identifiers map[string]any, opts ...Option) *Error {
	return raise(code.BusinessDuplicateEntry, KindResource,
		fmt.Sprintf("%s already exists with provided identifiers", resourceType),
		map[string]any{AttrResourceType: resourceType, AttrIdentifiers: maps.Clone(identifiers)},
		opts)
}

// ResourceStateConflict reports a resource that is not in the state an
// operation requires.
func ResourceStateConflict(resourceType, id, currentState, requiredState string, opts ...Option) *Error {
	return raise(code.BusinessInvalidState, KindResource,
		fmt.Sprintf("%s (ID: %s) is in state '%s', but requires state '%s'", resourceType, id, currentState, requiredState),
		map[string]any{
			AttrResourceType:  resourceType,
			AttrResourceID:    id,
			AttrCurrentState:  currentState,
			AttrRequiredState: requiredState,
		},
		opts)
}

// ResourceOperationConflict reports an operation that cannot run in the
// resource's current state.
func ResourceOperationConflict(resourceType, id, currentState, operation, reason string, opts ...Option) *Error {
	return raise(code.BusinessInvalidState, KindResource,
		fmt.Sprintf("Cannot perform '%s' on %s (ID: %s) in state '%s': %s", operation, resourceType, id, currentState, reason),
		map[string]any{
			AttrResourceType: resourceType,
			AttrResourceID:   id,
			AttrCurrentState: currentState,
			AttrOperation:    operation,
			AttrReason:       reason,
		},
		opts)
}

// InvalidStateTransition reports a forbidden state change. reason may be
// empty.
func InvalidStateTransition(entityType, id, from, to, reason string, opts ...Option) *Error {
	msg := fmt.Sprintf("Cannot transition %s (ID: %s) from '%s' to '%s'", entityType, id, from, to)
	attrs := map[string]any{
		AttrEntityType:   entityType,
		AttrEntityID:     id,
		AttrCurrentState: from,
		AttrTargetState:  to,
	}
	if reason != "" {
		msg += ": " + reason
		attrs[AttrReason] = reason
	}
	return raise(code.BusinessInvalidTransition, KindOperation, msg, attrs, opts)
}

// BatchFailed reports the items of a batch that failed, with one error per
// item id.
func BatchFailed(operation string, failedItems []string, itemErrors map[string]string, opts ...Option) *Error {
	return raise(code.BusinessInvalidOperation, KindOperation,
		fmt.Sprintf("Batch operation '%s' failed for %d items", operation, len(failedItems)),
		map[string]any{
			AttrOperation:   operation,
			AttrFailedItems: slices.Clone(failedItems),
			AttrItemErrors:  maps.Clone(itemErrors),
			AttrTotalFailed: len(failedItems),
		},
		opts)
}

// BatchPartiallyFailed reports failed and succeeded counts of a batch.
func BatchPartiallyFailed(operation string, totalItems, failedCount int, errs map[string]string, opts ...Option) *Error {
	return raise(code.BusinessInvalidOperation, KindOperation,
		fmt.Sprintf("Batch operation '%s' failed: %d/%d items failed", operation, failedCount, totalItems),
		map[string]any{
			AttrOperation:    operation,
			AttrTotalItems:   totalItems,
			AttrFailedCount:  failedCount,
			AttrSuccessCount: totalItems - failedCount,
			AttrErrors:       maps.Clone(errs),
		},
		opts)
}

// ProcessingFailed reports an operation that failed for a known reason.
func ProcessingFailed(operation, reason string, opts ...Option) *Error {
	return raise(code.SystemError, KindOperation,
		fmt.Sprintf("Failed to process operation '%s': %s", operation, reason),
		map[string]any{AttrOperation: operation, AttrReason: reason},
		opts)
}

// ProcessingFailedWith reports an operation that failed because of cause.
// The message is the default one; the cause is reachable through Cause and
// never appears in the view.
func ProcessingFailedWith(operation string, cause error, opts ...Option) *Error {
	all := append([]Option{WithCauseOption(cause)}, opts...)
	return raise(code.SystemError, KindOperation, "",
		map[string]any{AttrOperation: operation},
		all)
}

// InternalError reports an unexpected failure caused by cause. Neither the
// text nor the type of cause is copied into the attributes.
func InternalError(operation string, cause error, opts ...Option) *Error {
	all := append([]Option{WithCauseOption(cause)}, opts...)
	return raise(code.HTTPInternalServerError, KindSystem, "",
		map[string]any{AttrOperation: operation},
		all)
}

// Internal reports an unexpected failure with a known reason.
func Internal(operation, reason string, opts ...Option) *Error {
	return raise(code.HTTPInternalServerError, KindSystem,
		fmt.Sprintf("Internal error during '%s': %s", operation, reason),
		map[string]any{AttrOperation: operation, AttrReason: reason},
		opts)
}

// ServiceUnavailable reports a dependency that cannot serve requests.
func ServiceUnavailable(serviceName, reason string, opts ...Option) *Error {
	return raise(code.HTTPServiceUnavailable, KindSystem,
		fmt.Sprintf("Service '%s' is currently unavailable: %s", serviceName, reason),
		map[string]any{AttrServiceName: serviceName, AttrReason: reason},
		opts)
}

// ServiceUnavailableUntil is ServiceUnavailable with a retry time. The
// retryAfter attribute holds a time.Time; transports turn it into a
// Retry-After header or a RetryInfo detail.
func ServiceUnavailableUntil(serviceName, reason string, retryAfter time.Time, opts ...Option) *Error {
	return raise(code.HTTPServiceUnavailable, KindSystem,
		fmt.Sprintf("Service '%s' is temporarily unavailable: %s. Please retry after %s", serviceName, reason, retryAfter.Format(time.RFC3339)),
		map[string]any{AttrServiceName: serviceName, AttrReason: reason, AttrRetryAfter: retryAfter},
		opts)
}

// RetryAfter returns the retryAfter attribute of e, if it holds a time.
func RetryAfter(e *Error) (time.Time, bool) {
	if e == nil {
		return time.Time{}, false
	}
	v, ok := e.Attribute(AttrRetryAfter)
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}
