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

import "net/http"

// HTTP standard codes (4xx, 5xx).
//
// These mirror raw HTTP semantics and are used when no domain-specific code
// applies, e.g. at a gateway or for framework-level failures.
const (
	HTTPBadRequest          Code = 400
	HTTPUnauthorized        Code = 401
	HTTPForbidden           Code = 403
	HTTPNotFound            Code = 404
	HTTPMethodNotAllowed    Code = 405
	HTTPNotAcceptable       Code = 406
	HTTPResourceConflict    Code = 409
	HTTPPreconditionFailed  Code = 412
	HTTPPayloadTooLarge     Code = 413
	HTTPUnsupportedMedia    Code = 415
	HTTPUnprocessableEntity Code = 422
	HTTPResourceLocked      Code = 423
	HTTPRateLimitExceeded   Code = 429
	HTTPInternalServerError Code = 500
	HTTPNotImplemented      Code = 501
	HTTPBadGateway          Code = 502
	HTTPServiceUnavailable  Code = 503
	HTTPGatewayTimeout      Code = 504
)

// Validation codes (1xxx).
//
// Validators in dirpx.dev/apperr/validation report through these codes.
const (
	ValidationError            Code = 1000
	ValidationRequiredField    Code = 1001
	ValidationMissingField     Code = 1002
	ValidationInvalidEmail     Code = 1003
	ValidationInvalidPhone     Code = 1004
	ValidationInvalidDate      Code = 1005
	ValidationInvalidFormat    Code = 1006
	ValidationInvalidParameter Code = 1007
	ValidationMalformedRequest Code = 1008
)

// Business codes (2xxx).
const (
	BusinessDuplicateEntry    Code = 2000
	BusinessInvalidState      Code = 2001
	BusinessInvalidOperation  Code = 2002
	BusinessInvalidTransition Code = 2003
	BusinessExpiredResource   Code = 2004
	BusinessRuleViolation     Code = 2005
)

// Security codes (3xxx).
const (
	SecurityTokenExpired            Code = 3000
	SecurityInvalidCredentials      Code = 3001
	SecurityAccountLocked           Code = 3002
	SecurityInvalidToken            Code = 3003
	SecurityPasswordExpired         Code = 3004
	SecurityInsufficientPermissions Code = 3005
	SecurityInvalid2FACode          Code = 3006
)

// Data codes (4xxx).
const (
	DataIntegrityError     Code = 4000
	DataIntegrityViolation Code = 4001
	DataStale              Code = 4002
	DataNotFound           Code = 4003
	DataAlreadyExists      Code = 4004
	DataCorrupted          Code = 4005
	DataInvalidReference   Code = 4006
)

// Integration codes (5xxx).
const (
	IntegrationExternalServiceError Code = 5000
	IntegrationTimeout              Code = 5001
	IntegrationInvalidResponse      Code = 5002
	IntegrationServiceUnavailable   Code = 5003
	IntegrationAPILimitExceeded     Code = 5004
)

// System codes (9xxx).
const (
	SystemError              Code = 9000
	SystemConfigurationError Code = 9001
	SystemResourceExhausted  Code = 9002
	SystemMaintenanceMode    Code = 9003
	SystemCriticalError      Code = 9004
)

// definitions is the closed, static registry. Order is the catalogue order
// returned by All.
var definitions = []Definition{
	{"HTTP_BAD_REQUEST", HTTPBadRequest, CategoryHTTP, http.StatusBadRequest, "The request cannot be processed due to client error"},
	{"HTTP_UNAUTHORIZED", HTTPUnauthorized, CategoryHTTP, http.StatusUnauthorized, "Authentication is required to access this resource"},
	{"HTTP_FORBIDDEN", HTTPForbidden, CategoryHTTP, http.StatusForbidden, "You don't have permission to access this resource"},
	{"HTTP_NOT_FOUND", HTTPNotFound, CategoryHTTP, http.StatusNotFound, "The requested resource was not found"},
	{"HTTP_METHOD_NOT_ALLOWED", HTTPMethodNotAllowed, CategoryHTTP, http.StatusMethodNotAllowed, "The requested method is not supported"},
	{"HTTP_NOT_ACCEPTABLE", HTTPNotAcceptable, CategoryHTTP, http.StatusNotAcceptable, "The requested format is not available"},
	{"HTTP_RESOURCE_CONFLICT", HTTPResourceConflict, CategoryHTTP, http.StatusConflict, "The resource already exists in the system"},
	{"HTTP_PRECONDITION_FAILED", HTTPPreconditionFailed, CategoryHTTP, http.StatusPreconditionFailed, "Precondition for the request failed"},
	{"HTTP_PAYLOAD_TOO_LARGE", HTTPPayloadTooLarge, CategoryHTTP, http.StatusRequestEntityTooLarge, "The request payload exceeds the size limit"},
	{"HTTP_UNSUPPORTED_MEDIA_TYPE", HTTPUnsupportedMedia, CategoryHTTP, http.StatusUnsupportedMediaType, "The requested media type is not supported"},
	{"HTTP_UNPROCESSABLE_ENTITY", HTTPUnprocessableEntity, CategoryHTTP, http.StatusUnprocessableEntity, "The request was well-formed but cannot be processed"},
	{"HTTP_RESOURCE_LOCKED", HTTPResourceLocked, CategoryHTTP, http.StatusLocked, "The requested resource is currently locked"},
	{"HTTP_RATE_LIMIT_EXCEEDED", HTTPRateLimitExceeded, CategoryHTTP, http.StatusTooManyRequests, "Request limit exceeded. Please try again later"},
	{"HTTP_INTERNAL_SERVER_ERROR", HTTPInternalServerError, CategoryHTTP, http.StatusInternalServerError, "An unexpected error occurred. Please try again later"},
	{"HTTP_NOT_IMPLEMENTED", HTTPNotImplemented, CategoryHTTP, http.StatusNotImplemented, "This feature is not yet implemented"},
	{"HTTP_BAD_GATEWAY", HTTPBadGateway, CategoryHTTP, http.StatusBadGateway, "The server received an invalid response"},
	{"HTTP_SERVICE_UNAVAILABLE", HTTPServiceUnavailable, CategoryHTTP, http.StatusServiceUnavailable, "The service is temporarily unavailable"},
	{"HTTP_GATEWAY_TIMEOUT", HTTPGatewayTimeout, CategoryHTTP, http.StatusGatewayTimeout, "The server timed out waiting for a response"},

	{"VALIDATION_ERROR", ValidationError, CategoryValidation, http.StatusBadRequest, "One or more validation errors occurred"},
	{"VALIDATION_REQUIRED_FIELD", ValidationRequiredField, CategoryValidation, http.StatusBadRequest, "This field is required"},
	{"VALIDATION_MISSING_FIELD", ValidationMissingField, CategoryValidation, http.StatusBadRequest, "A required field is missing from the request"},
	{"VALIDATION_INVALID_EMAIL", ValidationInvalidEmail, CategoryValidation, http.StatusBadRequest, "Please enter a valid email address"},
	{"VALIDATION_INVALID_PHONE", ValidationInvalidPhone, CategoryValidation, http.StatusBadRequest, "Please enter a valid phone number"},
	{"VALIDATION_INVALID_DATE", ValidationInvalidDate, CategoryValidation, http.StatusBadRequest, "Please enter a valid date"},
	{"VALIDATION_INVALID_FORMAT", ValidationInvalidFormat, CategoryValidation, http.StatusBadRequest, "The provided format is incorrect"},
	{"VALIDATION_INVALID_PARAMETER", ValidationInvalidParameter, CategoryValidation, http.StatusBadRequest, "One or more parameters are invalid"},
	{"VALIDATION_MALFORMED_REQUEST", ValidationMalformedRequest, CategoryValidation, http.StatusBadRequest, "The request format is invalid or malformed"},

	{"BUSINESS_DUPLICATE_ENTRY", BusinessDuplicateEntry, CategoryBusiness, http.StatusConflict, "This entry already exists"},
	{"BUSINESS_INVALID_STATE", BusinessInvalidState, CategoryBusiness, http.StatusConflict, "Invalid state for this operation"},
	{"BUSINESS_INVALID_OPERATION", BusinessInvalidOperation, CategoryBusiness, http.StatusUnprocessableEntity, "The requested operation is invalid in the current state"},
	{"BUSINESS_INVALID_TRANSITION", BusinessInvalidTransition, CategoryBusiness, http.StatusConflict, "Cannot transition to the requested state"},
	{"BUSINESS_EXPIRED_RESOURCE", BusinessExpiredResource, CategoryBusiness, http.StatusGone, "This resource has expired"},
	{"BUSINESS_RULE_VIOLATION", BusinessRuleViolation, CategoryBusiness, http.StatusUnprocessableEntity, "This operation violates business rules"},

	{"SECURITY_TOKEN_EXPIRED", SecurityTokenExpired, CategorySecurity, http.StatusUnauthorized, "Your session has expired. Please log in again"},
	{"SECURITY_INVALID_CREDENTIALS", SecurityInvalidCredentials, CategorySecurity, http.StatusUnauthorized, "Invalid username or password"},
	{"SECURITY_ACCOUNT_LOCKED", SecurityAccountLocked, CategorySecurity, http.StatusForbidden, "Account has been locked. Please contact support"},
	{"SECURITY_INVALID_TOKEN", SecurityInvalidToken, CategorySecurity, http.StatusUnauthorized, "Invalid or malformed authentication token"},
	{"SECURITY_PASSWORD_EXPIRED", SecurityPasswordExpired, CategorySecurity, http.StatusUnauthorized, "Password has expired. Please reset your password"},
	{"SECURITY_INSUFFICIENT_PERMISSIONS", SecurityInsufficientPermissions, CategorySecurity, http.StatusForbidden, "You don't have sufficient permissions"},
	{"SECURITY_INVALID_2FA_CODE", SecurityInvalid2FACode, CategorySecurity, http.StatusUnauthorized, "Invalid two-factor authentication code"},

	{"DATA_INTEGRITY_ERROR", DataIntegrityError, CategoryData, http.StatusConflict, "Data integrity constraint has been violated"},
	{"DATA_INTEGRITY_VIOLATION", DataIntegrityViolation, CategoryData, http.StatusConflict, "Unable to process due to data integrity constraints"},
	{"DATA_STALE", DataStale, CategoryData, http.StatusPreconditionFailed, "The data has been modified. Please refresh and try again"},
	{"DATA_NOT_FOUND", DataNotFound, CategoryData, http.StatusNotFound, "Required data was not found"},
	{"DATA_ALREADY_EXISTS", DataAlreadyExists, CategoryData, http.StatusConflict, "This data already exists"},
	{"DATA_CORRUPTED", DataCorrupted, CategoryData, http.StatusUnprocessableEntity, "The data appears to be corrupted"},
	{"DATA_INVALID_REFERENCE", DataInvalidReference, CategoryData, http.StatusBadRequest, "Invalid reference to related data"},

	{"INTEGRATION_EXTERNAL_SERVICE_ERROR", IntegrationExternalServiceError, CategoryIntegration, http.StatusBadGateway, "External service error occurred"},
	{"INTEGRATION_INTEGRATION_TIMEOUT", IntegrationTimeout, CategoryIntegration, http.StatusGatewayTimeout, "Integration request timed out"},
	{"INTEGRATION_INVALID_RESPONSE", IntegrationInvalidResponse, CategoryIntegration, http.StatusBadGateway, "Received invalid response from external service"},
	{"INTEGRATION_SERVICE_UNAVAILABLE_ERROR", IntegrationServiceUnavailable, CategoryIntegration, http.StatusServiceUnavailable, "External service is currently unavailable"},
	{"INTEGRATION_API_LIMIT_EXCEEDED", IntegrationAPILimitExceeded, CategoryIntegration, http.StatusTooManyRequests, "External API rate limit exceeded"},

	{"SYSTEM_ERROR", SystemError, CategorySystem, http.StatusInternalServerError, "A system error has occurred"},
	{"SYSTEM_CONFIGURATION_ERROR", SystemConfigurationError, CategorySystem, http.StatusInternalServerError, "System configuration error"},
	{"SYSTEM_RESOURCE_EXHAUSTED", SystemResourceExhausted, CategorySystem, http.StatusServiceUnavailable, "System resources are exhausted"},
	{"SYSTEM_MAINTENANCE_MODE", SystemMaintenanceMode, CategorySystem, http.StatusServiceUnavailable, "System is under maintenance"},
	{"SYSTEM_CRITICAL_ERROR", SystemCriticalError, CategorySystem, http.StatusInternalServerError, "A critical system error has occurred"},
}
