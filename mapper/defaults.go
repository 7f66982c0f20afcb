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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/apperr/code"
)

// defaultGRPC holds per-code gRPC statuses where the HTTP-derived choice is
// too coarse. A 409, for example, derives to Aborted, but a duplicate entry is
// better expressed as AlreadyExists.
var defaultGRPC = map[code.Code]codes.Code{
	code.HTTPResourceConflict:   codes.AlreadyExists,
	code.BusinessDuplicateEntry: codes.AlreadyExists,
	code.DataAlreadyExists:      codes.AlreadyExists,

	code.BusinessInvalidState:      codes.FailedPrecondition,
	code.BusinessInvalidTransition: codes.FailedPrecondition,
	code.BusinessExpiredResource:   codes.FailedPrecondition,

	code.HTTPResourceLocked:    codes.Unavailable,
	code.SecurityAccountLocked: codes.PermissionDenied,

	code.DataCorrupted:               codes.DataLoss,
	code.IntegrationAPILimitExceeded: codes.ResourceExhausted,
	code.SystemResourceExhausted:     codes.ResourceExhausted,
}

// httpToGRPC derives a gRPC status from a resolved HTTP status. Statuses not
// listed fall back to codes.Internal.
var httpToGRPC = map[int]codes.Code{
	http.StatusBadRequest:            codes.InvalidArgument,
	http.StatusUnauthorized:          codes.Unauthenticated,
	http.StatusForbidden:             codes.PermissionDenied,
	http.StatusNotFound:              codes.NotFound,
	http.StatusMethodNotAllowed:      codes.Unimplemented,
	http.StatusNotAcceptable:         codes.InvalidArgument,
	http.StatusRequestTimeout:        codes.DeadlineExceeded,
	http.StatusConflict:              codes.Aborted,
	http.StatusGone:                  codes.NotFound, // gRPC has no 410.
	http.StatusPreconditionFailed:    codes.FailedPrecondition,
	http.StatusRequestEntityTooLarge: codes.ResourceExhausted,
	http.StatusUnsupportedMediaType:  codes.InvalidArgument,
	http.StatusUnprocessableEntity:   codes.FailedPrecondition,
	http.StatusLocked:                codes.FailedPrecondition,
	http.StatusTooManyRequests:       codes.ResourceExhausted,
	499:                              codes.Canceled, // nginx "client closed request"
	http.StatusInternalServerError:   codes.Internal,
	http.StatusNotImplemented:        codes.Unimplemented,
	http.StatusBadGateway:            codes.Unavailable,
	http.StatusServiceUnavailable:    codes.Unavailable,
	http.StatusGatewayTimeout:        codes.DeadlineExceeded,
}
