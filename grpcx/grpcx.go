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

// Package grpcx maps structured errors onto gRPC statuses with standard
// google.rpc error details.
//
// A *apperr.Error returned by a handler becomes a status whose code comes
// from the configured apis.Mapper and which carries:
//
//   - an ErrorInfo (reason = code name, metadata = code, category,
//     http_status, trace_id and path);
//   - a BadRequest listing every developer message that names a field;
//   - a RetryInfo when the error carries a retryAfter time.
//
// Status errors pass through untouched. Anything else becomes a generic
// Internal status, so server internals never reach the client.
package grpcx

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/mapper"
)

// Domain is the ErrorInfo domain attached to every converted error.
const Domain = "dirpx.dev/apperr"

// GenericMessage is the status message for errors without a structured code.
const GenericMessage = "An unexpected error occurred"

// TraceMetadataKey is the incoming metadata key consulted for a trace id when
// neither the error nor the span context carries one.
const TraceMetadataKey = "x-trace-id"

// ErrorInfo metadata keys.
const (
	MetaCode       = "code"
	MetaCategory   = "category"
	MetaHTTPStatus = "http_status"
	MetaTraceID    = "trace_id"
	MetaPath       = "path"
)

// now is replaced in tests.
var now = time.Now

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// handler errors with ToStatus and logs them. A nil m means mapper.Default();
// a nil log means the logrus standard logger.
func UnaryServerInterceptor(m apis.Mapper, log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	c := newConverter(m, log)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, c.convert(ctx, info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, log logrus.FieldLogger) grpc.StreamServerInterceptor {
	c := newConverter(m, log)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return c.convert(ss.Context(), info.FullMethod, err)
	}
}

// ToStatus converts err into a gRPC status without logging. ctx supplies a
// trace id when err carries none.
func ToStatus(ctx context.Context, m apis.Mapper, err error) *status.Status {
	return newConverter(m, nil).status(ctx, err)
}

type converter struct {
	m   apis.Mapper
	log logrus.FieldLogger
}

func newConverter(m apis.Mapper, log logrus.FieldLogger) *converter {
	if m == nil {
		m = mapper.Default()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &converter{m: m, log: log}
}

func (c *converter) convert(ctx context.Context, method string, err error) error {
	st := c.status(ctx, err)
	fields := logrus.Fields{
		"method":    method,
		"grpc_code": st.Code().String(),
	}
	if info, ok := infoOf(st); ok {
		fields["code"] = info.GetMetadata()[MetaCode]
		fields["code_name"] = info.GetReason()
		fields["category"] = info.GetMetadata()[MetaCategory]
		fields["http_status"] = info.GetMetadata()[MetaHTTPStatus]
		fields["trace_id"] = info.GetMetadata()[MetaTraceID]
		fields["path"] = info.GetMetadata()[MetaPath]
	}
	entry := c.log.WithFields(fields)
	switch st.Code() {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable, codes.DeadlineExceeded, codes.Unimplemented:
		entry.WithError(err).Error(st.Message())
	default:
		entry.Warn(st.Message())
	}
	return st.Err()
}

func (c *converter) status(ctx context.Context, err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	e, ok := apperr.As(err)
	if !ok {
		if st, ok := status.FromError(err); ok {
			return st
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return status.FromContextError(err)
		}
		return status.New(codes.Internal, GenericMessage)
	}

	res := c.m.Status(e.Code())
	base := status.New(res.GRPC, e.Message())

	details := []protoadapt.MessageV1{c.errorInfo(ctx, e, res)}
	if br := badRequest(e); br != nil {
		details = append(details, br)
	}
	if at, ok := apperr.RetryAfter(e); ok {
		delay := at.Sub(now())
		if delay < 0 {
			delay = 0
		}
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(delay)})
	}
	with, derr := base.WithDetails(details...)
	if derr != nil {
		return base
	}
	return with
}

func (c *converter) errorInfo(ctx context.Context, e *apperr.Error, res apis.Status) *errdetails.ErrorInfo {
	md := map[string]string{
		MetaCode:       strconv.Itoa(int(e.Code())),
		MetaHTTPStatus: strconv.Itoa(res.HTTP),
	}
	if cat := e.Category(); cat.Valid() {
		md[MetaCategory] = cat.String()
	}
	if id := traceID(ctx, e); id != "" {
		md[MetaTraceID] = id
	}
	if p := e.Path(); p != "" {
		md[MetaPath] = p
	}
	return &errdetails.ErrorInfo{
		Reason:   e.Code().Name(),
		Domain:   Domain,
		Metadata: md,
	}
}

func badRequest(e *apperr.Error) *errdetails.BadRequest {
	var out []*errdetails.BadRequest_FieldViolation
	for _, d := range e.DeveloperMessages() {
		if d.Field == "" {
			continue
		}
		out = append(out, &errdetails.BadRequest_FieldViolation{
			Field:       d.Field,
			Description: d.Message,
		})
	}
	if len(out) == 0 {
		return nil
	}
	return &errdetails.BadRequest{FieldViolations: out}
}

// traceID prefers the error's own trace id, then the span in ctx, then the
// x-trace-id incoming metadata.
func traceID(ctx context.Context, e *apperr.Error) string {
	if id := e.TraceID(); id != "" {
		return id
	}
	if ctx == nil {
		return ""
	}
	if id := apperr.TraceIDFromContext(ctx); id != "" {
		return id
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(TraceMetadataKey); len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func infoOf(st *status.Status) (*errdetails.ErrorInfo, bool) {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractInfo pulls the ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	return infoOf(st)
}

// ExtractViolations returns the BadRequest field violations of a gRPC error.
func ExtractViolations(err error) []*errdetails.BadRequest_FieldViolation {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br.GetFieldViolations()
		}
	}
	return nil
}

// ExtractRetryDelay returns the RetryInfo delay of a gRPC error.
func ExtractRetryDelay(err error) (time.Duration, bool) {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return 0, false
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok {
			return ri.GetRetryDelay().AsDuration(), true
		}
	}
	return 0, false
}
