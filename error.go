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
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
)

// Error is the structured application error.
//
// It carries:
//   - a registered code (which supplies the default message and status);
//   - a Kind, the error family used for default handling;
//   - a resolved human message;
//   - a diagnostic context: path, trace id, attributes and timestamp;
//   - optional developer messages and per-field details;
//   - an optional wrapped cause, for errors.Is / errors.As and logs only.
//
// An Error is immutable. Every WithX method returns a new *Error and leaves
// the receiver untouched, so values can be shared across goroutines. The
// client-facing apis.ErrorView is built once, when the value is created.
type Error struct {
	code    code.Code
	kind    Kind
	message string
	cause   error

	path    string
	traceID string
	attrs   map[string]any
	ts      time.Time

	devs    []DeveloperMessage
	details []apis.Detail

	view  apis.ErrorView
	draft bool
}

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.CausedError   = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// E builds an Error for c with the given message and applies opts in order.
//
//	return apperr.E(code.DataStale, "order was modified concurrently",
//	    apperr.WithAttributeOption("orderId", id),
//	    apperr.WithCauseOption(err),
//	)
//
// An empty message falls back to the default message of c. code.Unknown
// falls back to the default code of the error's Kind.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{code: c, kind: KindOf(c), message: msg, draft: true}
	for _, opt := range opts {
		if opt != nil {
			e = opt(e)
		}
	}
	e.draft = false
	return e.seal()
}

// New builds an Error for c with its default message.
func New(c code.Code, opts ...Option) *Error {
	return E(c, "", opts...)
}

// Errorf builds an Error for c with a formatted message. Like fmt.Errorf, a
// %w verb records the wrapped error as the cause.
//
// The text of %w operands is part of the message, and the message is client
// visible. To keep a cause server-side, use E with WithCauseOption:
//
//	apperr.E(code.IntegrationInvalidResponse, "payment gateway failed",
//	    apperr.WithCauseOption(err))
func Errorf(c code.Code, format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	e := &Error{code: c, kind: KindOf(c), message: wrapped.Error(), cause: errors.Unwrap(wrapped)}
	return e.seal()
}

// Error implements error as "NAME [code]: message".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s [%d]: %s", e.code.Name(), int(e.code), e.message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error with the same code, so that
//
//	errors.Is(err, apperr.New(code.DataNotFound))
//
// matches any not-found error regardless of message or context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && t.code == e.code
}

// Code returns the error code.
func (e *Error) Code() code.Code { return e.code }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() code.Code { return e.code }

// Kind returns the error family.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the resolved human message.
func (e *Error) Message() string { return e.message }

// Category returns the category of the code.
func (e *Error) Category() code.Category { return e.code.Category() }

// HTTPStatus returns the registry status of the code. Transports that use a
// configured mapper may resolve a different one.
func (e *Error) HTTPStatus() int { return e.view.Status }

// Cause implements apis.CausedError.
func (e *Error) Cause() error { return e.cause }

// Path returns the request or operation path.
func (e *Error) Path() string { return e.path }

// TraceID returns the correlation id.
func (e *Error) TraceID() string { return e.traceID }

// Timestamp returns when the error was raised.
func (e *Error) Timestamp() time.Time { return e.ts }

// Attributes returns a copy of the diagnostic attributes.
func (e *Error) Attributes() map[string]any { return maps.Clone(e.attrs) }

// Attribute returns one diagnostic attribute.
func (e *Error) Attribute(key string) (any, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// DeveloperMessages returns a copy of the developer messages.
func (e *Error) DeveloperMessages() []DeveloperMessage { return cloneSlice(e.devs) }

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() []apis.Detail { return cloneDetails(e.details) }

// ErrorView implements apis.ViewProvider. The returned value is a copy.
func (e *Error) ErrorView() apis.ErrorView { return cloneView(e.view) }

// WithMessage returns a copy with a replaced message. An empty message
// restores the default message of the code.
func (e *Error) WithMessage(msg string) *Error {
	cp := e.clone()
	cp.message = msg
	return cp.seal()
}

// WithKind returns a copy with a different family.
func (e *Error) WithKind(k Kind) *Error {
	cp := e.clone()
	cp.kind = k
	return cp.seal()
}

// WithAttribute returns a copy with one more attribute.
func (e *Error) WithAttribute(key string, value any) *Error {
	cp := e.clone()
	cp.attrs = maps.Clone(cp.attrs)
	if cp.attrs == nil {
		cp.attrs = make(map[string]any, 1)
	}
	cp.attrs[key] = value
	return cp.seal()
}

// WithAttributes returns a copy with kv merged into the attributes; kv wins on
// conflicts.
func (e *Error) WithAttributes(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := e.clone()
	m := make(map[string]any, len(cp.attrs)+len(kv))
	maps.Copy(m, cp.attrs)
	maps.Copy(m, kv)
	cp.attrs = m
	return cp.seal()
}

// WithCause returns a copy wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := e.clone()
	cp.cause = err
	return cp.seal()
}

// WithPath returns a copy with the given path.
func (e *Error) WithPath(path string) *Error {
	cp := e.clone()
	cp.path = path
	return cp.seal()
}

// WithTraceID returns a copy with the given trace id.
func (e *Error) WithTraceID(id string) *Error {
	cp := e.clone()
	cp.traceID = id
	return cp.seal()
}

// WithTimestamp returns a copy raised at t.
func (e *Error) WithTimestamp(t time.Time) *Error {
	cp := e.clone()
	cp.ts = t
	return cp.seal()
}

// WithContext returns a copy taking every non-empty field of c. Attributes
// are merged with c winning on conflicts.
func (e *Error) WithContext(c Context) *Error {
	cp := e.clone()
	if c.Path != "" {
		cp.path = c.Path
	}
	if c.TraceID != "" {
		cp.traceID = c.TraceID
	}
	if !c.Timestamp.IsZero() {
		cp.ts = c.Timestamp
	}
	if len(c.Attributes) > 0 {
		m := make(map[string]any, len(cp.attrs)+len(c.Attributes))
		maps.Copy(m, cp.attrs)
		maps.Copy(m, c.Attributes)
		cp.attrs = m
	}
	return cp.seal()
}

// WithDeveloperMessages returns a copy with msgs appended.
func (e *Error) WithDeveloperMessages(msgs ...DeveloperMessage) *Error {
	if len(msgs) == 0 {
		return e
	}
	cp := e.clone()
	cp.devs = append(cloneSlice(cp.devs), msgs...)
	return cp.seal()
}

// WithDeveloperCodes returns a copy with one developer message per code,
// each using the default message of its code.
func (e *Error) WithDeveloperCodes(codes ...code.Code) *Error {
	msgs := make([]DeveloperMessage, len(codes))
	for i, c := range codes {
		msgs[i] = DeveloperMessageFor(c, "")
	}
	return e.WithDeveloperMessages(msgs...)
}

// WithDetails returns a copy with details appended.
func (e *Error) WithDetails(details ...apis.Detail) *Error {
	if len(details) == 0 {
		return e
	}
	cp := e.clone()
	cp.details = append(cloneDetails(cp.details), cloneDetails(details)...)
	return cp.seal()
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first apis.CodedError in err's chain, or
// code.Unknown.
func CodeOf(err error) code.Code {
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.ErrorCode()
	}
	return code.Unknown
}

// clone returns a shallow copy. Maps and slices are shared until a WithX
// method replaces them; none of them is ever modified in place.
func (e *Error) clone() *Error {
	cp := *e
	return &cp
}

// seal fills defaults and rebuilds the view. It must be called on every
// freshly produced value before it is handed out. Drafts (values still being
// configured by E) are left alone so that option order does not matter.
func (e *Error) seal() *Error {
	if e.draft {
		return e
	}
	if e.code == code.Unknown {
		e.code = e.kind.DefaultCode()
	}
	if e.message == "" {
		e.message = e.code.Message()
	}
	if e.ts.IsZero() {
		e.ts = now()
	}
	e.view = e.buildView()
	return e
}

func (e *Error) buildView() apis.ErrorView {
	status := e.code.HTTPStatus()
	v := apis.ErrorView{
		Timestamp:  e.ts,
		Status:     status,
		Code:       int(e.code),
		CodeName:   e.code.Name(),
		Message:    e.message,
		Path:       e.path,
		TraceID:    e.traceID,
		Details:    cloneDetails(e.details),
		Attributes: maps.Clone(e.attrs),
	}
	if cat := e.code.Category(); cat.Valid() {
		v.Category = cat.String()
		v.Error = cat.Description()
	} else {
		v.Error = http.StatusText(status)
	}
	if len(e.devs) > 0 {
		v.DeveloperMessages = make([]apis.DeveloperMessage, len(e.devs))
		for i, d := range e.devs {
			v.DeveloperMessages[i] = d.view()
		}
	}
	return v
}

func cloneView(v apis.ErrorView) apis.ErrorView {
	v.Details = cloneDetails(v.Details)
	v.DeveloperMessages = cloneSlice(v.DeveloperMessages)
	v.Attributes = maps.Clone(v.Attributes)
	return v
}

func cloneDetails(ds []apis.Detail) []apis.Detail {
	if len(ds) == 0 {
		return nil
	}
	out := make([]apis.Detail, len(ds))
	for i, d := range ds {
		d.Info = maps.Clone(d.Info)
		out[i] = d
	}
	return out
}

func cloneSlice[S ~[]T, T any](s S) S {
	if len(s) == 0 {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}
