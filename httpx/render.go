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

package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/propagation"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/adapter"
	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
	"dirpx.dev/apperr/mapper"
	"dirpx.dev/apperr/validation/structval"
)

// DefaultGenericMessage is the message clients see for errors that carry no
// structured code.
const DefaultGenericMessage = "An unexpected error occurred"

// HeaderRequestID is consulted for a correlation id when the request carries
// no trace context.
const HeaderRequestID = "X-Request-ID"

// Options selects which optional sections of the view reach the client. The
// zero value includes everything.
type Options struct {
	// OmitDeveloperMessages drops developerMessages from the body.
	OmitDeveloperMessages bool

	// OmitDetails drops per-field details from the body.
	OmitDetails bool

	// OmitAttributes drops free-form attributes from the body.
	OmitAttributes bool

	// OmitPath drops the request path from the body.
	OmitPath bool

	// GenericMessage replaces DefaultGenericMessage when non-empty.
	GenericMessage string
}

// Renderer converts errors into HTTP error responses. The zero value is
// usable: it resolves statuses with mapper.Default, logs to the logrus
// standard logger and counts nothing.
type Renderer struct {
	Mapper  apis.Mapper
	Logger  logrus.FieldLogger
	Counter apis.ErrorCounter
	Options Options
}

var propagator = propagation.TraceContext{}

// Render resolves err into a status and a client-safe view, logging and
// counting it on the way. It returns a zero status for a nil err.
func (rd *Renderer) Render(r *http.Request, err error) (int, apis.ErrorView) {
	if err == nil {
		return 0, apis.ErrorView{}
	}

	e, name := rd.classify(err)
	if e.Path() == "" && r != nil && r.URL != nil {
		e = e.WithPath(r.URL.Path)
	}
	if e.TraceID() == "" {
		e = e.WithTraceID(traceID(r))
	}

	st := rd.mapper().Status(e.Code())
	view := adapter.ToView(e, st)
	rd.log(e, view, err)
	if rd.Counter != nil {
		rd.Counter.IncrementErrorCount(name, view.Category)
	}
	return view.Status, rd.redact(view)
}

// classify turns err into a structured error and returns the name it is
// counted under.
func (rd *Renderer) classify(err error) (*apperr.Error, string) {
	if e, ok := apperr.As(err); ok {
		return e, e.Code().Name()
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		if res, ok := structval.FromError(err); ok {
			if e := apperr.FromValidation(res, apperr.WithCauseOption(err)); e != nil {
				return e, fmt.Sprintf("%T", ve)
			}
		}
	}
	return apperr.E(code.HTTPInternalServerError, rd.genericMessage(),
		apperr.WithKindOption(apperr.KindSystem),
		apperr.WithCauseOption(err),
	), fmt.Sprintf("%T", err)
}

func (rd *Renderer) redact(v apis.ErrorView) apis.ErrorView {
	if rd.Options.OmitDeveloperMessages {
		v.DeveloperMessages = nil
	}
	if rd.Options.OmitDetails {
		v.Details = nil
	}
	if rd.Options.OmitAttributes {
		v.Attributes = nil
	}
	if rd.Options.OmitPath {
		v.Path = ""
	}
	return v
}

func (rd *Renderer) log(e *apperr.Error, v apis.ErrorView, orig error) {
	entry := rd.logger().WithFields(logrus.Fields{
		"code":        v.Code,
		"code_name":   v.CodeName,
		"http_status": v.Status,
		"category":    v.Category,
		"trace_id":    v.TraceID,
		"path":        v.Path,
	})
	if v.Status >= http.StatusInternalServerError {
		cause := e.Cause()
		if cause == nil {
			cause = orig
		}
		entry.WithError(cause).Errorf("%s: %s", v.CodeName, e.Message())
		return
	}
	entry.Warnf("%s: %s", v.CodeName, e.Message())
}

func (rd *Renderer) genericMessage() string {
	if rd.Options.GenericMessage != "" {
		return rd.Options.GenericMessage
	}
	return DefaultGenericMessage
}

func (rd *Renderer) mapper() apis.Mapper {
	if rd.Mapper != nil {
		return rd.Mapper
	}
	return mapper.Default()
}

func (rd *Renderer) logger() logrus.FieldLogger {
	if rd.Logger != nil {
		return rd.Logger
	}
	return logrus.StandardLogger()
}

// traceID picks the correlation id for r: the active span, then an incoming
// W3C traceparent header, then X-Request-ID, then a fresh UUID.
func traceID(r *http.Request) string {
	if r == nil {
		return uuid.NewString()
	}
	ctx := r.Context()
	if id := apperr.TraceIDFromContext(ctx); id != "" {
		return id
	}
	if id := apperr.TraceIDFromContext(propagator.Extract(ctx, propagation.HeaderCarrier(r.Header))); id != "" {
		return id
	}
	if id := r.Header.Get(HeaderRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
