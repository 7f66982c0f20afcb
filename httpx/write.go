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
	"encoding/json"
	"fmt"
	"net/http"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/code"
)

// Write renders err and writes it as a JSON body. Nothing is written for a
// nil err.
//
// Errors raised by ServiceUnavailableUntil also set a Retry-After header.
func (rd *Renderer) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, view := rd.Render(r, err)
	if status == 0 {
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	if view.TraceID != "" {
		h.Set(HeaderRequestID, view.TraceID)
	}
	if e, ok := apperr.As(err); ok {
		if at, ok := apperr.RetryAfter(e); ok {
			h.Set("Retry-After", at.UTC().Format(http.TimeFormat))
		}
	}
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(view); encErr != nil {
		rd.logger().WithError(encErr).Error("httpx: encode error response")
	}
}

// HandlerFunc is an http.HandlerFunc that reports failure by returning an
// error instead of writing it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.Handler. A non-nil error returned by fn is written
// with Write; fn must not have written a response in that case.
func (rd *Renderer) Handle(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			rd.Write(w, r, err)
		}
	})
}

// Recover converts panics in next into a generic 500 response.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func (rd *Renderer) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			cause, ok := p.(error)
			if !ok {
				cause = fmt.Errorf("%v", p)
			}
			rd.Write(w, r, apperr.E(code.HTTPInternalServerError, rd.genericMessage(),
				apperr.WithKindOption(apperr.KindSystem),
				apperr.WithCauseOption(fmt.Errorf("panic: %w", cause)),
			))
		}()
		next.ServeHTTP(w, r)
	})
}
