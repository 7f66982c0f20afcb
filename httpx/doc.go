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

// Package httpx renders errors as JSON HTTP responses.
//
// A Renderer turns any error into an apis.ErrorView and a status:
//
//   - *apperr.Error values keep their code, message and context; the status
//     comes from the configured apis.Mapper;
//   - validator.ValidationErrors (struct-tag binding failures) become a
//     VALIDATION_ERROR with one developer message per field;
//   - anything else becomes a generic 500 that reveals nothing about the
//     underlying failure.
//
// Every rendered error is logged once (5xx at error level, 4xx at warning)
// and counted through an optional apis.ErrorCounter.
//
//	r := &httpx.Renderer{Mapper: m, Logger: log, Counter: counter}
//	mux.Handle("/users/{id}", r.Handle(getUser))
//	srv := &http.Server{Handler: r.Recover(mux)}
package httpx
