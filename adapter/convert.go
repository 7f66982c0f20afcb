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

// Package adapter converts structured errors and registry entries into the
// transport-neutral view types of package apis.
package adapter

import (
	"net/http"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
)

// ToDescriptor converts a structured error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical code and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(e *apperr.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:       int(e.Code()),
		Name:       e.Code().Name(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message(),
	}
	if cat := e.Category(); cat.Valid() {
		d.Category = cat.String()
	}
	return d
}

// ToView returns the sealed view of e with its status replaced by the one
// the mapper resolved. This function performs no redaction; renderers decide
// which optional sections to drop.
func ToView(e *apperr.Error, st apis.Status) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := e.ErrorView()
	if st.HTTP != 0 {
		v.Status = st.HTTP
		if v.Category == "" {
			v.Error = http.StatusText(st.HTTP)
		}
	}
	return v
}

// DescribeCode describes a single code as the mapper resolves it. Unknown
// codes are described with their fallback name and derived category.
func DescribeCode(c code.Code, m apis.Mapper) apis.ErrorDescriptor {
	st := m.Status(c)
	d := apis.ErrorDescriptor{
		Code:       int(c),
		Name:       c.Name(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    c.Message(),
	}
	if cat := c.Category(); cat.Valid() {
		d.Category = cat.String()
	}
	return d
}

// Catalogue describes every registered code in catalogue order. When cat is
// valid only codes of that category are included.
func Catalogue(m apis.Mapper, cat code.Category) []apis.ErrorDescriptor {
	defs := code.All()
	if cat.Valid() {
		defs = code.InCategory(cat)
	}
	out := make([]apis.ErrorDescriptor, 0, len(defs))
	for _, d := range defs {
		out = append(out, DescribeCode(d.Code, m))
	}
	return out
}
