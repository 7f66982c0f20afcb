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

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/code"
	"dirpx.dev/apperr/validation"
)

// AttrCodes is the attribute holding the code names of a failed validation.
const AttrCodes = "codes"

// FromValidation turns an invalid validation.Result into a VALIDATION_ERROR
// Error. It returns nil for a valid result, so it can be used directly:
//
//	if err := apperr.FromValidation(v.Validate(req)); err != nil {
//	    return err
//	}
//
// Each validation error becomes one developer message (code name, message,
// field) and one detail (field, code name, metadata).
func FromValidation(r validation.Result, opts ...Option) *Error {
	if r.IsValid() {
		return nil
	}
	errs := r.Errors()
	devs := make([]DeveloperMessage, len(errs))
	details := make([]apis.Detail, len(errs))
	names := make([]string, len(errs))
	for i, ve := range errs {
		devs[i] = DeveloperMessageFor(ve.Code(), ve.Message()).WithField(ve.Field())
		details[i] = detailOf(ve)
		names[i] = ve.Code().Name()
	}
	all := append([]Option{
		WithDeveloperMessagesOption(devs...),
		WithDetailsOption(details...),
	}, opts...)
	return raise(code.ValidationError, KindValidation, "",
		map[string]any{AttrErrorCount: len(errs), AttrCodes: names},
		all)
}

func detailOf(ve validation.Error) apis.Detail {
	d := apis.Detail{
		Type:        "field",
		Field:       ve.Field(),
		Reason:      ve.Code().Name(),
		Description: ve.Message(),
	}
	if d.Field == "" {
		d.Type = "validation"
	}
	meta := ve.Metadata()
	delete(meta, validation.MetaField)
	if len(meta) == 0 {
		return d
	}
	d.Info = make(map[string]string, len(meta))
	for k, v := range meta {
		d.Info[k] = fmt.Sprint(v)
	}
	return d
}
