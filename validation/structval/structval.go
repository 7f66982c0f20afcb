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

// Package structval exposes struct-tag validation, backed by
// github.com/go-playground/validator/v10, as a validation.Validator.
//
// Failures are translated into validation.Error values carrying registered
// codes, so tag-based and hand-written validators can be chained together
// and rendered the same way.
//
//	type Signup struct {
//	    Name  string `json:"name"  validate:"required"`
//	    Email string `json:"email" validate:"required,strict_email"`
//	}
//
//	v := validation.MustChained(validation.ValidateAll,
//	    structval.Struct[Signup](nil),
//	    customRules,
//	)
package structval

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/apperr/code"
	"dirpx.dev/apperr/validation"
)

// TagStrictEmail is the custom tag checking addresses with validation.IsEmail.
const TagStrictEmail = "strict_email"

// Metadata keys attached to every translated error.
const (
	MetaTag   = "tag"
	MetaParam = "param"
)

// New returns a validator with required-struct semantics enabled, the
// strict_email tag registered and JSON tag names used as field names.
// Extra options are applied after the defaults.
func New(opts ...validator.Option) (*validator.Validate, error) {
	v := validator.New(append([]validator.Option{validator.WithRequiredStructEnabled()}, opts...)...)
	if err := v.RegisterValidation(TagStrictEmail, strictEmail); err != nil {
		return nil, fmt.Errorf("structval: register %s: %w", TagStrictEmail, err)
	}
	v.RegisterTagNameFunc(jsonName)
	return v, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...validator.Option) *validator.Validate {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

var (
	defaultOnce sync.Once
	defaultV    *validator.Validate
)

// Default returns a lazily built, shared validator created by New.
// *validator.Validate caches struct metadata and is safe for concurrent use.
func Default() *validator.Validate {
	defaultOnce.Do(func() { defaultV = MustNew() })
	return defaultV
}

// Struct returns a validation.Validator that runs the struct tags of T.
// A nil v means Default().
//
// Input that is not a struct (or a non-nil pointer to one) yields a single
// VALIDATION_MALFORMED_REQUEST error.
func Struct[T any](v *validator.Validate) validation.Validator[T] {
	if v == nil {
		v = Default()
	}
	return validation.Func[T](func(in T) validation.Result {
		return translate(v.Struct(in))
	})
}

// FromError converts an error returned by (*validator.Validate).Struct into a
// Result. It reports false when err does not come from the validator.
func FromError(err error) (validation.Result, bool) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return fromFieldErrors(ve), true
	}
	var ie *validator.InvalidValidationError
	if errors.As(err, &ie) {
		return malformed(ie), true
	}
	return validation.Valid(), false
}

func translate(err error) validation.Result {
	if err == nil {
		return validation.Valid()
	}
	if r, ok := FromError(err); ok {
		return r
	}
	return validation.Invalid(validation.NewError(code.ValidationMalformedRequest, err.Error(), nil))
}

func malformed(ie *validator.InvalidValidationError) validation.Result {
	typ := "nil"
	if ie.Type != nil {
		typ = ie.Type.String()
	}
	return validation.Invalid(validation.NewError(
		code.ValidationMalformedRequest,
		fmt.Sprintf("Cannot validate input of type %s", typ),
		map[string]any{"type": typ},
	))
}

func fromFieldErrors(ve validator.ValidationErrors) validation.Result {
	errs := make([]validation.Error, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, FieldError(fe))
	}
	return validation.Invalid(errs...)
}

// FieldError translates a single validator.FieldError.
func FieldError(fe validator.FieldError) validation.Error {
	field := fieldPath(fe)
	c, msg := describe(fe, field)
	meta := map[string]any{
		validation.MetaField: field,
		MetaTag:              fe.Tag(),
	}
	if p := fe.Param(); p != "" {
		meta[MetaParam] = p
	}
	return validation.NewError(c, msg, meta)
}

// formatTags are tags that check the shape of a value rather than its range.
var formatTags = map[string]bool{
	"alpha": true, "alphanum": true, "numeric": true, "number": true,
	"hexadecimal": true, "base64": true, "json": true, "jwt": true,
	"uuid": true, "uuid4": true, "ulid": true, "url": true, "uri": true,
	"http_url": true, "hostname": true, "hostname_port": true, "fqdn": true,
	"ip": true, "ipv4": true, "ipv6": true, "cidr": true, "mac": true,
	"semver": true, "iso3166_1_alpha2": true, "bcp47_language_tag": true,
}

func describe(fe validator.FieldError, field string) (code.Code, string) {
	tag := fe.Tag()
	switch {
	case strings.HasPrefix(tag, "required"):
		return code.ValidationRequiredField, fmt.Sprintf("Field '%s' is required", field)
	case tag == "email" || tag == TagStrictEmail:
		return code.ValidationInvalidEmail, fmt.Sprintf("Invalid email format for field %s", field)
	case tag == "e164":
		return code.ValidationInvalidPhone, fmt.Sprintf("Invalid phone number for field '%s'", field)
	case tag == "datetime":
		return code.ValidationInvalidDate, fmt.Sprintf("Invalid date for field '%s'. Expected format: %s", field, fe.Param())
	case formatTags[tag]:
		return code.ValidationInvalidFormat, fmt.Sprintf("Invalid format for field '%s'. Expected format: %s", field, tag)
	case tag == "oneof":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")
		return code.ValidationInvalidParameter, fmt.Sprintf("Invalid value for field '%s'. Allowed values are: %s", field, allowed)
	case fe.Param() != "":
		return code.ValidationInvalidParameter, fmt.Sprintf("Invalid value for field '%s': must satisfy %s=%s", field, tag, fe.Param())
	default:
		return code.ValidationInvalidParameter, fmt.Sprintf("Invalid value for field '%s': must satisfy %s", field, tag)
	}
}

// fieldPath drops the top-level struct name from the namespace, so nested
// fields read "address.city" rather than "Signup.address.city".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	if ns == "" {
		return fe.Field()
	}
	return ns
}

func strictEmail(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return validation.IsEmail(f.String())
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	}
	return name
}
