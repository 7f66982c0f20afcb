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

// Package validation is a small composable framework for checking input values
// before business logic runs.
//
// A Validator[T] inspects a T and returns a Result. Results are values: valid,
// or invalid with an ordered list of Error values, each carrying a code from
// dirpx.dev/apperr/code, a message and metadata.
//
// Field validators pull one value out of the input with a pure extraction
// function and check it:
//
//	name := validation.MustRequired(func(u User) string { return u.Name }, "name")
//	mail := validation.MustEmail(func(u User) string { return u.Email }, "email")
//
// Composite and Chained validators run children in order. Chained accepts a
// Strategy: FailFast stops at the first failing child, ValidateAll runs all of
// them and concatenates the failures.
//
//	v := validation.MustChained[User](validation.ValidateAll, name, mail)
//	if r := v.Validate(u); r.IsInvalid() {
//	    return apperr.FromValidation(r)
//	}
//
// Validators never reject expected bad input by panicking. Construction
// mistakes (nil extractor, blank field name, nil child) are reported by the
// constructors as errors wrapping ErrInvalidArgument. A panic raised inside an
// extraction function is not recovered.
//
// Every validator in this package is immutable once built and may be shared
// between goroutines.
package validation
