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

package validation

import "errors"

// Builder assembles a Chained validator step by step.
//
//	v, err := validation.NewBuilder[SignupRequest]().
//	    Required("name", func(r SignupRequest) any { return r.Name }).
//	    Email("email", func(r SignupRequest) string { return r.Email }).
//	    Build()
//
// The strategy defaults to ValidateAll. Construction errors are collected and
// reported together by Build. A Builder is not safe for concurrent use; the
// validator it builds is.
type Builder[T any] struct {
	strategy   Strategy
	validators []Validator[T]
	errs       []error
}

// NewBuilder returns an empty Builder using ValidateAll.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{strategy: ValidateAll}
}

// Add appends an arbitrary child validator.
func (b *Builder[T]) Add(v Validator[T]) *Builder[T] {
	b.validators = append(b.validators, v)
	return b
}

// AddFunc appends a function as a child validator.
func (b *Builder[T]) AddFunc(f func(T) Result) *Builder[T] {
	if f == nil {
		return b.Add(nil)
	}
	return b.Add(Func[T](f))
}

// Required appends a required-field check.
func (b *Builder[T]) Required(name string, extract func(T) any) *Builder[T] {
	v, err := Required(extract, name)
	return b.append(v, err)
}

// Email appends an email-format check.
func (b *Builder[T]) Email(name string, extract func(T) string) *Builder[T] {
	v, err := Email(extract, name)
	return b.append(v, err)
}

// Strategy sets the strategy of the built validator.
func (b *Builder[T]) Strategy(s Strategy) *Builder[T] {
	b.strategy = s
	return b
}

// Build returns the assembled validator, or every construction error joined.
func (b *Builder[T]) Build() (*Chained[T], error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return NewChained(b.strategy, b.validators...)
}

// MustBuild is the panic-on-error variant of Build.
func (b *Builder[T]) MustBuild() *Chained[T] {
	return must(b.Build())
}

func (b *Builder[T]) append(v Validator[T], err error) *Builder[T] {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.Add(v)
}
