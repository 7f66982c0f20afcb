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

import (
	"fmt"
	"reflect"
)

// Chained runs an ordered list of child validators against the same input
// according to a Strategy.
//
// The child list is copied at construction and never changes afterwards, so a
// Chained value can be shared between goroutines.
type Chained[T any] struct {
	strategy   Strategy
	validators []Validator[T]
}

// NewChained builds a Chained validator. It fails with ErrInvalidArgument when
// the strategy is unknown or any child is nil.
func NewChained[T any](strategy Strategy, validators ...Validator[T]) (*Chained[T], error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, uint8(strategy))
	}
	vs, err := freeze(validators)
	if err != nil {
		return nil, err
	}
	return &Chained[T]{strategy: strategy, validators: vs}, nil
}

// MustChained is the panic-on-error variant of NewChained.
func MustChained[T any](strategy Strategy, validators ...Validator[T]) *Chained[T] {
	return must(NewChained(strategy, validators...))
}

// Strategy returns the configured strategy.
func (c *Chained[T]) Strategy() Strategy { return c.strategy }

// Validators returns a copy of the child list.
func (c *Chained[T]) Validators() []Validator[T] { return clone(c.validators) }

// Validate runs the children in order. The input is handed to every child
// unchanged, including nil. With no children the result is Valid().
func (c *Chained[T]) Validate(v T) Result {
	return run(c.validators, c.strategy, v)
}

// Composite runs every child validator and merges all failures in child
// order. It behaves like a Chained validator with ValidateAll.
type Composite[T any] struct {
	validators []Validator[T]
}

// NewComposite builds a Composite validator. It fails with ErrInvalidArgument
// when any child is nil.
func NewComposite[T any](validators ...Validator[T]) (*Composite[T], error) {
	vs, err := freeze(validators)
	if err != nil {
		return nil, err
	}
	return &Composite[T]{validators: vs}, nil
}

// MustComposite is the panic-on-error variant of NewComposite.
func MustComposite[T any](validators ...Validator[T]) *Composite[T] {
	return must(NewComposite(validators...))
}

// Validators returns a copy of the child list.
func (c *Composite[T]) Validators() []Validator[T] { return clone(c.validators) }

// Validate runs every child and concatenates their errors.
func (c *Composite[T]) Validate(v T) Result {
	return run(c.validators, ValidateAll, v)
}

func run[T any](validators []Validator[T], strategy Strategy, v T) Result {
	var errs []Error
	for _, child := range validators {
		r := child.Validate(v)
		if r.IsValid() {
			continue
		}
		if strategy == FailFast {
			return r
		}
		errs = append(errs, r.errs...)
	}
	return Invalid(errs...)
}

func freeze[T any](validators []Validator[T]) ([]Validator[T], error) {
	for i, v := range validators {
		if isNil(v) {
			return nil, fmt.Errorf("%w: validator #%d is nil", ErrInvalidArgument, i)
		}
	}
	return clone(validators), nil
}

func clone[T any](validators []Validator[T]) []Validator[T] {
	out := make([]Validator[T], len(validators))
	copy(out, validators)
	return out
}

// isNil catches both a nil interface and an interface holding a nil pointer
// or nil Func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
