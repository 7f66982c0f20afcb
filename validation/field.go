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
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every construction-time failure of this
// package: nil extractors, blank field names, nil children, unknown
// strategies. These are programming errors and are reported eagerly.
var ErrInvalidArgument = errors.New("validation: invalid argument")

// Check inspects one extracted field value. name is the human-readable field
// name and is only used to build messages and metadata.
type Check[F any] func(name string, value F) Result

// Field validates a single value extracted from T.
type Field[T, F any] struct {
	extract func(T) F
	name    string
	check   Check[F]
}

// NewField builds a Field validator. It fails with ErrInvalidArgument when
// extract or check is nil or when name is blank.
func NewField[T, F any](extract func(T) F, name string, check Check[F]) (*Field[T, F], error) {
	if extract == nil {
		return nil, fmt.Errorf("%w: nil extractor for field %q", ErrInvalidArgument, name)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: blank field name", ErrInvalidArgument)
	}
	if check == nil {
		return nil, fmt.Errorf("%w: nil check for field %q", ErrInvalidArgument, name)
	}
	return &Field[T, F]{extract: extract, name: name, check: check}, nil
}

// MustField is the panic-on-error variant of NewField.
func MustField[T, F any](extract func(T) F, name string, check Check[F]) *Field[T, F] {
	return must(NewField(extract, name, check))
}

// Name returns the field name used in messages.
func (f *Field[T, F]) Name() string { return f.name }

// Validate extracts the field from v and checks it.
func (f *Field[T, F]) Validate(v T) Result {
	return f.check(f.name, f.extract(v))
}

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
