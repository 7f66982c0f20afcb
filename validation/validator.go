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

// Validator checks one input and reports the outcome.
//
// Expected failures are returned as an invalid Result, never as a panic.
// Panics raised while extracting a field propagate to the caller unchanged.
//
// Implementations in this package are immutable after construction and safe
// for concurrent use.
type Validator[T any] interface {
	Validate(v T) Result
}

// Func adapts an ordinary function to Validator.
type Func[T any] func(v T) Result

// Validate calls f(v).
func (f Func[T]) Validate(v T) Result { return f(v) }
