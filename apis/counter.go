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

package apis

// ErrorCounter receives one increment per error rendered at a boundary.
//
// name identifies the kind of failure (a code name for structured errors, a
// Go type name for anything else); category is the category name or "".
// Implementations must be safe for concurrent use.
type ErrorCounter interface {
	IncrementErrorCount(name, category string)
}

// ErrorCounterFunc adapts a function to ErrorCounter.
type ErrorCounterFunc func(name, category string)

// IncrementErrorCount calls f(name, category).
func (f ErrorCounterFunc) IncrementErrorCount(name, category string) { f(name, category) }
