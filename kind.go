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

	"dirpx.dev/apperr/code"
)

// Kind is the closed set of error families. It lets a renderer pick a default
// code and category when an error carries no specific code, and it lets
// callers switch exhaustively over the families without a type hierarchy.
type Kind uint8

const (
	// KindGeneric is the zero value: an error with no particular family.
	KindGeneric Kind = iota
	// KindValidation covers malformed, missing or invalid input.
	KindValidation
	// KindResource covers missing, duplicate or conflicting resources.
	KindResource
	// KindOperation covers failed operations, transitions and batches.
	KindOperation
	// KindSystem covers internal failures and unavailable dependencies.
	KindSystem
)

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindGeneric, KindValidation, KindResource, KindOperation, KindSystem}
}

// String returns the lower-case family name.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindValidation:
		return "validation"
	case KindResource:
		return "resource"
	case KindOperation:
		return "operation"
	case KindSystem:
		return "system"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DefaultCode is the code used when an error of this kind is raised without
// one.
func (k Kind) DefaultCode() code.Code {
	switch k {
	case KindValidation:
		return code.ValidationError
	case KindResource:
		return code.DataNotFound
	case KindOperation:
		return code.BusinessInvalidOperation
	case KindSystem:
		return code.SystemError
	default:
		return code.HTTPInternalServerError
	}
}

// KindOf guesses the family of c from its category. Constructors in this
// package set the kind explicitly where the guess would be wrong, e.g. a
// duplicate resource carries a BUSINESS code but is a KindResource error.
func KindOf(c code.Code) Kind {
	switch c.Category() {
	case code.CategoryValidation:
		return KindValidation
	case code.CategoryData:
		return KindResource
	case code.CategoryBusiness:
		return KindOperation
	case code.CategorySystem, code.CategoryIntegration:
		return KindSystem
	default:
		return KindGeneric
	}
}
