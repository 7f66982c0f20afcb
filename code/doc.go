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

// Package code defines the closed catalogue of application error codes and the
// categories that group them.
//
// # Overview
//
// Every error condition the application can report has a stable numeric Code
// (e.g. 1003) and a symbolic name (e.g. "VALIDATION_INVALID_EMAIL"). Codes are
// grouped into categories that own disjoint numeric ranges:
//
//	HTTP_STANDARD  400..599
//	VALIDATION    1000..1999
//	BUSINESS      2000..2999
//	SECURITY      3000..3999
//	DATA          4000..4999
//	INTEGRATION   5000..5999
//	SYSTEM        9000..9999
//
// The category of a code is derived, never stored by hand: names starting with
// "HTTP_" belong to HTTP_STANDARD, every other code is classified by its
// thousands digit.
//
// # HTTP status
//
// Each registered code carries an explicit HTTP status which is authoritative.
// FallbackStatus derives a status arithmetically from the numeric range and is
// used only for codes that are not registered. Where the two rules disagree
// for a registered code, Discrepancies reports it.
//
// # Self-check
//
// The registry is validated once at package initialisation (see Check). A
// broken table is a programming error and panics at start-up instead of
// surfacing as a wrong status at run time.
package code
