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

package label

import "strings"

// Well-known classes.
//
// The first segment of a label is its class: the broad, transport-agnostic
// failure category. Deeper segments narrow it down ("auth.token.expired").
// The classes below are the ones the library ships default status mappings
// for; domains are free to introduce their own classes, which simply have no
// default and fall through to the mapper's fallback.
const (
	// Internal is the class for non-classified service/domain failures.
	// Use it as the fallback when no more specific class applies; the root
	// cause usually travels as the error's exception or cause chain.
	Internal Label = "internal"

	// Validation is the class for input that violates a structural or
	// semantic invariant: bad format, range, charset, or cross-field
	// consistency. Narrow with the failing aspect, e.g.
	// "validation.field.required".
	Validation Label = "validation"

	// NotFound is the class for lookups whose target does not exist in the
	// current domain scope, e.g. "not_found.user".
	NotFound Label = "not_found"

	// Conflict is the class for domain-state conflicts: uniqueness
	// violations, version mismatches, concurrent updates.
	Conflict Label = "conflict"

	// Auth is the class for authentication and authorization failures.
	// Narrow with the mechanism and condition, e.g. "auth.token.expired",
	// "auth.permission.denied".
	Auth Label = "auth"

	// Timeout is the class for operations that exceeded their time budget.
	Timeout Label = "timeout"

	// Unavailable is the class for temporarily unreachable dependencies:
	// storage outages, network partitions, draining services. Narrow with
	// the dependency, e.g. "unavailable.storage.pg".
	Unavailable Label = "unavailable"

	// RateLimited is the class for callers that exceeded an allowed rate or
	// quota in the current window.
	RateLimited Label = "rate_limited"
)

// Class returns the label's first segment — its broad failure category.
// The class of Empty is Empty.
func (l Label) Class() Label {
	if i := strings.IndexByte(string(l), '.'); i >= 0 {
		return l[:i]
	}
	return l
}
