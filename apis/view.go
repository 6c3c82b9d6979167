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

// ErrorView is a minimal, serializable snapshot of a domain error.
//
// This is not the concrete reason type used internally — it is the shape we
// are comfortable exposing over the wire or logging. Keeping it here allows
// the HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Label is the machine-readable classifier of the error, e.g.
	// "auth.token.expired". Empty means "not classified".
	Label string `json:"label,omitempty"`

	// Message is the human-readable failure message. For errors that wrap a
	// native Go error this includes the wrapped error's type prefix.
	Message string `json:"message,omitempty"`

	// Details carries the error's metadata entries in insertion order.
	Details []Detail `json:"details,omitempty"`

	// Causes lists the messages of the causal chain, nearest cause first,
	// following the first antecedent at every level. The view flattens the
	// chain so clients never have to walk a recursive structure.
	Causes []string `json:"causes,omitempty"`
}
