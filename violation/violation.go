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

package violation

import "fmt"

// Kind classifies an API misuse.
type Kind int

const (
	// NilArgument marks a required function or delegate argument that was nil.
	NilArgument Kind = iota + 1

	// InvalidArgument marks an argument value that violates a documented
	// precondition, e.g. building a copy-of-failure outcome from a still
	// successful optional, or reducing an empty rule sequence.
	InvalidArgument

	// InvalidOperation marks an operation that cannot proceed because of a
	// state the caller authored, e.g. a mapping that returned a nil pending
	// task handle instead of a task yielding a value.
	InvalidOperation
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case NilArgument:
		return "nil_argument"
	case InvalidArgument:
		return "invalid_argument"
	case InvalidOperation:
		return "invalid_operation"
	}
	return "unknown"
}

// Violation describes a single API misuse. It is panicked, never returned.
type Violation struct {
	// Kind is the misuse class.
	Kind Kind

	// Op is the public entry point that detected the misuse, e.g.
	// "doption.FlatMap" or "async.MapTask".
	Op string

	// Detail names what exactly was wrong, e.g. `nil "mapping"` or
	// "source optional has a value".
	Detail string
}

// Error implements the built-in error interface so that recovered violations
// read well in test output and crash logs.
func (v *Violation) Error() string {
	return fmt.Sprintf("doption: %s in %s: %s", v.Kind, v.Op, v.Detail)
}

// PanicNilArg panics with a NilArgument violation for the named argument.
func PanicNilArg(op, arg string) {
	panic(&Violation{Kind: NilArgument, Op: op, Detail: fmt.Sprintf("nil %q", arg)})
}

// PanicInvalidArg panics with an InvalidArgument violation.
func PanicInvalidArg(op, detail string) {
	panic(&Violation{Kind: InvalidArgument, Op: op, Detail: detail})
}

// PanicInvalidOp panics with an InvalidOperation violation.
func PanicInvalidOp(op, detail string) {
	panic(&Violation{Kind: InvalidOperation, Op: op, Detail: detail})
}
