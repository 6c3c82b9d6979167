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

package doption

import (
	"iter"

	"dirpx.dev/doption/reason"
)

// Option is a value optional: either Some — a payload of type T plus the
// reason.Success explaining its presence — or None, a reason.Error
// explaining the absence. Exactly one side is populated, decided once at
// construction.
//
// Option is an immutable value type; every operation returns a new instance
// and instances are safe to share across goroutines. Construct through the
// package façade (Some, None, SomeWhen, ...), not struct literals: the zero
// value is a None with an empty error.
type Option[T any] struct {
	hasValue bool
	value    T
	success  *reason.Success
	err      *reason.Error
}

// someWith and noneWith are the internal constructors; the public façade
// lives in construct.go.
func someWith[T any](v T, s *reason.Success) Option[T] {
	if s == nil {
		s = reason.NewSuccess("")
	}
	return Option[T]{hasValue: true, value: v, success: s}
}

func noneWith[T any](e *reason.Error) Option[T] {
	return Option[T]{err: e}
}

// HasValue reports whether the optional is Some. A present-but-nil payload
// still counts as present; see NotNull.
func (o Option[T]) HasValue() bool { return o.hasValue }

// Value returns the payload and whether it is present.
func (o Option[T]) Value() (T, bool) { return o.value, o.hasValue }

// Success returns the attached success reason when the optional is Some.
func (o Option[T]) Success() (*reason.Success, bool) {
	if !o.hasValue {
		return nil, false
	}
	return o.successReason(), true
}

// Error returns the attached error reason when the optional is None.
func (o Option[T]) Error() (*reason.Error, bool) {
	if o.hasValue {
		return nil, false
	}
	return o.errorReason(), true
}

// successReason tolerates zero-value instances, which carry nil reasons.
func (o Option[T]) successReason() *reason.Success {
	if o.success == nil {
		return reason.NewSuccess("")
	}
	return o.success
}

func (o Option[T]) errorReason() *reason.Error {
	if o.err == nil {
		return reason.NewError("")
	}
	return o.err
}

// All yields the optional's content as a 0-or-1 element sequence of
// (payload, success) pairs. The sequence is restartable: it ranges over the
// immutable state, not a one-shot cursor.
func (o Option[T]) All() iter.Seq2[T, *reason.Success] {
	return func(yield func(T, *reason.Success) bool) {
		if o.hasValue {
			yield(o.value, o.successReason())
		}
	}
}

// String renders the optional:
//
//	Some(1)
//	Some(x | 'parsed')
//	Some(null)
//	Some(Count = 3)      // slice, array, and map payloads stay bounded
//	None
//	None(Error='msg')
//
// The success part is included only when it carries information.
func (o Option[T]) String() string {
	if !o.hasValue {
		if o.errorReason().IsZero() {
			return "None"
		}
		return "None(Error=" + o.errorReason().String() + ")"
	}
	v := renderValue(any(o.value))
	if o.successReason().IsZero() {
		return "Some(" + v + ")"
	}
	return "Some(" + v + " | " + o.successReason().String() + ")"
}
