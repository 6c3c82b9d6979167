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
	"dirpx.dev/doption/reason"
	"dirpx.dev/doption/violation"
)

// Construction façade. All optionals enter the world through the functions
// here; preconditions are checked eagerly and misuse panics a
// *violation.Violation — there is no silent fallback.

// Some wraps a value into a present optional with a default success reason.
// The value may be nil; presence and nil-ness are orthogonal.
func Some[T any](v T) Option[T] {
	return someWith(v, nil)
}

// SomeWith wraps a value with an explicit success reason. A nil success is
// replaced by the default empty one.
func SomeWith[T any](v T, success *reason.Success) Option[T] {
	return someWith(v, success)
}

// None creates an absent optional carrying the given error reason.
func None[T any](failure *reason.Error) Option[T] {
	if failure == nil {
		violation.PanicNilArg("doption.None", "failure")
	}
	return noneWith[T](failure)
}

// Nonef creates an absent optional with a formatted error message.
func Nonef[T any](format string, args ...any) Option[T] {
	return noneWith[T](reason.Errorf(format, args...))
}

// NoneErr creates an absent optional wrapping a native Go error as an
// exceptional reason.
func NoneErr[T any](err error) Option[T] {
	if err == nil {
		violation.PanicNilArg("doption.NoneErr", "err")
	}
	return noneWith[T](reason.Exceptional(err))
}

// SomeWhen wraps the value when the predicate holds, otherwise yields
// None(failure).
func SomeWhen[T any](v T, predicate func(T) bool, failure *reason.Error) Option[T] {
	if predicate == nil {
		violation.PanicNilArg("doption.SomeWhen", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("doption.SomeWhen", "failure")
	}
	if predicate(v) {
		return someWith(v, nil)
	}
	return noneWith[T](failure)
}

// NoneWhen yields None(failure) when the predicate holds, otherwise it
// wraps the value. The mirror of SomeWhen.
func NoneWhen[T any](v T, predicate func(T) bool, failure *reason.Error) Option[T] {
	if predicate == nil {
		violation.PanicNilArg("doption.NoneWhen", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("doption.NoneWhen", "failure")
	}
	if predicate(v) {
		return noneWith[T](failure)
	}
	return someWith(v, nil)
}

// SomeNotNull wraps the value unless it is nil (or a typed nil), in which
// case it yields None(failure).
func SomeNotNull[T any](v T, failure *reason.Error) Option[T] {
	if failure == nil {
		violation.PanicNilArg("doption.SomeNotNull", "failure")
	}
	if isNil(any(v)) {
		return noneWith[T](failure)
	}
	return someWith(v, nil)
}

// FromPointer dereferences p into Some, or yields None(failure) when p is
// nil. This is the bridge from Go's pointer-as-optional convention.
func FromPointer[T any](p *T, failure *reason.Error) Option[T] {
	if failure == nil {
		violation.PanicNilArg("doption.FromPointer", "failure")
	}
	if p == nil {
		return noneWith[T](failure)
	}
	return someWith(*p, nil)
}

// Successful creates a successful outcome. A nil success is replaced by the
// default empty one.
func Successful(success *reason.Success) Outcome {
	return successfulWith(success)
}

// Unsuccessful creates a failed outcome carrying the given error reason.
func Unsuccessful(failure *reason.Error) Outcome {
	if failure == nil {
		violation.PanicNilArg("doption.Unsuccessful", "failure")
	}
	return unsuccessfulWith(failure)
}

// Unsuccessfulf creates a failed outcome with a formatted error message.
func Unsuccessfulf(format string, args ...any) Outcome {
	return unsuccessfulWith(reason.Errorf(format, args...))
}

// SuccessfulOf copies a present optional's success into a unit outcome.
// The source must be Some; calling it on None is a precondition violation
// and panics.
func SuccessfulOf[T any](o Option[T]) Outcome {
	if !o.hasValue {
		violation.PanicInvalidArg("doption.SuccessfulOf", "source optional is empty")
	}
	return successfulWith(o.successReason())
}

// UnsuccessfulOf copies an absent optional's error into a unit outcome.
// The source must be None; calling it on Some is a precondition violation
// and panics.
func UnsuccessfulOf[T any](o Option[T]) Outcome {
	if o.hasValue {
		violation.PanicInvalidArg("doption.UnsuccessfulOf", "source optional has a value")
	}
	return unsuccessfulWith(o.errorReason())
}
