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

// The transforms below change the payload type, so they are package-level
// functions: Go methods cannot introduce new type parameters.

// Map transforms the payload of a present optional, carrying its success
// reason over to the result. On absence the mapping is never invoked and
// the error propagates through the causal rewrite.
func Map[T, U any](o Option[T], mapping func(T) U, subsequent ...*reason.Error) Option[U] {
	if mapping == nil {
		violation.PanicNilArg("doption.Map", "mapping")
	}
	if !o.hasValue {
		return noneWith[U](rewrite(o.errorReason(), subsequent))
	}
	return someWith(mapping(o.value), o.successReason())
}

// FlatMap transforms a present optional into another optional, flattening
// one level. The causal rewrite applies both when the source is absent and
// when the mapped result is: in either case a supplied subsequent error
// surfaces with the failing error as its cause.
func FlatMap[T, U any](o Option[T], mapping func(T) Option[U], subsequent ...*reason.Error) Option[U] {
	if mapping == nil {
		violation.PanicNilArg("doption.FlatMap", "mapping")
	}
	if !o.hasValue {
		return noneWith[U](rewrite(o.errorReason(), subsequent))
	}
	inner := mapping(o.value)
	if inner.hasValue {
		return inner
	}
	return noneWith[U](rewrite(inner.errorReason(), subsequent))
}

// FlatMapOutcome collapses a value optional into a unit outcome via the
// mapping, with the same rewrite rule as FlatMap.
func FlatMapOutcome[T any](o Option[T], mapping func(T) Outcome, subsequent ...*reason.Error) Outcome {
	if mapping == nil {
		violation.PanicNilArg("doption.FlatMapOutcome", "mapping")
	}
	if !o.hasValue {
		return unsuccessfulWith(rewrite(o.errorReason(), subsequent))
	}
	inner := mapping(o.value)
	if inner.successful {
		return inner
	}
	return unsuccessfulWith(rewrite(inner.errorReason(), subsequent))
}

// Flatten collapses a nested optional by one level. Absence at either level
// yields absence: the outer error when the outer is None, otherwise the
// inner optional as-is.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	return FlatMap(o, func(inner Option[T]) Option[T] { return inner })
}

// Match is the value-returning match: exactly one branch runs and its
// result is returned.
func Match[T, U any](o Option[T], some func(T, *reason.Success) U, none func(*reason.Error) U) U {
	if some == nil {
		violation.PanicNilArg("doption.Match", "some")
	}
	if none == nil {
		violation.PanicNilArg("doption.Match", "none")
	}
	if o.hasValue {
		return some(o.value, o.successReason())
	}
	return none(o.errorReason())
}

// MatchOutcome is the value-returning match for unit outcomes.
func MatchOutcome[U any](o Outcome, some func(*reason.Success) U, none func(*reason.Error) U) U {
	if some == nil {
		violation.PanicNilArg("doption.MatchOutcome", "some")
	}
	if none == nil {
		violation.PanicNilArg("doption.MatchOutcome", "none")
	}
	if o.successful {
		return some(o.successReason())
	}
	return none(o.errorReason())
}
