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
	"reflect"

	"dirpx.dev/doption/reason"
	"dirpx.dev/doption/violation"
)

// Contains reports whether the optional is Some and its payload equals v.
// Equality is structural (reflect.DeepEqual); two nil payloads count as
// equal regardless of their dynamic types.
func (o Option[T]) Contains(v T) bool {
	if !o.hasValue {
		return false
	}
	if isNil(any(o.value)) && isNil(any(v)) {
		return true
	}
	return reflect.DeepEqual(o.value, v)
}

// Exists reports whether the optional is Some and the predicate holds for
// its payload. The predicate is never invoked on None.
func (o Option[T]) Exists(predicate func(T) bool) bool {
	if predicate == nil {
		violation.PanicNilArg("Option.Exists", "predicate")
	}
	return o.hasValue && predicate(o.value)
}

// ValueOr unwraps the payload, substituting alternative when absent.
func (o Option[T]) ValueOr(alternative T) T {
	if o.hasValue {
		return o.value
	}
	return alternative
}

// ValueOrFunc unwraps the payload, calling the factory only when absent.
func (o Option[T]) ValueOrFunc(factory func() T) T {
	if factory == nil {
		violation.PanicNilArg("Option.ValueOrFunc", "factory")
	}
	if o.hasValue {
		return o.value
	}
	return factory()
}

// Or returns the optional unchanged when Some; otherwise it rewraps the
// alternative value into a new Some. An optional replacement success may be
// supplied as a trailing argument; without one the new Some carries a
// default success.
func (o Option[T]) Or(alternative T, success ...*reason.Success) Option[T] {
	if o.hasValue {
		return o
	}
	return someWith(alternative, firstSuccess(success))
}

// OrFunc is Or with a lazily evaluated alternative factory.
func (o Option[T]) OrFunc(factory func() T, success ...*reason.Success) Option[T] {
	if factory == nil {
		violation.PanicNilArg("Option.OrFunc", "factory")
	}
	if o.hasValue {
		return o
	}
	return someWith(factory(), firstSuccess(success))
}

// Else substitutes the entire optional when absent.
func (o Option[T]) Else(alternative Option[T]) Option[T] {
	if o.hasValue {
		return o
	}
	return alternative
}

// ElseFunc is Else with a lazily evaluated alternative factory.
func (o Option[T]) ElseFunc(factory func() Option[T]) Option[T] {
	if factory == nil {
		violation.PanicNilArg("Option.ElseFunc", "factory")
	}
	if o.hasValue {
		return o
	}
	return factory()
}

// Match invokes exactly one branch: some with the payload and its success
// when present, none with the error when absent. For the value-returning
// form see the package-level Match function.
func (o Option[T]) Match(some func(T, *reason.Success), none func(*reason.Error)) {
	if some == nil {
		violation.PanicNilArg("Option.Match", "some")
	}
	if none == nil {
		violation.PanicNilArg("Option.Match", "none")
	}
	if o.hasValue {
		some(o.value, o.successReason())
		return
	}
	none(o.errorReason())
}

// MatchSome invokes f only when the optional is Some.
func (o Option[T]) MatchSome(f func(T, *reason.Success)) {
	if f == nil {
		violation.PanicNilArg("Option.MatchSome", "f")
	}
	if o.hasValue {
		f(o.value, o.successReason())
	}
}

// MatchNone invokes f only when the optional is None.
func (o Option[T]) MatchNone(f func(*reason.Error)) {
	if f == nil {
		violation.PanicNilArg("Option.MatchNone", "f")
	}
	if !o.hasValue {
		f(o.errorReason())
	}
}

// Filter keeps a present value only when the predicate holds; a present
// value failing the predicate becomes None(failure). An absent optional
// propagates its error through the causal rewrite — the predicate is never
// invoked.
func (o Option[T]) Filter(predicate func(T) bool, failure *reason.Error, subsequent ...*reason.Error) Option[T] {
	if predicate == nil {
		violation.PanicNilArg("Option.Filter", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("Option.Filter", "failure")
	}
	return o.filter(predicate, func(T) *reason.Error { return failure }, subsequent)
}

// FilterWith is Filter with a failure factory, invoked with the rejected
// payload only when the predicate actually fails.
func (o Option[T]) FilterWith(predicate func(T) bool, failure func(T) *reason.Error, subsequent ...*reason.Error) Option[T] {
	if predicate == nil {
		violation.PanicNilArg("Option.FilterWith", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("Option.FilterWith", "failure")
	}
	return o.filter(predicate, failure, subsequent)
}

func (o Option[T]) filter(predicate func(T) bool, failure func(T) *reason.Error, subsequent []*reason.Error) Option[T] {
	if !o.hasValue {
		return noneWith[T](rewrite(o.errorReason(), subsequent))
	}
	if predicate(o.value) {
		return o
	}
	return noneWith[T](failure(o.value))
}

// NotNull converts a present-but-nil payload into None(failure). This is
// the one operation that distinguishes "has a value" from "has a non-nil
// value"; everything else treats the two identically.
func (o Option[T]) NotNull(failure *reason.Error) Option[T] {
	if failure == nil {
		violation.PanicNilArg("Option.NotNull", "failure")
	}
	if o.hasValue && isNil(any(o.value)) {
		return noneWith[T](failure)
	}
	return o
}

// firstSuccess picks the optional trailing success argument.
func firstSuccess(success []*reason.Success) *reason.Success {
	if len(success) > 0 {
		return success[0]
	}
	return nil
}
