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

package async

import (
	"context"

	"dirpx.dev/doption"
	"dirpx.dev/doption/reason"
	"dirpx.dev/doption/violation"
)

// Adapters over Task[Option[T]]. Each awaits its source exactly once and
// then applies the synchronous combinator of the same name, so final values
// and reason chains are identical to the synchronous results. The *Task
// variants take transformations that are themselves pending.

// Map transforms the payload of a pending optional once it is awaited.
func Map[T, U any](t Task[doption.Option[T]], mapping func(T) U, subsequent ...*reason.Error) Task[doption.Option[U]] {
	if t == nil {
		violation.PanicNilArg("async.Map", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.Map", "mapping")
	}
	return func(ctx context.Context) doption.Option[U] {
		return doption.Map(t(ctx), mapping, subsequent...)
	}
}

// MapTask is Map with a mapping that yields a pending payload. The inner
// task is awaited only when the source is present; a nil task handle is a
// misuse and panics before awaiting.
func MapTask[T, U any](t Task[doption.Option[T]], mapping func(T) Task[U], subsequent ...*reason.Error) Task[doption.Option[U]] {
	if t == nil {
		violation.PanicNilArg("async.MapTask", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.MapTask", "mapping")
	}
	return func(ctx context.Context) doption.Option[U] {
		o := t(ctx)
		v, ok := o.Value()
		if !ok {
			e, _ := o.Error()
			return propagate[U](e, subsequent)
		}
		pending := mapping(v)
		if pending == nil {
			violation.PanicInvalidOp("async.MapTask", "mapping returned a nil task")
		}
		s, _ := o.Success()
		return doption.SomeWith(pending(ctx), s)
	}
}

// FlatMap chains a pending optional into the next optional, flattening one
// level, with the causal rewrite on both source and inner failure.
func FlatMap[T, U any](t Task[doption.Option[T]], mapping func(T) doption.Option[U], subsequent ...*reason.Error) Task[doption.Option[U]] {
	if t == nil {
		violation.PanicNilArg("async.FlatMap", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.FlatMap", "mapping")
	}
	return func(ctx context.Context) doption.Option[U] {
		return doption.FlatMap(t(ctx), mapping, subsequent...)
	}
}

// FlatMapTask is FlatMap with a mapping that yields a pending optional.
func FlatMapTask[T, U any](t Task[doption.Option[T]], mapping func(T) Task[doption.Option[U]], subsequent ...*reason.Error) Task[doption.Option[U]] {
	if t == nil {
		violation.PanicNilArg("async.FlatMapTask", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.FlatMapTask", "mapping")
	}
	return func(ctx context.Context) doption.Option[U] {
		o := t(ctx)
		v, ok := o.Value()
		if !ok {
			e, _ := o.Error()
			return propagate[U](e, subsequent)
		}
		pending := mapping(v)
		if pending == nil {
			violation.PanicInvalidOp("async.FlatMapTask", "mapping returned a nil task")
		}
		inner := pending(ctx)
		if inner.HasValue() {
			return inner
		}
		e, _ := inner.Error()
		return propagate[U](e, subsequent)
	}
}

// FlatMapOutcome collapses a pending value optional into a unit outcome.
func FlatMapOutcome[T any](t Task[doption.Option[T]], mapping func(T) doption.Outcome, subsequent ...*reason.Error) Task[doption.Outcome] {
	if t == nil {
		violation.PanicNilArg("async.FlatMapOutcome", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.FlatMapOutcome", "mapping")
	}
	return func(ctx context.Context) doption.Outcome {
		return doption.FlatMapOutcome(t(ctx), mapping, subsequent...)
	}
}

// FlatMapOutcomeTask is FlatMapOutcome with a mapping that yields a pending
// outcome.
func FlatMapOutcomeTask[T any](t Task[doption.Option[T]], mapping func(T) Task[doption.Outcome], subsequent ...*reason.Error) Task[doption.Outcome] {
	if t == nil {
		violation.PanicNilArg("async.FlatMapOutcomeTask", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.FlatMapOutcomeTask", "mapping")
	}
	return func(ctx context.Context) doption.Outcome {
		o := t(ctx)
		v, ok := o.Value()
		if !ok {
			e, _ := o.Error()
			return propagateOutcome(e, subsequent)
		}
		pending := mapping(v)
		if pending == nil {
			violation.PanicInvalidOp("async.FlatMapOutcomeTask", "mapping returned a nil task")
		}
		inner := pending(ctx)
		if inner.IsSuccessful() {
			return inner
		}
		e, _ := inner.Error()
		return propagateOutcome(e, subsequent)
	}
}

// Filter keeps an awaited present value only when the predicate holds.
func Filter[T any](t Task[doption.Option[T]], predicate func(T) bool, failure *reason.Error, subsequent ...*reason.Error) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.Filter", "task")
	}
	if predicate == nil {
		violation.PanicNilArg("async.Filter", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("async.Filter", "failure")
	}
	return func(ctx context.Context) doption.Option[T] {
		return t(ctx).Filter(predicate, failure, subsequent...)
	}
}

// FilterTask is Filter with a pending predicate. The predicate task is
// built and awaited only when the source is present.
func FilterTask[T any](t Task[doption.Option[T]], predicate func(T) Task[bool], failure *reason.Error, subsequent ...*reason.Error) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.FilterTask", "task")
	}
	if predicate == nil {
		violation.PanicNilArg("async.FilterTask", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("async.FilterTask", "failure")
	}
	return func(ctx context.Context) doption.Option[T] {
		o := t(ctx)
		v, ok := o.Value()
		if !ok {
			e, _ := o.Error()
			return propagate[T](e, subsequent)
		}
		pending := predicate(v)
		if pending == nil {
			violation.PanicInvalidOp("async.FilterTask", "predicate returned a nil task")
		}
		if pending(ctx) {
			return o
		}
		return doption.None[T](failure)
	}
}

// NotNull converts an awaited present-but-nil payload into None(failure).
func NotNull[T any](t Task[doption.Option[T]], failure *reason.Error) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.NotNull", "task")
	}
	if failure == nil {
		violation.PanicNilArg("async.NotNull", "failure")
	}
	return func(ctx context.Context) doption.Option[T] {
		return t(ctx).NotNull(failure)
	}
}

// ValueOr unwraps the awaited payload, substituting alternative when absent.
func ValueOr[T any](t Task[doption.Option[T]], alternative T) Task[T] {
	if t == nil {
		violation.PanicNilArg("async.ValueOr", "task")
	}
	return func(ctx context.Context) T {
		return t(ctx).ValueOr(alternative)
	}
}

// ValueOrFunc unwraps the awaited payload, calling the factory only on
// absence.
func ValueOrFunc[T any](t Task[doption.Option[T]], factory func() T) Task[T] {
	if t == nil {
		violation.PanicNilArg("async.ValueOrFunc", "task")
	}
	if factory == nil {
		violation.PanicNilArg("async.ValueOrFunc", "factory")
	}
	return func(ctx context.Context) T {
		return t(ctx).ValueOrFunc(factory)
	}
}

// ValueOrTask is ValueOrFunc with a factory that yields a pending
// alternative, awaited only on absence.
func ValueOrTask[T any](t Task[doption.Option[T]], factory func() Task[T]) Task[T] {
	if t == nil {
		violation.PanicNilArg("async.ValueOrTask", "task")
	}
	if factory == nil {
		violation.PanicNilArg("async.ValueOrTask", "factory")
	}
	return func(ctx context.Context) T {
		o := t(ctx)
		if v, ok := o.Value(); ok {
			return v
		}
		pending := factory()
		if pending == nil {
			violation.PanicInvalidOp("async.ValueOrTask", "factory returned a nil task")
		}
		return pending(ctx)
	}
}

// Or rewraps the alternative value into a new Some when the awaited
// optional is absent.
func Or[T any](t Task[doption.Option[T]], alternative T, success ...*reason.Success) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.Or", "task")
	}
	return func(ctx context.Context) doption.Option[T] {
		return t(ctx).Or(alternative, success...)
	}
}

// OrFunc is Or with a lazily evaluated alternative factory.
func OrFunc[T any](t Task[doption.Option[T]], factory func() T, success ...*reason.Success) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.OrFunc", "task")
	}
	if factory == nil {
		violation.PanicNilArg("async.OrFunc", "factory")
	}
	return func(ctx context.Context) doption.Option[T] {
		return t(ctx).OrFunc(factory, success...)
	}
}

// Else substitutes the entire optional when the awaited one is absent.
func Else[T any](t Task[doption.Option[T]], alternative doption.Option[T]) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.Else", "task")
	}
	return func(ctx context.Context) doption.Option[T] {
		return t(ctx).Else(alternative)
	}
}

// ElseFunc is Else with a lazily evaluated alternative factory.
func ElseFunc[T any](t Task[doption.Option[T]], factory func() doption.Option[T]) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.ElseFunc", "task")
	}
	if factory == nil {
		violation.PanicNilArg("async.ElseFunc", "factory")
	}
	return func(ctx context.Context) doption.Option[T] {
		return t(ctx).ElseFunc(factory)
	}
}

// ElseTask is Else with a factory that yields a pending alternative,
// awaited only on absence.
func ElseTask[T any](t Task[doption.Option[T]], factory func() Task[doption.Option[T]]) Task[doption.Option[T]] {
	if t == nil {
		violation.PanicNilArg("async.ElseTask", "task")
	}
	if factory == nil {
		violation.PanicNilArg("async.ElseTask", "factory")
	}
	return func(ctx context.Context) doption.Option[T] {
		o := t(ctx)
		if o.HasValue() {
			return o
		}
		pending := factory()
		if pending == nil {
			violation.PanicInvalidOp("async.ElseTask", "factory returned a nil task")
		}
		return pending(ctx)
	}
}

// Match awaits the optional and runs exactly one branch, yielding its
// result.
func Match[T, U any](t Task[doption.Option[T]], some func(T, *reason.Success) U, none func(*reason.Error) U) Task[U] {
	if t == nil {
		violation.PanicNilArg("async.Match", "task")
	}
	if some == nil {
		violation.PanicNilArg("async.Match", "some")
	}
	if none == nil {
		violation.PanicNilArg("async.Match", "none")
	}
	return func(ctx context.Context) U {
		return doption.Match(t(ctx), some, none)
	}
}
