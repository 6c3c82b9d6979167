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

// Adapters over Task[Outcome], prefixed Outcome* because the value adapters
// own the bare names.

// OutcomeElse substitutes the alternative when the awaited outcome is
// unsuccessful.
func OutcomeElse(t Task[doption.Outcome], alternative doption.Outcome) Task[doption.Outcome] {
	if t == nil {
		violation.PanicNilArg("async.OutcomeElse", "task")
	}
	return func(ctx context.Context) doption.Outcome {
		return t(ctx).Else(alternative)
	}
}

// OutcomeElseTask is OutcomeElse with a factory that yields a pending
// alternative, awaited only when the source is unsuccessful.
func OutcomeElseTask(t Task[doption.Outcome], factory func() Task[doption.Outcome]) Task[doption.Outcome] {
	if t == nil {
		violation.PanicNilArg("async.OutcomeElseTask", "task")
	}
	if factory == nil {
		violation.PanicNilArg("async.OutcomeElseTask", "factory")
	}
	return func(ctx context.Context) doption.Outcome {
		o := t(ctx)
		if o.IsSuccessful() {
			return o
		}
		pending := factory()
		if pending == nil {
			violation.PanicInvalidOp("async.OutcomeElseTask", "factory returned a nil task")
		}
		return pending(ctx)
	}
}

// OutcomeMatch awaits the outcome and runs exactly one branch, yielding its
// result.
func OutcomeMatch[U any](t Task[doption.Outcome], some func(*reason.Success) U, none func(*reason.Error) U) Task[U] {
	if t == nil {
		violation.PanicNilArg("async.OutcomeMatch", "task")
	}
	if some == nil {
		violation.PanicNilArg("async.OutcomeMatch", "some")
	}
	if none == nil {
		violation.PanicNilArg("async.OutcomeMatch", "none")
	}
	return func(ctx context.Context) U {
		return doption.MatchOutcome(t(ctx), some, none)
	}
}

// OutcomeFlatMap chains a pending outcome into the next one, with the
// causal rewrite on both source and inner failure.
func OutcomeFlatMap(t Task[doption.Outcome], mapping func() doption.Outcome, subsequent ...*reason.Error) Task[doption.Outcome] {
	if t == nil {
		violation.PanicNilArg("async.OutcomeFlatMap", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.OutcomeFlatMap", "mapping")
	}
	return func(ctx context.Context) doption.Outcome {
		return t(ctx).FlatMap(mapping, subsequent...)
	}
}

// OutcomeFlatMapTask is OutcomeFlatMap with a mapping that yields a pending
// outcome. The mapping runs only when the source is successful; a nil task
// handle is a misuse and panics before awaiting.
func OutcomeFlatMapTask(t Task[doption.Outcome], mapping func() Task[doption.Outcome], subsequent ...*reason.Error) Task[doption.Outcome] {
	if t == nil {
		violation.PanicNilArg("async.OutcomeFlatMapTask", "task")
	}
	if mapping == nil {
		violation.PanicNilArg("async.OutcomeFlatMapTask", "mapping")
	}
	return func(ctx context.Context) doption.Outcome {
		o := t(ctx)
		if !o.IsSuccessful() {
			e, _ := o.Error()
			return propagateOutcome(e, subsequent)
		}
		pending := mapping()
		if pending == nil {
			violation.PanicInvalidOp("async.OutcomeFlatMapTask", "mapping returned a nil task")
		}
		inner := pending(ctx)
		if inner.IsSuccessful() {
			return inner
		}
		e, _ := inner.Error()
		return propagateOutcome(e, subsequent)
	}
}
