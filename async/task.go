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
)

// Task is a pending computation: invoking it with a context awaits it and
// produces its value. Adapters in this package build tasks out of tasks;
// nothing runs until the outermost task is invoked.
//
// Failure is never signaled through the task itself — a task that can fail
// yields an Option or Outcome carrying the failure as data.
type Task[T any] func(ctx context.Context) T

// Completed wraps an already-known value into a task that yields it
// immediately on await.
func Completed[T any](v T) Task[T] {
	return func(context.Context) T { return v }
}

// propagate rebuilds an absent optional under the target payload type,
// applying the same causal rewrite as the synchronous combinators: a
// supplied subsequent error surfaces with the prior error linked as its
// cause, otherwise the prior error propagates unchanged.
func propagate[U any](prior *reason.Error, subsequent []*reason.Error) doption.Option[U] {
	if len(subsequent) > 0 && subsequent[0] != nil {
		return doption.None[U](subsequent[0].CausedBy(prior))
	}
	return doption.None[U](prior)
}

// propagateOutcome is propagate for the unit optional.
func propagateOutcome(prior *reason.Error, subsequent []*reason.Error) doption.Outcome {
	if len(subsequent) > 0 && subsequent[0] != nil {
		return doption.Unsuccessful(subsequent[0].CausedBy(prior))
	}
	return doption.Unsuccessful(prior)
}
