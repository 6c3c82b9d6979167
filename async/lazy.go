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

// LazyOption is the pending counterpart of doption.LazyOption: a rule whose
// predicate is itself a task. Nothing is awaited until Resolve.
type LazyOption struct {
	predicate Task[bool]
	success   *reason.Success
	failure   *reason.Error
}

// Lazy creates a deferred rule over a pending predicate. The predicate and
// failure are required; a nil success is replaced by the default empty one.
func Lazy(predicate Task[bool], success *reason.Success, failure *reason.Error) LazyOption {
	if predicate == nil {
		violation.PanicNilArg("async.Lazy", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("async.Lazy", "failure")
	}
	if success == nil {
		success = reason.NewSuccess("")
	}
	return LazyOption{predicate: predicate, success: success, failure: failure}
}

// Resolve awaits the predicate and yields the corresponding outcome.
// Resolving a zero-value LazyOption is a misuse and panics.
func (l LazyOption) Resolve(ctx context.Context) doption.Outcome {
	if l.predicate == nil {
		violation.PanicInvalidOp("async.LazyOption.Resolve", "zero-value lazy option has no predicate")
	}
	if l.predicate(ctx) {
		return doption.Successful(l.success)
	}
	return doption.Unsuccessful(l.failure)
}

// Reduce folds a rule pipeline into a single pending outcome. The rule
// sequence is validated eagerly, but no predicate is awaited until the
// returned task is; the fold is strictly sequential and the first rule that
// resolves unsuccessfully short-circuits it, exactly like the synchronous
// Reduce.
func Reduce(rules []LazyOption) Task[doption.Outcome] {
	if len(rules) == 0 {
		violation.PanicInvalidArg("async.Reduce", "empty rule sequence")
	}
	return func(ctx context.Context) doption.Outcome {
		acc := doption.Successful(nil)
		for _, rule := range rules {
			acc = acc.FlatMap(func() doption.Outcome { return rule.Resolve(ctx) })
		}
		return acc
	}
}
