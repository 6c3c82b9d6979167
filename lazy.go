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

// LazyOption is a deferred validation rule: a predicate plus the two
// reasons it can resolve to. Nothing runs until Resolve, which evaluates
// the predicate and yields Successful(success) or Unsuccessful(failure).
//
// A LazyOption holds no resolution state — it is a computation descriptor,
// and each Resolve call re-evaluates the predicate.
type LazyOption struct {
	predicate func() bool
	success   *reason.Success
	failure   *reason.Error
}

// Lazy creates a deferred rule. The predicate and failure are required; a
// nil success is replaced by the default empty one.
func Lazy(predicate func() bool, success *reason.Success, failure *reason.Error) LazyOption {
	if predicate == nil {
		violation.PanicNilArg("doption.Lazy", "predicate")
	}
	if failure == nil {
		violation.PanicNilArg("doption.Lazy", "failure")
	}
	if success == nil {
		success = reason.NewSuccess("")
	}
	return LazyOption{predicate: predicate, success: success, failure: failure}
}

// Resolve evaluates the predicate and yields the corresponding outcome.
// Resolving a zero-value LazyOption is a misuse and panics.
func (l LazyOption) Resolve() Outcome {
	if l.predicate == nil {
		violation.PanicInvalidOp("LazyOption.Resolve", "zero-value lazy option has no predicate")
	}
	if l.predicate() {
		return successfulWith(l.success)
	}
	return unsuccessfulWith(l.failure)
}

// Reduce folds a rule pipeline left to right, starting from a successful
// seed and chaining through Outcome.FlatMap. Evaluation is strictly lazy
// and sequential: the first rule that resolves unsuccessfully short-
// circuits the fold, and later predicates are never invoked.
//
// An empty rule sequence is a precondition violation and panics — it is not
// the same thing as "no rule failed".
func Reduce(rules []LazyOption) Outcome {
	if len(rules) == 0 {
		violation.PanicInvalidArg("doption.Reduce", "empty rule sequence")
	}
	acc := successfulWith(nil)
	for _, rule := range rules {
		acc = acc.FlatMap(rule.Resolve)
	}
	return acc
}
