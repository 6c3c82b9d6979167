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
	"dirpx.dev/doption/violation"
)

// Outcome is the value-less optional: either Successful, carrying a
// reason.Success, or Unsuccessful, carrying a reason.Error. Exactly one
// side is populated, decided once at construction.
//
// Like Option, Outcome is an immutable value type constructed through the
// package façade; the zero value is an Unsuccessful with an empty error.
type Outcome struct {
	successful bool
	success    *reason.Success
	err        *reason.Error
}

func successfulWith(s *reason.Success) Outcome {
	if s == nil {
		s = reason.NewSuccess("")
	}
	return Outcome{successful: true, success: s}
}

func unsuccessfulWith(e *reason.Error) Outcome {
	return Outcome{err: e}
}

// IsSuccessful reports whether the outcome succeeded.
func (o Outcome) IsSuccessful() bool { return o.successful }

// Success returns the attached success reason when successful.
func (o Outcome) Success() (*reason.Success, bool) {
	if !o.successful {
		return nil, false
	}
	return o.successReason(), true
}

// Error returns the attached error reason when unsuccessful.
func (o Outcome) Error() (*reason.Error, bool) {
	if o.successful {
		return nil, false
	}
	return o.errorReason(), true
}

func (o Outcome) successReason() *reason.Success {
	if o.success == nil {
		return reason.NewSuccess("")
	}
	return o.success
}

func (o Outcome) errorReason() *reason.Error {
	if o.err == nil {
		return reason.NewError("")
	}
	return o.err
}

// Else substitutes the alternative outcome when unsuccessful.
func (o Outcome) Else(alternative Outcome) Outcome {
	if o.successful {
		return o
	}
	return alternative
}

// ElseFunc is Else with a lazily evaluated alternative factory.
func (o Outcome) ElseFunc(factory func() Outcome) Outcome {
	if factory == nil {
		violation.PanicNilArg("Outcome.ElseFunc", "factory")
	}
	if o.successful {
		return o
	}
	return factory()
}

// Match invokes exactly one branch. For the value-returning form see the
// package-level MatchOutcome function.
func (o Outcome) Match(some func(*reason.Success), none func(*reason.Error)) {
	if some == nil {
		violation.PanicNilArg("Outcome.Match", "some")
	}
	if none == nil {
		violation.PanicNilArg("Outcome.Match", "none")
	}
	if o.successful {
		some(o.successReason())
		return
	}
	none(o.errorReason())
}

// MatchSome invokes f only when the outcome is successful.
func (o Outcome) MatchSome(f func(*reason.Success)) {
	if f == nil {
		violation.PanicNilArg("Outcome.MatchSome", "f")
	}
	if o.successful {
		f(o.successReason())
	}
}

// MatchNone invokes f only when the outcome is unsuccessful.
func (o Outcome) MatchNone(f func(*reason.Error)) {
	if f == nil {
		violation.PanicNilArg("Outcome.MatchNone", "f")
	}
	if !o.successful {
		f(o.errorReason())
	}
}

// FlatMap chains a successful outcome into the next one. The causal rewrite
// applies both when the source is unsuccessful and when the mapped result
// is: in either case a supplied subsequent error surfaces with the failing
// error linked as its cause; the mapping is never invoked on an
// unsuccessful source.
func (o Outcome) FlatMap(mapping func() Outcome, subsequent ...*reason.Error) Outcome {
	if mapping == nil {
		violation.PanicNilArg("Outcome.FlatMap", "mapping")
	}
	if !o.successful {
		return unsuccessfulWith(rewrite(o.errorReason(), subsequent))
	}
	inner := mapping()
	if inner.successful {
		return inner
	}
	return unsuccessfulWith(rewrite(inner.errorReason(), subsequent))
}

// FlatMapSome rewraps a successful outcome with the supplied success,
// linking the existing success as its antecedent. An unsuccessful outcome
// passes through unchanged.
func (o Outcome) FlatMapSome(success *reason.Success) Outcome {
	if success == nil {
		violation.PanicNilArg("Outcome.FlatMapSome", "success")
	}
	if !o.successful {
		return o
	}
	return successfulWith(success.EnabledBy(o.successReason()))
}

// FlatMapNone rewraps an unsuccessful outcome with the supplied error,
// linking the existing error as its cause. A successful outcome passes
// through unchanged.
func (o Outcome) FlatMapNone(failure *reason.Error) Outcome {
	if failure == nil {
		violation.PanicNilArg("Outcome.FlatMapNone", "failure")
	}
	if o.successful {
		return o
	}
	return unsuccessfulWith(failure.CausedBy(o.errorReason()))
}

// All yields the success reason as a 0-or-1 element sequence: one element
// when successful, none otherwise. Restartable.
func (o Outcome) All() iter.Seq[*reason.Success] {
	return func(yield func(*reason.Success) bool) {
		if o.successful {
			yield(o.successReason())
		}
	}
}

// String renders the outcome in the same shape as Option:
//
//	Successful
//	Successful('validated')
//	Unsuccessful
//	Unsuccessful(Error='msg')
func (o Outcome) String() string {
	if o.successful {
		if o.successReason().IsZero() {
			return "Successful"
		}
		return "Successful(" + o.successReason().String() + ")"
	}
	if o.errorReason().IsZero() {
		return "Unsuccessful"
	}
	return "Unsuccessful(Error=" + o.errorReason().String() + ")"
}
