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

// Package doption provides reason-carrying optionals for dirpx.
//
// An Option[T] is either Some(value) with an attached reason.Success, or
// None with an attached reason.Error. An Outcome is the value-less
// counterpart: Successful or Unsuccessful, again with a reason. Unlike a
// bare pointer or (T, bool) pair, an empty optional always explains itself —
// the explanation is data that survives every transform.
//
//	n := doption.Map(
//	    doption.Some(1),
//	    func(x int) int { return x + 1 },
//	).ValueOr(-1)
//	// n == 2
//
// Presence and nil-ness are orthogonal: Some(v) where v is a nil pointer is
// a present optional whose payload happens to be nil, and is not equal to
// None. Only NotNull and the nil/nil case of Contains ever inspect the
// payload's nil-ness.
//
// Transforms that change the payload type (Map, FlatMap, Match, Flatten)
// are package-level functions, since Go methods cannot introduce type
// parameters; same-type operations (Filter, Or, Else, ValueOr, ...) are
// methods.
//
// Every combinator applies one uniform failure policy, the causal rewrite:
// when an operation fails and the caller supplied a subsequent error, that
// error surfaces with the prior error linked via CausedBy; with no
// subsequent error the prior error propagates unchanged.
//
// Domain failures are always returned as data. Misuse of the API itself —
// nil mapping functions, factories called on optionals in the wrong state —
// panics with a *violation.Violation instead; the two universes never mix.
package doption
