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

// Package async mirrors the doption combinator surface over pending
// computations.
//
// A Task[T] is the pending-computation abstraction: a function that, given
// a context, produces its value. The package introduces no concurrency of
// its own — it only sequences. Each adapter awaits (invokes) every pending
// computation it involves exactly once and then proceeds synchronously, so
// a chain of adapters is inherently sequential and short-circuiting, and
// its final Option/Outcome — values and reason chains alike — is identical
// to what the synchronous combinators would produce from the same inputs.
//
// For each combinator there are variants for every pending/plain split: the
// optional itself wrapped in a Task, the transformation returning a Task
// (the *Task suffixed functions), or both.
//
// Two misuse signals are distinguished eagerly from domain absence: nil
// function arguments panic a NilArgument violation when the adapter is
// built, and a transformation that returns a nil Task handle (instead of a
// task that eventually yields a value) panics an InvalidOperation violation
// before anything is awaited.
//
// No cancellation is threaded through the API; once a task is awaited it
// runs to completion. Honoring ctx is entirely up to the host's tasks.
package async
