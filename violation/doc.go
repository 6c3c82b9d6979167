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

// Package violation signals misuse of the doption API.
//
// The doption packages keep two failure universes strictly apart:
//
//   - domain-level absence or failure, modeled as data (reason.Error) flowing
//     through optionals — always returned, never thrown;
//   - programmer errors: a nil mapping function, a factory called on an
//     optional in the wrong state, an empty rule sequence, a nil pending-task
//     handle. These indicate a bug at the call site and are surfaced
//     immediately as a panic carrying a *Violation.
//
// A *Violation is never converted into a reason.Error and never caught by
// the library itself.
package violation
