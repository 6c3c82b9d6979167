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

// Package reason models structured explanations for outcomes.
//
// A reason is the answer to "why is this value present?" or "why is it
// missing?" — carried as data instead of a bare boolean or nil. Two concrete
// kinds exist:
//
//   - Success: attached to present values and successful outcomes. May link
//     to prior successes that enabled it (EnabledBy), for audit trails.
//   - Error: attached to absent values and failed outcomes. May link to
//     prior errors that caused it (CausedBy), and may wrap a native Go error
//     (Exceptional).
//
// Both carry a human message and an ordered, open metadata list. Builder
// calls (WithMetadata, WithLabel, EnabledBy, CausedBy) mutate the receiver
// in place and return it, so reasons compose fluently at construction time.
// They are NOT safe for concurrent mutation: build a reason fully, attach it
// to an optional, then share it.
//
// Antecedent links form a shared directed structure, not an owned tree: the
// same *Error may be the cause of several later errors, and identity is
// preserved (no deep copies). Nothing prevents a caller from building a
// cycle; rendering and Print guard against that with a fixed depth cap.
package reason
