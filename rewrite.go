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

import "dirpx.dev/doption/reason"

// rewrite is the uniform failure policy shared by every combinator that can
// propagate an error: when the caller supplied a subsequent error, it
// becomes the surfaced error and the prior one is linked as its cause;
// otherwise the prior error passes through unchanged.
//
// Combinators accept the subsequent error as a trailing variadic parameter
// and only the first entry is consulted; a nil entry counts as "not
// supplied".
func rewrite(prior *reason.Error, subsequent []*reason.Error) *reason.Error {
	if len(subsequent) > 0 && subsequent[0] != nil {
		return subsequent[0].CausedBy(prior)
	}
	return prior
}
