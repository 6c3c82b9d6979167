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

// Package label defines an optional, machine-readable classifier for reasons.
//
// A reason's message is free-form text for humans. A Label is the opposite:
// a stable, dot-separated identifier that mappers and transports can match
// on without parsing prose, e.g.:
//
//   - "validation.field.required"
//   - "storage.pg.connect"
//   - "auth.token.expired"
//
// Labels are intentionally optional: the zero value ("") is valid and means
// "not classified". Attach a label only when a stable identifier exists that
// downstream code (see doption/mapper) is expected to match on.
package label
