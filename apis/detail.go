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

package apis

// Detail is a single metadata entry of a reason, flattened for transport.
// It mirrors reason.Metadatum with the value rendered to a string so the
// struct survives JSON/proto round-trips.
//
// Order matters: adapters must preserve the insertion order of the source
// reason's metadata when building detail lists.
type Detail struct {
	// Key is the metadata key as recorded on the reason.
	Key string `json:"key"`

	// Value is the metadata value rendered to a string. May be empty.
	Value string `json:"value,omitempty"`
}
