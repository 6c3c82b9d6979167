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
	"fmt"
	"reflect"
)

// isNil reports whether v is nil or a typed nil of a nilable kind. This is
// the single place in the package where a payload's nil-ness is inspected;
// HasValue never depends on it.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// renderValue formats a payload for String output. Nil payloads render as
// "null"; collection payloads render as their element count so that String
// output stays bounded regardless of payload size.
func renderValue(v any) string {
	if isNil(v) {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("Count = %d", rv.Len())
	}
	return fmt.Sprint(v)
}
