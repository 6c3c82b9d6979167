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

import (
	"errors"

	"dirpx.dev/doption/label"
)

// LabeledError is an error that carries a machine-readable label.
//
// The label answers "which well-defined condition is this?" without parsing
// the message. It is the value transport adapters hand to a Mapper to decide
// which status to return.
//
// reason.Error implements this interface; boundary code should target the
// interface so it keeps working when errors arrive wrapped.
type LabeledError interface {
	error

	// Label returns the error's classifier. May be label.Empty when the
	// error is not classified; adapters should treat that as internal.
	Label() label.Label
}

// LabelOf extracts the label from anywhere in err's wrap chain. It returns
// label.Empty when no LabeledError is found, which mappers resolve to their
// fallback status.
func LabelOf(err error) label.Label {
	var le LabeledError
	if errors.As(err, &le) {
		return le.Label()
	}
	return label.Empty
}
