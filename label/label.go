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

package label

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Label is the canonical, validated representation of a reason classifier.
//
// Labels are dot-separated hierarchical identifiers with a small, fixed
// maximum depth. Each segment names a domain, component, or condition, from
// general to specific, so that prefix matching is meaningful:
//
//   - "validation.field.required"
//   - "storage.pg.connect_timeout"
//   - "auth.token.expired"
//
// The empty label ("") is valid and means "not classified".
type Label string

// MinLength and MaxLength bound the length of a non-empty canonical label.
const (
	// MinLength is the minimum length of a non-empty label. Anything shorter
	// than 3 characters cannot name a meaningful condition. The empty string
	// is still allowed and means "not classified".
	MinLength = 3

	// MaxLength is the maximum length of a valid label. 128 characters fits
	// four descriptive segments comfortably.
	MaxLength = 128
)

// labelFmt is the canonical pattern for labels: 1 to 4 dot-separated
// segments, each starting with a lowercase ASCII letter and continuing with
// lowercase letters, digits, or underscores.
//
// Matches:
//
//	"validation.field.required"
//	"storage.pg"
//	"auth"
//
// Does not match:
//
//	"Validation.Field" (uppercase)
//	"storage..pg"      (empty segment)
//	"1auth.token"      (digit first)
//	"a.b.c.d.e"        (too many segments)
//
// The empty string is handled separately as "not classified" and never goes
// through this pattern.
const labelFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var labelRe = regexp.MustCompile(labelFmt)

var (
	// ErrInvalidFormat is returned when a label does not match the canonical
	// segment pattern.
	ErrInvalidFormat = errors.New("doption: invalid label format")
	// ErrInvalidLength is returned when a label is too short or too long.
	ErrInvalidLength = errors.New("doption: invalid label length")
)

// Ensure Label round-trips through text-based encoders.
var (
	_ encoding.TextMarshaler   = (*Label)(nil)
	_ encoding.TextUnmarshaler = (*Label)(nil)
)

// Empty is the zero-value label, meaning "not classified".
var Empty Label = ""

// Normalize brings an arbitrary string closer to the canonical label form
// with conservative, non-lossy transformations only:
//
//   - trim surrounding spaces
//   - lower-case
//   - convert "/" to "." (callers sometimes build path-like identifiers)
//   - replace "-" with "_"
//
// Normalize does not guarantee validity; call Parse or Validate afterwards.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates a user-provided string and returns the
// canonical Label. The empty string parses to Empty without error — this is
// what makes Label an optional part of the reason model.
func Parse(s string) (Label, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Label(s), nil
}

// MustParse is the panic-on-error variant of Parse, intended for declaring
// package-level label constants.
//
// Unlike Parse, MustParse rejects the empty string: an empty label constant
// is almost always a programmer error.
func MustParse(s string) Label {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if l == Empty {
		panic("doption: empty label in MustParse")
	}
	return l
}

// Validate reports whether l is in canonical form. The empty label is valid
// here; callers that require a classified label must check for Empty
// themselves.
func Validate(l Label) error {
	if l == Empty {
		return nil
	}
	return validate(string(l))
}

// String returns the canonical string representation.
func (l Label) String() string {
	return string(l)
}

// MarshalText implements encoding.TextMarshaler. The empty label marshals to
// an empty slice so that JSON/YAML encoders relying on TextMarshaler keep
// working.
func (l Label) MarshalText() ([]byte, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	if l == Empty {
		return []byte{}, nil
	}
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is normalized
// and validated before assignment; whitespace-only input yields Empty.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !labelRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
