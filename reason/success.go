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

package reason

import (
	"fmt"
	"strings"
)

// Success explains why a value is present or an outcome succeeded.
//
// A Success may be linked to earlier successes that enabled it via
// EnabledBy. The link is for audit and explainability only — no combinator
// semantics depend on it.
type Success struct {
	core
	antecedents []*Success
}

// NewSuccess creates a Success with the given message. An empty message is
// legal; optionals constructed without an explicit reason carry exactly such
// a default success.
func NewSuccess(msg string) *Success {
	return &Success{core: core{message: msg}}
}

// Successf creates a Success with a formatted message.
func Successf(format string, args ...any) *Success {
	return NewSuccess(fmt.Sprintf(format, args...))
}

// WithMetadata records one metadata entry and returns the receiver.
// A repeated key replaces the previous value in place.
//
// Not safe for concurrent use; build the reason before publishing it.
func (s *Success) WithMetadata(key string, value any) *Success {
	s.setMetadata(key, value)
	return s
}

// EnabledBy appends prior successes as antecedents of this one and returns
// the receiver. Antecedents are shared, not copied; the same *Success may be
// an antecedent of several later successes.
func (s *Success) EnabledBy(priors ...*Success) *Success {
	for _, p := range priors {
		if p != nil {
			s.antecedents = append(s.antecedents, p)
		}
	}
	return s
}

// Antecedents returns the ordered antecedent list. Read-only for callers.
func (s *Success) Antecedents() []*Success { return s.antecedents }

// IsZero reports whether the success carries no information at all: empty
// message, no metadata, no antecedents. Optionals use this to decide whether
// the success is worth rendering.
func (s *Success) IsZero() bool {
	return s == nil || (s.message == "" && len(s.metadata) == 0 && len(s.antecedents) == 0)
}

// String renders the success as
//
//	'msg', Metadata: k: v, Anteceded by: 'prior' <- 'earlier'
//
// with metadata and the antecedent summary present only when non-empty.
func (s *Success) String() string { return s.render(0) }

func (s *Success) render(depth int) string {
	var b strings.Builder
	b.WriteString(quote(s.message))
	b.WriteString(s.metadataSuffix())
	if len(s.antecedents) > 0 && depth < maxChainDepth {
		b.WriteString(", Anteceded by: ")
		for i, a := range s.antecedents {
			if i > 0 {
				b.WriteString(chainSeparator)
			}
			b.WriteString(a.render(depth + 1))
		}
	}
	return b.String()
}
