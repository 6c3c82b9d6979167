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

	"dirpx.dev/doption/label"
)

// Error explains why a value is absent or an outcome failed.
//
// An Error may be linked to earlier errors that caused it via CausedBy,
// forming the causal chain that every doption combinator preserves. It may
// also wrap a native Go error (see Exceptional), in which case it renders
// with the wrapped error's type prefixed and participates in errors.Is/As
// through Unwrap.
//
// Error implements the built-in error interface so that a domain failure can
// cross a conventional Go API boundary unchanged; inside doption chains it
// is always passed as data, never thrown.
type Error struct {
	core
	label       label.Label
	antecedents []*Error
	cause       error
}

// NewError creates an Error with the given message.
func NewError(msg string) *Error {
	return &Error{core: core{message: msg}}
}

// Errorf creates an Error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return NewError(fmt.Sprintf(format, args...))
}

// Exceptional creates the exception-wrapping Error variant. The message
// defaults to err.Error() and the rendering is prefixed with the wrapped
// error's Go type. Panics on a nil err: wrapping nothing is a caller bug.
func Exceptional(err error) *Error {
	if err == nil {
		panic("doption/reason: nil error in Exceptional")
	}
	return &Error{core: core{message: err.Error()}, cause: err}
}

// WithMetadata records one metadata entry and returns the receiver.
// A repeated key replaces the previous value in place.
//
// Not safe for concurrent use; build the reason before publishing it.
func (e *Error) WithMetadata(key string, value any) *Error {
	e.setMetadata(key, value)
	return e
}

// WithLabel attaches a machine-readable classifier and returns the receiver.
// Mappers and transport adapters match on the label; it never appears in
// String output.
func (e *Error) WithLabel(l label.Label) *Error {
	e.label = l
	return e
}

// Label returns the attached classifier, or label.Empty.
func (e *Error) Label() label.Label { return e.label }

// CausedBy appends prior errors as antecedents of this one and returns the
// receiver. Antecedents are shared, not copied; the same *Error may be the
// cause of several later errors, and identity is preserved for chain
// printing.
func (e *Error) CausedBy(priors ...*Error) *Error {
	for _, p := range priors {
		if p != nil {
			e.antecedents = append(e.antecedents, p)
		}
	}
	return e
}

// Antecedents returns the ordered antecedent list. Read-only for callers.
func (e *Error) Antecedents() []*Error { return e.antecedents }

// Exception returns the wrapped native error, or nil for ordinary errors.
func (e *Error) Exception() error { return e.cause }

// IsZero reports whether the error carries no information at all.
func (e *Error) IsZero() bool {
	return e == nil || (e.message == "" && len(e.metadata) == 0 &&
		len(e.antecedents) == 0 && e.cause == nil && e.label == label.Empty)
}

// Error implements the built-in error interface. Exceptional errors are
// prefixed with the wrapped error's type.
func (e *Error) Error() string { return e.display() }

// Unwrap returns the wrapped native error, enabling errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// display is the single-line message form used by Error(), Print and the
// no-quotes rendering of exceptional errors.
func (e *Error) display() string {
	if e.cause != nil {
		return fmt.Sprintf("%T: %s", e.cause, e.message)
	}
	return e.message
}

// String renders the error as
//
//	'msg', Metadata: k: v, Caused by: 'prior' <- 'earlier'
//
// with metadata and the cause summary present only when non-empty.
// Exceptional errors render their message unquoted with the wrapped error's
// type prefixed.
func (e *Error) String() string { return e.render(0) }

func (e *Error) render(depth int) string {
	var b strings.Builder
	if e.cause != nil {
		b.WriteString(e.display())
	} else {
		b.WriteString(quote(e.message))
	}
	b.WriteString(e.metadataSuffix())
	if len(e.antecedents) > 0 && depth < maxChainDepth {
		b.WriteString(", Caused by: ")
		for i, a := range e.antecedents {
			if i > 0 {
				b.WriteString(chainSeparator)
			}
			b.WriteString(a.render(depth + 1))
		}
	}
	return b.String()
}
